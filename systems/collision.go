package systems

import (
	"github.com/automoto/powderline/components"
	"github.com/automoto/powderline/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions scans every skier against all other collidables and
// dispatches at most one collision response per initiator per tick. A skier
// that is flying passes through obstacles; one that is crashed or still
// absorbing a hit does not initiate either. Dispatch is asymmetric: only
// the scanning entity's handler fires, the partner responds on its own
// scan (or never, for static obstacles).
func UpdateCollisions(ecs *ecs.ECS) {
	components.Skier.Each(ecs.World, func(e *donburi.Entry) {
		skier := components.Skier.Get(e)
		if skier.State.IsFlying() || skier.State.IsCrashed() || skier.CollisionEffectTimer > 0 {
			return
		}

		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvSkier, tags.ResolvObstacle)
		if check == nil {
			return
		}

		// Cell sharing is only the broad phase; the strict AABB test decides.
		for _, other := range check.Objects {
			if other == obj.Object || !boxesOverlap(obj.Object, other) {
				continue
			}
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok {
				continue
			}
			HandleCollision(ecs, e, otherEntry)
			break
		}
	})
}

// boxesOverlap is the strict-inequality axis-aligned overlap test. Rects
// that only share a boundary edge do not overlap.
func boxesOverlap(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W &&
		a.Y+a.H > b.Y && a.Y < b.Y+b.H
}
