package systems

import (
	"github.com/automoto/powderline/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-derives every entity's hitbox rect from its ground
// position and current lift above the terrain, then reassigns its cells in
// the collision space. Runs after physics and before collision scanning so
// hitboxes always reflect this tick's positions.
func UpdateObjects(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		pos := components.Position.Get(e)

		lift := 0.0
		if e.HasComponent(components.Physics) {
			phys := components.Physics.Get(e)
			lift = phys.Height - session.Terrain.HeightAt(pos.X, pos.Y)
			if lift < 0 {
				lift = 0
			}
		}

		obj.X = pos.X - obj.W/2
		obj.Y = pos.Y - obj.H/2 - lift
		obj.Update()
	})
}
