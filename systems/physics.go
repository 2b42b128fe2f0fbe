package systems

import (
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs the vertical simulation for every entity that has one.
// Gravity accumulates only every Nth tick, a deliberately coarse
// approximation tuned for readable motion rather than accuracy.
func UpdatePhysics(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	applyGravity := session.Tick%cfg.Physics.GravityInterval == 0

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		phys := components.Physics.Get(e)
		pos := components.Position.Get(e)
		groundLevel := session.Terrain.HeightAt(pos.X, pos.Y)

		if applyGravity {
			phys.VerticalVelocity += cfg.Physics.Gravity
		}
		phys.Height -= phys.VerticalVelocity

		// Grounding with hysteresis: snap when at or below the surface, mark
		// airborne only past the tolerance band. In between, the previous
		// flag is kept so terrain noise cannot make the state flicker.
		switch {
		case phys.Height <= groundLevel:
			phys.Height = groundLevel
			phys.VerticalVelocity = 0
			phys.Grounded = true
			phys.ShowShadow = false
		case groundLevel < phys.Height-cfg.Physics.GroundTolerance:
			phys.Grounded = false
			phys.ShowShadow = true
		}
	})
}
