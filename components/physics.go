package components

import "github.com/yohamta/donburi"

// PhysicsData holds the per-entity vertical simulation state.
// Height is the entity's elevation on the same scale as the terrain
// height at its position; grounded means the two are equal with zero
// vertical velocity. Positive vertical velocity moves the entity toward
// the ground.
type PhysicsData struct {
	Height           float64
	VerticalVelocity float64
	Grounded         bool
	ShowShadow       bool // airborne shadow cue for the renderer
}

var Physics = donburi.NewComponentType[PhysicsData]()
