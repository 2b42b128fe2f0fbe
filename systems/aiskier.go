package systems

import (
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// laneTolerance is how close to the target lane an AI skier settles before
// straightening out.
const laneTolerance = 20.0

// UpdateAISkiers picks a lane for each computer skier every few seconds and
// steers toward it with the same turn requests the player uses. Weather
// never makes AI turns slip; only the player fights the controls.
func UpdateAISkiers(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	components.AISkier.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.AISkier.Get(e)
		pos := components.Position.Get(e)
		skier := components.Skier.Get(e)

		if ai.DecisionTimer > 0 {
			ai.DecisionTimer--
		}
		if ai.DecisionTimer == 0 {
			ai.TargetX = session.Rand.Float64() * cfg.World.Width
			ai.DecisionTimer = 120 + session.Rand.Intn(120)
		}

		dx := ai.TargetX - pos.X
		switch {
		case dx < -laneTolerance:
			TurnLeft(ecs, e)
		case dx > laneTolerance:
			TurnRight(ecs, e)
		default:
			straightenOut(ecs, e, skier)
		}
	})
}

// straightenOut steps the skier back toward DOWN once it is in its lane.
func straightenOut(ecs *ecs.ECS, e *donburi.Entry, skier *components.SkierData) {
	switch skier.State {
	case cfg.SkierLeft, cfg.SkierLeftDown:
		TurnRight(ecs, e)
	case cfg.SkierRight, cfg.SkierRightDown:
		TurnLeft(ecs, e)
	}
}
