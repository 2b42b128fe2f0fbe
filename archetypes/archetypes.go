package archetypes

import (
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Kind,
		components.Position,
		components.Object,
		components.Physics,
		components.Skier,
		components.Track,
	)
	AISkier = newArchetype(
		tags.AISkier,
		components.Kind,
		components.Position,
		components.Object,
		components.Physics,
		components.Skier,
		components.AISkier,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Kind,
		components.Position,
		components.Object,
	)
	Weather = newArchetype(
		tags.Weather,
		components.Weather,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
