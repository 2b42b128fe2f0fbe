package factory

import (
	"github.com/automoto/powderline/archetypes"
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player skier at the given ground position,
// grounded and pointing straight downhill.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initSkier(player, space, cfg.KindPlayer, x, y)
	components.Track.Set(player, &components.TrackData{
		Points: make([]components.TrackPoint, 0, cfg.Track.MaxPoints),
	})
	return player
}

// CreateAISkier spawns a computer skier with a fixed downhill speed.
func CreateAISkier(ecs *ecs.ECS, space *resolv.Space, x, y, speed float64) *donburi.Entry {
	skier := archetypes.AISkier.Spawn(ecs)
	initSkier(skier, space, cfg.KindAISkier, x, y)
	components.AISkier.Set(skier, &components.AISkierData{
		Speed:   speed,
		TargetX: x,
	})
	return skier
}

func initSkier(e *donburi.Entry, space *resolv.Space, kind cfg.EntityKind, x, y float64) {
	components.Kind.Set(e, &components.KindData{Kind: kind})
	components.Position.Set(e, &components.PositionData{X: x, Y: y})
	components.Skier.Set(e, &components.SkierData{State: cfg.SkierDown})
	components.Physics.Set(e, &components.PhysicsData{Grounded: true})

	w, h := cfg.Skier.HitboxWidth, cfg.Skier.HitboxHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvSkier)
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}
