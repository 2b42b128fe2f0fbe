package factory

import (
	"math/rand"

	"github.com/automoto/powderline/archetypes"
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns a static obstacle centered on the given ground
// position. Obstacles never move or change state; they only expose a hitbox.
func CreateObstacle(ecs *ecs.ECS, space *resolv.Space, kind cfg.EntityKind, x, y float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	components.Kind.Set(obstacle, &components.KindData{Kind: kind})
	components.Position.Set(obstacle, &components.PositionData{X: x, Y: y})

	size := cfg.Obstacle.Sizes[kind]
	obj := resolv.NewObject(x-size.W/2, y-size.H/2, size.W, size.H, tags.ResolvObstacle)
	obj.Data = obstacle
	space.Add(obj)
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	return obstacle
}

// obstacleWeights drives the procedural scatter mix.
var obstacleWeights = []struct {
	kind   cfg.EntityKind
	weight float64
}{
	{cfg.KindTree, 0.5},
	{cfg.KindRock, 0.25},
	{cfg.KindSnowdrift, 0.15},
	{cfg.KindSnowman, 0.10},
}

// ScatterObstacles spawns count obstacles at random positions between
// startY and endY, using the session's random source.
func ScatterObstacles(ecs *ecs.ECS, space *resolv.Space, rng *rand.Rand, count int, startY, endY float64) {
	for i := 0; i < count; i++ {
		kind := pickObstacleKind(rng)
		x := rng.Float64() * cfg.World.Width
		y := startY + rng.Float64()*(endY-startY)
		CreateObstacle(ecs, space, kind, x, y)
	}
}

func pickObstacleKind(rng *rand.Rand) cfg.EntityKind {
	roll := rng.Float64()
	acc := 0.0
	for _, w := range obstacleWeights {
		acc += w.weight
		if roll < acc {
			return w.kind
		}
	}
	return cfg.KindTree
}
