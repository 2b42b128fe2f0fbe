package factory

import (
	"math/rand"

	"github.com/automoto/powderline/archetypes"
	"github.com/automoto/powderline/components"
	"github.com/automoto/powderline/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton simulation context. All probabilistic
// decisions in the session flow through the seeded random source so runs
// are reproducible.
func CreateSession(ecs *ecs.ECS, seed int64, terrain gamemath.Terrain, difficulty gamemath.Difficulty) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.Set(session, &components.SessionData{
		Rand:       rand.New(rand.NewSource(seed)),
		Terrain:    terrain,
		Difficulty: difficulty,
	})
	return session
}
