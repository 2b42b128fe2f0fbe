package systems

import (
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/gamemath"
	"github.com/automoto/powderline/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a minimal session on flat terrain: session context,
// collision space, settled clear weather and one player at (400, 100).
// Systems are invoked directly by each test rather than registered.
func newTestWorld(seed int64) (*ecs.ECS, *donburi.Entry, *resolv.Space) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, seed, gamemath.FlatTerrain{}, gamemath.StaticDifficulty{Level: 50, Speed: 3})

	spaceEntry := factory.CreateSpace(e, 800, 4000, 16, 16)
	space := components.Space.Get(spaceEntry)

	sessionEntry, _ := components.Session.First(e.World)
	session := components.Session.Get(sessionEntry)
	factory.CreateWeather(e, session.Rand)

	player := factory.CreatePlayer(e, space, 400, 100)
	return e, player, space
}

func spawnObstacle(e *ecs.ECS, space *resolv.Space, kind cfg.EntityKind, x, y float64) *donburi.Entry {
	return factory.CreateObstacle(e, space, kind, x, y)
}

func testSession(e *ecs.ECS) *components.SessionData {
	entry, _ := components.Session.First(e.World)
	return components.Session.Get(entry)
}

func testWeather(e *ecs.ECS) *components.WeatherData {
	entry, _ := components.Weather.First(e.World)
	return components.Weather.Get(entry)
}
