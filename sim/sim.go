// Package sim assembles the ECS world and drives it one fixed tick at a
// time. Rendering, input and audio live outside; callers read component
// data and issue turn requests between steps.
package sim

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/coursedata"
	"github.com/automoto/powderline/gamemath"
	"github.com/automoto/powderline/systems"
	"github.com/automoto/powderline/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	proceduralLength    = 20000.0
	proceduralObstacles = 220
	proceduralAISkiers  = 3
	obstacleFreeZone    = 200.0 // clear snow below the start line
)

// Config describes one session. Zero values fall back to sensible
// defaults; only Seed is worth setting explicitly for reproducible runs.
type Config struct {
	Seed       int64
	Difficulty int     // [0,100], drives weather events
	BaseSpeed  float64 // player base downhill speed
	CoursePath string  // optional TMX course; procedural scatter otherwise
	CourseFS   fs.FS   // filesystem the course is loaded from
	Obstacles  int     // procedural obstacle count
	Terrain    gamemath.Terrain
}

// Sim is one running session.
type Sim struct {
	ecs     *ecs.ECS
	space   *resolv.Space
	player  *donburi.Entry
	session *components.SessionData
	weather *components.WeatherData
	length  float64
}

// New builds a session world: session context, collision space, weather,
// obstacles and skiers, with systems registered in the required intra-tick
// order (physics, hitbox sync, collision, state machines, tracks, weather).
func New(c Config) (*Sim, error) {
	if c.Terrain == nil {
		c.Terrain = gamemath.NewSlopeField()
	}
	if c.BaseSpeed <= 0 {
		c.BaseSpeed = 3.0
	}
	if c.Obstacles <= 0 {
		c.Obstacles = proceduralObstacles
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateAISkiers)
	ecs.AddSystem(systems.UpdateSkiers)
	ecs.AddSystem(systems.UpdateTracks)
	ecs.AddSystem(systems.UpdateWeather)

	difficulty := gamemath.StaticDifficulty{Level: c.Difficulty, Speed: c.BaseSpeed}
	sessionEntry := factory.CreateSession(ecs, c.Seed, c.Terrain, difficulty)
	session := components.Session.Get(sessionEntry)

	length := proceduralLength
	var course *coursedata.Course
	if c.CoursePath != "" {
		fsys := c.CourseFS
		if fsys == nil {
			fsys = os.DirFS(".")
		}
		var err error
		course, err = coursedata.LoadCourse(fsys, c.CoursePath)
		if err != nil {
			return nil, fmt.Errorf("build session: %w", err)
		}
		length = float64(course.Height)
	}

	spaceEntry := factory.CreateSpace(ecs, int(cfg.World.Width), int(length), cfg.World.CellSize, cfg.World.CellSize)
	space := components.Space.Get(spaceEntry)

	weatherEntry := factory.CreateWeather(ecs, session.Rand)
	weather := components.Weather.Get(weatherEntry)

	var player *donburi.Entry
	if course != nil {
		for _, ob := range course.Obstacles {
			factory.CreateObstacle(ecs, space, ob.Kind, ob.X, ob.Y)
		}
		player = factory.CreatePlayer(ecs, space, course.PlayerSpawn.X, course.PlayerSpawn.Y)
		for _, ai := range course.AISpawns {
			factory.CreateAISkier(ecs, space, ai.X, ai.Y, ai.Speed)
		}
	} else {
		factory.ScatterObstacles(ecs, space, session.Rand, c.Obstacles, obstacleFreeZone, length)
		player = factory.CreatePlayer(ecs, space, cfg.World.Width/2, 40)
		for i := 0; i < proceduralAISkiers; i++ {
			x := cfg.World.Width * float64(i+1) / float64(proceduralAISkiers+1)
			factory.CreateAISkier(ecs, space, x, 80, 2.0+session.Rand.Float64())
		}
	}

	return &Sim{
		ecs:     ecs,
		space:   space,
		player:  player,
		session: session,
		weather: weather,
		length:  length,
	}, nil
}

// Step runs one simulation tick.
func (s *Sim) Step() {
	s.ecs.Update()
}

// RunTicks runs n ticks back to back without pacing.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// TurnLeft issues a player turn request; false means it was ignored.
func (s *Sim) TurnLeft() bool {
	return systems.TurnLeft(s.ecs, s.player)
}

// TurnRight issues a player turn request; false means it was ignored.
func (s *Sim) TurnRight() bool {
	return systems.TurnRight(s.ecs, s.player)
}

// Player returns the player entity for component access.
func (s *Sim) Player() *donburi.Entry {
	return s.player
}

// ECS exposes the underlying world for renderers and tests.
func (s *Sim) ECS() *ecs.ECS {
	return s.ecs
}

// Tick returns the current simulation tick.
func (s *Sim) Tick() int {
	return s.session.Tick
}

// Stats returns a copy of the session counters.
func (s *Sim) Stats() components.SessionStats {
	return s.session.Stats
}

// Length returns the course length in world units.
func (s *Sim) Length() float64 {
	return s.length
}

// WeatherReport is a read-only snapshot of the derived weather outputs.
type WeatherReport struct {
	State           cfg.WeatherStateID
	Target          cfg.WeatherStateID
	Progress        float64
	OverlayOpacity  float64
	CameraShake     float64
	ActiveParticles int
	Events          int
}

// Weather returns the current derived weather snapshot.
func (s *Sim) Weather() WeatherReport {
	return WeatherReport{
		State:           s.weather.Current,
		Target:          s.weather.Target,
		Progress:        s.weather.Progress,
		OverlayOpacity:  systems.OverlayOpacity(s.weather),
		CameraShake:     systems.CameraShake(s.weather),
		ActiveParticles: systems.ActiveParticleTarget(s.weather),
		Events:          s.weather.EventCount,
	}
}
