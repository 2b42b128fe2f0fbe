package components

import (
	"math/rand"

	"github.com/automoto/powderline/gamemath"
	"github.com/yohamta/donburi"
)

// SessionStats accumulates per-run counters surfaced by the CLI and stored
// by the persistence system.
type SessionStats struct {
	Distance      float64 // downhill distance covered by the player
	Collisions    int
	Crashes       int
	WeatherEvents int
}

// SessionData is the process-wide simulation context: the seeded random
// source every probabilistic decision flows through, the tick counter, and
// the external terrain/difficulty collaborators. Spawned once per session.
type SessionData struct {
	Rand       *rand.Rand
	Tick       int
	Terrain    gamemath.Terrain
	Difficulty gamemath.Difficulty
	Stats      SessionStats
}

var Session = donburi.NewComponentType[SessionData]()
