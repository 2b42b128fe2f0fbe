// Package coursedata provides TMX course parsing for slope layouts.
// It has no dependencies on donburi or resolv — pure data only.
package coursedata

import cfg "github.com/automoto/powderline/config"

// Course holds everything parsed from a TMX course file: obstacle
// placements, skier spawn points and the slope extents.
type Course struct {
	Obstacles   []ObstacleSpawn
	PlayerSpawn SpawnPoint
	AISpawns    []AISpawn
	Width       int
	Height      int
}

// ObstacleSpawn places one static obstacle on the slope.
type ObstacleSpawn struct {
	X, Y float64
	Kind cfg.EntityKind
}

// SpawnPoint is a skier start location.
type SpawnPoint struct {
	X, Y float64
}

// AISpawn is a computer skier start location with its fixed speed.
type AISpawn struct {
	X, Y  float64
	Speed float64
}
