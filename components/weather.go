package components

import (
	cfg "github.com/automoto/powderline/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Snowflake is one slot in the fixed particle pool. Slots are reused for
// the whole session; a flake that leaves the screen respawns in place.
type Snowflake struct {
	X             float64
	Y             float64
	Size          float64
	FallSpeed     float64
	DriftSpeed    float64
	Rotation      float64
	RotationSpeed float64
	Active        bool
}

// WeatherData is the process-wide weather state machine. Current and Target
// are discrete states; Transition carries the continuous blend between them.
// A nil Transition means the weather is settled on Current.
type WeatherData struct {
	Current cfg.WeatherStateID
	Target  cfg.WeatherStateID

	Transition *gween.Tween
	Progress   float64 // last sampled transition progress, [0,1]
	Sudden     bool

	Timer    int // ticks since the current state began
	Duration int // ticks the current state should last

	WindDirection float64 // -1 or 1
	EventCount    int     // weather events started this session

	Particles []Snowflake
}

var Weather = donburi.NewComponentType[WeatherData]()
