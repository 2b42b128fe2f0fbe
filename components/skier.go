package components

import (
	cfg "github.com/automoto/powderline/config"
	"github.com/yohamta/donburi"
)

// SkierData holds the discrete state machine fields for a skier entity.
// Each timer is owned exclusively by this entity and decremented at most
// once per tick.
type SkierData struct {
	State cfg.SkierStateID

	StateTransitionTimer int // blocks re-turning after a successful turn
	FlyingTimer          int
	CrashRecoveryTimer   int
	CollisionEffectTimer int // visual/speed penalty window, not a state

	CollisionCount int

	// Speed smoothing, meaningful for the player only
	CurrentSpeed float64
	SpeedOffset  float64
}

var Skier = donburi.NewComponentType[SkierData]()

// AISkierData holds the lane-steering behavior state for computer skiers.
// AI speed policy is fixed per spawn rather than smoothed.
type AISkierData struct {
	Speed         float64
	TargetX       float64
	DecisionTimer int // ticks until the next lane pick
}

var AISkier = donburi.NewComponentType[AISkierData]()
