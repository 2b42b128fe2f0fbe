package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all entities spawn on.
const Default ecs.LayerID = 0

// WorldConfig contains slope dimensions and collision space settings.
type WorldConfig struct {
	Width    float64 // slope width in world units
	Height   float64 // visible depth of the slope
	CellSize int     // resolv space cell size
}

// MoveRatio maps a skier state to its horizontal/vertical velocity ratios.
// DX is signed (negative = left), DY is the downhill rate.
type MoveRatio struct {
	DX float64
	DY float64
}

// SkierConfig contains all skier state machine and movement tuning.
type SkierConfig struct {
	// Dimensions
	HitboxWidth  float64
	HitboxHeight float64

	// Timers (ticks)
	TurnLockTicks         int // re-turn lockout after a successful turn
	FlyingDuration        int
	CrashRecoveryDuration int

	// Collision response
	FlyingHitThreshold int // collisions before the player is launched

	// Speed smoothing
	CollisionSlowdownFloor float64 // slowdown factor at full effect timer
	CollisionEffectNorm    float64 // effect window the slowdown blend normalizes over
	SpeedLerpImpact        float64 // approach factor while a collision effect is active
	SpeedLerpSteady        float64
	SpeedSnapEpsilon       float64

	// Movement
	FlyingSpeedMultiplier float64
	MoveRatios            map[SkierStateID]MoveRatio
}

// PhysicsConfig contains height/grounding simulation tuning.
type PhysicsConfig struct {
	Gravity         float64
	GravityInterval int     // accumulate gravity every Nth tick only
	GroundTolerance float64 // hysteresis dead zone above ground level
	LaunchVelocity  float64 // initial upward velocity when a skier is launched
}

// CollisionConfig contains per-obstacle collision response tuning.
type CollisionConfig struct {
	EffectDurations       map[EntityKind]int // post-collision penalty window per kind
	DefaultEffectDuration int                // fallback for unknown kinds
}

// Size is an axis-aligned hitbox extent.
type Size struct {
	W float64
	H float64
}

// ObstacleConfig contains static obstacle hitbox sizes.
type ObstacleConfig struct {
	Sizes map[EntityKind]Size
}

// TrackConfig contains ski track buffer tuning.
type TrackConfig struct {
	MinPointDistance float64 // spatial decimation threshold
	MaxPoints        int     // FIFO capacity
	StartAlpha       float64
	AlphaDecay       float64 // per tick
	MaxSegmentSpan   float64 // spans longer than this are not rendered
	RailOffset       float64 // half distance between the paired rail lines
}

// WeatherBand contains the per-state baselines that transition progress
// blends between.
type WeatherBand struct {
	ParticleBase   int     // active particles at progress 0
	ParticleSpan   int     // additional particles at progress 1
	TurnFailChance float64 // player turn failure probability
	ControlJitter  float64 // horizontal jitter magnitude for the player
	OverlayOpacity float64 // fog overlay target
	CameraShake    float64
	WindIntensity  float64
	SpeedModifier  float64 // additive speed offset fed to the player
}

// WeatherConfig contains the weather state machine, particle pool and
// scheduler tuning.
type WeatherConfig struct {
	Bands        map[WeatherStateID]WeatherBand
	MaxParticles int

	// Transition regimes
	TransitionSpeed float64 // progress per tick, normal
	SuddenStart     float64 // initial progress of a sudden transition
	SuddenSpeed     float64 // progress per tick, sudden
	OverlayOnset    float64 // progress below which the overlay stays down

	// Scheduler
	ClearDurationMin  int
	ClearDurationMax  int
	EventChance       float64 // per-check chance of starting an event from clear
	EventDurationBase int
	EventDurationCeil int // difficulty shrinks the random span from this value
	EventDurationMin  int // span never shrinks below this
	SuddenChanceBase  float64
	SuddenChanceScale float64 // scaled by difficulty/100

	// Particle kinematics
	SpawnMargin     float64 // respawn band above the visible area
	FallSpeedMin    float64
	FallSpeedMax    float64
	DriftSpeedMax   float64
	SizeMin         float64
	SizeMax         float64
	RotationRateMax float64
}

// Global configuration instances
var (
	World     WorldConfig
	Skier     SkierConfig
	Physics   PhysicsConfig
	Collision CollisionConfig
	Obstacle  ObstacleConfig
	Track     TrackConfig
	Weather   WeatherConfig
)

func init() {
	World = WorldConfig{
		Width:    800,
		Height:   600,
		CellSize: 16,
	}

	Skier = SkierConfig{
		HitboxWidth:  24,
		HitboxHeight: 32,

		TurnLockTicks:         10,
		FlyingDuration:        60,
		CrashRecoveryDuration: 180,

		FlyingHitThreshold: 3,

		CollisionSlowdownFloor: 0.7,
		CollisionEffectNorm:    45,
		SpeedLerpImpact:        0.3,
		SpeedLerpSteady:        0.04,
		SpeedSnapEpsilon:       0.01,

		FlyingSpeedMultiplier: 2.0,
		MoveRatios: map[SkierStateID]MoveRatio{
			SkierLeft:      {DX: -1.0, DY: 0.25},
			SkierLeftDown:  {DX: -0.5, DY: 0.8},
			SkierDown:      {DX: 0, DY: 1.0},
			SkierRightDown: {DX: 0.5, DY: 0.8},
			SkierRight:     {DX: 1.0, DY: 0.25},
		},
	}

	Physics = PhysicsConfig{
		Gravity:         0.4,
		GravityInterval: 3,
		GroundTolerance: 0.3,
		LaunchVelocity:  -4.5,
	}

	Collision = CollisionConfig{
		EffectDurations: map[EntityKind]int{
			KindTree: 45,
			KindRock: 30,
		},
		DefaultEffectDuration: 20,
	}

	Obstacle = ObstacleConfig{
		Sizes: map[EntityKind]Size{
			KindTree:      {W: 28, H: 40},
			KindRock:      {W: 32, H: 24},
			KindSnowman:   {W: 26, H: 30},
			KindSnowdrift: {W: 48, H: 16},
		},
	}

	Track = TrackConfig{
		MinPointDistance: 15,
		MaxPoints:        100,
		StartAlpha:       200,
		AlphaDecay:       0.8,
		MaxSegmentSpan:   50,
		RailOffset:       3,
	}

	Weather = WeatherConfig{
		Bands: map[WeatherStateID]WeatherBand{
			WeatherClear: {},
			WeatherLightSnow: {
				ParticleBase:   50,
				ParticleSpan:   50,
				TurnFailChance: 0.05,
				ControlJitter:  0.1,
				OverlayOpacity: 0.15,
				WindIntensity:  0.3,
				SpeedModifier:  -0.1,
			},
			WeatherHeavySnow: {
				ParticleBase:   100,
				ParticleSpan:   100,
				TurnFailChance: 0.15,
				ControlJitter:  0.25,
				OverlayOpacity: 0.35,
				CameraShake:    0.5,
				WindIntensity:  1.0,
				SpeedModifier:  -0.3,
			},
			WeatherBlizzard: {
				ParticleBase:   200,
				ParticleSpan:   100,
				TurnFailChance: 0.30,
				ControlJitter:  0.4,
				OverlayOpacity: 0.6,
				CameraShake:    1.5,
				WindIntensity:  2.0,
				SpeedModifier:  -0.6,
			},
		},
		MaxParticles: 300,

		TransitionSpeed: 0.005,
		SuddenStart:     0.3,
		SuddenSpeed:     0.02,
		OverlayOnset:    0.3,

		ClearDurationMin:  1200,
		ClearDurationMax:  1800,
		EventChance:       0.1,
		EventDurationBase: 300,
		EventDurationCeil: 1500,
		EventDurationMin:  300,
		SuddenChanceBase:  0.1,
		SuddenChanceScale: 0.3,

		SpawnMargin:     20,
		FallSpeedMin:    1.0,
		FallSpeedMax:    3.0,
		DriftSpeedMax:   0.6,
		SizeMin:         1.0,
		SizeMax:         3.5,
		RotationRateMax: 0.1,
	}
}
