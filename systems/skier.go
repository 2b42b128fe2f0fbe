package systems

import (
	"math"

	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/gamemath"
	"github.com/automoto/powderline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSkiers advances every skier's state machine one tick: timers,
// crash/flying transitions, speed smoothing, movement integration and
// track emission. Collision responses were already dispatched this tick;
// this system consumes their effects.
func UpdateSkiers(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	var weather *components.WeatherData
	if weatherEntry, ok := components.Weather.First(ecs.World); ok {
		weather = components.Weather.Get(weatherEntry)
	}

	components.Skier.Each(ecs.World, func(e *donburi.Entry) {
		skier := components.Skier.Get(e)
		phys := components.Physics.Get(e)
		pos := components.Position.Get(e)
		isPlayer := e.HasComponent(tags.Player)

		advanceTimers(skier, session, isPlayer)

		if isPlayer {
			if weather != nil {
				skier.SpeedOffset = SpeedModifier(weather)
			}
			updatePlayerSpeed(skier, session)
		}

		moveSkier(e, skier, phys, pos, session, weather, isPlayer)

		if isPlayer && phys.Grounded && !skier.State.IsFlying() && !skier.State.IsCrashed() {
			track := components.Track.Get(e)
			EmitTrackPoint(track, pos.X, pos.Y)
		}
	})
}

// advanceTimers decrements each owned timer at most once and fires the
// transitions they gate. The collision effect timer is independent of the
// state timers; it is a penalty window, not a state.
func advanceTimers(skier *components.SkierData, session *components.SessionData, isPlayer bool) {
	if skier.StateTransitionTimer > 0 {
		skier.StateTransitionTimer--
	}
	if skier.CollisionEffectTimer > 0 {
		skier.CollisionEffectTimer--
	}

	switch {
	case skier.State.IsFlying():
		if skier.FlyingTimer > 0 {
			skier.FlyingTimer--
			if skier.FlyingTimer == 0 {
				enterCrashed(skier)
				if isPlayer {
					session.Stats.Crashes++
				}
			}
		}
	case skier.State.IsCrashed():
		if skier.CrashRecoveryTimer > 0 {
			skier.CrashRecoveryTimer--
			if skier.CrashRecoveryTimer == 0 {
				skier.State = cfg.SkierDown
				skier.CollisionCount = 0
			}
		}
	}
}

func enterCrashed(skier *components.SkierData) {
	skier.State = cfg.SkierCrashed
	skier.CrashRecoveryTimer = cfg.Skier.CrashRecoveryDuration
}

// enterFlying launches a skier into the airborne mirror of its current
// direction. No-op when already flying or crashed.
func enterFlying(e *donburi.Entry, skier *components.SkierData) {
	if skier.State.IsFlying() || skier.State.IsCrashed() {
		return
	}
	skier.State = skier.State.FlyingVariant()
	skier.FlyingTimer = cfg.Skier.FlyingDuration

	phys := components.Physics.Get(e)
	phys.VerticalVelocity = cfg.Physics.LaunchVelocity
	phys.Grounded = false
	phys.ShowShadow = true
}

// HandleCollision is the collision response entry point the collision
// system dispatches into. Snowdrifts are handled by the terrain layer and
// ignored here; every other kind arms the effect window for its kind and
// counts toward the player's launch threshold.
func HandleCollision(ecs *ecs.ECS, e *donburi.Entry, other *donburi.Entry) {
	otherKind := components.Kind.Get(other).Kind
	if otherKind == cfg.KindSnowdrift {
		return
	}

	skier := components.Skier.Get(e)
	duration, ok := cfg.Collision.EffectDurations[otherKind]
	if !ok {
		duration = cfg.Collision.DefaultEffectDuration
	}
	skier.CollisionEffectTimer = duration
	skier.CollisionCount++

	isPlayer := e.HasComponent(tags.Player)
	if isPlayer {
		if sessionEntry, ok := components.Session.First(ecs.World); ok {
			components.Session.Get(sessionEntry).Stats.Collisions++
		}
		if skier.CollisionCount >= cfg.Skier.FlyingHitThreshold {
			enterFlying(e, skier)
		}
	}
}

// TurnLeft requests one step toward the left end of the turn order.
// Returns false when the request is ignored: crashed, flying, still in the
// turn lockout, already at the end, or lost to weather control slip.
func TurnLeft(ecs *ecs.ECS, e *donburi.Entry) bool {
	return turn(ecs, e, -1)
}

// TurnRight requests one step toward the right end of the turn order.
func TurnRight(ecs *ecs.ECS, e *donburi.Entry) bool {
	return turn(ecs, e, 1)
}

func turn(ecs *ecs.ECS, e *donburi.Entry, dir int) bool {
	skier := components.Skier.Get(e)
	if skier.State.IsFlying() || skier.State.IsCrashed() || skier.StateTransitionTimer > 0 {
		return false
	}

	idx := -1
	for i, s := range cfg.TurnOrder {
		if s == skier.State {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	next := idx + dir
	if next < 0 || next >= len(cfg.TurnOrder) {
		return false
	}

	// Player control can slip in bad weather even when otherwise eligible.
	if e.HasComponent(tags.Player) {
		weatherEntry, ok := components.Weather.First(ecs.World)
		sessionEntry, sok := components.Session.First(ecs.World)
		if ok && sok {
			chance := TurnFailChance(components.Weather.Get(weatherEntry))
			if chance > 0 && components.Session.Get(sessionEntry).Rand.Float64() < chance {
				return false
			}
		}
	}

	skier.State = cfg.TurnOrder[next]
	skier.StateTransitionTimer = cfg.Skier.TurnLockTicks
	return true
}

func updatePlayerSpeed(skier *components.SkierData, session *components.SessionData) {
	base := session.Difficulty.PlayerBaseSpeed()
	target := math.Max(0, base+skier.SpeedOffset)

	factor := cfg.Skier.SpeedLerpSteady
	if skier.CollisionEffectTimer > 0 {
		slow := cfg.Skier.CollisionSlowdownFloor +
			(1-cfg.Skier.CollisionSlowdownFloor)*(1-float64(skier.CollisionEffectTimer)/cfg.Skier.CollisionEffectNorm)
		target *= slow
		factor = cfg.Skier.SpeedLerpImpact
	}

	skier.CurrentSpeed += (target - skier.CurrentSpeed) * factor
	if math.Abs(target-skier.CurrentSpeed) < cfg.Skier.SpeedSnapEpsilon {
		skier.CurrentSpeed = target
	}
}

func moveSkier(e *donburi.Entry, skier *components.SkierData, phys *components.PhysicsData, pos *components.PositionData, session *components.SessionData, weather *components.WeatherData, isPlayer bool) {
	if skier.State.IsCrashed() {
		return
	}
	ratio, ok := cfg.Skier.MoveRatios[skier.State.DirectionVariant()]
	if !ok {
		return
	}

	speed := skier.CurrentSpeed
	if !isPlayer && e.HasComponent(components.AISkier) {
		speed = components.AISkier.Get(e).Speed
	}
	if skier.State.IsFlying() {
		speed *= cfg.Skier.FlyingSpeedMultiplier
	}

	dx := ratio.DX * speed
	dy := ratio.DY * speed
	if isPlayer && weather != nil {
		if jitter := ControlJitter(weather); jitter > 0 {
			dx += (session.Rand.Float64()*2 - 1) * jitter
		}
	}

	pos.X = gamemath.ClampFloat(pos.X+dx, 0, cfg.World.Width)
	pos.Y += dy

	if isPlayer {
		session.Stats.Distance += dy
	}
}
