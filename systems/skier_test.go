package systems

import (
	"testing"

	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnStepsThroughOrder(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	require.Equal(t, cfg.SkierDown, skier.State)

	require.True(t, TurnRight(e, player))
	assert.Equal(t, cfg.SkierRightDown, skier.State)

	skier.StateTransitionTimer = 0
	require.True(t, TurnRight(e, player))
	assert.Equal(t, cfg.SkierRight, skier.State)

	// Already at the right end of the order.
	skier.StateTransitionTimer = 0
	assert.False(t, TurnRight(e, player))
	assert.Equal(t, cfg.SkierRight, skier.State)
}

func TestTurnLockoutWindow(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	session := testSession(e)

	require.True(t, TurnLeft(e, player))
	assert.Equal(t, cfg.Skier.TurnLockTicks, skier.StateTransitionTimer)

	// Locked out until the timer runs down.
	assert.False(t, TurnLeft(e, player))
	for i := 0; i < cfg.Skier.TurnLockTicks; i++ {
		advanceTimers(skier, session, true)
	}
	assert.True(t, TurnLeft(e, player))
	assert.Equal(t, cfg.SkierLeft, skier.State)
}

func TestTurnRefusedWhileFlyingOrCrashed(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)

	skier.State = cfg.SkierFlyingDown
	assert.False(t, TurnLeft(e, player))
	assert.False(t, TurnRight(e, player))

	skier.State = cfg.SkierCrashed
	assert.False(t, TurnLeft(e, player))
	assert.Equal(t, cfg.SkierCrashed, skier.State)
}

func TestBlizzardTurnFailureRate(t *testing.T) {
	e, player, _ := newTestWorld(7)
	skier := components.Skier.Get(player)
	w := testWeather(e)
	w.Current = cfg.WeatherBlizzard
	w.Transition = nil

	const trials = 10000
	failed := 0
	for i := 0; i < trials; i++ {
		skier.State = cfg.SkierDown
		skier.StateTransitionTimer = 0
		if !TurnLeft(e, player) {
			failed++
		}
	}
	assert.InDelta(t, cfg.Weather.Bands[cfg.WeatherBlizzard].TurnFailChance,
		float64(failed)/trials, 0.02)
}

func TestCollisionEffectDurationsPerKind(t *testing.T) {
	e, player, space := newTestWorld(1)
	skier := components.Skier.Get(player)

	tree := spawnObstacle(e, space, cfg.KindTree, 700, 3000)
	rock := spawnObstacle(e, space, cfg.KindRock, 700, 3100)
	snowman := spawnObstacle(e, space, cfg.KindSnowman, 700, 3200)

	HandleCollision(e, player, tree)
	assert.Equal(t, 45, skier.CollisionEffectTimer)

	HandleCollision(e, player, rock)
	assert.Equal(t, 30, skier.CollisionEffectTimer)

	// Snowman has no dedicated entry and falls back to the default.
	HandleCollision(e, player, snowman)
	assert.Equal(t, 20, skier.CollisionEffectTimer)

	assert.Equal(t, 3, skier.CollisionCount)
	assert.Equal(t, 3, testSession(e).Stats.Collisions)
}

func TestSnowdriftCollisionIsIgnored(t *testing.T) {
	e, player, space := newTestWorld(1)
	skier := components.Skier.Get(player)
	drift := spawnObstacle(e, space, cfg.KindSnowdrift, 700, 3000)

	HandleCollision(e, player, drift)
	assert.Equal(t, 0, skier.CollisionCount)
	assert.Equal(t, 0, skier.CollisionEffectTimer)
}

func TestThirdHitLaunchesAndRecovers(t *testing.T) {
	e, player, space := newTestWorld(1)
	skier := components.Skier.Get(player)
	session := testSession(e)
	tree := spawnObstacle(e, space, cfg.KindTree, 700, 3000)

	HandleCollision(e, player, tree)
	HandleCollision(e, player, tree)
	require.Equal(t, cfg.SkierDown, skier.State, "two hits do not launch")

	HandleCollision(e, player, tree)
	require.Equal(t, cfg.SkierFlyingDown, skier.State)
	require.Equal(t, cfg.Skier.FlyingDuration, skier.FlyingTimer)
	phys := components.Physics.Get(player)
	assert.Equal(t, cfg.Physics.LaunchVelocity, phys.VerticalVelocity)
	assert.False(t, phys.Grounded)

	for i := 0; i < cfg.Skier.FlyingDuration; i++ {
		advanceTimers(skier, session, true)
	}
	require.Equal(t, cfg.SkierCrashed, skier.State)
	require.Equal(t, cfg.Skier.CrashRecoveryDuration, skier.CrashRecoveryTimer)
	assert.Equal(t, 1, session.Stats.Crashes)

	for i := 0; i < cfg.Skier.CrashRecoveryDuration; i++ {
		advanceTimers(skier, session, true)
	}
	assert.Equal(t, cfg.SkierDown, skier.State)
	assert.Equal(t, 0, skier.CollisionCount, "recovery resets the hit count")
}

func TestLaunchKeepsDirectionMirror(t *testing.T) {
	_, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	skier.State = cfg.SkierRightDown
	skier.CollisionCount = 2

	enterFlying(player, skier)
	assert.Equal(t, cfg.SkierFlyingRightDown, skier.State)
	assert.Equal(t, cfg.SkierRightDown, skier.State.DirectionVariant())

	// A second launch attempt mid-air changes nothing.
	enterFlying(player, skier)
	assert.Equal(t, cfg.SkierFlyingRightDown, skier.State)
}

func TestPlayerSpeedSlowdownAfterImpact(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	session := testSession(e)
	base := session.Difficulty.PlayerBaseSpeed()

	skier.CurrentSpeed = base
	skier.CollisionEffectTimer = 45 // full window: slowdown at its floor
	updatePlayerSpeed(skier, session)

	want := base + (base*cfg.Skier.CollisionSlowdownFloor-base)*cfg.Skier.SpeedLerpImpact
	assert.InDelta(t, want, skier.CurrentSpeed, 1e-9)
	assert.Less(t, skier.CurrentSpeed, base)
}

func TestPlayerSpeedRecoversAndSnaps(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	session := testSession(e)
	base := session.Difficulty.PlayerBaseSpeed()

	skier.CurrentSpeed = base * 0.7
	for i := 0; i < 400; i++ {
		updatePlayerSpeed(skier, session)
	}
	assert.Equal(t, base, skier.CurrentSpeed, "steady lerp converges and snaps exactly")

	// Inside the snap epsilon a single step lands on the target.
	skier.CurrentSpeed = base + cfg.Skier.SpeedSnapEpsilon/2
	updatePlayerSpeed(skier, session)
	assert.Equal(t, base, skier.CurrentSpeed)
}

func TestBlizzardSlowsSteadyStateSpeed(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	session := testSession(e)
	base := session.Difficulty.PlayerBaseSpeed()

	w := testWeather(e)
	w.Current = cfg.WeatherBlizzard
	w.Transition = nil

	skier.SpeedOffset = SpeedModifier(w)
	skier.CurrentSpeed = base
	for i := 0; i < 500; i++ {
		updatePlayerSpeed(skier, session)
	}

	assert.Less(t, skier.CurrentSpeed, base, "bad weather must cost speed")
	assert.Equal(t, base+cfg.Weather.Bands[cfg.WeatherBlizzard].SpeedModifier,
		skier.CurrentSpeed, "steady state settles on the offset target")
}

func TestMoveRatiosPerDirection(t *testing.T) {
	cases := []struct {
		state  cfg.SkierStateID
		dx, dy float64
	}{
		{cfg.SkierLeft, -2.0, 0.5},
		{cfg.SkierLeftDown, -1.0, 1.6},
		{cfg.SkierDown, 0, 2.0},
		{cfg.SkierRightDown, 1.0, 1.6},
		{cfg.SkierRight, 2.0, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.state.String(), func(t *testing.T) {
			e, player, _ := newTestWorld(1)
			skier := components.Skier.Get(player)
			pos := components.Position.Get(player)
			phys := components.Physics.Get(player)
			session := testSession(e)

			skier.State = tc.state
			skier.CurrentSpeed = 2.0
			startX, startY := pos.X, pos.Y

			moveSkier(player, skier, phys, pos, session, testWeather(e), true)
			assert.InDelta(t, startX+tc.dx, pos.X, 1e-9)
			assert.InDelta(t, startY+tc.dy, pos.Y, 1e-9)
		})
	}
}

func TestFlyingDoublesSpeedAlongDirection(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	pos := components.Position.Get(player)
	phys := components.Physics.Get(player)
	session := testSession(e)

	skier.State = cfg.SkierFlyingDown
	skier.CurrentSpeed = 2.0
	startY := pos.Y

	moveSkier(player, skier, phys, pos, session, testWeather(e), true)
	assert.InDelta(t, startY+4.0, pos.Y, 1e-9)
}

func TestCrashedSkierDoesNotMove(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	pos := components.Position.Get(player)
	phys := components.Physics.Get(player)
	session := testSession(e)

	skier.State = cfg.SkierCrashed
	skier.CurrentSpeed = 3.0
	startX, startY := pos.X, pos.Y

	moveSkier(player, skier, phys, pos, session, testWeather(e), true)
	assert.Equal(t, startX, pos.X)
	assert.Equal(t, startY, pos.Y)
	assert.Equal(t, 0.0, session.Stats.Distance)
}

func TestMovementClampedToSlopeEdges(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	pos := components.Position.Get(player)
	phys := components.Physics.Get(player)
	session := testSession(e)

	skier.State = cfg.SkierLeft
	skier.CurrentSpeed = 10.0
	pos.X = 5

	moveSkier(player, skier, phys, pos, session, testWeather(e), true)
	assert.Equal(t, 0.0, pos.X)

	skier.State = cfg.SkierRight
	pos.X = cfg.World.Width - 5
	moveSkier(player, skier, phys, pos, session, testWeather(e), true)
	assert.Equal(t, cfg.World.Width, pos.X)
}

func TestDistanceAccumulatesDownhillOnly(t *testing.T) {
	e, player, _ := newTestWorld(1)
	skier := components.Skier.Get(player)
	pos := components.Position.Get(player)
	phys := components.Physics.Get(player)
	session := testSession(e)

	skier.State = cfg.SkierDown
	skier.CurrentSpeed = 2.0
	moveSkier(player, skier, phys, pos, session, testWeather(e), true)
	moveSkier(player, skier, phys, pos, session, testWeather(e), true)
	assert.InDelta(t, 4.0, session.Stats.Distance, 1e-9)
}
