package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/automoto/powderline/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeather advances the weather blend, the event scheduler and the
// particle pool. It runs on its own tick and never touches skier state;
// skiers only read the derived values below.
func UpdateWeather(ecs *ecs.ECS) {
	weatherEntry, ok := components.Weather.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	w := components.Weather.Get(weatherEntry)
	session := components.Session.Get(sessionEntry)

	advanceTransition(w, session.Rand)
	runScheduler(w, session)
	updateParticles(w, session.Rand)
}

func advanceTransition(w *components.WeatherData, rng *rand.Rand) {
	if w.Transition == nil {
		return
	}
	progress, done := w.Transition.Update(1)
	w.Progress = float64(progress)
	if !done {
		return
	}
	w.Current = w.Target
	w.Transition = nil
	w.Progress = 0
	w.Sudden = false
	w.Timer = 0
	if w.Current == cfg.WeatherClear {
		w.Duration = rollClearDuration(rng)
	}
}

func runScheduler(w *components.WeatherData, session *components.SessionData) {
	w.Timer++
	if w.Transition != nil || w.Timer <= w.Duration {
		return
	}

	if w.Current == cfg.WeatherClear {
		// Minimum clear time has elapsed; each further check is a small
		// chance to kick off a new event.
		if session.Rand.Float64() < cfg.Weather.EventChance {
			startWeatherEvent(w, session)
		}
		return
	}

	if w.Target != cfg.WeatherClear {
		beginTransition(w, cfg.WeatherClear, false)
	}
}

func startWeatherEvent(w *components.WeatherData, session *components.SessionData) {
	rng := session.Rand
	difficulty := session.Difficulty.BaseDifficultyLevel()

	target := chooseWeatherEvent(rng, difficulty)
	sudden := rng.Float64() < cfg.Weather.SuddenChanceBase+float64(difficulty)/100*cfg.Weather.SuddenChanceScale

	span := cfg.Weather.EventDurationCeil - difficulty*10
	if span < cfg.Weather.EventDurationMin {
		span = cfg.Weather.EventDurationMin
	}
	w.Duration = cfg.Weather.EventDurationBase + rng.Intn(span)
	w.Timer = 0
	w.WindDirection = 1
	if rng.Float64() < 0.5 {
		w.WindDirection = -1
	}
	w.EventCount++
	session.Stats.WeatherEvents++

	beginTransition(w, target, sudden)
}

// chooseWeatherEvent picks the event state for the given difficulty tier.
func chooseWeatherEvent(rng *rand.Rand, difficulty int) cfg.WeatherStateID {
	roll := rng.Float64()
	switch {
	case difficulty >= 85:
		if roll < 0.7 {
			return cfg.WeatherBlizzard
		}
		return cfg.WeatherHeavySnow
	case difficulty >= 70:
		if roll < 0.3 {
			return cfg.WeatherBlizzard
		}
		if roll < 0.9 {
			return cfg.WeatherHeavySnow
		}
		return cfg.WeatherLightSnow
	case difficulty >= 50:
		if roll < 0.6 {
			return cfg.WeatherHeavySnow
		}
		return cfg.WeatherLightSnow
	default:
		return cfg.WeatherLightSnow
	}
}

func beginTransition(w *components.WeatherData, target cfg.WeatherStateID, sudden bool) {
	if target == w.Current && w.Transition == nil {
		return
	}
	w.Target = target
	w.Sudden = sudden
	if sudden {
		w.Progress = cfg.Weather.SuddenStart
		ticks := float32((1 - cfg.Weather.SuddenStart) / cfg.Weather.SuddenSpeed)
		w.Transition = gween.New(float32(cfg.Weather.SuddenStart), 1, ticks, ease.Linear)
	} else {
		w.Progress = 0
		w.Transition = gween.New(0, 1, float32(1/cfg.Weather.TransitionSpeed), ease.Linear)
	}
}

func rollClearDuration(rng *rand.Rand) int {
	duration := cfg.Weather.ClearDurationMin
	if span := cfg.Weather.ClearDurationMax - cfg.Weather.ClearDurationMin; span > 0 {
		duration += rng.Intn(span)
	}
	return duration
}

func updateParticles(w *components.WeatherData, rng *rand.Rand) {
	target := ActiveParticleTarget(w)
	windX := WindX(w)

	for i := range w.Particles {
		p := &w.Particles[i]
		wasActive := p.Active
		p.Active = i < target
		if !p.Active {
			continue
		}
		if !wasActive {
			respawnFlake(p, rng)
			continue
		}

		p.Y += p.FallSpeed
		p.X += windX * p.DriftSpeed
		p.Rotation += p.RotationSpeed

		margin := cfg.Weather.SpawnMargin
		if p.Y > cfg.World.Height+margin || p.X < -margin || p.X > cfg.World.Width+margin {
			respawnFlake(p, rng)
		}
	}
}

// respawnFlake resets a pool slot to a random position above the visible
// area with fresh kinematics. Slots are reused, never reallocated.
func respawnFlake(p *components.Snowflake, rng *rand.Rand) {
	p.X = rng.Float64() * cfg.World.Width
	p.Y = -rng.Float64() * cfg.Weather.SpawnMargin
	p.Size = cfg.Weather.SizeMin + rng.Float64()*(cfg.Weather.SizeMax-cfg.Weather.SizeMin)
	p.FallSpeed = cfg.Weather.FallSpeedMin + rng.Float64()*(cfg.Weather.FallSpeedMax-cfg.Weather.FallSpeedMin)
	p.DriftSpeed = (rng.Float64()*2 - 1) * cfg.Weather.DriftSpeedMax
	p.Rotation = 0
	p.RotationSpeed = (rng.Float64()*2 - 1) * cfg.Weather.RotationRateMax
}

// blendBand interpolates one band value between the current and target
// states by the transition progress.
func blendBand(w *components.WeatherData, f func(cfg.WeatherBand) float64) float64 {
	cur := f(cfg.Weather.Bands[w.Current])
	if w.Transition == nil {
		return cur
	}
	return gamemath.Lerp(cur, f(cfg.Weather.Bands[w.Target]), w.Progress)
}

// TurnFailChance is the probability that a player turn request slips.
func TurnFailChance(w *components.WeatherData) float64 {
	return blendBand(w, func(b cfg.WeatherBand) float64 { return b.TurnFailChance })
}

// ControlJitter is the horizontal jitter magnitude applied to the player.
func ControlJitter(w *components.WeatherData) float64 {
	return blendBand(w, func(b cfg.WeatherBand) float64 { return b.ControlJitter })
}

// SpeedModifier is the additive speed offset the player reads each tick.
func SpeedModifier(w *components.WeatherData) float64 {
	return blendBand(w, func(b cfg.WeatherBand) float64 { return b.SpeedModifier })
}

// CameraShake is the blended shake magnitude for the renderer.
func CameraShake(w *components.WeatherData) float64 {
	return blendBand(w, func(b cfg.WeatherBand) float64 { return b.CameraShake })
}

// WindX is the signed horizontal wind velocity.
func WindX(w *components.WeatherData) float64 {
	return w.WindDirection * blendBand(w, func(b cfg.WeatherBand) float64 { return b.WindIntensity })
}

// OverlayOpacity is the fog overlay value. Its onset is delayed: the
// overlay only starts rising once the transition is past the onset
// threshold, with the remaining span rescaled to a fresh 0-1 ramp, so fog
// visibly lags behind the particle ramp-up.
func OverlayOpacity(w *components.WeatherData) float64 {
	cur := cfg.Weather.Bands[w.Current].OverlayOpacity
	if w.Transition == nil {
		return cur
	}
	onset := cfg.Weather.OverlayOnset
	if w.Progress <= onset {
		return cur
	}
	ramp := (w.Progress - onset) / (1 - onset)
	return gamemath.Lerp(cur, cfg.Weather.Bands[w.Target].OverlayOpacity, ramp)
}

// ActiveParticleTarget is the number of leading pool slots that should be
// active this tick. A settled state holds its full band; a transition ramps
// from the outgoing settled count to the incoming one, so the count never
// jumps when a transition starts or finishes.
func ActiveParticleTarget(w *components.WeatherData) int {
	cur := cfg.Weather.Bands[w.Current]
	count := cur.ParticleBase + cur.ParticleSpan
	if w.Transition != nil {
		tgt := cfg.Weather.Bands[w.Target]
		to := tgt.ParticleBase + tgt.ParticleSpan
		count += int(math.Round(float64(to-count) * w.Progress))
	}
	return gamemath.ClampInt(count, 0, cfg.Weather.MaxParticles)
}
