package factory

import (
	"math/rand"

	"github.com/automoto/powderline/archetypes"
	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWeather spawns the singleton weather system, clear and settled.
// The particle pool is allocated once here; slots are reset in place for
// the rest of the session, never reallocated.
func CreateWeather(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	weather := archetypes.Weather.Spawn(ecs)

	particles := make([]components.Snowflake, cfg.Weather.MaxParticles)
	for i := range particles {
		p := &particles[i]
		p.X = rng.Float64() * cfg.World.Width
		p.Y = rng.Float64() * cfg.World.Height
		p.Size = cfg.Weather.SizeMin + rng.Float64()*(cfg.Weather.SizeMax-cfg.Weather.SizeMin)
		p.FallSpeed = cfg.Weather.FallSpeedMin + rng.Float64()*(cfg.Weather.FallSpeedMax-cfg.Weather.FallSpeedMin)
		p.DriftSpeed = (rng.Float64()*2 - 1) * cfg.Weather.DriftSpeedMax
		p.RotationSpeed = (rng.Float64()*2 - 1) * cfg.Weather.RotationRateMax
	}

	duration := cfg.Weather.ClearDurationMin
	if span := cfg.Weather.ClearDurationMax - cfg.Weather.ClearDurationMin; span > 0 {
		duration += rng.Intn(span)
	}

	components.Weather.Set(weather, &components.WeatherData{
		Current:       cfg.WeatherClear,
		Target:        cfg.WeatherClear,
		Duration:      duration,
		WindDirection: 1,
		Particles:     particles,
	})
	return weather
}
