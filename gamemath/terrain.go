package gamemath

import "math"

// Terrain provides the slope heightmap. Implementations must be pure: the
// same position always yields the same height for the life of a session.
type Terrain interface {
	HeightAt(x, y float64) float64
	SlopeAt(x, y float64) float64 // surface angle in radians at the position
}

// SlopeField is a procedural heightmap built from layered sine waves,
// giving the slope gentle moguls without any stored data.
type SlopeField struct {
	Amplitude float64
	FreqX     float64
	FreqY     float64
}

// NewSlopeField returns a slope with default mogul tuning.
func NewSlopeField() *SlopeField {
	return &SlopeField{
		Amplitude: 2.0,
		FreqX:     0.013,
		FreqY:     0.021,
	}
}

func (s *SlopeField) HeightAt(x, y float64) float64 {
	return s.Amplitude * (math.Sin(x*s.FreqX) +
		0.5*math.Sin(y*s.FreqY) +
		0.25*math.Sin((x+y)*s.FreqX*2.7))
}

func (s *SlopeField) SlopeAt(x, y float64) float64 {
	const step = 1.0
	dy := s.HeightAt(x, y+step) - s.HeightAt(x, y-step)
	return math.Atan2(dy, 2*step)
}

// FlatTerrain is a zero-height terrain, useful for tests.
type FlatTerrain struct{}

func (FlatTerrain) HeightAt(x, y float64) float64 { return 0 }
func (FlatTerrain) SlopeAt(x, y float64) float64  { return 0 }
