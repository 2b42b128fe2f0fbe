package gamemath

// Difficulty provides the session difficulty level and the player's base
// downhill speed. The weather scheduler and skier speed smoothing read it
// every tick; implementations may vary over time.
type Difficulty interface {
	BaseDifficultyLevel() int // [0,100]
	PlayerBaseSpeed() float64
}

// StaticDifficulty is a fixed difficulty provider.
type StaticDifficulty struct {
	Level int
	Speed float64
}

func (d StaticDifficulty) BaseDifficultyLevel() int {
	return ClampInt(d.Level, 0, 100)
}

func (d StaticDifficulty) PlayerBaseSpeed() float64 {
	return d.Speed
}
