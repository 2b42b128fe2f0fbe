package components

import "github.com/yohamta/donburi"

// PositionData is the entity's ground-plane world coordinate. X runs across
// the slope, Y runs downhill. The hitbox is derived from this plus the
// current height, never stored.
type PositionData struct {
	X float64
	Y float64
}

var Position = donburi.NewComponentType[PositionData]()
