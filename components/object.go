package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's resolv object. The object rect is the
// entity's current hitbox: UpdateObjects re-derives it every tick from the
// ground position and the current height.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
