package components

import (
	cfg "github.com/automoto/powderline/config"
	"github.com/yohamta/donburi"
)

// KindData tags a collidable with its entity kind. Kind-specific collision
// behavior is looked up from config tables rather than dispatched virtually.
type KindData struct {
	Kind cfg.EntityKind
}

var Kind = donburi.NewComponentType[KindData]()
