package systems

import (
	"github.com/automoto/powderline/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the simulation tick counter. Runs first so every
// other system in the same update sees the same tick value.
func UpdateSession(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	session.Tick++
}
