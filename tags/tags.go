package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	AISkier  = donburi.NewTag().SetName("AISkier")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Weather  = donburi.NewTag().SetName("Weather")
)

// Resolv tags for collision space objects
const (
	ResolvSkier    = "skier"
	ResolvObstacle = "obstacle"
)
