package config

// SkierStateID identifies a discrete skier state. The first five are the
// turnable direction states in left-to-right order; each has an airborne
// mirror, and Crashed is terminal until recovery.
type SkierStateID int

const (
	SkierLeft SkierStateID = iota
	SkierLeftDown
	SkierDown
	SkierRightDown
	SkierRight

	SkierFlyingLeft
	SkierFlyingLeftDown
	SkierFlyingDown
	SkierFlyingRightDown
	SkierFlyingRight

	SkierCrashed
)

// TurnOrder is the state ordering used by turn requests. turnLeft moves one
// step toward index 0, turnRight one step toward the end.
var TurnOrder = [...]SkierStateID{SkierLeft, SkierLeftDown, SkierDown, SkierRightDown, SkierRight}

func (s SkierStateID) IsFlying() bool {
	return s >= SkierFlyingLeft && s <= SkierFlyingRight
}

func (s SkierStateID) IsCrashed() bool {
	return s == SkierCrashed
}

// FlyingVariant maps a direction state to its airborne mirror. Flying and
// crashed states map to themselves.
func (s SkierStateID) FlyingVariant() SkierStateID {
	if s.IsFlying() || s.IsCrashed() {
		return s
	}
	return s + SkierFlyingLeft
}

// DirectionVariant maps an airborne state back to its grounded mirror.
func (s SkierStateID) DirectionVariant() SkierStateID {
	if s.IsFlying() {
		return s - SkierFlyingLeft
	}
	return s
}

func (s SkierStateID) String() string {
	switch s {
	case SkierLeft:
		return "left"
	case SkierLeftDown:
		return "left_down"
	case SkierDown:
		return "down"
	case SkierRightDown:
		return "right_down"
	case SkierRight:
		return "right"
	case SkierFlyingLeft:
		return "flying_left"
	case SkierFlyingLeftDown:
		return "flying_left_down"
	case SkierFlyingDown:
		return "flying_down"
	case SkierFlyingRightDown:
		return "flying_right_down"
	case SkierFlyingRight:
		return "flying_right"
	case SkierCrashed:
		return "crashed"
	}
	return "unknown"
}

// EntityKind tags every collidable on the slope. Static obstacle kinds never
// mutate state; they only expose a hitbox.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindAISkier
	KindTree
	KindRock
	KindSnowman
	KindSnowdrift
)

func (k EntityKind) IsStatic() bool {
	return k != KindPlayer && k != KindAISkier
}

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAISkier:
		return "ai_skier"
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	case KindSnowman:
		return "snowman"
	case KindSnowdrift:
		return "snowdrift"
	}
	return "unknown"
}

// ParseEntityKind maps the kind strings used in course files (Tiled object
// properties) to EntityKind values.
func ParseEntityKind(s string) (EntityKind, bool) {
	switch s {
	case "tree":
		return KindTree, true
	case "rock":
		return KindRock, true
	case "snowman":
		return KindSnowman, true
	case "snowdrift":
		return KindSnowdrift, true
	case "ai_skier":
		return KindAISkier, true
	case "player":
		return KindPlayer, true
	}
	return 0, false
}

// WeatherStateID identifies a discrete weather state.
type WeatherStateID int

const (
	WeatherClear WeatherStateID = iota
	WeatherLightSnow
	WeatherHeavySnow
	WeatherBlizzard
)

func (w WeatherStateID) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherLightSnow:
		return "light_snow"
	case WeatherHeavySnow:
		return "heavy_snow"
	case WeatherBlizzard:
		return "blizzard"
	}
	return "unknown"
}
