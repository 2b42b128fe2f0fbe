package components

import "github.com/yohamta/donburi"

// TrackPoint is one stored trail position with its remaining opacity.
type TrackPoint struct {
	X     float64
	Y     float64
	Alpha float64
}

// TrackData is the trailing point history left behind a grounded skier.
// Capacity-bounded FIFO with age-based alpha decay; see systems.UpdateTracks.
type TrackData struct {
	Points []TrackPoint
}

var Track = donburi.NewComponentType[TrackData]()
