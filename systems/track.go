package systems

import (
	"math"

	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EmitTrackPoint appends the position to the track unless it is closer than
// the decimation threshold to the last stored point. The oldest point is
// evicted when the buffer is at capacity. Returns whether a point was added.
func EmitTrackPoint(track *components.TrackData, x, y float64) bool {
	if n := len(track.Points); n > 0 {
		last := track.Points[n-1]
		if math.Hypot(x-last.X, y-last.Y) < cfg.Track.MinPointDistance {
			return false
		}
	}
	if len(track.Points) >= cfg.Track.MaxPoints {
		copy(track.Points, track.Points[1:])
		track.Points = track.Points[:len(track.Points)-1]
	}
	track.Points = append(track.Points, components.TrackPoint{X: x, Y: y, Alpha: cfg.Track.StartAlpha})
	return true
}

// UpdateTracks fades every stored point and prunes the ones that reached
// zero. Eviction keeps the slice in insertion order so the oldest points
// always fade out first.
func UpdateTracks(ecs *ecs.ECS) {
	components.Track.Each(ecs.World, func(e *donburi.Entry) {
		track := components.Track.Get(e)
		kept := track.Points[:0]
		for _, p := range track.Points {
			p.Alpha -= cfg.Track.AlphaDecay
			if p.Alpha <= 0 {
				continue
			}
			kept = append(kept, p)
		}
		track.Points = kept
	})
}

// TrackSegment is one renderable rail span with the faded alpha of its
// older endpoint.
type TrackSegment struct {
	X1, Y1 float64
	X2, Y2 float64
	Alpha  float64
}

// TrackSegments returns the paired parallel rail segments for the stored
// trail. Spans longer than the configured limit are skipped so a reset or
// teleport never draws a line across the slope.
func TrackSegments(track *components.TrackData) []TrackSegment {
	if len(track.Points) < 2 {
		return nil
	}
	segments := make([]TrackSegment, 0, 2*(len(track.Points)-1))
	for i := 1; i < len(track.Points); i++ {
		a, b := track.Points[i-1], track.Points[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 || length >= cfg.Track.MaxSegmentSpan {
			continue
		}
		// Unit perpendicular, offset both ways for the two ski rails.
		px, py := -dy/length*cfg.Track.RailOffset, dx/length*cfg.Track.RailOffset
		segments = append(segments,
			TrackSegment{X1: a.X + px, Y1: a.Y + py, X2: b.X + px, Y2: b.Y + py, Alpha: a.Alpha},
			TrackSegment{X1: a.X - px, Y1: a.Y - py, X2: b.X - px, Y2: b.Y - py, Alpha: a.Alpha},
		)
	}
	return segments
}
