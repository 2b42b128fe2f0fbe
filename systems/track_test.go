package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/powderline/components"
	cfg "github.com/automoto/powderline/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackPointSpacing(t *testing.T) {
	track := &components.TrackData{}

	require.True(t, EmitTrackPoint(track, 400, 0))
	assert.False(t, EmitTrackPoint(track, 400, 14.9), "below the spacing threshold")
	assert.True(t, EmitTrackPoint(track, 400, 15))
	assert.Len(t, track.Points, 2)

	// Diagonal distance counts, not axis distance.
	assert.False(t, EmitTrackPoint(track, 410, 25))
	assert.True(t, EmitTrackPoint(track, 412, 26))
}

func TestTrackBufferEvictsOldestAtCapacity(t *testing.T) {
	track := &components.TrackData{}
	for i := 0; i <= cfg.Track.MaxPoints; i++ {
		require.True(t, EmitTrackPoint(track, 400, float64(i)*20))
	}

	assert.Len(t, track.Points, cfg.Track.MaxPoints)
	assert.Equal(t, 20.0, track.Points[0].Y, "point zero was evicted")
	assert.Equal(t, float64(cfg.Track.MaxPoints)*20, track.Points[len(track.Points)-1].Y)
}

func TestTrackFadeAndPrune(t *testing.T) {
	e, player, _ := newTestWorld(1)
	track := components.Track.Get(player)
	EmitTrackPoint(track, 400, 0)
	EmitTrackPoint(track, 400, 20)
	track.Points[0].Alpha = cfg.Track.AlphaDecay // one decay away from zero

	UpdateTracks(e)
	require.Len(t, track.Points, 1, "fully faded points are pruned")
	assert.InDelta(t, cfg.Track.StartAlpha-cfg.Track.AlphaDecay, track.Points[0].Alpha, 1e-9)

	ticks := int(cfg.Track.StartAlpha / cfg.Track.AlphaDecay)
	for i := 0; i < ticks; i++ {
		UpdateTracks(e)
	}
	assert.Empty(t, track.Points, "every point fades out eventually")
}

func TestTrackSegmentsArePairedRails(t *testing.T) {
	track := &components.TrackData{}
	EmitTrackPoint(track, 400, 0)
	EmitTrackPoint(track, 400, 20)

	segments := TrackSegments(track)
	require.Len(t, segments, 2)

	// A straight downhill span offsets the rails horizontally.
	assert.InDelta(t, 400-cfg.Track.RailOffset, segments[0].X1, 1e-9)
	assert.InDelta(t, 400+cfg.Track.RailOffset, segments[1].X1, 1e-9)
	assert.Equal(t, segments[0].Y1, segments[1].Y1)
	assert.Equal(t, cfg.Track.StartAlpha, segments[0].Alpha)
}

func TestTrackSegmentsSkipLongSpans(t *testing.T) {
	track := &components.TrackData{}
	EmitTrackPoint(track, 400, 0)
	EmitTrackPoint(track, 400, 20)
	EmitTrackPoint(track, 400, 200) // teleport-sized gap
	EmitTrackPoint(track, 400, 220)

	segments := TrackSegments(track)
	assert.Len(t, segments, 4, "the long middle span draws nothing")
	for i, seg := range segments {
		span := seg.Y2 - seg.Y1
		assert.Less(t, span, cfg.Track.MaxSegmentSpan, fmt.Sprintf("segment %d", i))
	}
}

func TestTrackSegmentsNeedTwoPoints(t *testing.T) {
	track := &components.TrackData{}
	assert.Nil(t, TrackSegments(track))
	EmitTrackPoint(track, 400, 0)
	assert.Nil(t, TrackSegments(track))
}
