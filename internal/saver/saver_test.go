package saver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osvajac0/akemito/internal/tracking"
)

type fakeMover struct {
	warps []tracking.Point
}

func (f *fakeMover) Warp(target tracking.Point) {
	f.warps = append(f.warps, target)
}

func trackerWithCapture(t *testing.T, p tracking.Point) *tracking.Tracker {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := tracking.New(nil)
	tracker.Observe(p.X, p.Y, base)
	tracker.Observe(p.X, p.Y, base.Add(100*time.Millisecond))
	tracker.Observe(p.X+10, p.Y+10, base.Add(1300*time.Millisecond))
	return tracker
}

func TestRestoreWithoutCaptureIsNoOp(t *testing.T) {
	mover := &fakeMover{}
	s := New(tracking.New(nil), mover, nil)

	s.Restore()
	assert.Empty(t, mover.warps, "no warp may be issued before a capture")
}

func TestRestoreWarpsToSavedPosition(t *testing.T) {
	mover := &fakeMover{}
	s := New(trackerWithCapture(t, tracking.Point{X: 40, Y: 60}), mover, nil)

	s.Restore()
	assert.Equal(t, []tracking.Point{{X: 40, Y: 60}}, mover.warps)
}

func TestRestoreIsIdempotent(t *testing.T) {
	tracker := trackerWithCapture(t, tracking.Point{X: 40, Y: 60})
	mover := &fakeMover{}
	s := New(tracker, mover, nil)

	s.Restore()
	s.Restore()
	s.Restore()

	assert.Len(t, mover.warps, 3)
	for _, warp := range mover.warps {
		assert.Equal(t, tracking.Point{X: 40, Y: 60}, warp)
	}

	saved, ok := tracker.Saved()
	assert.True(t, ok)
	assert.Equal(t, tracking.Point{X: 40, Y: 60}, saved, "restore must not mutate the saved position")
}
