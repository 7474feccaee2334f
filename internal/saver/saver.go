// Package saver connects the stillness tracker to the warp primitive.
package saver

import (
	"go.uber.org/zap"

	"github.com/osvajac0/akemito/internal/tracking"
)

// Mover warps the system cursor; satisfied by pointer.Mover.
type Mover interface {
	Warp(target tracking.Point)
}

// Saver performs the restore action against the last captured position.
type Saver struct {
	tracker *tracking.Tracker
	mover   Mover
	logger  *zap.Logger
}

// New wires a Saver to its tracker and mover.
func New(tracker *tracking.Tracker, mover Mover, logger *zap.Logger) *Saver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Saver{tracker: tracker, mover: mover, logger: logger}
}

// Restore warps the cursor back to the last captured position. With nothing
// captured yet it only logs: that is the expected state right after startup,
// not a failure. Restoring never mutates the saved position, so repeated
// invocations all land on the same spot.
func (s *Saver) Restore() {
	position, ok := s.tracker.Saved()
	if !ok {
		s.logger.Info("no position saved yet")
		return
	}
	s.logger.Info("restoring cursor",
		zap.Int("x", position.X),
		zap.Int("y", position.Y))
	s.mover.Warp(position)
}
