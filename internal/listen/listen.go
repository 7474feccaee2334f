// Package listen registers the global input hooks and routes their events
// into the tracker and the chord recogniser.
package listen

import (
	"context"
	"time"

	hook "github.com/robotn/gohook"
	"go.uber.org/zap"

	"github.com/osvajac0/akemito/internal/hotkey"
	"github.com/osvajac0/akemito/internal/saver"
	"github.com/osvajac0/akemito/internal/tracking"
)

// Run registers the mouse and keyboard hooks and blocks until ctx is
// cancelled or the hook loop ends on its own.
//
// gohook delivers events on its own goroutine, so everything the handlers
// touch is mutex-guarded inside the tracker and the chord.
func Run(ctx context.Context, tracker *tracking.Tracker, chord *hotkey.Chord, restorer *saver.Saver, logger *zap.Logger) {
	onMove := func(e hook.Event) {
		tracker.Observe(int(e.X), int(e.Y), time.Now())
	}
	hook.Register(hook.MouseMove, []string{}, onMove)
	// Dragging moves the pointer too.
	hook.Register(hook.MouseDrag, []string{}, onMove)

	onDown := func(e hook.Event) {
		if chord.Press(hook.RawcodetoKeychar(e.Rawcode)) {
			restorer.Restore()
		}
	}
	hook.Register(hook.KeyDown, []string{}, onDown)
	// Autorepeat arrives as KeyHold; each delivery re-tests the chord.
	hook.Register(hook.KeyHold, []string{}, onDown)
	hook.Register(hook.KeyUp, []string{}, func(e hook.Event) {
		chord.Release(hook.RawcodetoKeychar(e.Rawcode))
	})

	events := hook.Start()
	logger.Info("input hooks started")

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Blocks until hook.End() is called.
		<-hook.Process(events)
	}()

	select {
	case <-ctx.Done():
		logger.Info("stopping input hooks")
		hook.End()
		<-done
	case <-done:
		logger.Info("input hook loop ended")
	}
}
