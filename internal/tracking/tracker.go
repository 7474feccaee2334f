package tracking

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Tracker consumes the stream of pointer positions and remembers where the
// cursor was resting before it last took off again.
//
// Capture happens on the move-after-still transition rather than the moment
// the threshold elapses: the position is only worth saving once the user has
// demonstrably finished pointing at it. The locked flag keeps a single still
// period from being captured more than once when movement resumes as a burst
// of micro-moves.
type Tracker struct {
	mu     sync.Mutex
	logger *zap.Logger

	last   Point
	seeded bool

	stillSince    time.Time
	stillPosition Point
	locked        bool

	paused bool

	saved    Point
	hasSaved bool
}

// New builds a Tracker with nothing observed and nothing saved.
func New(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{logger: logger}
}

// Observe consumes one pointer motion event. The caller supplies the
// timestamp so delivery jitter does not distort stillness timing. Events must
// be delivered in arrival order; concurrent callers are serialized internally.
func (t *Tracker) Observe(x, y int, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.paused {
		return
	}

	current := Point{X: x, Y: y}

	// First sample only seeds history.
	if !t.seeded {
		t.last = current
		t.seeded = true
		return
	}

	if current != t.last {
		if !t.stillSince.IsZero() && !t.locked {
			if elapsed := now.Sub(t.stillSince); elapsed >= StillThreshold {
				t.saved = t.stillPosition
				t.hasSaved = true
				t.locked = true
				t.logger.Info("position saved",
					zap.Int("x", t.saved.X),
					zap.Int("y", t.saved.Y),
					zap.Duration("still_for", elapsed))
			}
		}
		t.stillSince = time.Time{}
		t.locked = false
	} else if t.stillSince.IsZero() {
		// Only the transition into stillness starts the clock. Repeated
		// identical samples while already still must not push it forward.
		t.stillSince = now
		t.stillPosition = current
		t.logger.Debug("stillness began",
			zap.Int("x", current.X),
			zap.Int("y", current.Y))
	}

	t.last = current
}

// Saved returns the last captured position, if any. Reading never clears it.
func (t *Tracker) Saved() (Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saved, t.hasSaved
}

// Pause stops motion processing. Any stillness period in progress is
// discarded so a still-then-move cycle cannot straddle a pause; the saved
// position is retained.
func (t *Tracker) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		return
	}
	t.paused = true
	t.seeded = false
	t.stillSince = time.Time{}
	t.locked = false
	t.logger.Info("tracking paused")
}

// Resume restarts motion processing. The next motion event re-seeds position
// history from scratch.
func (t *Tracker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.paused {
		return
	}
	t.paused = false
	t.logger.Info("tracking resumed")
}

// Paused reports whether motion processing is currently suspended.
func (t *Tracker) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}
