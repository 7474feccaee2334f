// Package pointer wraps the host windowing system's cursor primitives.
package pointer

import (
	"image"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"

	"github.com/osvajac0/akemito/internal/tracking"
)

// Mover warps the system cursor to absolute screen coordinates.
type Mover struct {
	logger   *zap.Logger
	move     func(x, y int)
	displays func() []image.Rectangle
}

// NewMover returns a Mover backed by the host windowing system.
func NewMover(logger *zap.Logger) *Mover {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mover{
		logger:   logger,
		move:     func(x, y int) { robotgo.Move(x, y) },
		displays: activeDisplays,
	}
}

// Warp relocates the cursor to target, clamped to the currently attached
// displays. A position remembered from a screen that has since been
// disconnected lands on the nearest edge of the primary display rather than
// off-screen.
func (m *Mover) Warp(target tracking.Point) {
	clamped := clamp(target, m.displays())
	if clamped != target {
		m.logger.Warn("restore target is off-screen, clamping",
			zap.Int("x", target.X), zap.Int("y", target.Y),
			zap.Int("clamped_x", clamped.X), zap.Int("clamped_y", clamped.Y))
	}
	m.move(clamped.X, clamped.Y)
}

// Location reports the current cursor position.
func Location() tracking.Point {
	x, y := robotgo.Location()
	return tracking.Point{X: x, Y: y}
}

// DisplayCount reports how many displays are attached. Zero means there is no
// usable graphical session.
func DisplayCount() int {
	return screenshot.NumActiveDisplays()
}

func activeDisplays() []image.Rectangle {
	count := screenshot.NumActiveDisplays()
	bounds := make([]image.Rectangle, 0, count)
	for i := 0; i < count; i++ {
		bounds = append(bounds, screenshot.GetDisplayBounds(i))
	}
	return bounds
}

// clamp returns target unchanged when it lies on any display, otherwise the
// target pinned inside the first display. With no display information the
// target passes through untouched.
func clamp(target tracking.Point, displays []image.Rectangle) tracking.Point {
	if len(displays) == 0 {
		return target
	}
	pt := image.Pt(target.X, target.Y)
	for _, display := range displays {
		if pt.In(display) {
			return target
		}
	}
	primary := displays[0]
	return tracking.Point{
		X: clampInt(target.X, primary.Min.X, primary.Max.X-1),
		Y: clampInt(target.Y, primary.Min.Y, primary.Max.Y-1),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
