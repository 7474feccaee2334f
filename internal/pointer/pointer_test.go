package pointer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/osvajac0/akemito/internal/tracking"
)

func TestClamp(t *testing.T) {
	primary := image.Rect(0, 0, 1920, 1080)
	secondary := image.Rect(1920, 0, 3840, 1080)

	cases := []struct {
		name     string
		target   tracking.Point
		displays []image.Rectangle
		want     tracking.Point
	}{
		{
			name:     "inside primary",
			target:   tracking.Point{X: 100, Y: 200},
			displays: []image.Rectangle{primary},
			want:     tracking.Point{X: 100, Y: 200},
		},
		{
			name:     "inside secondary",
			target:   tracking.Point{X: 2500, Y: 500},
			displays: []image.Rectangle{primary, secondary},
			want:     tracking.Point{X: 2500, Y: 500},
		},
		{
			name:     "beyond right edge",
			target:   tracking.Point{X: 2500, Y: 500},
			displays: []image.Rectangle{primary},
			want:     tracking.Point{X: 1919, Y: 500},
		},
		{
			name:     "negative coordinates",
			target:   tracking.Point{X: -50, Y: -10},
			displays: []image.Rectangle{primary},
			want:     tracking.Point{X: 0, Y: 0},
		},
		{
			name:     "no display information",
			target:   tracking.Point{X: 9999, Y: 9999},
			displays: nil,
			want:     tracking.Point{X: 9999, Y: 9999},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clamp(tc.target, tc.displays))
		})
	}
}

func TestWarpMovesToClampedTarget(t *testing.T) {
	var gotX, gotY int
	mover := &Mover{
		logger:   zap.NewNop(),
		move:     func(x, y int) { gotX, gotY = x, y },
		displays: func() []image.Rectangle { return []image.Rectangle{image.Rect(0, 0, 800, 600)} },
	}

	mover.Warp(tracking.Point{X: 1000, Y: 300})
	assert.Equal(t, 799, gotX)
	assert.Equal(t, 300, gotY)

	mover.Warp(tracking.Point{X: 400, Y: 300})
	assert.Equal(t, 400, gotX)
	assert.Equal(t, 300, gotY)
}
