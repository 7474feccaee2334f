package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordOrderIndependent(t *testing.T) {
	chord := New("alt", "z")
	assert.False(t, chord.Press("alt"))
	assert.True(t, chord.Press("z"))

	reversed := New("alt", "z")
	assert.False(t, reversed.Press("z"))
	assert.True(t, reversed.Press("alt"))
}

func TestReleaseBreaksChord(t *testing.T) {
	chord := New("alt", "z")
	assert.False(t, chord.Press("alt"))
	chord.Release("alt")
	assert.False(t, chord.Press("z"), "releasing a chord key before the final press must not fire")
}

func TestAutorepeatRefires(t *testing.T) {
	chord := New("alt", "z")
	chord.Press("alt")
	assert.True(t, chord.Press("z"))
	assert.True(t, chord.Press("z"), "held-key autorepeat re-fires")
}

func TestSpuriousReleaseIgnored(t *testing.T) {
	chord := New("alt", "z")
	chord.Release("z")
	chord.Press("alt")
	assert.True(t, chord.Press("z"))
}

func TestUnrelatedKeysDoNotFire(t *testing.T) {
	chord := New("alt", "z")
	chord.Press("alt")
	assert.False(t, chord.Press("x"))
	assert.False(t, chord.Press("ctrl"))
	assert.True(t, chord.Press("z"), "extra held keys do not block the chord")
}

func TestModifierVariantAliases(t *testing.T) {
	chord := New("alt", "z")
	chord.Press("lalt")
	assert.True(t, chord.Press("z"))
	chord.Release("ralt")
	assert.False(t, chord.Press("z"))
}

func TestCaseInsensitiveMatching(t *testing.T) {
	chord := New("Alt", "Z")
	chord.Press("ALT")
	assert.True(t, chord.Press("z"))
}
