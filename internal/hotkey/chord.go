// Package hotkey recognises a key combination over a raw press/release
// stream delivered by a global keyboard hook.
package hotkey

import (
	"strings"
	"sync"
)

// RestoreKeys is the combination that triggers cursor restoration.
var RestoreKeys = []string{"alt", "z"}

// Chord tracks which keys are currently held and recognises one combination.
type Chord struct {
	mu   sync.Mutex
	keys map[string]struct{}
	down map[string]struct{}
}

// New builds a chord recogniser for the given key names. Names are matched
// case-insensitively against the identifiers reported by the key stream.
func New(keys ...string) *Chord {
	chord := &Chord{
		keys: make(map[string]struct{}, len(keys)),
		down: make(map[string]struct{}),
	}
	for _, key := range keys {
		chord.keys[normalize(key)] = struct{}{}
	}
	return chord
}

// Press records a key going down and reports whether the chord is now
// complete. Autorepeat deliveries while the chord is held report true again;
// that mirrors raw input delivery and is deliberate.
func (c *Chord) Press(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.down[normalize(key)] = struct{}{}
	for want := range c.keys {
		if _, held := c.down[want]; !held {
			return false
		}
	}
	return true
}

// Release records a key coming back up. Releasing a key that was never seen
// going down is ignored; some platforms deliver spurious key-up events.
func (c *Chord) Release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.down, normalize(key))
}

// The hook layer reports left/right modifier variants under distinct names;
// the chord cares about the logical key only.
var aliases = map[string]string{
	"lalt":   "alt",
	"ralt":   "alt",
	"lctrl":  "ctrl",
	"rctrl":  "ctrl",
	"lshift": "shift",
	"rshift": "shift",
	"lcmd":   "cmd",
	"rcmd":   "cmd",
}

func normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if logical, ok := aliases[key]; ok {
		return logical
	}
	return key
}
