package internal

import (
	"time"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// KeyRepeat tracks a held navigation key and decides when a repeat fires.
// Hosts whose input layer does not auto-repeat (SDL game controllers,
// some terminals) embed one and call Update every frame.
type KeyRepeat struct {
	held           constants.Key
	mods           constants.Modifier
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool

	now func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with the default timing.
func NewKeyRepeat() KeyRepeat {
	return NewKeyRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval, time.Now)
}

// NewKeyRepeatWithTiming creates a KeyRepeat with custom timing and clock.
func NewKeyRepeatWithTiming(delay, interval time.Duration, now func() time.Time) KeyRepeat {
	return KeyRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            now,
		lastRepeatTime: now(),
	}
}

// Press records a key going down. Non-directional keys are ignored and
// false is returned.
func (r *KeyRepeat) Press(key constants.Key, mods constants.Modifier) bool {
	if !key.IsDirectional() {
		return false
	}
	r.held = key
	r.mods = mods
	r.hasRepeated = false
	r.lastRepeatTime = r.now()
	return true
}

// Release records a key going up.
func (r *KeyRepeat) Release(key constants.Key) {
	if r.held == key {
		r.Reset()
	}
}

// IsHeld returns true if a navigation key is currently held.
func (r *KeyRepeat) IsHeld() bool {
	return r.held != constants.KeyUnassigned
}

// Update returns the key to replay, or KeyUnassigned when no repeat is due.
// The first repeat waits repeatDelay, later ones repeatInterval.
func (r *KeyRepeat) Update() (constants.Key, constants.Modifier) {
	if !r.IsHeld() {
		return constants.KeyUnassigned, constants.ModNone
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	now := r.now()
	if now.Sub(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = now
		r.hasRepeated = true
		return r.held, r.mods
	}

	return constants.KeyUnassigned, constants.ModNone
}

// Reset clears the held key and timing state.
func (r *KeyRepeat) Reset() {
	r.held = constants.KeyUnassigned
	r.mods = constants.ModNone
	r.hasRepeated = false
	r.lastRepeatTime = r.now()
}
