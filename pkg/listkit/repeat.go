package listkit

import (
	"time"

	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// KeyRepeat replays a held navigation key for hosts whose input layer
// does not auto-repeat.
type KeyRepeat = internal.KeyRepeat

// NewKeyRepeat returns a KeyRepeat with the default delay and interval.
func NewKeyRepeat() KeyRepeat {
	return internal.NewKeyRepeat()
}

// NewKeyRepeatWithTiming returns a KeyRepeat with custom timing.
func NewKeyRepeatWithTiming(delay, interval time.Duration) KeyRepeat {
	return internal.NewKeyRepeatWithTiming(delay, interval, time.Now)
}
