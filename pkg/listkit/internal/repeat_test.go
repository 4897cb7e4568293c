package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestKeyRepeat_DelayThenInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	r := NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond, clock.now)

	assert.True(t, r.Press(constants.KeyDown, constants.ModShift))

	clock.advance(299 * time.Millisecond)
	key, _ := r.Update()
	assert.Equal(t, constants.KeyUnassigned, key)

	clock.advance(time.Millisecond)
	key, mods := r.Update()
	assert.Equal(t, constants.KeyDown, key)
	assert.Equal(t, constants.ModShift, mods)

	clock.advance(49 * time.Millisecond)
	key, _ = r.Update()
	assert.Equal(t, constants.KeyUnassigned, key)

	clock.advance(time.Millisecond)
	key, _ = r.Update()
	assert.Equal(t, constants.KeyDown, key)
}

func TestKeyRepeat_IgnoresNonDirectional(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	r := NewKeyRepeatWithTiming(time.Millisecond, time.Millisecond, clock.now)

	assert.False(t, r.Press(constants.KeySpace, constants.ModNone))
	assert.False(t, r.IsHeld())
}

func TestKeyRepeat_ReleaseStopsRepeat(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	r := NewKeyRepeatWithTiming(10*time.Millisecond, 10*time.Millisecond, clock.now)

	r.Press(constants.KeyUp, constants.ModNone)
	r.Release(constants.KeyDown)
	assert.True(t, r.IsHeld(), "releasing a different key keeps the held one")

	r.Release(constants.KeyUp)
	clock.advance(time.Second)
	key, _ := r.Update()
	assert.Equal(t, constants.KeyUnassigned, key)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"INFO":    "INFO",
		"warning": "WARN",
		" error ": "ERROR",
		"bogus":   "INFO",
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(raw).String())
		})
	}
}
