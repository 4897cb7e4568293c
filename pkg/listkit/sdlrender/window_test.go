package sdlrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptions_ToSDLFlags(t *testing.T) {
	flags := WindowOptions{Resizable: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.Zero(t, flags&sdl.WINDOW_BORDERLESS)

	flags = WindowOptions{Hidden: true, Fullscreen: true}.ToSDLFlags()
	assert.Zero(t, flags&sdl.WINDOW_SHOWN)
	assert.Equal(t, uint32(sdl.WINDOW_FULLSCREEN_DESKTOP), flags&sdl.WINDOW_FULLSCREEN_DESKTOP)
}
