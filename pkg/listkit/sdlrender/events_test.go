package sdlrender

import (
	"testing"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Input
	}{
		{
			name:  "shift down arrow",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_DOWN, Mod: sdl.KMOD_LSHIFT}},
			want:  Input{Kind: InputKeyDown, Key: constants.KeyDown, Mods: constants.ModShift},
		},
		{
			name:  "ctrl page up released",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_PAGEUP, Mod: sdl.KMOD_RCTRL}},
			want:  Input{Kind: InputKeyUp, Key: constants.KeyPageUp, Mods: constants.ModCtrl},
		},
		{
			name:  "unmapped key",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_F1}},
			want:  Input{},
		},
		{
			name:  "left click",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 4, Y: 9, Clicks: 2},
			want:  Input{Kind: InputMouseDown, X: 4, Y: 9, Clicks: 2, Mods: constants.ModCtrl},
		},
		{
			name:  "right click ignored",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT},
			want:  Input{},
		},
		{
			name:  "wheel",
			event: &sdl.MouseWheelEvent{Y: -2},
			want:  Input{Kind: InputWheel, Wheel: -2},
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 640, Data2: 480},
			want:  Input{Kind: InputResize, X: 640, Y: 480},
		},
		{
			name:  "quit",
			event: &sdl.QuitEvent{},
			want:  Input{Kind: InputQuit},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateEvent(tt.event, sdl.KMOD_LCTRL))
		})
	}
}
