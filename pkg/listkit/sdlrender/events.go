package sdlrender

import (
	"unicode/utf8"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputKind classifies a translated SDL event.
type InputKind int

const (
	InputNone InputKind = iota
	InputKeyDown
	InputKeyUp
	InputChar
	InputMouseDown
	InputMouseUp
	InputMouseMove
	InputWheel
	InputResize
	InputQuit
)

// Input is an SDL event reduced to what list controls consume.
type Input struct {
	Kind   InputKind
	Key    constants.Key
	Mods   constants.Modifier
	Rune   rune  // InputChar
	X, Y   int32 // Mouse position, or the new size for InputResize
	Clicks int   // Click count for InputMouseDown/Up
	Wheel  int32 // Wheel steps, positive away from the user
	Repeat bool  // Key auto-repeat from the OS
	Held   bool  // Left button down during InputMouseMove
}

// TranslateKey maps an SDL keycode to a navigation key.
func TranslateKey(code sdl.Keycode) constants.Key {
	switch code {
	case sdl.K_UP:
		return constants.KeyUp
	case sdl.K_DOWN:
		return constants.KeyDown
	case sdl.K_LEFT:
		return constants.KeyLeft
	case sdl.K_RIGHT:
		return constants.KeyRight
	case sdl.K_HOME:
		return constants.KeyHome
	case sdl.K_END:
		return constants.KeyEnd
	case sdl.K_PAGEUP:
		return constants.KeyPageUp
	case sdl.K_PAGEDOWN:
		return constants.KeyPageDown
	case sdl.K_SPACE:
		return constants.KeySpace
	default:
		return constants.KeyUnassigned
	}
}

// TranslateMods maps an SDL modifier mask.
func TranslateMods(mod uint16) constants.Modifier {
	var m constants.Modifier
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= constants.ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= constants.ModCtrl
	}
	return m
}

// TranslateEvent reduces an SDL event. mods is the modifier state to
// attach to mouse events, usually uint16(sdl.GetModState()).
func TranslateEvent(event sdl.Event, mods uint16) Input {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Input{Kind: InputQuit}
	case *sdl.KeyboardEvent:
		in := Input{
			Key:    TranslateKey(e.Keysym.Sym),
			Mods:   TranslateMods(e.Keysym.Mod),
			Repeat: e.Repeat != 0,
		}
		if in.Key == constants.KeyUnassigned {
			return Input{}
		}
		in.Kind = InputKeyDown
		if e.Type == sdl.KEYUP {
			in.Kind = InputKeyUp
		}
		return in
	case *sdl.TextInputEvent:
		r, _ := utf8.DecodeRuneInString(e.GetText())
		if r == utf8.RuneError || r == ' ' {
			return Input{}
		}
		return Input{Kind: InputChar, Key: constants.KeyChar, Rune: r}
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return Input{}
		}
		kind := InputMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			kind = InputMouseUp
		}
		return Input{Kind: kind, X: e.X, Y: e.Y, Clicks: int(e.Clicks), Mods: TranslateMods(mods)}
	case *sdl.MouseMotionEvent:
		return Input{Kind: InputMouseMove, X: e.X, Y: e.Y, Held: e.State&sdl.ButtonLMask() != 0}
	case *sdl.MouseWheelEvent:
		return Input{Kind: InputWheel, Wheel: e.Y}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			return Input{Kind: InputResize, X: e.Data1, Y: e.Data2}
		}
	}
	return Input{}
}
