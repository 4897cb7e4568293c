package sdlrender

import (
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/veandco/go-sdl2/ttf"
)

// TTFMeasurer measures text with an SDL_ttf font.
type TTFMeasurer struct {
	Font *ttf.Font
}

func (m TTFMeasurer) MeasureText(text string) layout.Size {
	if text == "" {
		return layout.Size{}
	}
	w, h, err := m.Font.SizeUTF8(text)
	if err != nil {
		return layout.Size{}
	}
	return layout.Size{W: int32(w), H: int32(h)}
}

func (m TTFMeasurer) LineHeight() int32 {
	return int32(m.Font.Height())
}
