// Package sdlrender hosts listkit controls in an SDL2 window: it measures
// text with SDL_ttf, paints ListBox and ListView frames, rasterizes SVG
// icons and translates SDL input into listkit keys and modifiers.
package sdlrender

import (
	"fmt"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// WindowOptions controls window creation.
type WindowOptions struct {
	Title         string
	Width, Height int32 // 0 uses the current display mode
	Resizable     bool
	Borderless    bool
	Fullscreen    bool
	Maximized     bool
	Hidden        bool
}

// ToSDLFlags returns the SDL_CreateWindow flags for the options.
func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_ALLOW_HIGHDPI)
	for _, f := range []struct {
		on   bool
		flag uint32
	}{
		{!wo.Hidden, sdl.WINDOW_SHOWN},
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.Maximized, sdl.WINDOW_MAXIMIZED},
	} {
		if f.on {
			flags |= f.flag
		}
	}
	return flags
}

// Window owns the SDL window, its renderer and the UI font.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Font     *ttf.Font

	hasVSync        bool
	lastPresentTime uint64
}

// Open initializes SDL and SDL_ttf and creates a window with an
// accelerated renderer. fontPath and fontSize select the UI font.
func Open(opts WindowOptions, fontPath string, fontSize int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			listkit.GetLogger().Error("failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	listkit.GetLogger().Debug("creating SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		_ = window.Destroy()
		quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	font, err := ttf.OpenFont(fontPath, fontSize)
	if err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		quit()
		return nil, fmt.Errorf("open font %s: %w", fontPath, err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Font:     font,
		hasVSync: vsync,
	}, nil
}

func quit() {
	ttf.Quit()
	sdl.Quit()
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close releases the font, renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Font.Close()
	_ = w.Renderer.Destroy()
	_ = w.Window.Destroy()
	quit()
}
