// Command sdldemo shows a ListBox and a ListView side by side in an SDL
// window.
//
//	sdldemo [-config listkit.toml] [-lang de]
//
// Click a pane or press Tab to focus it. F2 cycles the view mode of the
// right pane. Escape quits.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"os"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/BrandonKowalski/listkit/pkg/listkit/locale"
	"github.com/BrandonKowalski/listkit/pkg/listkit/sdlrender"
	"github.com/veandco/go-sdl2/sdl"
)

const folderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#e0a030" d="M2 5h8l2 2h10v13H2z"/></svg>`

const fileSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#4070c0" d="M5 2h10l5 5v15H5z"/></svg>`

// wheelStep is how far one wheel notch scrolls the list view, in pixels.
const wheelStep = 20

// pane is one control and the part of the window it occupies.
type pane interface {
	Resize(w, h int32) error
	MouseDown(x, y int32, mods constants.Modifier)
	KeyDown(key constants.Key, mods constants.Modifier) bool
	KeyPress(r rune) bool
}

type app struct {
	win     *sdlrender.Window
	painter *sdlrender.Painter
	images  *sdlrender.ImageList
	tr      *locale.Translator

	box    *listkit.ListBox[string]
	view   *listkit.ListView
	panes  [2]pane
	rects  [2]layout.Rect
	active int

	repeat listkit.KeyRepeat
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	lang := flag.String("lang", os.Getenv("LANG"), "message language")
	flag.Parse()

	if err := run(*configPath, *lang); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, lang string) error {
	cfg, err := listkit.Init(listkit.Options{ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer listkit.CloseLogger()
	logger := listkit.GetLogger()

	tr, err := locale.New(lang)
	if err != nil {
		return err
	}

	win, err := sdlrender.Open(sdlrender.WindowOptions{
		Title:     "listkit",
		Width:     960,
		Height:    600,
		Resizable: true,
	}, listkit.GetTheme().FontPath, cfg.Theme.FontSize)
	if err != nil {
		return err
	}
	defer win.Close()

	a := &app{win: win, tr: tr, repeat: listkit.NewKeyRepeat()}
	if err := a.build(cfg); err != nil {
		return err
	}
	defer a.images.Destroy()
	defer a.painter.Destroy()

	sdl.StartTextInput()
	a.layout()
	logger.Info("sdldemo started", "lang", tr.Tag().String())

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !a.handle(event) {
				return nil
			}
		}
		if key, mods := a.repeat.Update(); key != constants.KeyUnassigned {
			a.panes[a.active].KeyDown(key, mods)
		}
		a.paint()
		win.Present()
	}
}

func (a *app) build(cfg listkit.Config) error {
	measurer := sdlrender.TTFMeasurer{Font: a.win.Font}

	boxOpts, err := listkit.ListBoxOptionsFromConfig(cfg.List)
	if err != nil {
		return err
	}
	boxOpts.Measurer = measurer
	boxOpts.ItemHeight = max(boxOpts.ItemHeight, measurer.LineHeight()+2)
	a.box = listkit.NewListBox[string](nil, boxOpts)
	a.box.Items().Store().SetLocale(a.tr.Tag())

	viewOpts, err := listkit.ListViewOptionsFromConfig(cfg.View)
	if err != nil {
		return err
	}
	viewOpts.Measurer = measurer
	a.view = listkit.NewListView(viewOpts)
	a.view.AddColumn(listkit.ColumnHeader{Text: "Name", Width: 180})
	a.view.AddColumn(listkit.ColumnHeader{Text: "Size", Width: 80, Align: constants.TextAlignRight})

	small := cmp.Or(viewOpts.SmallImageSize, constants.DefaultSmallImageSize)
	large := cmp.Or(viewOpts.LargeImageSize, constants.DefaultLargeImageSize)
	a.images = sdlrender.NewImageList(a.win.Renderer, int(small), int(large))
	folder, err := a.images.AddSVG([]byte(folderSVG))
	if err != nil {
		return err
	}
	file, err := a.images.AddSVG([]byte(fileSVG))
	if err != nil {
		return err
	}
	a.painter = sdlrender.NewPainter(a.win, a.images)

	entries, _ := os.ReadDir(".")
	for _, e := range entries {
		a.box.Items().Add(e.Name())
		item := listkit.NewItem(e.Name(), "")
		item.ImageIndex = file
		if e.IsDir() {
			item.ImageIndex = folder
		} else if info, err := e.Info(); err == nil {
			item.SubItems[0].Text = fmt.Sprint(info.Size())
		}
		a.view.Items().Add(item)
	}

	a.box.ItemActivated.Subscribe(func(i int) {
		listkit.GetLogger().Info("activated", "item", a.box.Items().Text(i))
	})
	a.panes = [2]pane{a.box, a.view}
	return nil
}

func (a *app) layout() {
	w, h := a.win.Size()
	half := w / 2
	a.rects = [2]layout.Rect{
		{X: 0, Y: 0, W: half - 4, H: h},
		{X: half + 4, Y: 0, W: w - half - 4, H: h},
	}
	for i, p := range a.panes {
		_ = p.Resize(a.rects[i].W, a.rects[i].H)
	}
}

// handle processes one event and reports whether the app keeps running.
func (a *app) handle(event sdl.Event) bool {
	if k, ok := event.(*sdl.KeyboardEvent); ok && k.Type == sdl.KEYDOWN {
		switch k.Keysym.Sym {
		case sdl.K_ESCAPE:
			return false
		case sdl.K_TAB:
			a.focus(1 - a.active)
			return true
		case sdl.K_F2:
			a.view.SetView((a.view.View() + 1) % (layout.ViewTile + 1))
			return true
		}
	}

	in := sdlrender.TranslateEvent(event, uint16(sdl.GetModState()))
	switch in.Kind {
	case sdlrender.InputQuit:
		return false
	case sdlrender.InputResize:
		a.layout()
	case sdlrender.InputKeyDown:
		if in.Repeat {
			return true
		}
		a.panes[a.active].KeyDown(in.Key, in.Mods)
		a.repeat.Press(in.Key, in.Mods)
	case sdlrender.InputKeyUp:
		a.repeat.Release(in.Key)
	case sdlrender.InputChar:
		a.panes[a.active].KeyPress(in.Rune)
	case sdlrender.InputMouseDown:
		for i, r := range a.rects {
			if r.Contains(in.X, in.Y) {
				a.focus(i)
				a.panes[i].MouseDown(in.X-r.X, in.Y-r.Y, in.Mods)
			}
		}
	case sdlrender.InputMouseMove:
		if in.Held && a.active == 0 {
			a.box.MouseDrag(in.X-a.rects[0].X, in.Y-a.rects[0].Y)
		}
	case sdlrender.InputMouseUp:
		if a.active == 0 {
			a.box.MouseUp(in.X-a.rects[0].X, in.Y-a.rects[0].Y, in.Clicks)
		}
	case sdlrender.InputWheel:
		if a.active == 0 {
			a.box.Scroll(false, a.box.TopIndex()-int(in.Wheel))
		} else {
			bars := a.view.ScrollBars()
			a.view.Scroll(false, bars.Vertical.Value-int(in.Wheel)*wheelStep)
		}
	}
	return true
}

func (a *app) focus(i int) {
	if i != a.active {
		a.active = i
		a.repeat.Reset()
	}
}

func (a *app) paint() {
	a.painter.Origin = layout.Point{X: a.rects[0].X, Y: a.rects[0].Y}
	sdlrender.ListBox(a.painter, a.box)
	a.painter.Origin = layout.Point{X: a.rects[1].X, Y: a.rects[1].Y}
	sdlrender.ListView(a.painter, a.view, a.rects[1].Size())
}
