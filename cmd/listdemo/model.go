package main

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/BrandonKowalski/listkit/pkg/listkit/locale"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows taken by the title above the list and the status and help below.
const (
	headerRows = 1
	footerRows = 2

	doubleClickTime = 400 * time.Millisecond
)

type styles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	focused  lipgloss.Style
	hint     lipgloss.Style
	bar      lipgloss.Style
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func newStyles(theme listkit.Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(hex(theme.AccentColor)),
		item:     lipgloss.NewStyle().Foreground(hex(theme.TextColor)),
		selected: lipgloss.NewStyle().Foreground(hex(theme.HighlightedTextColor)).Background(hex(theme.HighlightColor)),
		focused:  lipgloss.NewStyle().Underline(true),
		hint:     lipgloss.NewStyle().Foreground(hex(theme.HintColor)),
		bar:      lipgloss.NewStyle().Foreground(hex(theme.AccentColor)),
	}
}

type model struct {
	list     *listkit.ListBox[string]
	measurer listkit.CellMeasurer
	tr       *locale.Translator
	styles   styles
	status   string
	width    int
	height   int

	// Terminals report single presses only.
	lastClick      time.Time
	lastClickIndex int
}

func newModel(cfg listkit.Config, tr *locale.Translator, items []string) (*model, error) {
	opts, err := listkit.ListBoxOptionsFromConfig(cfg.List)
	if err != nil {
		return nil, err
	}
	// One terminal cell per measurement unit.
	measurer := listkit.NewCellMeasurer(1, 1)
	opts.Measurer = measurer
	opts.ItemHeight = 1
	opts.ScrollBarSize = 1
	if opts.ColumnWidth == 0 || opts.ColumnWidth == constants.DefaultColumnWidth {
		opts.ColumnWidth = 16
	}

	m := &model{
		list:     listkit.NewListBox[string](nil, opts),
		measurer: measurer,
		tr:       tr,
		styles:   newStyles(listkit.GetTheme()),
	}
	m.list.Items().Store().SetLocale(tr.Tag())
	m.list.Items().AddRange(items)
	m.list.ItemActivated.Subscribe(func(i int) {
		m.status = m.list.Items().Text(i)
	})
	return m, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	_ = m.list.Resize(int32(w), int32(max(0, h-headerRows-footerRows)))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m, m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

// keyTable maps terminal keys to list keys and modifiers.
var keyTable = map[tea.KeyType]struct {
	key  constants.Key
	mods constants.Modifier
}{
	tea.KeyUp:         {constants.KeyUp, constants.ModNone},
	tea.KeyDown:       {constants.KeyDown, constants.ModNone},
	tea.KeyLeft:       {constants.KeyLeft, constants.ModNone},
	tea.KeyRight:      {constants.KeyRight, constants.ModNone},
	tea.KeyShiftUp:    {constants.KeyUp, constants.ModShift},
	tea.KeyShiftDown:  {constants.KeyDown, constants.ModShift},
	tea.KeyShiftLeft:  {constants.KeyLeft, constants.ModShift},
	tea.KeyShiftRight: {constants.KeyRight, constants.ModShift},
	tea.KeyCtrlUp:     {constants.KeyUp, constants.ModCtrl},
	tea.KeyCtrlDown:   {constants.KeyDown, constants.ModCtrl},
	tea.KeyHome:       {constants.KeyHome, constants.ModNone},
	tea.KeyEnd:        {constants.KeyEnd, constants.ModNone},
	tea.KeyShiftHome:  {constants.KeyHome, constants.ModShift},
	tea.KeyShiftEnd:   {constants.KeyEnd, constants.ModShift},
	tea.KeyPgUp:       {constants.KeyPageUp, constants.ModNone},
	tea.KeyPgDown:     {constants.KeyPageDown, constants.ModNone},
	tea.KeySpace:      {constants.KeySpace, constants.ModNone},
}

func (m *model) key(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyCtrlA:
		_ = m.list.Selection().SelectAll()
		return nil
	case tea.KeyEnter:
		if f := m.list.Selection().Focused(); f >= 0 {
			m.status = m.list.Items().Text(f)
		}
		return nil
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] == 'q' && !msg.Alt {
			return tea.Quit
		}
		for _, r := range msg.Runes {
			m.list.KeyPress(r)
		}
		return nil
	}
	if k, ok := keyTable[msg.Type]; ok {
		m.list.KeyDown(k.key, k.mods)
	}
	return nil
}

func (m *model) mouse(msg tea.MouseMsg) {
	x, y := int32(msg.X), int32(msg.Y-headerRows)
	var mods constants.Modifier
	if msg.Shift {
		mods |= constants.ModShift
	}
	if msg.Ctrl {
		mods |= constants.ModCtrl
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.list.Scroll(false, m.list.TopIndex()-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.list.Scroll(false, m.list.TopIndex()+1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.list.MouseDown(x, y, mods)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.list.MouseDrag(x, y)
	case msg.Action == tea.MouseActionRelease:
		m.list.MouseUp(x, y, m.clicks(x, y, time.Now()))
	}
}

// clicks counts a release at the item of the previous release, within
// doubleClickTime, as the second click.
func (m *model) clicks(x, y int32, now time.Time) int {
	index := m.list.IndexAtPoint(x, y)
	n := 1
	if index >= 0 && index == m.lastClickIndex && now.Sub(m.lastClick) <= doubleClickTime {
		n = 2
		m.lastClick = time.Time{}
	} else {
		m.lastClick = now
	}
	m.lastClickIndex = index
	return n
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("listkit"))
	b.WriteString("\n")
	b.WriteString(m.renderList())

	sel := m.list.Selection()
	status := m.tr.SelectionStatus(sel.Len(), m.list.Items().Len())
	if m.list.Items().Len() == 0 {
		status = m.tr.Empty()
	}
	if m.status != "" {
		status += "  " + m.status
	}
	b.WriteString(m.styles.hint.Render(status))
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render(m.tr.Help()))
	return b.String()
}

type cell struct {
	x    int32
	w    int32
	text string
}

// renderList turns the list's visible rows into terminal lines.
func (m *model) renderList() string {
	size := m.list.Size()
	rows := make([][]cell, size.H)
	for _, item := range m.list.Visible() {
		y := item.Bounds.Y
		if y < 0 || y >= size.H {
			continue
		}
		rows[y] = append(rows[y], cell{x: item.Bounds.X, w: item.Bounds.W, text: m.renderItem(item)})
	}

	bars := m.list.ScrollBars()
	area := bars.ItemsArea
	var vThumb, vLen int32
	if bars.Vertical.Visible {
		vThumb, vLen = bars.Vertical.Thumb(area.H)
	}

	var b strings.Builder
	for y, row := range rows {
		slices.SortFunc(row, func(a, b cell) int { return int(a.x - b.x) })
		var col int32
		var line strings.Builder
		for _, c := range row {
			if c.x > col {
				line.WriteString(strings.Repeat(" ", int(c.x-col)))
				col = c.x
			}
			line.WriteString(c.text)
			col += c.w
		}
		if col < area.W {
			line.WriteString(strings.Repeat(" ", int(area.W-col)))
		}
		if bars.Vertical.Visible && int32(y) < area.H {
			glyph := constants.ScrollTrack
			if int32(y) >= vThumb && int32(y) < vThumb+vLen {
				glyph = constants.ScrollThumb
			}
			line.WriteString(m.styles.bar.Render(glyph))
		}
		b.WriteString(line.String())
		b.WriteString("\n")
	}
	if bars.Horizontal.Visible {
		b.WriteString(m.renderHBar(bars.Horizontal, area.W))
	}
	return b.String()
}

func (m *model) renderHBar(bar layout.ScrollBar, width int32) string {
	off, length := bar.Thumb(width)
	var b strings.Builder
	for x := int32(0); x < width; x++ {
		if x >= off && x < off+length {
			b.WriteString(constants.ScrollThumb)
		} else {
			b.WriteString(constants.ScrollTrack)
		}
	}
	return m.styles.bar.Render(b.String()) + "\n"
}

func (m *model) renderItem(item listkit.VisibleItem) string {
	marker := constants.NoMarker
	if item.Focused {
		marker = constants.FocusMarker
	}
	if m.list.CheckBoxes() {
		if item.Checked {
			marker += constants.CheckedBox
		} else {
			marker += constants.UncheckedBox
		}
	}

	text := marker + item.Text
	if item.Segments != nil {
		var sb strings.Builder
		for _, seg := range item.Segments {
			if pad := int(seg.X) - lipgloss.Width(sb.String()); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString(seg.Text)
		}
		text = marker + sb.String()
	}
	text = m.measurer.Truncate(text, item.Bounds.W, "…")

	style := m.styles.item
	if item.Selected {
		style = m.styles.selected
	}
	if item.Focused {
		style = style.Inherit(m.styles.focused)
	}
	return style.Width(int(item.Bounds.W)).MaxWidth(int(item.Bounds.W)).Render(text)
}
