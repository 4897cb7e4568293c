package main

import (
	"strings"
	"testing"
	"time"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/locale"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T, cfg listkit.Config) *model {
	t.Helper()
	tr, err := locale.New("en")
	require.NoError(t, err)
	m, err := newModel(cfg, tr, sampleItems)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 13})
	return m
}

func TestModel_WindowResize(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	got := next.(*model)
	assert.Equal(t, 120, got.width)
	assert.Equal(t, 40, got.height)
	assert.Equal(t, int32(40-headerRows-footerRows), got.list.Size().H)
}

func TestModel_KeysMoveSelection(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.list.Selection().Focused())
	assert.Equal(t, []int{1}, m.list.Selection().Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, len(sampleItems)-1, m.list.Selection().Focused())
	assert.Greater(t, m.list.TopIndex(), 0)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, "kiwi", m.list.Items().Text(m.list.Selection().SelectedIndex()))

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "kiwi", m.status)
}

func TestModel_QuitKeys(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.Quit(), cmd(), msg.String())
	}
}

func TestModel_CheckBoxes(t *testing.T) {
	cfg := listkit.DefaultConfig()
	cfg.List.CheckBoxes = true
	m := testModel(t, cfg)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []int{0}, m.list.CheckedIndices())
	assert.Contains(t, m.View(), constants.CheckedBox+"apple")
}

func TestModel_MouseDoubleClickActivates(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())
	press := tea.MouseMsg{X: 2, Y: headerRows + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 2, Y: headerRows + 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	m.Update(press)
	m.Update(release)
	assert.Equal(t, 2, m.list.Selection().Focused())
	assert.Empty(t, m.status)

	m.Update(press)
	m.Update(release)
	assert.Equal(t, "banana", m.status)
}

func TestModel_ClickCounting(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())
	now := time.Now()

	assert.Equal(t, 1, m.clicks(1, 0, now))
	assert.Equal(t, 2, m.clicks(1, 0, now.Add(100*time.Millisecond)))
	assert.Equal(t, 1, m.clicks(1, 0, now.Add(200*time.Millisecond)), "a third click starts over")
	assert.Equal(t, 1, m.clicks(1, 0, now.Add(time.Second)))
	assert.Equal(t, 1, m.clicks(1, 1, now.Add(time.Second+50*time.Millisecond)), "different item")
}

func TestModel_WheelScrolls(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 2, m.list.TopIndex())

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.list.TopIndex())
}

func TestModel_View(t *testing.T) {
	m := testModel(t, listkit.DefaultConfig())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	view := m.View()
	lines := strings.Split(strings.TrimSuffix(view, "\n"), "\n")
	assert.Len(t, lines, 13)
	assert.Contains(t, view, "apple")
	assert.Contains(t, view, "1 of 29 items selected")
	assert.Contains(t, view, constants.ScrollThumb)
	assert.NotContains(t, view, "watermelon", "below the fold")
}

func TestModel_MultiColumn(t *testing.T) {
	cfg := listkit.DefaultConfig()
	cfg.List.MultiColumn = true
	m := testModel(t, cfg)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, m.list.RowCount(), m.list.Selection().Focused())
	assert.True(t, m.list.ScrollBars().Horizontal.Visible)
}

func TestModel_Empty(t *testing.T) {
	tr, err := locale.New("de")
	require.NoError(t, err)
	m, err := newModel(listkit.DefaultConfig(), tr, nil)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.View(), tr.Empty())
}
