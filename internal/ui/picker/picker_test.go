package picker

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func builtinThemes(t *testing.T) []*registry.Theme {
	t.Helper()
	themes, err := registry.LoadBuiltIn()
	require.NoError(t, err)
	return registry.New(themes...).Ranked()
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_New(t *testing.T) {
	m := New("Pick a theme", builtinThemes(t))

	assert.Equal(t, "Pick a theme", m.title)
	assert.Len(t, m.themes, 3)
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, "ember-studio", m.Selected().Slug)
}

func TestPicker_SetSelected(t *testing.T) {
	m := New("Test", builtinThemes(t))

	m = m.SetSelected(2)
	assert.Equal(t, 2, m.selected)

	m = m.SetSelected(10)
	assert.Equal(t, 2, m.selected, "out of range index ignored")

	m = m.SetSelected(-1)
	assert.Equal(t, 2, m.selected, "negative index ignored")
}

func TestPicker_SetSelectedSlug(t *testing.T) {
	m := New("Test", builtinThemes(t)).SetSelectedSlug("meadow")
	assert.Equal(t, "meadow", m.Selected().Slug)

	m = m.SetSelectedSlug("missing")
	assert.Equal(t, "ember-studio", m.Selected().Slug, "unknown slug falls back to first")
}

func TestPicker_Selected_Empty(t *testing.T) {
	m := New("Test", nil)
	assert.Nil(t, m.Selected())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "enter on an empty list does nothing")
}

func TestPicker_Navigate(t *testing.T) {
	m := New("Test", builtinThemes(t))

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 1, m.selected)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.selected)

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 2, m.selected, "stops at the bottom")

	m, _ = update(t, m, runes("k"))
	assert.Equal(t, 1, m.selected)

	m, _ = update(t, m, runes("g"))
	assert.Equal(t, 0, m.selected)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected, "stops at the top")

	m, _ = update(t, m, runes("G"))
	assert.Equal(t, 2, m.selected)
}

func TestPicker_EnterEmitsSelectedMsg(t *testing.T) {
	m := New("Test", builtinThemes(t)).SetSelected(1)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, SelectedMsg{Slug: "nordic-frost"}, msg)

	m, cmd = update(t, m, msg)
	slug, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, "nordic-frost", slug)
	require.NotNil(t, cmd, "selection quits")
}

func TestPicker_EscCancels(t *testing.T) {
	m := New("Test", builtinThemes(t))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, CancelMsg{}, cmd())

	m, _ = update(t, m, CancelMsg{})
	assert.True(t, m.Cancelled())
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestPicker_View(t *testing.T) {
	m := New("Pick a theme", builtinThemes(t))
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "Pick a theme")
	assert.Contains(t, view, ">Ember Studio")
	assert.Contains(t, view, "Nordic Frost")
	assert.Contains(t, view, "unrated", "meadow has no rating")
	assert.Contains(t, view, "select")
}

func TestPicker_View_TogglesPreview(t *testing.T) {
	m := New("Test", builtinThemes(t))
	colors := ansi.Strip(m.View())
	assert.Contains(t, colors, "#", "color legend shows hex values")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	fonts := ansi.Strip(m.View())
	assert.NotEqual(t, colors, fonts)
	for _, f := range m.Selected().Fonts {
		assert.Contains(t, fonts, f.Name)
	}
}

func TestPicker_View_Empty(t *testing.T) {
	view := ansi.Strip(New("Test", nil).View())
	assert.Contains(t, view, "no themes found")
}

func TestPicker_ScrollsWithSmallHeight(t *testing.T) {
	m := New("Test", builtinThemes(t)).SetSize(60, previewHeight+9)
	require.Equal(t, 3, m.listHeight())

	m = m.SetSize(60, previewHeight+6)
	require.Equal(t, 3, m.listHeight(), "list never shrinks below three rows")

	// Fits all three, so nothing scrolls.
	m = m.SetSelected(2)
	assert.Equal(t, 0, m.offset)
}

func TestPicker_ScrollOffset(t *testing.T) {
	themes := builtinThemes(t)
	many := append(append(append([]*registry.Theme{}, themes...), themes...), themes...)
	m := New("Test", many).SetSize(60, previewHeight+9)

	m = m.SetSelected(5)
	assert.Equal(t, 3, m.offset)
	assert.Equal(t, 6, m.visibleEnd())

	m = m.SetSelected(1)
	assert.Equal(t, 1, m.offset)
}

func TestFindIndexBySlug(t *testing.T) {
	themes := builtinThemes(t)
	assert.Equal(t, 2, FindIndexBySlug(themes, "meadow"))
	assert.Equal(t, 0, FindIndexBySlug(themes, "nope"))
}

func TestPicker_Program_SelectsWithKeyboard(t *testing.T) {
	m := New("Pick a theme", builtinThemes(t))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 40))

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	slug, ok := final.Result()
	require.True(t, ok)
	require.Equal(t, "meadow", slug)
}

func TestPicker_Program_Cancel(t *testing.T) {
	m := New("Pick a theme", builtinThemes(t))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 40))

	tm.Send(runes("q"))

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, final.Cancelled())
}
