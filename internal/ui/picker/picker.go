// Package picker provides an interactive theme picker.
package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/keys"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/styles"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/swatch"
)

// ErrCancelled is returned by Run when the user leaves without choosing.
var ErrCancelled = errors.New("picker cancelled")

const (
	defaultWidth  = 56
	maxWidth      = 72
	nameColumn    = 18
	stripLength   = 8
	legendLimit   = 8
	previewHeight = 12
	zonePrefix    = "theme-picker-"
)

type previewMode int

const (
	previewColors previewMode = iota
	previewFonts
)

// SelectedMsg is sent when a theme is chosen.
type SelectedMsg struct {
	Slug string
}

// CancelMsg is sent when the picker is cancelled.
type CancelMsg struct{}

// Model lists themes with their swatches and previews the highlighted one.
type Model struct {
	title    string
	themes   []*registry.Theme
	selected int
	offset   int
	preview  previewMode
	keys     keys.PickerKeyMap
	help     help.Model

	width  int
	height int

	chosen    string
	cancelled bool
}

// New creates a picker over themes in the order given.
func New(title string, themes []*registry.Theme) Model {
	return Model{
		title:  title,
		themes: themes,
		keys:   keys.DefaultPickerKeyMap(),
		help:   help.New(),
	}
}

// SetSize sets the terminal size used for layout.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = m.boxWidth()
	return m.scrollToSelected()
}

// SetSelected highlights the theme at index. Out of range indexes are ignored.
func (m Model) SetSelected(index int) Model {
	if index >= 0 && index < len(m.themes) {
		m.selected = index
	}
	return m.scrollToSelected()
}

// SetSelectedSlug highlights the theme with slug, if present.
func (m Model) SetSelectedSlug(slug string) Model {
	return m.SetSelected(FindIndexBySlug(m.themes, slug))
}

// Selected returns the highlighted theme, or nil when the list is empty.
func (m Model) Selected() *registry.Theme {
	if m.selected < len(m.themes) {
		return m.themes[m.selected]
	}
	return nil
}

// Result returns the chosen slug. ok is false until a theme was selected.
func (m Model) Result() (slug string, ok bool) {
	return m.chosen, m.chosen != ""
}

// Cancelled reports whether the picker was dismissed.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			return m.SetSelected(m.selected - 1), nil
		case key.Matches(msg, m.keys.Down):
			return m.SetSelected(m.selected + 1), nil
		case key.Matches(msg, m.keys.Top):
			return m.SetSelected(0), nil
		case key.Matches(msg, m.keys.Bottom):
			return m.SetSelected(len(m.themes) - 1), nil
		case key.Matches(msg, m.keys.Preview):
			m.preview = (m.preview + 1) % 2
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m, m.selectCmd()
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		for i := m.offset; i < m.visibleEnd(); i++ {
			if z := zone.Get(zoneID(i)); z != nil && z.InBounds(msg) {
				// Second click on the highlighted row selects it.
				if i == m.selected {
					return m, m.selectCmd()
				}
				return m.SetSelected(i), nil
			}
		}

	case SelectedMsg:
		m.chosen = msg.Slug
		log.Info(log.CatUI, "theme selected", "slug", msg.Slug)
		return m, tea.Quit

	case CancelMsg:
		m.cancelled = true
		log.Debug(log.CatUI, "picker cancelled")
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) selectCmd() tea.Cmd {
	t := m.Selected()
	if t == nil {
		return nil
	}
	slug := t.Slug
	return func() tea.Msg { return SelectedMsg{Slug: slug} }
}

func zoneID(i int) string {
	return fmt.Sprintf("%s%d", zonePrefix, i)
}

func (m Model) boxWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return max(20, min(m.width-2, maxWidth))
}

// listHeight is the number of theme rows that fit. Zero height shows all.
func (m Model) listHeight() int {
	if m.height == 0 {
		return len(m.themes)
	}
	return max(3, m.height-previewHeight-6)
}

func (m Model) visibleEnd() int {
	return min(len(m.themes), m.offset+m.listHeight())
}

func (m Model) scrollToSelected() Model {
	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if h > 0 && m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n" + divider + "\n")

	if len(m.themes) == 0 {
		b.WriteString(styles.MutedStyle.Render(" no themes found"))
	} else {
		b.WriteString(m.renderList())
		b.WriteString("\n" + divider + "\n")
		b.WriteString(m.renderPreview(width - 2))
	}
	b.WriteString("\n" + divider + "\n")
	b.WriteString(" " + m.help.View(m.keys))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(b.String())
	return zone.Scan(box)
}

func (m Model) renderList() string {
	lines := make([]string, 0, m.listHeight())
	for i := m.offset; i < m.visibleEnd(); i++ {
		t := m.themes[i]
		name := styles.TruncateString(t.Name, nameColumn)
		rating := styles.RatingStyle.Render(fmt.Sprintf("%-8s", styles.FormatRating(t.Rating)))

		var line string
		if i == m.selected {
			nameStyle := lipgloss.NewStyle().Bold(true).Width(nameColumn)
			line = styles.SelectionIndicatorStyle.Render(">") + nameStyle.Render(name)
		} else {
			line = " " + lipgloss.NewStyle().Width(nameColumn).Render(name)
		}
		line += " " + rating + " " + swatch.Strip(t.Colors, stripLength)
		lines = append(lines, zone.Mark(zoneID(i), line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(width int) string {
	t := m.Selected()
	lines := []string{
		fmt.Sprintf(" .%s  %s", t.RootClassName(), styles.MutedStyle.Render(t.Source.String())),
	}
	if t.SevenAxisCode != "" {
		lines = append(lines, styles.MutedStyle.Render(" "+t.SevenAxisCode))
	}
	if d := t.Business.Description; d != "" {
		for _, l := range strings.Split(wordwrap.String(d, width), "\n") {
			lines = append(lines, " "+l)
		}
	}
	lines = append(lines, "")

	switch m.preview {
	case previewFonts:
		if len(t.Fonts) == 0 {
			lines = append(lines, styles.MutedStyle.Render(" no fonts"))
		}
		for _, f := range t.Fonts {
			lines = append(lines, fmt.Sprintf(" %s %s", f.Name, styles.MutedStyle.Render(strings.Join(f.Roles, ", "))))
		}
	default:
		colors := t.Colors
		if len(colors) > legendLimit {
			colors = colors[:legendLimit]
		}
		legend := swatch.Legend(colors, nameColumn)
		for _, l := range strings.Split(legend, "\n") {
			lines = append(lines, " "+l)
		}
		if extra := len(t.Colors) - len(colors); extra > 0 {
			lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf(" +%d more", extra)))
		}
	}
	return strings.Join(lines, "\n")
}

// FindIndexBySlug returns the index of the theme with slug, or 0.
func FindIndexBySlug(themes []*registry.Theme, slug string) int {
	for i, t := range themes {
		if t.Slug == slug {
			return i
		}
	}
	return 0
}

var zoneOnce sync.Once

// Run shows the picker full screen and returns the chosen slug. current is
// highlighted initially.
func Run(ctx context.Context, title string, themes []*registry.Theme, current string, opts ...tea.ProgramOption) (string, error) {
	zoneOnce.Do(zone.NewGlobal)

	m := New(title, themes).SetSelectedSlug(current)
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}
	slug, ok := final.(Model).Result()
	if !ok {
		return "", ErrCancelled
	}
	return slug, nil
}

// Chip renders a theme's primary colors for one-line summaries.
func Chip(t *registry.Theme) string {
	var primary []brand.ColorToken
	for _, c := range t.Colors {
		if c.PrimaryRole() != "" {
			primary = append(primary, c)
		}
	}
	return swatch.Strip(primary, stripLength)
}
