// Package markdown renders theme descriptions as styled terminal markdown.
package markdown

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
)

// DefaultWidth is used when no positive width is given.
const DefaultWidth = 80

// Options configures a Renderer.
type Options struct {
	Width int
	// Accent colors headings and links (#rrggbb). Empty keeps the base style.
	Accent string
	// Plain renders without ANSI styling.
	Plain bool
}

// Renderer wraps glamour with nextgen-theme specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	accent   string
}

// New creates a markdown renderer with the given width.
func New(width int) (*Renderer, error) {
	return NewWithOptions(Options{Width: width})
}

// ForTheme creates a renderer whose headings use the theme's primary color.
func ForTheme(t *registry.Theme, width int, plain bool) (*Renderer, error) {
	return NewWithOptions(Options{Width: width, Accent: Accent(t), Plain: plain})
}

// NewWithOptions creates a renderer. The document margin is always removed.
func NewWithOptions(opts Options) (*Renderer, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	base := glamour.WithAutoStyle()
	if opts.Plain {
		base = glamour.WithStandardStyle(styles.NoTTYStyle)
		opts.Accent = ""
	}

	override, err := styleOverride(opts.Accent)
	if err != nil {
		return nil, err
	}

	r, err := glamour.NewTermRenderer(
		base,
		glamour.WithStylesFromJSONBytes(override),
		glamour.WithWordWrap(opts.Width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: opts.Width, accent: opts.Accent}, nil
}

type stylePrimitive struct {
	Color string `json:"color"`
}

type documentStyle struct {
	Margin      int    `json:"margin"`
	BlockPrefix string `json:"block_prefix"`
	BlockSuffix string `json:"block_suffix"`
}

// styleOverride builds the JSON merged over the base glamour style.
func styleOverride(accent string) ([]byte, error) {
	style := map[string]any{
		"document": documentStyle{},
	}
	if accent != "" {
		for _, el := range []string{"h1", "h2", "h3", "link", "link_text"} {
			style[el] = stylePrimitive{Color: accent}
		}
	}
	data, err := json.Marshal(style)
	if err != nil {
		return nil, fmt.Errorf("encoding markdown style: %w", err)
	}
	return data, nil
}

// Accent returns the hex color of the theme's primary token, or "" when the
// primary slot is not a parseable token.
func Accent(t *registry.Theme) string {
	if t == nil || t.Brand == nil {
		return ""
	}
	token, ok := t.TokenFor(t.Vars["primary"])
	if !ok {
		return ""
	}
	c, ok := brand.ParseOKLCH(token.OKLCH)
	if !ok {
		return ""
	}
	return c.Hex()
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Accent returns the heading color in use, or "".
func (r *Renderer) Accent() string {
	return r.accent
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
