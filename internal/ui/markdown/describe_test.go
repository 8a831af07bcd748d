package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
)

const harborLight = `
name: Harbor Light
seven_axis_code: CM-HI-SY
rating: 4.2
business:
  name: Harbor Light Co
  industry: Shipping
  description: Charters along the fjords.
colors:
  - name: Navy
    oklch: oklch(0.3 0.1 250)
    roles: [primary-foreground, primary]
    category: color
fonts:
  - name: Inter
    family: '"Inter", sans-serif'
    roles: [sans, body]
animation:
  preset: glow
`

func harborTheme(t *testing.T) *registry.Theme {
	t.Helper()
	b, err := registry.ParseTheme([]byte(harborLight))
	require.NoError(t, err)
	return &registry.Theme{Brand: b, Source: registry.SourceUser}
}

func TestDescribe(t *testing.T) {
	md := Describe(harborTheme(t))

	require.Contains(t, md, "# Harbor Light\n")
	require.Contains(t, md, "`harbor-light` · rated 4.2 · user")
	require.Contains(t, md, "Seven-axis code: `CM-HI-SY`")
	require.Contains(t, md, "**Harbor Light Co** (Shipping)")
	require.Contains(t, md, "Charters along the fjords.")
	require.Contains(t, md, "| Navy | `--navy` | `oklch(0.3 0.1 250)` | primary, primary-foreground |")
	require.Contains(t, md, "- **Inter**: `\"Inter\", sans-serif` (sans, body)")
	require.Contains(t, md, "Preset `glow`, scoped to `.theme-harbor-light`.")
	require.Contains(t, md, " CSS variables.")
	require.NotContains(t, md, "<", "no website link without a website")
}

func TestDescribe_MinimalTheme(t *testing.T) {
	b, err := registry.ParseTheme([]byte("name: Bare\ncolors: []\nfonts: []\n"))
	require.NoError(t, err)

	md := Describe(&registry.Theme{Brand: b})
	require.Contains(t, md, "unrated")
	require.NotContains(t, md, "## Business")
	require.NotContains(t, md, "## Colors")
	require.NotContains(t, md, "## Fonts")
	require.Contains(t, md, "## Animation")
}

func TestRenderer_Render(t *testing.T) {
	r, err := New(60)
	require.NoError(t, err)
	require.Equal(t, 60, r.Width())

	out, err := r.Render(Describe(harborTheme(t)))
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Harbor Light")
	require.Contains(t, plain, "Navy")
}
