package brand

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/animation"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"  Nordic  Frost!! ", "nordic-frost"},
		{"Café 24/7", "caf-24-7"},
		{"already-slug", "already-slug"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

const sampleDefinition = `
name: Acme Corp
seven_axis_code: A1-B2
rating: 4.5
business:
  name: Acme
  industry: Manufacturing
colors:
  - name: Brand Blue
    oklch: oklch(0.6 0.2 250)
    roles: [ring, primary]
    category: color
  - name: White
    oklch: oklch(1 0 0)
    roles: [background]
    category: shade
fonts:
  - name: Inter
    family: '"Inter", ui-sans-serif, system-ui, sans-serif'
    roles: [sans, body]
    weights: {h1: bold}
    sizes: {h1: 2.25rem}
style:
  primary: {color: Brand Blue, foreground: White}
  card: {color: White}
  ring: Brand Blue
  radius: 0.5rem
vars:
  background: White
animation:
  preset: bouncy
`

func TestNew_FromYAML(t *testing.T) {
	var def Definition
	require.NoError(t, yaml.Unmarshal([]byte(sampleDefinition), &def))

	b := New(def)

	require.Equal(t, "Acme Corp", b.Name)
	require.Equal(t, "acme-corp", b.Slug)
	require.Equal(t, "A1-B2", b.SevenAxisCode)
	require.NotNil(t, b.Rating)
	require.InDelta(t, 4.5, *b.Rating, 1e-9)
	require.Equal(t, "Manufacturing", b.Business.Industry)

	require.Len(t, b.Colors, 2)
	require.Equal(t, []Role{RolePrimary, RoleRing}, b.Colors[0].Roles)
	require.Len(t, b.Colors[0].ThemeSteps, 4)

	require.Equal(t, "var(--white)", b.Vars["background"])
	require.Equal(t, "var(--brand-blue)", b.Vars["primary"])
	require.Equal(t, "0.5rem", b.Vars["radius"])

	require.Equal(t, animation.ThemeConfig{Preset: "bouncy", RootClassName: "theme-acme-corp"}, b.Animation)
	require.Equal(t, "theme-acme-corp", b.RootClassName())
}

func TestNew_DefaultAnimation(t *testing.T) {
	b := New(Definition{Name: "Plain"})
	require.Equal(t, "subtle", b.Animation.Preset)
	require.Equal(t, "theme-plain", b.RootClassName())
}

func TestBrand_TokenFor(t *testing.T) {
	b := New(Definition{
		Name: "Acme",
		Colors: []RawColorDefinition{
			{TokenSpecificName: "Brand Blue", OKLCH: "oklch(0.6 0.2 250)", Category: CategoryColor},
		},
	})

	token, ok := b.TokenFor("var(--brand-blue)")
	require.True(t, ok)
	require.Equal(t, "Brand Blue", token.Name)

	_, ok = b.TokenFor("var(--brand-blue-bright)")
	require.False(t, ok)
	_, ok = b.TokenFor("oklch(0.5 0 0)")
	require.False(t, ok)
}

func TestFontWeightValue(t *testing.T) {
	require.Equal(t, "700", FontWeightValue("bold"))
	require.Equal(t, "100", FontWeightValue("thin"))
	require.Equal(t, "900", FontWeightValue("black"))
	require.Equal(t, "550", FontWeightValue("550"))
}

func TestFindFont(t *testing.T) {
	fonts := []FontToken{
		{Name: "Inter", Roles: []string{"sans", "body"}},
		{Name: "Fraunces", Roles: []string{"serif", "heading"}},
		{Name: "Inter Display", Roles: []string{"heading"}},
	}
	f, ok := FindFont(fonts, "heading")
	require.True(t, ok)
	require.Equal(t, "Fraunces", f.Name)

	_, ok = FindFont(fonts, "mono")
	require.False(t, ok)
}
