package brand

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cssgen"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

const maxChartSlots = 5

// ThemeCSSVars maps custom property names (without "--") to CSS values.
type ThemeCSSVars map[string]string

// Keys returns the variable names in sorted order.
func (v ThemeCSSVars) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// CSS renders the variables as a single rule for selector.
func (v ThemeCSSVars) CSS(selector string) string {
	var b strings.Builder
	b.WriteString(selector + " {\n")
	for _, k := range v.Keys() {
		fmt.Fprintf(&b, "  --%s: %s;\n", k, v[k])
	}
	b.WriteString("}\n")
	return b.String()
}

type varsBuilder struct {
	brandName string
	tokens    []ColorToken
	vars      ThemeCSSVars
}

// resolve passes literals through and resolves references to the base
// variable of the named token. Steps are ignored at this level.
func (b *varsBuilder) resolve(v StyleValue) (string, bool) {
	switch {
	case v.IsZero():
		return "", false
	case v.IsLiteral():
		return v.Text(), true
	default:
		return ResolveAbstractColorRef(v.Text(), b.brandName, b.tokens), true
	}
}

func (b *varsBuilder) set(key string, v StyleValue) {
	if resolved, ok := b.resolve(v); ok {
		b.vars[key] = resolved
	}
}

func (b *varsBuilder) pair(key string, p ColorPair) {
	b.set(key, p.Color)
	b.set(key+"-foreground", p.Foreground)
}

func (b *varsBuilder) sidebar(s SidebarColors) {
	b.set("sidebar", s.Sidebar)
	b.set("sidebar-foreground", s.Foreground)
	b.set("sidebar-primary", s.Primary)
	b.set("sidebar-primary-foreground", s.PrimaryForeground)
	b.set("sidebar-accent", s.Accent)
	b.set("sidebar-accent-foreground", s.AccentForeground)
	b.set("sidebar-border", s.Border)
	b.set("sidebar-ring", s.Ring)
}

// CreateThemeCSSVars flattens a style guide and auxiliary variables into one
// variable set.
func CreateThemeCSSVars(brandName string, tokens []ColorToken, style StyleGuide, other OtherVars) ThemeCSSVars {
	b := &varsBuilder{brandName: brandName, tokens: tokens, vars: ThemeCSSVars{}}

	b.set("background", other.Background.Or(style.Primary.Color))
	b.set("foreground", other.Foreground.Or(style.Primary.Foreground))

	b.pair("card", style.Card)
	b.pair("popover", style.Popover)
	b.pair("primary", style.Primary)
	b.pair("secondary", style.Secondary)
	b.pair("muted", style.Muted)
	b.pair("accent", style.Accent)
	b.pair("destructive", style.Destructive)
	if style.Success != nil {
		b.pair("success", *style.Success)
	}
	if style.Info != nil {
		b.pair("info", *style.Info)
	}
	if style.Warning != nil {
		b.pair("warning", *style.Warning)
	}

	b.set("border", style.Border)
	b.set("input", style.Input.Input)
	b.set("input-foreground", style.Input.Foreground)
	b.set("ring", style.Ring)

	if style.Sidebar != nil {
		b.sidebar(*style.Sidebar)
	}
	if other.SidebarColors != nil {
		b.sidebar(*other.SidebarColors)
	}
	b.set("sidebar", other.Sidebar)

	b.set("radius", other.Radius.Or(style.Radius))
	b.set("spacing", style.Spacing)
	b.set("border-width", other.BorderWidth)
	b.set("border-style", other.BorderStyle)
	for _, s := range other.Shadows {
		if s.Name != "" && s.Value != "" {
			b.vars["shadow-"+s.Name] = cssgen.NormalizeMultiline(s.Value)
		}
	}
	for i, c := range other.Chart {
		if i == maxChartSlots {
			log.Warn(log.CatTokens, "ignoring extra chart colors", "brand", brandName, "count", len(other.Chart))
			break
		}
		b.set(fmt.Sprintf("chart-%d", i+1), c)
	}
	b.set("chart-outline", other.ChartOutline)

	return b.vars
}
