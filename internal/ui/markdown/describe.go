package markdown

import (
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
)

// Describe builds a markdown summary of a theme: business details, color
// tokens with roles, fonts and the animation preset.
func Describe(t *registry.Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "`%s` · %s · %s\n\n", t.Slug, ratingText(t.Rating), t.Source)
	if t.SevenAxisCode != "" {
		fmt.Fprintf(&b, "Seven-axis code: `%s`\n\n", t.SevenAxisCode)
	}

	if biz := t.Business; biz.Name != "" || biz.Description != "" {
		b.WriteString("## Business\n\n")
		if biz.Name != "" {
			fmt.Fprintf(&b, "**%s**", biz.Name)
			if biz.Industry != "" {
				fmt.Fprintf(&b, " (%s)", biz.Industry)
			}
			b.WriteString("\n\n")
		}
		if biz.Description != "" {
			b.WriteString(biz.Description + "\n\n")
		}
		if biz.Website != "" {
			fmt.Fprintf(&b, "<%s>\n\n", biz.Website)
		}
	}

	if len(t.Colors) > 0 {
		b.WriteString("## Colors\n\n")
		b.WriteString("| Token | Variable | Value | Roles |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, c := range t.Colors {
			fmt.Fprintf(&b, "| %s | `--%s` | `%s` | %s |\n", c.Name, c.VariableName, c.OKLCH, rolesText(c.Roles))
		}
		b.WriteString("\n")
	}

	if len(t.Fonts) > 0 {
		b.WriteString("## Fonts\n\n")
		for _, f := range t.Fonts {
			fmt.Fprintf(&b, "- **%s**: `%s`", f.Name, f.Family)
			if len(f.Roles) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(f.Roles, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Animation\n\n")
	fmt.Fprintf(&b, "Preset `%s`, scoped to `.%s`", t.Animation.Preset, t.RootClassName())
	if t.Animation.Overrides != nil {
		b.WriteString(" with overrides")
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "%d CSS variables.\n", len(t.Vars))
	return b.String()
}

func ratingText(r *float64) string {
	if r == nil {
		return "unrated"
	}
	return fmt.Sprintf("rated %.1f", *r)
}

func rolesText(roles []brand.Role) string {
	if len(roles) == 0 {
		return "-"
	}
	sorted := brand.SortRolesByInfluence(roles)
	names := make([]string, len(sorted))
	for i, r := range sorted {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
