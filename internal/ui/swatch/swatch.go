// Package swatch renders brand color tokens as terminal color blocks.
package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
)

const blockChar = "█"

// Color returns the sRGB terminal color for a token. ok is false when the
// token's value is not an oklch() color.
func Color(t brand.ColorToken) (lipgloss.Color, bool) {
	c, ok := brand.ParseOKLCH(t.OKLCH)
	if !ok {
		return "", false
	}
	return lipgloss.Color(c.Hex()), true
}

// Block renders a token as width filled cells. Unparseable colors render as
// blank cells so rows stay aligned.
func Block(t brand.ColorToken, width int) string {
	if width < 1 {
		return ""
	}
	c, ok := Color(t)
	if !ok {
		return strings.Repeat(" ", width)
	}
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat(blockChar, width))
}

// Strip renders up to limit tokens side by side, two cells each.
func Strip(tokens []brand.ColorToken, limit int) string {
	var b strings.Builder
	n := 0
	for _, t := range tokens {
		if n == limit {
			break
		}
		if _, ok := Color(t); !ok {
			continue
		}
		b.WriteString(Block(t, 2))
		n++
	}
	return b.String()
}

// Chip renders the token name on its own color, using the readable
// foreground the stylesheet would pick.
func Chip(t brand.ColorToken) string {
	bg, ok := Color(t)
	if !ok {
		return t.Name
	}
	style := lipgloss.NewStyle().Background(bg).Padding(0, 1)
	if fg, ok := brand.ParseOKLCH(brand.ReadableForeground(t)); ok {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	return style.Render(t.Name)
}

// Legend renders one line per token: a block, the name and the hex value.
func Legend(tokens []brand.ColorToken, nameWidth int) string {
	lines := make([]string, 0, len(tokens))
	for _, t := range tokens {
		c, ok := Color(t)
		hex := "-"
		if ok {
			hex = string(c)
		}
		name := runewidth.FillRight(runewidth.Truncate(t.Name, nameWidth, "…"), nameWidth)
		lines = append(lines, Block(t, 2)+" "+name+" "+hex)
	}
	return strings.Join(lines, "\n")
}
