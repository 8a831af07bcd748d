package brand

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// NearBlack is the dark foreground candidate for light surfaces.
	NearBlack = "oklch(0.05 0.01 0)"
	// NearWhite is the light foreground candidate, also used when the
	// surface lightness is unknown.
	NearWhite = "oklch(0.985 0 0)"
)

var (
	nearBlack = OKLCH{L: 0.05, C: 0.01, H: 0}
	nearWhite = OKLCH{L: 0.985, C: 0, H: 0}
)

// OKLCH is a parsed oklch() color. Alpha is ignored.
type OKLCH struct {
	L, C, H float64
}

// ParseOKLCH parses "oklch(L C H)" and "oklch(L% C H / A)". Lightness given
// as a percentage is scaled to 0..1.
func ParseOKLCH(s string) (OKLCH, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	inner, ok := strings.CutPrefix(s, "oklch(")
	if !ok {
		return OKLCH{}, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return OKLCH{}, false
	}
	inner, _, _ = strings.Cut(inner, "/")

	fields := strings.Fields(inner)
	if len(fields) != 3 {
		return OKLCH{}, false
	}

	var out OKLCH
	l, err := parseComponent(fields[0])
	if err != nil {
		return OKLCH{}, false
	}
	out.L = l
	if out.C, err = parseComponent(fields[1]); err != nil {
		return OKLCH{}, false
	}
	h := strings.TrimSuffix(fields[2], "deg")
	if h == "none" {
		h = "0"
	}
	if out.H, err = strconv.ParseFloat(h, 64); err != nil {
		return OKLCH{}, false
	}
	return out, true
}

func parseComponent(f string) (float64, error) {
	if f == "none" {
		return 0, nil
	}
	if p, ok := strings.CutSuffix(f, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err
	}
	return strconv.ParseFloat(f, 64)
}

// Color converts to a clamped sRGB color.
func (c OKLCH) Color() colorful.Color {
	return colorful.OkLch(c.L, c.C, c.H).Clamped()
}

// Hex returns the sRGB hex form, e.g. "#3b82f6".
func (c OKLCH) Hex() string {
	return c.Color().Hex()
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between a and b.
func ContrastRatio(a, b OKLCH) float64 {
	la, lb := relativeLuminance(a.Color()), relativeLuminance(b.Color())
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ReadableForeground picks NearBlack or NearWhite, whichever contrasts more
// with the token's surface. Tokens without a known lightness get NearWhite.
func ReadableForeground(t ColorToken) string {
	if !t.HasLightness {
		return NearWhite
	}
	surface, ok := ParseOKLCH(t.OKLCH)
	if !ok {
		surface = OKLCH{L: t.Lightness}
	}
	surface.L = t.Lightness

	if ContrastRatio(surface, nearBlack) > ContrastRatio(surface, nearWhite) {
		return NearBlack
	}
	return NearWhite
}
