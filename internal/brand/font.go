package brand

import "slices"

// FontToken describes a typeface and the typography roles it serves.
type FontToken struct {
	Name        string `yaml:"name"`
	Family      string `yaml:"family"`
	Description string `yaml:"description"`
	// Roles are tags such as "sans", "serif", "mono", "heading", "body" or an
	// element name ("h1".."h6", "p").
	Roles []string `yaml:"roles"`
	// Weights maps a typography role to a weight name or number.
	Weights map[string]string `yaml:"weights"`
	// Sizes maps a typography role to a CSS length.
	Sizes map[string]string `yaml:"sizes"`
}

// HasRole reports whether the font is tagged with role.
func (f FontToken) HasRole(role string) bool {
	return slices.Contains(f.Roles, role)
}

var fontWeights = map[string]string{
	"thin":       "100",
	"hairline":   "100",
	"extralight": "200",
	"ultralight": "200",
	"light":      "300",
	"normal":     "400",
	"regular":    "400",
	"medium":     "500",
	"semibold":   "600",
	"demibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"ultrabold":  "800",
	"black":      "900",
	"heavy":      "900",
}

// FontWeightValue maps a weight name to its numeric value. Unknown names,
// including numeric weights, are returned unchanged.
func FontWeightValue(name string) string {
	if v, ok := fontWeights[name]; ok {
		return v
	}
	return name
}

// FindFont returns the first font tagged with role.
func FindFont(fonts []FontToken, role string) (FontToken, bool) {
	for _, f := range fonts {
		if f.HasRole(role) {
			return f, true
		}
	}
	return FontToken{}, false
}
