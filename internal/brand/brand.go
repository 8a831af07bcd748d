package brand

import (
	"regexp"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/animation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// BusinessDetails describes the business a brand belongs to.
type BusinessDetails struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
	Industry    string `yaml:"industry" json:"industry,omitempty"`
	Website     string `yaml:"website" json:"website,omitempty"`
}

// Definition is an authored theme before compilation.
type Definition struct {
	Name          string                 `yaml:"name"`
	SevenAxisCode string                 `yaml:"seven_axis_code"`
	Rating        *float64               `yaml:"rating"`
	TokenPrefix   string                 `yaml:"token_prefix"`
	Business      BusinessDetails        `yaml:"business"`
	Colors        []RawColorDefinition   `yaml:"colors"`
	Fonts         []FontToken            `yaml:"fonts"`
	Style         StyleGuide             `yaml:"style"`
	Vars          OtherVars              `yaml:"vars"`
	Animation     *animation.ThemeConfig `yaml:"animation"`
}

// Brand is a compiled theme. It is immutable after New returns.
type Brand struct {
	Name          string
	Slug          string
	SevenAxisCode string
	Rating        *float64
	Business      BusinessDetails
	Colors        []ColorToken
	Fonts         []FontToken
	Style         StyleGuide
	Other         OtherVars
	Vars          ThemeCSSVars
	Animation     animation.ThemeConfig
}

// New compiles def. Compilation problems are logged, never returned.
func New(def Definition) *Brand {
	slug := Slugify(def.Name)
	colors := GenerateBrandColors(def.TokenPrefix, def.Colors)

	for _, c := range colors {
		for _, r := range c.Roles {
			if !IsKnownRole(r) {
				log.Debug(log.CatTokens, "role has no influence score", "brand", def.Name, "token", c.Name, "role", r)
			}
		}
	}

	anim := animation.ThemeConfig{}
	if def.Animation != nil {
		anim = *def.Animation
	}

	return &Brand{
		Name:          def.Name,
		Slug:          slug,
		SevenAxisCode: def.SevenAxisCode,
		Rating:        def.Rating,
		Business:      def.Business,
		Colors:        colors,
		Fonts:         def.Fonts,
		Style:         def.Style,
		Other:         def.Vars,
		Vars:          CreateThemeCSSVars(def.Name, colors, def.Style, def.Vars),
		Animation:     anim.WithDefaults(slug),
	}
}

// RootClassName is the class a consumer applies to scope the animation CSS.
func (b *Brand) RootClassName() string {
	return b.Animation.RootClassName
}

// TokenFor returns the token a variable value points at, if it is a plain
// "var(--x)" reference to one of the brand's tokens.
func (b *Brand) TokenFor(value string) (ColorToken, bool) {
	target, ok := VarTarget(value)
	if !ok {
		return ColorToken{}, false
	}
	return FindTokenByVariable(b.Colors, target)
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins alphanumeric runs with "-".
func Slugify(s string) string {
	return strings.Trim(nonSlugRun.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
