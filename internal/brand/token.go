package brand

import (
	"fmt"
	"regexp"
	"strings"
)

// Category distinguishes hue-bearing accent colors from structural
// foundation colors.
type Category string

const (
	// CategoryColor tokens get derived lightness steps.
	CategoryColor Category = "color"
	// CategoryShade tokens do not.
	CategoryShade Category = "shade"
)

// StepKey names a derived lightness step of an accent token.
type StepKey string

const (
	StepBright   StepKey = "bright"
	StepBrighter StepKey = "brighter"
	StepDark     StepKey = "dark"
	StepDarker   StepKey = "darker"
)

// StepKeys lists the lightness steps in emission order.
var StepKeys = []StepKey{StepBright, StepBrighter, StepDark, StepDarker}

// IsValidStep reports whether s is one of StepKeys.
func IsValidStep(s StepKey) bool {
	switch s {
	case StepBright, StepBrighter, StepDark, StepDarker:
		return true
	}
	return false
}

type stepMix struct {
	own   int
	mixed int
	with  string
}

var stepMixes = map[StepKey]stepMix{
	StepBright:   {own: 92, mixed: 8, with: "white"},
	StepBrighter: {own: 85, mixed: 15, with: "white"},
	StepDark:     {own: 92, mixed: 8, with: "black"},
	StepDarker:   {own: 85, mixed: 15, with: "black"},
}

// StepExpression returns the color-mix expression deriving step from the
// variable --variableName.
func StepExpression(variableName string, step StepKey) string {
	m := stepMixes[step]
	return fmt.Sprintf("color-mix(in oklch, var(--%s) %d%%, %s %d%%)", variableName, m.own, m.with, m.mixed)
}

// ExtraStep is an additional derived variable a theme wants beyond the four
// standard steps. Value is emitted verbatim.
type ExtraStep struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// RawColorDefinition is an authored color token.
type RawColorDefinition struct {
	TokenSpecificName string      `yaml:"name"`
	Description       string      `yaml:"description"`
	OKLCH             string      `yaml:"oklch"`
	Roles             []Role      `yaml:"roles"`
	Category          Category    `yaml:"category"`
	OnColor           string      `yaml:"on_color"`
	Lightness         *float64    `yaml:"lightness"`
	ExtraSteps        []ExtraStep `yaml:"extra_steps"`
}

// ColorToken is a compiled color definition.
type ColorToken struct {
	// Name is the display name, qualified by the brand prefix when one is set.
	Name                 string
	RawTokenSpecificName string
	VariableName         string
	Description          string
	OKLCH                string
	Roles                []Role
	Category             Category
	OnColor              string
	ThemeSteps           map[StepKey]string
	ExtraSteps           []ExtraStep
	Lightness            float64
	HasLightness         bool
	Prefix               string
}

// PrimaryRole returns the most influential role, or "" when the token has none.
func (t ColorToken) PrimaryRole() Role {
	if len(t.Roles) == 0 {
		return ""
	}
	return t.Roles[0]
}

// Var returns the CSS reference to the token's own variable.
func (t ColorToken) Var() string {
	return "var(--" + t.VariableName + ")"
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// VariableName lowercases name and replaces whitespace runs with "-".
func VariableName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// CreateColorToken compiles one raw definition.
func CreateColorToken(raw RawColorDefinition, prefix string) ColorToken {
	name := raw.TokenSpecificName
	if prefix != "" {
		name = prefix + " " + raw.TokenSpecificName
	}

	token := ColorToken{
		Name:                 name,
		RawTokenSpecificName: raw.TokenSpecificName,
		VariableName:         VariableName(raw.TokenSpecificName),
		Description:          raw.Description,
		OKLCH:                raw.OKLCH,
		Roles:                SortRolesByInfluence(raw.Roles),
		Category:             raw.Category,
		OnColor:              raw.OnColor,
		ThemeSteps:           map[StepKey]string{},
		ExtraSteps:           raw.ExtraSteps,
		Prefix:               prefix,
	}

	if raw.Category == CategoryColor {
		for _, step := range StepKeys {
			token.ThemeSteps[step] = StepExpression(token.VariableName, step)
		}
	}

	switch {
	case raw.Lightness != nil:
		token.Lightness, token.HasLightness = *raw.Lightness, true
	default:
		if c, ok := ParseOKLCH(raw.OKLCH); ok {
			token.Lightness, token.HasLightness = c.L, true
		}
	}

	return token
}

// GenerateBrandColors compiles raws in order. Variable name uniqueness is the
// caller's responsibility.
func GenerateBrandColors(prefix string, raws []RawColorDefinition) []ColorToken {
	tokens := make([]ColorToken, 0, len(raws))
	for _, raw := range raws {
		tokens = append(tokens, CreateColorToken(raw, prefix))
	}
	return tokens
}
