package brand

import (
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// FallbackColorNotFound is returned for references that name no token.
const FallbackColorNotFound = "var(--fallback-color-not-found)"

// SplitRef splits "name" or "name:step" on the first colon.
func SplitRef(ref string) (name string, step StepKey) {
	name, s, _ := strings.Cut(ref, ":")
	return name, StepKey(s)
}

// FindToken returns the first token whose Name or RawTokenSpecificName
// equals name.
func FindToken(tokens []ColorToken, name string) (ColorToken, bool) {
	for _, t := range tokens {
		if t.Name == name || t.RawTokenSpecificName == name {
			return t, true
		}
	}
	return ColorToken{}, false
}

// FindTokenByVariable returns the first token with the given variable name.
func FindTokenByVariable(tokens []ColorToken, variableName string) (ColorToken, bool) {
	for _, t := range tokens {
		if t.VariableName == variableName {
			return t, true
		}
	}
	return ColorToken{}, false
}

// ResolveAbstractColorRef resolves "Token Name" or "Token Name:step" to a CSS
// variable reference. A valid step yields the step variable whether or not the
// token generated it.
func ResolveAbstractColorRef(ref, brandName string, tokens []ColorToken) string {
	name, step := SplitRef(ref)

	token, ok := FindToken(tokens, name)
	if !ok {
		log.Warn(log.CatTokens, "color reference not found", "brand", brandName, "ref", ref)
		return FallbackColorNotFound
	}

	if step == "" || step == "base" {
		return token.Var()
	}
	if !IsValidStep(step) {
		log.Warn(log.CatTokens, "invalid step key, using base color",
			"brand", brandName, "ref", ref, "step", step)
		return token.Var()
	}

	return "var(--" + token.VariableName + "-" + string(step) + ")"
}

// VarTarget extracts X from a value of the exact form "var(--X)".
func VarTarget(value string) (string, bool) {
	inner, ok := strings.CutPrefix(value, "var(--")
	if !ok {
		return "", false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok || inner == "" || strings.ContainsAny(inner, ",() ") {
		return "", false
	}
	return inner, true
}
