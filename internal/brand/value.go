package brand

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type valueKind uint8

const (
	kindNone valueKind = iota
	kindLiteral
	kindRef
)

// StyleValue is either a literal CSS value or a reference to a color token,
// optionally at a lightness step. The zero value means "not set".
type StyleValue struct {
	kind valueKind
	text string
	step StepKey
}

// Literal returns a value emitted verbatim.
func Literal(css string) StyleValue {
	return StyleValue{kind: kindLiteral, text: css}
}

// Ref returns a reference to the token named name.
func Ref(name string) StyleValue {
	return StyleValue{kind: kindRef, text: name}
}

// RefStep returns a reference to a lightness step of the token named name.
func RefStep(name string, step StepKey) StyleValue {
	return StyleValue{kind: kindRef, text: name, step: step}
}

// literalMarkers identify authored scalars that are already CSS.
var literalMarkers = []string{"px", "rem", "em", "%", "solid", "dashed", "rgba", "hsla"}

// LooksLiteral reports whether an authored scalar is a CSS value rather than a
// token name: it starts with "var(--" or contains a unit or keyword marker.
func LooksLiteral(s string) bool {
	if strings.HasPrefix(s, "var(--") {
		return true
	}
	for _, m := range literalMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// ParseStyleValue classifies an authored scalar. Empty input yields the zero
// value.
func ParseStyleValue(s string) StyleValue {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return StyleValue{}
	case LooksLiteral(s):
		return Literal(s)
	default:
		name, step := SplitRef(s)
		return RefStep(name, step)
	}
}

// IsZero reports whether the value is unset.
func (v StyleValue) IsZero() bool { return v.kind == kindNone }

// IsLiteral reports whether the value is a literal.
func (v StyleValue) IsLiteral() bool { return v.kind == kindLiteral }

// IsRef reports whether the value references a token.
func (v StyleValue) IsRef() bool { return v.kind == kindRef }

// Text returns the literal CSS or the referenced token name.
func (v StyleValue) Text() string { return v.text }

// Step returns the referenced step, "" for base references and literals.
func (v StyleValue) Step() StepKey { return v.step }

// String renders the authored form: the literal, "name" or "name:step".
func (v StyleValue) String() string {
	if v.kind == kindRef && v.step != "" {
		return v.text + ":" + string(v.step)
	}
	return v.text
}

// Or returns v, or fallback when v is unset.
func (v StyleValue) Or(fallback StyleValue) StyleValue {
	if v.IsZero() {
		return fallback
	}
	return v
}

type styleValueDoc struct {
	Literal *string `yaml:"literal" json:"literal,omitempty"`
	Ref     string  `yaml:"ref" json:"ref,omitempty"`
	Step    StepKey `yaml:"step" json:"step,omitempty"`
}

func (d styleValueDoc) value() (StyleValue, error) {
	switch {
	case d.Literal != nil && d.Ref != "":
		return StyleValue{}, fmt.Errorf("style value sets both literal and ref")
	case d.Literal != nil:
		return Literal(*d.Literal), nil
	case d.Ref != "":
		return RefStep(d.Ref, d.Step), nil
	default:
		return StyleValue{}, nil
	}
}

// UnmarshalYAML accepts a scalar (classified with ParseStyleValue) or an
// explicit mapping {literal: ...} / {ref: ..., step: ...}.
func (v *StyleValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = ParseStyleValue(node.Value)
		return nil
	case yaml.MappingNode:
		var doc styleValueDoc
		if err := node.Decode(&doc); err != nil {
			return fmt.Errorf("decode style value: %w", err)
		}
		parsed, err := doc.value()
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*v = parsed
		return nil
	default:
		return fmt.Errorf("line %d: style value must be a scalar or mapping", node.Line)
	}
}

// MarshalJSON writes the explicit mapping form.
func (v StyleValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindLiteral:
		return json.Marshal(styleValueDoc{Literal: &v.text})
	case kindRef:
		return json.Marshal(styleValueDoc{Ref: v.text, Step: v.step})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts the same shapes as UnmarshalYAML.
func (v *StyleValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = ParseStyleValue(s)
		return nil
	}
	var doc styleValueDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode style value: %w", err)
	}
	parsed, err := doc.value()
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
