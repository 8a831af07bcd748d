package cssgen

import (
	"regexp"
	"strings"
)

// State is an interaction state of a component.
type State string

const (
	StateDefault  State = "default"
	StateHover    State = "hover"
	StateFocus    State = "focus"
	StateActive   State = "active"
	StateDisabled State = "disabled"
)

// States lists interaction states in emission order.
var States = []State{StateDefault, StateHover, StateFocus, StateActive, StateDisabled}

// Pseudo returns the pseudo-class suffix appended to a component selector
// for the state. The default state has none.
func (s State) Pseudo() string {
	switch s {
	case StateHover:
		return ":hover:not(:disabled)"
	case StateFocus:
		return ":focus-visible:not(:disabled)"
	case StateActive:
		return ":active:not(:disabled)"
	case StateDisabled:
		return ":disabled"
	default:
		return ""
	}
}

// StateEmitter compiles per-state declarations into CSS rules.
type StateEmitter struct {
	// Selector builds the rule selector for a state.
	Selector func(State) string
	// Decls returns the declarations for a state; ok is false when the state
	// is not defined and must be skipped.
	Decls func(State) (decls []Decl, ok bool)
	// Normalize rewrites a value before emission. Optional.
	Normalize func(prop, value string) string
	Important bool
}

// Emit writes one rule per defined state, in States order.
func (e StateEmitter) Emit(w *Writer) {
	for _, s := range States {
		decls, ok := e.Decls(s)
		if !ok {
			continue
		}
		if e.Normalize != nil {
			normalized := make([]Decl, 0, len(decls))
			for _, d := range decls {
				normalized = append(normalized, Decl{Prop: d.Prop, Value: e.Normalize(d.Prop, d.Value)})
			}
			decls = normalized
		}
		w.Block(e.Selector(s), decls, e.Important)
	}
}

var (
	newlineRun    = regexp.MustCompile(`\s*\n\s*`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// NormalizeMultiline collapses a multi-line value (typically a layered
// box-shadow) onto a single line.
func NormalizeMultiline(value string) string {
	value = newlineRun.ReplaceAllString(value, " ")
	value = whitespaceRun.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// NormalizeShadows applies NormalizeMultiline to box-shadow values only.
func NormalizeShadows(prop, value string) string {
	if prop == "box-shadow" {
		return NormalizeMultiline(value)
	}
	return value
}
