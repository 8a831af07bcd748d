package animation

import (
	"maps"
	"slices"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cssgen"
)

// Component selectors.
const (
	ButtonSelector = `[data-slot="button"]:not([data-variant="link"])`
	LinkSelector   = `[data-slot="link"]`
	InputSelector  = `[data-slot="input"]`
	CardSelector   = `[data-slot="card"]`
)

// VariantSelector matches buttons of one visual variant.
func VariantSelector(v Variant) string {
	return `[data-slot="button"][data-variant="` + string(v) + `"]`
}

const (
	resetTransition = "color 150ms ease, background-color 150ms ease, border-color 150ms ease, box-shadow 150ms ease, transform 150ms ease, opacity 150ms ease, filter 150ms ease"
	resetFocusRing  = "0 0 0 3px color-mix(in oklch, var(--ring) 50%, transparent)"
)

// GenerateCSS compiles a resolved theme animation. Undefined states and
// components are skipped.
func GenerateCSS(cfg ThemeAnimation) string {
	var w cssgen.Writer
	scope := "." + cfg.RootClassName + " "
	p := cfg.Preset

	w.Banner(
		"Animation: "+presetLabel(p),
		"Scope: ."+cfg.RootClassName,
	)

	w.Comment("Reset")
	writeReset(&w)

	if decls := p.Button.Global.Decls(); len(decls) > 0 {
		w.Comment("Button base")
		w.Block(scope+ButtonSelector, decls, true)
	}

	if len(p.Keyframes) > 0 {
		w.Comment("Keyframes")
		for _, name := range slices.Sorted(maps.Keys(p.Keyframes)) {
			w.Raw(p.Keyframes[name])
			w.Blank()
		}
	}

	if len(p.GlobalClasses) > 0 {
		w.Comment("Global classes")
		for _, name := range slices.Sorted(maps.Keys(p.GlobalClasses)) {
			w.Open(scope + "." + name)
			w.Raw(p.GlobalClasses[name])
			w.Close()
		}
	}

	if p.Button.IsVariant() {
		for _, v := range Variants {
			c, ok := p.Button.ByVariant[v]
			if !ok {
				continue
			}
			w.Comment("Button: " + string(v))
			writeComponent(&w, scope+VariantSelector(v), c)
		}
	} else if p.Button.Universal != nil {
		w.Comment("Button")
		writeComponent(&w, scope+ButtonSelector, p.Button.Universal)
	}

	for _, comp := range []struct {
		label    string
		selector string
		config   *Interactive
	}{
		{"Link", LinkSelector, p.Link},
		{"Input", InputSelector, p.Input},
		{"Card", CardSelector, p.Card},
	} {
		if comp.config == nil {
			continue
		}
		w.Comment(comp.label)
		writeComponent(&w, scope+comp.selector, comp.config)
	}

	return w.String()
}

func presetLabel(p Preset) string {
	if p.Name == "" {
		return "custom"
	}
	return p.Name
}

// writeReset neutralizes declarations a previously active preset may have
// left on buttons.
func writeReset(w *cssgen.Writer) {
	cssgen.StateEmitter{
		Selector: func(s cssgen.State) string { return ButtonSelector + s.Pseudo() },
		Decls: func(s cssgen.State) ([]cssgen.Decl, bool) {
			switch s {
			case cssgen.StateDefault:
				return []cssgen.Decl{
					{Prop: "box-shadow", Value: "none"},
					{Prop: "transform", Value: "none"},
					{Prop: "transition", Value: resetTransition},
				}, true
			case cssgen.StateFocus:
				return []cssgen.Decl{
					{Prop: "box-shadow", Value: resetFocusRing},
					{Prop: "transform", Value: "none"},
				}, true
			default:
				return []cssgen.Decl{
					{Prop: "box-shadow", Value: "none"},
					{Prop: "transform", Value: "none"},
				}, true
			}
		},
	}.Emit(w)
}

func writeComponent(w *cssgen.Writer, selector string, c *Interactive) {
	cssgen.StateEmitter{
		Selector: func(s cssgen.State) string { return selector + s.Pseudo() },
		Decls: func(s cssgen.State) ([]cssgen.Decl, bool) {
			st := c.State(s)
			if st == nil {
				return nil, false
			}
			return st.Decls(), true
		},
		Normalize: cssgen.NormalizeShadows,
		Important: true,
	}.Emit(w)
}
