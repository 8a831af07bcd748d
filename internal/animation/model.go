// Package animation models interaction animation presets and compiles them
// into theme-scoped CSS rules.
package animation

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cssgen"
)

// Transform is a CSS transform. Raw wins over the composed form.
type Transform struct {
	Raw       string `yaml:"raw"`
	Translate string `yaml:"translate"`
	Scale     string `yaml:"scale"`
}

// CSS returns the transform value, or "" when nothing is set.
func (t *Transform) CSS() string {
	if t == nil {
		return ""
	}
	if t.Raw != "" {
		return t.Raw
	}
	out := t.Translate
	if t.Scale != "" {
		if out != "" {
			out += " "
		}
		out += "scale(" + t.Scale + ")"
	}
	return out
}

// UnmarshalYAML accepts a raw transform string or a mapping.
func (t *Transform) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Transform{Raw: node.Value}
		return nil
	}
	type plain Transform
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*t = Transform(p)
	return nil
}

// State is the styling of a component in one interaction state.
type State struct {
	Duration        string            `yaml:"duration"`
	Easing          string            `yaml:"easing"`
	Transform       *Transform        `yaml:"transform"`
	BoxShadow       string            `yaml:"box_shadow"`
	Opacity         string            `yaml:"opacity"`
	BackgroundColor string            `yaml:"background_color"`
	Border          string            `yaml:"border"`
	Filter          string            `yaml:"filter"`
	Custom          map[string]string `yaml:"custom"`
}

// Decls returns the state's declarations in emission order. Custom
// properties follow the known ones in sorted order. Duration and Easing are
// not emitted; timing comes from the component's global transition.
func (s *State) Decls() []cssgen.Decl {
	var decls []cssgen.Decl
	add := func(prop, value string) {
		if value != "" {
			decls = append(decls, cssgen.Decl{Prop: prop, Value: value})
		}
	}

	add("transform", s.Transform.CSS())
	add("box-shadow", s.BoxShadow)
	add("opacity", s.Opacity)
	add("background-color", s.BackgroundColor)
	add("border", s.Border)
	add("filter", s.Filter)

	keys := make([]string, 0, len(s.Custom))
	for k := range s.Custom {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		add(k, s.Custom[k])
	}
	return decls
}

// Global holds properties applied to a component regardless of state.
type Global struct {
	Transition      string `yaml:"transition"`
	TransformOrigin string `yaml:"transform_origin"`
	WillChange      string `yaml:"will_change"`
}

// Decls returns the non-empty global declarations.
func (g *Global) Decls() []cssgen.Decl {
	if g == nil {
		return nil
	}
	var decls []cssgen.Decl
	for _, d := range []cssgen.Decl{
		{Prop: "transition", Value: g.Transition},
		{Prop: "transform-origin", Value: g.TransformOrigin},
		{Prop: "will-change", Value: g.WillChange},
	} {
		if d.Value != "" {
			decls = append(decls, d)
		}
	}
	return decls
}

// Interactive is the per-state animation of one component.
type Interactive struct {
	Default  *State  `yaml:"default"`
	Hover    *State  `yaml:"hover"`
	Focus    *State  `yaml:"focus"`
	Active   *State  `yaml:"active"`
	Disabled *State  `yaml:"disabled"`
	Global   *Global `yaml:"global"`
}

// State returns the configuration for s, or nil.
func (c *Interactive) State(s cssgen.State) *State {
	if c == nil {
		return nil
	}
	switch s {
	case cssgen.StateDefault:
		return c.Default
	case cssgen.StateHover:
		return c.Hover
	case cssgen.StateFocus:
		return c.Focus
	case cssgen.StateActive:
		return c.Active
	case cssgen.StateDisabled:
		return c.Disabled
	}
	return nil
}

func (c *Interactive) setState(s cssgen.State, st *State) {
	switch s {
	case cssgen.StateDefault:
		c.Default = st
	case cssgen.StateHover:
		c.Hover = st
	case cssgen.StateFocus:
		c.Focus = st
	case cssgen.StateActive:
		c.Active = st
	case cssgen.StateDisabled:
		c.Disabled = st
	}
}

// Variant is a button visual variant.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

// Variants lists button variants in emission order.
var Variants = []Variant{VariantDefault, VariantDestructive, VariantOutline, VariantSecondary, VariantGhost, VariantLink}

// ButtonAnimation is either one animation for every button variant
// (Universal) or a separate animation per variant (ByVariant). Global applies
// once in both cases.
type ButtonAnimation struct {
	Universal *Interactive
	ByVariant map[Variant]*Interactive
	Global    *Global
}

// Universal wraps a single interactive configuration.
func Universal(c Interactive) ButtonAnimation {
	return ButtonAnimation{Universal: &c, Global: c.Global}
}

// PerVariant builds a per-variant configuration.
func PerVariant(global *Global, variants map[Variant]*Interactive) ButtonAnimation {
	return ButtonAnimation{ByVariant: variants, Global: global}
}

// IsVariant reports whether the animation is keyed by button variant.
func (b ButtonAnimation) IsVariant() bool {
	return len(b.ByVariant) > 0
}

// IsZero reports whether no button animation is configured.
func (b ButtonAnimation) IsZero() bool {
	return b.Universal == nil && len(b.ByVariant) == 0 && b.Global == nil
}

var stateKeys = []string{"default", "hover", "focus", "active", "disabled"}

// UnmarshalYAML detects the per-variant form by the presence of a variant
// key (a "default" key counts when it holds states rather than properties).
func (b *ButtonAnimation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: button animation must be a mapping", node.Line)
	}

	var raw map[string]yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if !isVariantNode(raw) {
		var c Interactive
		if err := node.Decode(&c); err != nil {
			return err
		}
		*b = Universal(c)
		return nil
	}

	out := ButtonAnimation{ByVariant: map[Variant]*Interactive{}}
	for key, child := range raw {
		if key == "global" {
			var g Global
			if err := child.Decode(&g); err != nil {
				return err
			}
			out.Global = &g
			continue
		}
		if !slices.Contains(Variants, Variant(key)) {
			return fmt.Errorf("line %d: unknown button variant %q", child.Line, key)
		}
		var c Interactive
		if err := child.Decode(&c); err != nil {
			return err
		}
		out.ByVariant[Variant(key)] = &c
	}
	*b = out
	return nil
}

func isVariantNode(raw map[string]yaml.Node) bool {
	for _, v := range []Variant{VariantDestructive, VariantOutline, VariantSecondary, VariantGhost, VariantLink} {
		if _, ok := raw[string(v)]; ok {
			return true
		}
	}
	def, ok := raw[string(VariantDefault)]
	if !ok || def.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(def.Content); i += 2 {
		if slices.Contains(stateKeys, def.Content[i].Value) || def.Content[i].Value == "global" {
			return true
		}
	}
	return false
}

// Preset is a named bundle of per-component animations.
type Preset struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	Button        ButtonAnimation   `yaml:"button"`
	Link          *Interactive      `yaml:"link"`
	Input         *Interactive      `yaml:"input"`
	Card          *Interactive      `yaml:"card"`
	GlobalClasses map[string]string `yaml:"global_classes"`
	Keyframes     map[string]string `yaml:"keyframes"`
}
