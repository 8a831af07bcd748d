package animation

import (
	"errors"
	"fmt"
	"maps"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cssgen"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// DefaultPreset is used by themes that do not name one.
const DefaultPreset = "subtle"

// ErrUnknownPreset is returned by Resolve for preset names not in Presets.
var ErrUnknownPreset = errors.New("unknown animation preset")

// ThemeConfig is a theme's authored animation choice.
type ThemeConfig struct {
	RootClassName string  `yaml:"root_class_name"`
	Preset        string  `yaml:"preset"`
	Overrides     *Preset `yaml:"overrides"`
}

// WithDefaults fills the preset name and a root class derived from slug.
func (c ThemeConfig) WithDefaults(slug string) ThemeConfig {
	if c.Preset == "" {
		c.Preset = DefaultPreset
	}
	if c.RootClassName == "" {
		c.RootClassName = "theme-" + slug
	}
	return c
}

// ThemeAnimation is a resolved configuration ready for GenerateCSS.
type ThemeAnimation struct {
	RootClassName string
	Preset        Preset
}

// Resolve looks up the named preset and applies the overrides.
func Resolve(cfg ThemeConfig) (ThemeAnimation, error) {
	name := cfg.Preset
	if name == "" {
		name = DefaultPreset
	}
	base, ok := Presets[name]
	if !ok {
		return ThemeAnimation{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}

	preset := base
	if cfg.Overrides != nil {
		preset = Merge(base, *cfg.Overrides)
		log.Debug(log.CatAnimation, "applied preset overrides", "preset", name, "root", cfg.RootClassName)
	}
	return ThemeAnimation{RootClassName: cfg.RootClassName, Preset: preset}, nil
}

// Merge returns base with override applied. Each component is merged state
// by state; a set override state replaces the base state. A button override
// of the other shape (universal vs per-variant) replaces the base button.
func Merge(base, override Preset) Preset {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Description != "" {
		out.Description = override.Description
	}

	out.Button = mergeButton(base.Button, override.Button)
	out.Link = mergeInteractive(base.Link, override.Link)
	out.Input = mergeInteractive(base.Input, override.Input)
	out.Card = mergeInteractive(base.Card, override.Card)
	out.GlobalClasses = mergeMap(base.GlobalClasses, override.GlobalClasses)
	out.Keyframes = mergeMap(base.Keyframes, override.Keyframes)
	return out
}

func mergeButton(base, override ButtonAnimation) ButtonAnimation {
	if override.IsZero() {
		return base
	}
	if base.IsVariant() != override.IsVariant() && (override.Universal != nil || override.IsVariant()) {
		return override
	}

	out := ButtonAnimation{Global: base.Global}
	if override.Global != nil {
		out.Global = override.Global
	}
	if !base.IsVariant() && !override.IsVariant() {
		out.Universal = mergeInteractive(base.Universal, override.Universal)
		return out
	}

	out.ByVariant = make(map[Variant]*Interactive, len(base.ByVariant))
	maps.Copy(out.ByVariant, base.ByVariant)
	for v, c := range override.ByVariant {
		out.ByVariant[v] = mergeInteractive(base.ByVariant[v], c)
	}
	return out
}

func mergeInteractive(base, override *Interactive) *Interactive {
	switch {
	case override == nil:
		return base
	case base == nil:
		return override
	}

	out := *base
	for _, s := range cssgen.States {
		if st := override.State(s); st != nil {
			out.setState(s, st)
		}
	}
	if override.Global != nil {
		out.Global = override.Global
	}
	return &out
}

func mergeMap(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}
