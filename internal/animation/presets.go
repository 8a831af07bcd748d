package animation

import (
	"maps"
	"slices"
)

// Presets contains all built-in animation presets.
var Presets = map[string]Preset{
	"none":    NonePreset,
	"subtle":  SubtlePreset,
	"bouncy":  BouncyPreset,
	"tactile": TactilePreset,
	"glow":    GlowPreset,
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// NonePreset leaves components at the reset state.
var NonePreset = Preset{
	Name:        "none",
	Description: "No interaction animation",
}

// SubtlePreset is the default: short fades and a one pixel lift.
var SubtlePreset = Preset{
	Name:        "subtle",
	Description: "Gentle lift on hover with soft shadows",
	Button: Universal(Interactive{
		Global: &Global{
			Transition:      "all 150ms cubic-bezier(0.4, 0, 0.2, 1)",
			TransformOrigin: "center",
		},
		Hover: &State{
			Duration:  "150ms",
			Easing:    "cubic-bezier(0.4, 0, 0.2, 1)",
			Transform: &Transform{Translate: "translateY(-1px)"},
			BoxShadow: `
				0 1px 2px 0 rgb(0 0 0 / 0.05),
				0 2px 6px -1px rgb(0 0 0 / 0.08)
			`,
		},
		Focus: &State{
			BoxShadow: "0 0 0 3px color-mix(in oklch, var(--ring) 40%, transparent)",
		},
		Active: &State{
			Duration:  "75ms",
			Transform: &Transform{Translate: "translateY(0)", Scale: "0.99"},
			BoxShadow: "none",
		},
		Disabled: &State{
			Opacity: "0.5",
			Custom:  map[string]string{"cursor": "not-allowed"},
		},
	}),
	Link: &Interactive{
		Default: &State{
			Duration: "150ms",
			Custom:   map[string]string{"text-underline-offset": "2px"},
		},
		Hover: &State{
			Opacity: "0.85",
			Custom:  map[string]string{"text-underline-offset": "4px"},
		},
	},
	Input: &Interactive{
		Focus: &State{
			Duration:  "150ms",
			BoxShadow: "0 0 0 3px color-mix(in oklch, var(--ring) 30%, transparent)",
		},
	},
}

// BouncyPreset uses overshooting easing and scale.
var BouncyPreset = Preset{
	Name:        "bouncy",
	Description: "Springy scale with overshoot",
	Button: Universal(Interactive{
		Global: &Global{
			Transition:      "transform 300ms cubic-bezier(0.34, 1.56, 0.64, 1), box-shadow 200ms ease",
			TransformOrigin: "center",
			WillChange:      "transform",
		},
		Hover: &State{
			Duration:  "300ms",
			Easing:    "cubic-bezier(0.34, 1.56, 0.64, 1)",
			Transform: &Transform{Translate: "translateY(-2px)", Scale: "1.04"},
			BoxShadow: `
				0 4px 6px -1px rgb(0 0 0 / 0.1),
				0 10px 15px -3px rgb(0 0 0 / 0.1)
			`,
		},
		Active: &State{
			Duration:  "100ms",
			Transform: &Transform{Scale: "0.95"},
		},
		Disabled: &State{
			Opacity: "0.5",
			Filter:  "grayscale(0.3)",
		},
	}),
	Card: &Interactive{
		Default: &State{Duration: "300ms", Easing: "cubic-bezier(0.34, 1.56, 0.64, 1)"},
		Hover: &State{
			Transform: &Transform{Translate: "translateY(-4px)", Scale: "1.01"},
			BoxShadow: "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		},
	},
	Keyframes: map[string]string{
		"bounce-in": `@keyframes bounce-in {
  0% { transform: scale(0.9); opacity: 0; }
  60% { transform: scale(1.03); opacity: 1; }
  100% { transform: scale(1); }
}`,
	},
	GlobalClasses: map[string]string{
		"animate-bounce-in": "animation: bounce-in 400ms cubic-bezier(0.34, 1.56, 0.64, 1) both;",
	},
}

// TactilePreset gives each button variant its own press physics.
var TactilePreset = Preset{
	Name:        "tactile",
	Description: "Physical press feel, tuned per button variant",
	Button: PerVariant(
		&Global{
			Transition:      "transform 120ms ease-out, box-shadow 120ms ease-out, filter 120ms ease-out",
			TransformOrigin: "center bottom",
		},
		map[Variant]*Interactive{
			VariantDefault: {
				Default: &State{BoxShadow: "0 2px 0 0 color-mix(in oklch, var(--primary) 70%, black)"},
				Hover:   &State{Filter: "brightness(1.05)"},
				Active: &State{
					Transform: &Transform{Translate: "translateY(2px)"},
					BoxShadow: "0 0 0 0 transparent",
				},
			},
			VariantDestructive: {
				Default: &State{BoxShadow: "0 2px 0 0 color-mix(in oklch, var(--destructive) 70%, black)"},
				Hover:   &State{Filter: "brightness(1.08)"},
				Active: &State{
					Transform: &Transform{Translate: "translateY(2px)"},
					BoxShadow: "0 0 0 0 transparent",
				},
			},
			VariantOutline: {
				Hover:  &State{BackgroundColor: "var(--accent)"},
				Active: &State{Transform: &Transform{Scale: "0.98"}},
			},
			VariantSecondary: {
				Default: &State{BoxShadow: "0 2px 0 0 color-mix(in oklch, var(--secondary) 70%, black)"},
				Active: &State{
					Transform: &Transform{Translate: "translateY(2px)"},
					BoxShadow: "0 0 0 0 transparent",
				},
			},
			VariantGhost: {
				Active: &State{Transform: &Transform{Scale: "0.97"}},
			},
		},
	),
	Input: &Interactive{
		Focus: &State{Border: "1px solid var(--ring)"},
	},
}

// GlowPreset replaces lift with colored halos.
var GlowPreset = Preset{
	Name:        "glow",
	Description: "Colored glow around interactive elements",
	Button: Universal(Interactive{
		Global: &Global{Transition: "box-shadow 250ms ease, filter 250ms ease"},
		Hover: &State{
			Duration: "250ms",
			Easing:   "ease",
			BoxShadow: `
				0 0 0 1px color-mix(in oklch, var(--primary) 40%, transparent),
				0 0 16px 2px color-mix(in oklch, var(--primary) 35%, transparent)
			`,
		},
		Focus: &State{
			BoxShadow: "0 0 0 2px var(--background), 0 0 0 4px var(--ring), 0 0 20px 4px color-mix(in oklch, var(--ring) 30%, transparent)",
		},
		Active: &State{Filter: "brightness(0.95)"},
	}),
	Card: &Interactive{
		Hover: &State{
			Duration:  "300ms",
			BoxShadow: "0 0 24px 0 color-mix(in oklch, var(--primary) 20%, transparent)",
		},
	},
	Input: &Interactive{
		Focus: &State{
			BoxShadow: "0 0 0 3px color-mix(in oklch, var(--ring) 35%, transparent)",
		},
	},
}
