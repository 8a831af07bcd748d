// Package presentation converts compiled themes into JSON-friendly DTOs for
// the CLI and the HTTP API.
package presentation

import (
	"time"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/animation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/snapshot"
)

// ThemeSummaryDTO is one entry of a theme listing.
type ThemeSummaryDTO struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Rating        *float64 `json:"rating"`
	RootClass     string   `json:"root_class"`
	Source        string   `json:"source"`
	SevenAxisCode string   `json:"seven_axis_code,omitempty"`
}

// ColorDTO describes a compiled color token.
type ColorDTO struct {
	Name     string            `json:"name"`
	Variable string            `json:"variable"`
	OKLCH    string            `json:"oklch"`
	Hex      string            `json:"hex,omitempty"`
	Category string            `json:"category"`
	Roles    []string          `json:"roles"`
	OnColor  string            `json:"on_color,omitempty"`
	Steps    map[string]string `json:"steps,omitempty"`
}

// FontDTO describes a font token.
type FontDTO struct {
	Name   string   `json:"name"`
	Family string   `json:"family"`
	Roles  []string `json:"roles"`
}

// ThemeDetailDTO is the full description of one theme.
type ThemeDetailDTO struct {
	ThemeSummaryDTO
	Business  brand.BusinessDetails `json:"business"`
	Preset    string                `json:"animation_preset"`
	Colors    []ColorDTO            `json:"colors"`
	Fonts     []FontDTO             `json:"fonts"`
	VarsCount int                   `json:"vars_count"`
}

// PresetDTO describes a built-in animation preset.
type PresetDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SnapshotDTO describes a recorded stylesheet without its content.
type SnapshotDTO struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Kind      string    `json:"kind"`
	Digest    string    `json:"digest"`
	CreatedAt time.Time `json:"created_at"`
}

// FromTheme converts a registry theme to a summary.
func FromTheme(t *registry.Theme) ThemeSummaryDTO {
	return ThemeSummaryDTO{
		Slug:          t.Slug,
		Name:          t.Name,
		Rating:        t.Rating,
		RootClass:     t.RootClassName(),
		Source:        t.Source.String(),
		SevenAxisCode: t.SevenAxisCode,
	}
}

// FromThemes converts a ranked theme list.
func FromThemes(themes []*registry.Theme) []ThemeSummaryDTO {
	dtos := make([]ThemeSummaryDTO, len(themes))
	for i, t := range themes {
		dtos[i] = FromTheme(t)
	}
	return dtos
}

// FromColorToken converts a color token. Hex is empty when the OKLCH string
// cannot be parsed.
func FromColorToken(c brand.ColorToken) ColorDTO {
	roles := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		roles[i] = string(r)
	}

	var steps map[string]string
	if len(c.ThemeSteps) > 0 || len(c.ExtraSteps) > 0 {
		steps = make(map[string]string, len(c.ThemeSteps)+len(c.ExtraSteps))
		for k, v := range c.ThemeSteps {
			steps[string(k)] = v
		}
		for _, e := range c.ExtraSteps {
			steps[e.Name] = e.Value
		}
	}

	dto := ColorDTO{
		Name:     c.Name,
		Variable: c.Var(),
		OKLCH:    c.OKLCH,
		Category: string(c.Category),
		Roles:    roles,
		OnColor:  c.OnColor,
		Steps:    steps,
	}
	if parsed, ok := brand.ParseOKLCH(c.OKLCH); ok {
		dto.Hex = parsed.Hex()
	}
	return dto
}

// FromThemeDetail converts a theme with its tokens.
func FromThemeDetail(t *registry.Theme) ThemeDetailDTO {
	colors := make([]ColorDTO, len(t.Colors))
	for i, c := range t.Colors {
		colors[i] = FromColorToken(c)
	}

	fonts := make([]FontDTO, len(t.Fonts))
	for i, f := range t.Fonts {
		fonts[i] = FontDTO{Name: f.Name, Family: f.Family, Roles: f.Roles}
	}

	return ThemeDetailDTO{
		ThemeSummaryDTO: FromTheme(t),
		Business:        t.Business,
		Preset:          t.Animation.Preset,
		Colors:          colors,
		Fonts:           fonts,
		VarsCount:       len(t.Vars),
	}
}

// FromPresets lists the built-in animation presets by name.
func FromPresets() []PresetDTO {
	names := animation.PresetNames()
	dtos := make([]PresetDTO, len(names))
	for i, name := range names {
		dtos[i] = PresetDTO{Name: name, Description: animation.Presets[name].Description}
	}
	return dtos
}

// FromSnapshots converts snapshot records.
func FromSnapshots(snaps []snapshot.Snapshot) []SnapshotDTO {
	dtos := make([]SnapshotDTO, len(snaps))
	for i, s := range snaps {
		dtos[i] = SnapshotDTO{ID: s.ID, Slug: s.Slug, Kind: s.Kind, Digest: s.Digest, CreatedAt: s.CreatedAt}
	}
	return dtos
}
