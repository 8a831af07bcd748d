package presentation

import (
	"encoding/json"
	"io"
)

// Formatter writes indented JSON.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatThemes writes a theme listing.
func (f *Formatter) FormatThemes(themes []ThemeSummaryDTO) error {
	return f.Format(themes)
}

// FormatTheme writes one theme description.
func (f *Formatter) FormatTheme(theme ThemeDetailDTO) error {
	return f.Format(theme)
}

// FormatPresets writes the preset listing.
func (f *Formatter) FormatPresets(presets []PresetDTO) error {
	return f.Format(presets)
}

// Format writes any value as indented JSON. Map keys come out sorted.
func (f *Formatter) Format(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
