// Package config provides configuration types and defaults for nextgen-theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/stylesheet"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/tracing"
)

// Config holds all configuration options for nextgen-theme.
type Config struct {
	// ThemesDir holds user themes loaded on top of the built-ins.
	ThemesDir    string           `mapstructure:"themes_dir"`
	DefaultTheme string           `mapstructure:"default_theme"`
	Debug        bool             `mapstructure:"debug"`
	LogPath      string           `mapstructure:"log_path"`
	Server       ServerConfig     `mapstructure:"server"`
	Typography   TypographyConfig `mapstructure:"typography"`
	Snapshots    SnapshotsConfig  `mapstructure:"snapshots"`
	Tracing      tracing.Config   `mapstructure:"tracing"`
}

// SnapshotsConfig controls the CSS snapshot database.
type SnapshotsConfig struct {
	// Path of the SQLite database. Empty uses DefaultSnapshotsPath.
	Path string `mapstructure:"path"`
	// Keep is how many snapshots per theme and kind survive a prune.
	Keep int `mapstructure:"keep"`
}

// ServerConfig holds `serve` options.
type ServerConfig struct {
	Listen   string        `mapstructure:"listen"`
	Watch    bool          `mapstructure:"watch"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// TypographyConfig tunes the global stylesheet's typography rules.
type TypographyConfig struct {
	// UtilitySizeClasses replaces the list of size utility classes that
	// typography rules yield to. Empty keeps the built-in list.
	UtilitySizeClasses []string `mapstructure:"utility_size_classes"`
}

// StylesheetOptions converts the typography settings for the generator.
func (t TypographyConfig) StylesheetOptions() stylesheet.Options {
	return stylesheet.Options{UtilitySizeClasses: t.UtilitySizeClasses}
}

// DefaultConfigDir returns ~/.config/nextgen-theme, or "" when the home
// directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nextgen-theme")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// DefaultSnapshotsPath returns the default snapshot database path.
func DefaultSnapshotsPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "snapshots.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ThemesDir: "", // Derived from the config dir at runtime
		LogPath:   "debug.log",
		Server: ServerConfig{
			Listen:   ":8080",
			Watch:    true,
			CacheTTL: 10 * time.Minute,
		},
		Snapshots: SnapshotsConfig{Keep: 20},
		Tracing:   tracing.DefaultConfig(),
	}
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateServer(cfg.Server); err != nil {
		return err
	}
	if err := ValidateTypography(cfg.Typography); err != nil {
		return err
	}
	if cfg.Snapshots.Keep < 0 {
		return fmt.Errorf("snapshots.keep must not be negative, got %d", cfg.Snapshots.Keep)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateServer checks server options.
func ValidateServer(s ServerConfig) error {
	if s.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if s.CacheTTL < 0 {
		return fmt.Errorf("server.cache_ttl must not be negative, got %v", s.CacheTTL)
	}
	return nil
}

// ValidateTypography rejects blank utility class entries.
func ValidateTypography(t TypographyConfig) error {
	for i, c := range t.UtilitySizeClasses {
		if c == "" {
			return fmt.Errorf("typography.utility_size_classes[%d] is empty", i)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if !tracing.IsValidExporter(t.Exporter) {
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled {
		if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# nextgen-theme configuration

# Directory with your own theme files (*.yaml, *.yml, *.json).
# Themes here replace built-in themes with the same slug.
# Default: ~/.config/nextgen-theme/themes
# themes_dir: ./themes

# Theme used when a command is run without a slug
# default_theme: nordic-frost

# Write a debug log (also enabled with --debug)
debug: false
log_path: debug.log

# nextgen-theme serve
server:
  listen: ":8080"
  watch: true        # reload when files in themes_dir change
  cache_ttl: 10m     # how long generated CSS stays cached

# Typography rules skip elements carrying one of these utility classes.
# typography:
#   utility_size_classes: [text-xs, text-sm, text-base, text-lg, text-xl]

# Compiled CSS recorded by "css --snapshot" and compared by "diff --snapshot"
snapshots:
  # path: ~/.config/nextgen-theme/snapshots.db
  keep: 20           # per theme and kind; 0 keeps everything

# Tracing around CSS generation and HTTP requests
# tracing:
#   enabled: false
#   exporter: file                 # none, file, stdout, otlp
#   file_path: ~/.config/nextgen-theme/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
