package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
)

var errNoSlug = errors.New("no theme given and default_theme is not set")

// themesDir is the user theme directory: themes_dir, else the default.
func themesDir() string {
	if cfg.ThemesDir != "" {
		return cfg.ThemesDir
	}
	return registry.UserThemesDir()
}

func loadRegistry() (*registry.Registry, error) {
	return registry.LoadDefault(themesDir())
}

// newService loads the registry and wraps it in a ThemeService configured
// from cfg.
func newService() (*service.ThemeService, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	return service.New(reg, service.Options{
		CacheTTL:   cfg.Server.CacheTTL,
		Tracer:     provider.Tracer(),
		Stylesheet: cfg.Typography.StylesheetOptions(),
		Loader:     loadRegistry,
	}), nil
}

// resolveSlug picks the slug argument, falling back to default_theme.
func resolveSlug(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.DefaultTheme != "" {
		return cfg.DefaultTheme, nil
	}
	return "", errNoSlug
}

// writeOutput writes content to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path, content string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(w, content)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // G306: generated CSS is meant to be world readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info(log.CatCSS, "Wrote stylesheet", "path", path, "bytes", len(content))
	return nil
}
