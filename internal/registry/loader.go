package registry

import (
	"errors"
	"fmt"
	"io/fs"
	stdpath "path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// ErrNotBrand is returned by IsBrand for documents that do not describe a theme.
var ErrNotBrand = errors.New("not a brand definition")

// themeExtensions are the file types the loader reads. JSON is a YAML subset.
var themeExtensions = []string{".yaml", ".yml", ".json"}

// IsThemeFile reports whether name has a theme file extension.
func IsThemeFile(name string) bool {
	ext := strings.ToLower(stdpath.Ext(name))
	for _, e := range themeExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsBrand checks the minimal shape of a theme document: a non-empty name and
// colors and fonts sequences.
func IsBrand(doc *yaml.Node) error {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: document is not a mapping", ErrNotBrand)
	}

	fields := map[string]*yaml.Node{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		fields[doc.Content[i].Value] = doc.Content[i+1]
	}

	if name := fields["name"]; name == nil || name.Kind != yaml.ScalarNode || strings.TrimSpace(name.Value) == "" {
		return fmt.Errorf("%w: missing name", ErrNotBrand)
	}
	for _, key := range []string{"colors", "fonts"} {
		if n := fields[key]; n == nil || n.Kind != yaml.SequenceNode {
			return fmt.Errorf("%w: %s must be a list", ErrNotBrand, key)
		}
	}
	return nil
}

// ParseTheme decodes and compiles one theme document.
func ParseTheme(content []byte) (*brand.Brand, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := IsBrand(&doc); err != nil {
		return nil, err
	}

	var def brand.Definition
	if err := doc.Decode(&def); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return brand.New(def), nil
}

// Load walks dir in fsys and compiles every theme file found. Files that fail
// to parse or are not brands are skipped with a warning; only a failure to
// walk dir is returned as an error.
func Load(fsys fs.FS, dir string, src Source) ([]*Theme, error) {
	var themes []*Theme

	err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsThemeFile(d.Name()) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			log.Warn(log.CatRegistry, "skipping unreadable theme", "path", path, "error", err.Error())
			return nil
		}

		b, err := ParseTheme(content)
		if err != nil {
			log.Warn(log.CatRegistry, "skipping malformed theme", "path", path, "source", src, "error", err.Error())
			return nil
		}

		themes = append(themes, &Theme{Brand: b, Source: src, Path: path})
		log.Debug(log.CatRegistry, "loaded theme", "slug", b.Slug, "path", path, "source", src)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan themes in %s: %w", dir, err)
	}

	return themes, nil
}
