package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// ErrThemeNotFound is returned when no theme has the requested slug.
var ErrThemeNotFound = errors.New("theme not found")

// Theme is a compiled brand and where it came from.
type Theme struct {
	*brand.Brand
	Source Source
	Path   string
}

// Registry maps slugs to themes. It is never mutated after New returns, so
// it is safe for concurrent use.
type Registry struct {
	bySlug map[string]*Theme
	ranked []*Theme
}

// New builds a registry. When two themes share a slug the later one wins.
func New(themes ...*Theme) *Registry {
	r := &Registry{bySlug: make(map[string]*Theme, len(themes))}
	for _, t := range themes {
		if t == nil || t.Brand == nil {
			continue
		}
		if prev, ok := r.bySlug[t.Slug]; ok {
			log.Info(log.CatRegistry, "theme overridden", "slug", t.Slug, "by", t.Source, "was", prev.Source)
		}
		r.bySlug[t.Slug] = t
	}

	r.ranked = make([]*Theme, 0, len(r.bySlug))
	for _, t := range r.bySlug {
		r.ranked = append(r.ranked, t)
	}
	slices.SortFunc(r.ranked, compareRank)
	return r
}

// compareRank orders by rating descending, unrated last, then by name.
func compareRank(a, b *Theme) int {
	switch {
	case a.Rating != nil && b.Rating == nil:
		return -1
	case a.Rating == nil && b.Rating != nil:
		return 1
	case a.Rating != nil && *a.Rating != *b.Rating:
		if *a.Rating > *b.Rating {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}

// Get returns the theme with slug.
func (r *Registry) Get(slug string) (*Theme, error) {
	t, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, slug)
	}
	return t, nil
}

// MustGet is Get for slugs known to exist; it panics otherwise.
func (r *Registry) MustGet(slug string) *Theme {
	t, err := r.Get(slug)
	if err != nil {
		panic(err)
	}
	return t
}

// Ranked returns all themes, best rated first.
func (r *Registry) Ranked() []*Theme {
	return slices.Clone(r.ranked)
}

// Slugs returns the slugs in ranked order.
func (r *Registry) Slugs() []string {
	out := make([]string, 0, len(r.ranked))
	for _, t := range r.ranked {
		out = append(out, t.Slug)
	}
	return out
}

// Len returns the number of themes.
func (r *Registry) Len() int {
	return len(r.ranked)
}
