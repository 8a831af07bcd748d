// Package service serves compiled theme CSS from a swappable registry with a
// read-through cache in front of the generators.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/animation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cachemanager"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/pubsub"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/stylesheet"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/tracing"
)

// ErrThemeNotFound is returned for unknown slugs.
var ErrThemeNotFound = registry.ErrThemeNotFound

// ErrNoLoader is returned by Refresh when the service has no Loader.
var ErrNoLoader = errors.New("no registry loader configured")

// Kind names a generated artifact.
type Kind string

const (
	KindGlobal    Kind = "global"
	KindAnimation Kind = "animation"
	KindBundle    Kind = "bundle"
	KindVars      Kind = "vars"
)

const DefaultCacheTTL = 10 * time.Minute

// ReloadEvent is published after every registry swap attempt.
type ReloadEvent struct {
	Themes int
	Err    error
}

// Options configures a ThemeService. The zero value is usable.
type Options struct {
	CacheTTL     time.Duration
	DisableCache bool
	Tracer       trace.Tracer
	Stylesheet   stylesheet.Options
	// Loader rebuilds the registry for Refresh.
	Loader func() (*registry.Registry, error)
}

type request struct {
	kind  Kind
	theme *registry.Theme
}

// ThemeService is safe for concurrent use. Reload swaps the registry
// atomically; readers see either the old or the new one.
type ThemeService struct {
	// swap is held for writing while the registry is replaced and the cache
	// flushed, and for reading around each cache fill, so no stylesheet of
	// the old registry survives a reload.
	swap   sync.RWMutex
	reg    atomic.Pointer[registry.Registry]
	css    *cachemanager.ReadThroughCache[string, string, request]
	ttl    time.Duration
	tracer trace.Tracer
	sheet  stylesheet.Options
	loader func() (*registry.Registry, error)
	events *pubsub.Broker[ReloadEvent]
}

// New creates a service over reg.
func New(reg *registry.Registry, opts Options) *ThemeService {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("noop")
	}

	s := &ThemeService{
		ttl:    opts.CacheTTL,
		tracer: opts.Tracer,
		sheet:  opts.Stylesheet,
		loader: opts.Loader,
		events: pubsub.NewBroker[ReloadEvent](),
	}
	s.css = cachemanager.NewReadThroughCache[string, string, request](
		cachemanager.NewInMemoryCacheManager[string, string]("css", opts.CacheTTL, cachemanager.DefaultCleanupInterval),
		s.generate,
		opts.DisableCache,
	)
	s.reg.Store(reg)
	return s
}

// Registry returns the current registry.
func (s *ThemeService) Registry() *registry.Registry {
	return s.reg.Load()
}

// List returns the themes in ranked order.
func (s *ThemeService) List() []*registry.Theme {
	return s.reg.Load().Ranked()
}

// Get returns the theme for slug.
func (s *ThemeService) Get(slug string) (*registry.Theme, error) {
	return s.reg.Load().Get(slug)
}

// GlobalCSS returns the global stylesheet for slug.
func (s *ThemeService) GlobalCSS(ctx context.Context, slug string) (string, error) {
	return s.cached(ctx, KindGlobal, slug)
}

// AnimationCSS returns the animation stylesheet for slug.
func (s *ThemeService) AnimationCSS(ctx context.Context, slug string) (string, error) {
	return s.cached(ctx, KindAnimation, slug)
}

// Bundle returns the global stylesheet followed by the animation stylesheet.
func (s *ThemeService) Bundle(ctx context.Context, slug string) (string, error) {
	global, err := s.GlobalCSS(ctx, slug)
	if err != nil {
		return "", err
	}
	anim, err := s.AnimationCSS(ctx, slug)
	if err != nil {
		return "", err
	}
	return global + "\n" + anim, nil
}

// Vars returns the theme's CSS variable map.
func (s *ThemeService) Vars(ctx context.Context, slug string) (brand.ThemeCSSVars, error) {
	_, span := tracing.StartGenerate(ctx, s.tracer, slug, string(KindVars))
	t, err := s.Get(slug)
	if err != nil {
		tracing.EndGenerate(span, 0, err)
		return nil, err
	}
	tracing.EndGenerate(span, len(t.Vars), nil)
	return t.Vars, nil
}

// Reload swaps in reg, drops every cached stylesheet and notifies
// subscribers.
func (s *ThemeService) Reload(ctx context.Context, reg *registry.Registry) {
	_, span := s.tracer.Start(ctx, tracing.SpanRegistryReload,
		trace.WithAttributes(attribute.Int(tracing.AttrThemeCount, reg.Len())))
	defer span.End()

	s.swap.Lock()
	s.reg.Store(reg)
	if err := s.css.Invalidate(ctx); err != nil {
		log.ErrorErr(log.CatCache, "flush css cache", err)
	}
	s.swap.Unlock()

	log.Info(log.CatRegistry, "registry reloaded", "themes", reg.Len())
	s.events.Publish(pubsub.ReloadedEvent, ReloadEvent{Themes: reg.Len()})
}

// Refresh rebuilds the registry with the configured Loader and reloads it.
// On failure the current registry stays in place and a FailedEvent is
// published.
func (s *ThemeService) Refresh(ctx context.Context) error {
	if s.loader == nil {
		return ErrNoLoader
	}
	reg, err := s.loader()
	if err != nil {
		log.ErrorErr(log.CatRegistry, "reload failed, keeping current themes", err)
		s.events.Publish(pubsub.FailedEvent, ReloadEvent{Themes: s.reg.Load().Len(), Err: err})
		return fmt.Errorf("reload registry: %w", err)
	}
	s.Reload(ctx, reg)
	return nil
}

// Subscribe streams reload events until ctx is cancelled.
func (s *ThemeService) Subscribe(ctx context.Context) <-chan pubsub.Event[ReloadEvent] {
	return s.events.Subscribe(ctx)
}

// Close ends every subscription.
func (s *ThemeService) Close() {
	s.events.Close()
}

func cacheKey(kind Kind, slug string) string {
	return string(kind) + ":" + slug
}

func (s *ThemeService) cached(ctx context.Context, kind Kind, slug string) (string, error) {
	s.swap.RLock()
	defer s.swap.RUnlock()

	t, err := s.Get(slug)
	if err != nil {
		return "", err
	}
	return s.css.Get(ctx, cacheKey(kind, slug), request{kind: kind, theme: t}, s.ttl)
}

func (s *ThemeService) generate(ctx context.Context, req request) (string, error) {
	_, span := tracing.StartGenerate(ctx, s.tracer, req.theme.Slug, string(req.kind))
	span.AddEvent(tracing.EventCacheMiss)

	var (
		css string
		err error
	)
	switch req.kind {
	case KindGlobal:
		css = stylesheet.GenerateGlobalCSSWithOptions(req.theme.Brand, s.sheet)
	case KindAnimation:
		var resolved animation.ThemeAnimation
		resolved, err = animation.Resolve(req.theme.Animation)
		if err != nil {
			err = fmt.Errorf("theme %s: %w", req.theme.Slug, err)
			break
		}
		css = animation.GenerateCSS(resolved)
	default:
		err = fmt.Errorf("unsupported css kind %q", req.kind)
	}

	tracing.EndGenerate(span, len(css), err)
	if err == nil {
		log.Debug(log.CatCSS, "generated stylesheet", "slug", req.theme.Slug, "kind", req.kind, "bytes", len(css))
	}
	return css, err
}
