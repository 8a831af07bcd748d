package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrThemeSlug = "theme.slug"
	AttrCSSKind   = "css.kind"
	AttrCSSBytes  = "css.bytes"

	AttrHTTPMethod = "http.method"
	AttrHTTPRoute  = "http.route"
	AttrHTTPStatus = "http.status_code"

	AttrThemeCount = "theme.count"

	AttrErrorMessage = "error.message"
)

// Span names.
const (
	SpanCSSGenerate    = "css.generate"
	SpanRegistryReload = "registry.reload"
	SpanPrefixHTTP     = "http."
)

// Event names.
const (
	EventCacheMiss = "cache.miss"
)

// StartGenerate opens a css.generate span for one theme and output kind.
func StartGenerate(ctx context.Context, tracer trace.Tracer, slug, kind string) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanCSSGenerate,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(AttrThemeSlug, slug),
			attribute.String(AttrCSSKind, kind),
		),
	)
}

// EndGenerate records the outcome and ends the span.
func EndGenerate(span trace.Span, size int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	} else {
		span.SetAttributes(attribute.Int(AttrCSSBytes, size))
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
