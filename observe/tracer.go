package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Tracer wraps OpenTelemetry tracing with spans around provider fetches.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndFetch must be best-effort and must not panic.
type Tracer interface {
	// StartFetch starts a span for one external provider request.
	StartFetch(ctx context.Context, resource string) (context.Context, trace.Span)

	// EndFetch ends the span, recording any error.
	EndFetch(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartFetch starts a span named provider.fetch.<resource>.
func (t *tracerImpl) StartFetch(ctx context.Context, resource string) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, "provider.fetch."+resource,
		trace.WithAttributes(
			attribute.String("provider.resource", resource),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	return ctx, span
}

// EndFetch ends the span and records the error status if present.
func (t *tracerImpl) EndFetch(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartFetch(ctx context.Context, resource string) (context.Context, trace.Span) {
	return t.noop.Start(ctx, "provider.fetch."+resource)
}

func (t *noopTracer) EndFetch(span trace.Span, err error) {
	span.End()
}
