package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Tracer wraps OpenTelemetry tracing with decision-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndDecision must be best-effort and must not panic.
type Tracer interface {
	// StartDecision starts a span for one cache-eligibility evaluation.
	StartDecision(ctx context.Context, meta GoalMeta) (context.Context, trace.Span)

	// EndDecision ends the span, recording the decision outcome.
	EndDecision(span trace.Span, outcome string)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) (Tracer, error) {
	if t == nil {
		return nil, ErrNilTracer
	}
	return &tracerImpl{tracer: t}, nil
}

// StartDecision starts a span with goal metadata as attributes.
func (t *tracerImpl) StartDecision(ctx context.Context, meta GoalMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("goal.id", meta.GoalID()),
		attribute.String("goal.plugin", meta.PluginID),
	}
	if meta.ExecutionID != "" {
		attrs = append(attrs, attribute.String("goal.execution", meta.ExecutionID))
	}
	if meta.Project != "" {
		attrs = append(attrs, attribute.String("goal.project", meta.Project))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndDecision records the outcome and ends the span. A declined decision is a
// normal result, not an error, so the span status stays Ok either way.
func (t *tracerImpl) EndDecision(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("decision.outcome", outcome))
	span.SetStatus(codes.Ok, "")
	span.End()
}

// NewNoopTracer creates a tracer that records nothing.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

type noopTracer struct {
	noop trace.Tracer
}

func (t *noopTracer) StartDecision(ctx context.Context, meta GoalMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndDecision(span trace.Span, outcome string) {
	span.End()
}
