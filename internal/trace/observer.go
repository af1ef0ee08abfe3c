package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"splitpane/internal/layout"
)

// Observer records one span per group operation.
type Observer struct {
	tracer oteltrace.Tracer
}

var _ layout.Observer = (*Observer)(nil)

// NewObserver creates an Observer using tracer.
func NewObserver(tracer oteltrace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

// Observe implements layout.Observer.
func (o *Observer) Observe(ctx context.Context, op layout.Operation) {
	_, span := o.tracer.Start(ctx, "layout."+op.Name,
		oteltrace.WithAttributes(
			attribute.String("splitpane.group", op.Group),
			attribute.String("splitpane.event.kind", op.Kind.String()),
			attribute.String("splitpane.divider.before", op.Before),
			attribute.String("splitpane.divider.after", op.After),
			attribute.Float64("splitpane.delta", op.Delta),
			attribute.Bool("splitpane.changed", op.Changed),
			attribute.Float64Slice("splitpane.sizes", []float64(op.Next)),
		),
	)
	span.End()
}
