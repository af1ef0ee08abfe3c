package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Provider owns the tracer provider for a splitpane run.
type Provider struct {
	provider  *sdktrace.TracerProvider
	tracer    oteltrace.Tracer
	exporting bool
}

type providerOptions struct {
	exporter sdktrace.SpanExporter
}

// ProviderOption configures NewProvider.
type ProviderOption func(*providerOptions)

// WithExporter exports spans synchronously to exp instead of consulting the
// environment. Used by tests.
func WithExporter(exp sdktrace.SpanExporter) ProviderOption {
	return func(o *providerOptions) { o.exporter = exp }
}

// NewProvider creates a provider that exports to OTEL_EXPORTER_OTLP_ENDPOINT when it
// is set. The exporter reads the endpoint URL (e.g. http://localhost:4318) and the
// other OTEL_EXPORTER_OTLP_* settings itself. Without an endpoint spans are still
// created but go nowhere.
func NewProvider(ctx context.Context, opts ...ProviderOption) (*Provider, error) {
	var o providerOptions
	for _, opt := range opts {
		opt(&o)
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "splitpane"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	exporting := false
	switch {
	case o.exporter != nil:
		tpOpts = append(tpOpts, sdktrace.WithSyncer(o.exporter))
		exporting = true
	case os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "":
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
		exporting = true
	}

	tp := sdktrace.NewTracerProvider(tpOpts...)
	return &Provider{
		provider:  tp,
		tracer:    tp.Tracer("splitpane/layout"),
		exporting: exporting,
	}, nil
}

// Tracer returns the tracer layout operations are recorded with.
func (p *Provider) Tracer() oteltrace.Tracer { return p.tracer }

// Exporting reports whether spans leave the process.
func (p *Provider) Exporting() bool { return p != nil && p.exporting }

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
