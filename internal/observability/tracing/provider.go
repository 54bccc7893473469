package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config configures NewProvider.
type Config struct {
	ServiceName    string
	ServiceVersion string
	// SampleRatio is the fraction of root traces recorded, 0..1.
	// Child spans follow their parent's decision.
	SampleRatio float64
	// Exporters receive finished spans. With none, spans are still created so
	// trace IDs reach logs and the X-Trace-Id header.
	Exporters []sdktrace.SpanExporter
}

// NewProvider builds an SDK tracer provider and installs it, together with
// the W3C trace-context and baggage propagators, as the global default.
// The caller must Shutdown the provider.
func NewProvider(cfg Config) (*sdktrace.TracerProvider, error) {
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	))
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}
	for _, exp := range cfg.Exporters {
		opts = append(opts, sdktrace.WithBatcher(exp))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}
