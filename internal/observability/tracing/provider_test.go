package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider(t *testing.T) {
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	exporter := tracetest.NewInMemoryExporter()
	tp, err := NewProvider(Config{
		ServiceName:    "pressroom",
		ServiceVersion: "test",
		SampleRatio:    1,
		Exporters:      []sdktrace.SpanExporter{exporter},
	})
	require.NoError(t, err)

	assert.Same(t, tp, otel.GetTracerProvider())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")

	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := StartSpan(context.Background(), "op")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "pressroom", service)
}

func TestNewProvider_ZeroRatioDropsRootSpans(t *testing.T) {
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	exporter := tracetest.NewInMemoryExporter()
	tp, err := NewProvider(Config{ServiceName: "pressroom", Exporters: []sdktrace.SpanExporter{exporter}})
	require.NoError(t, err)

	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := StartSpan(context.Background(), "op")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))
	assert.Empty(t, exporter.GetSpans())
}
