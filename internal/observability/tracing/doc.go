// Package tracing sets up OpenTelemetry for the API.
//
// NewProvider installs an SDK tracer provider and the W3C trace-context
// propagator; Middleware starts a server span per request; StartSpan is
// used by the use cases for child spans.
//
// Example usage:
//
//	tp, err := tracing.NewProvider(tracing.Config{ServiceName: "pressroom", SampleRatio: 1})
//	defer func() { _ = tp.Shutdown(context.Background()) }()
//	handler := tracing.Middleware(mux)
package tracing
