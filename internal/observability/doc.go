// Package observability groups the logging, metrics and tracing support of the API.
//
// Subpackages:
//   - logging: slog loggers enriched with request and trace IDs
//   - metrics: Prometheus collectors for HTTP traffic, articles, comments and the database
//   - tracing: OpenTelemetry provider setup and HTTP server spans
package observability
