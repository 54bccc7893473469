// Package logging builds the service's log/slog loggers.
//
// Output is JSON by default (LOG_FORMAT=text switches to the text handler)
// and the level comes from LOG_LEVEL. Request-scoped loggers carry the
// request_id and, when a span is active, the trace_id.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.FromContext(ctx).Info("processing request")
//	}
package logging
