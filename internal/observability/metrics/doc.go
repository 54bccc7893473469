// Package metrics defines the Prometheus collectors of the service and small
// helpers to record them. Collectors register with the default registry and
// are served on /metrics.
//
// Example usage:
//
//	metrics.RecordArticleCreated()
//	metrics.RecordDBQuery("list_articles", time.Since(start))
package metrics
