package metrics

import (
	"database/sql"
	"strconv"
	"time"
)

// Rejection reasons for WritesRejectedTotal.
const (
	ReasonValidation = "validation"
	ReasonNotFound   = "not_found"
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration, responseSize int) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordArticleCreated increments articles_created_total and articles_total.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
	ArticlesTotal.Inc()
}

// RecordCommentCreated increments comments_created_total and comments_total.
func RecordCommentCreated() {
	CommentsCreatedTotal.Inc()
	CommentsTotal.Inc()
}

// RecordWriteRejected records a create request refused before storage.
func RecordWriteRejected(entity, reason string) {
	WritesRejectedTotal.WithLabelValues(entity, reason).Inc()
}

// RecordDBQuery records the duration of a repository call.
// Operation names the call, e.g. "list_articles" or "insert_comment".
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateTotals sets the stored-entity gauges.
func UpdateTotals(articles, comments int64) {
	ArticlesTotal.Set(float64(articles))
	CommentsTotal.Set(float64(comments))
}

// UpdateDBConnectionStats copies pool statistics into the connection gauges.
func UpdateDBConnectionStats(stats sql.DBStats) {
	DBConnectionsInUse.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

// SetCircuitBreakerState records a breaker transition; state follows gobreaker's ordering.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
