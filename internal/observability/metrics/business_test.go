package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles/:id", "404"))

	RecordHTTPRequest("GET", "/articles/:id", 404, 3*time.Millisecond, 27)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordArticleCreated(t *testing.T) {
	created := testutil.ToFloat64(ArticlesCreatedTotal)
	total := testutil.ToFloat64(ArticlesTotal)

	RecordArticleCreated()

	assert.Equal(t, created+1, testutil.ToFloat64(ArticlesCreatedTotal))
	assert.Equal(t, total+1, testutil.ToFloat64(ArticlesTotal))
}

func TestRecordCommentCreated(t *testing.T) {
	created := testutil.ToFloat64(CommentsCreatedTotal)

	RecordCommentCreated()

	assert.Equal(t, created+1, testutil.ToFloat64(CommentsCreatedTotal))
}

func TestRecordWriteRejected(t *testing.T) {
	c := WritesRejectedTotal.WithLabelValues("comment", ReasonNotFound)
	before := testutil.ToFloat64(c)

	RecordWriteRejected("comment", ReasonNotFound)

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestRecordDBQuery(t *testing.T) {
	hist := DBQueryDuration.WithLabelValues("insert_comment").(prometheus.Histogram)
	sampleCount := func() uint64 {
		var m dto.Metric
		require.NoError(t, hist.Write(&m))
		return m.GetHistogram().GetSampleCount()
	}
	before := sampleCount()

	RecordDBQuery("insert_comment", 2*time.Millisecond)

	assert.Equal(t, before+1, sampleCount())
}

func TestUpdateGauges(t *testing.T) {
	UpdateTotals(12, 34)
	assert.Equal(t, 12.0, testutil.ToFloat64(ArticlesTotal))
	assert.Equal(t, 34.0, testutil.ToFloat64(CommentsTotal))

	UpdateDBConnectionStats(sql.DBStats{InUse: 3, Idle: 7})
	assert.Equal(t, 3.0, testutil.ToFloat64(DBConnectionsInUse))
	assert.Equal(t, 7.0, testutil.ToFloat64(DBConnectionsIdle))

	SetCircuitBreakerState("database", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("database")))
}
