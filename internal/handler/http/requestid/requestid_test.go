package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "test-id-123", FromContext(WithRequestID(context.Background(), "test-id-123")))
	assert.Empty(t, FromContext(context.Background()))
}

func serve(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestMiddleware_Generates(t *testing.T) {
	ctxID, headerID := serve(t, "")

	_, err := uuid.Parse(ctxID)
	require.NoError(t, err)
	assert.Equal(t, ctxID, headerID)
}

func TestMiddleware_PropagatesIncoming(t *testing.T) {
	ctxID, headerID := serve(t, "client-abc-123")

	assert.Equal(t, "client-abc-123", ctxID)
	assert.Equal(t, "client-abc-123", headerID)
}

func TestMiddleware_ReplacesMalformed(t *testing.T) {
	for _, bad := range []string{"has space", "tab\tchar", strings.Repeat("x", 129), "ünïcode"} {
		t.Run(bad[:min(len(bad), 10)], func(t *testing.T) {
			ctxID, headerID := serve(t, bad)

			assert.NotEqual(t, bad, ctxID)
			_, err := uuid.Parse(ctxID)
			assert.NoError(t, err)
			assert.Equal(t, ctxID, headerID)
		})
	}
}
