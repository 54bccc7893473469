package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/logging"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{name: "map", code: http.StatusOK, data: map[string]string{"message": "success"}, expectedBody: `{"message":"success"}`},
		{name: "struct", code: http.StatusCreated, data: struct{ ID int }{ID: 123}, expectedBody: `{"ID":123}`},
		{name: "nil", code: http.StatusNoContent, data: nil, expectedBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusBadRequest, MsgInvalidRequestBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationFailed(w, entity.ValidationErrors{
		{Field: "title", Rule: entity.RuleRequired, Message: "title is required"},
		{Field: "content", Rule: entity.RuleRequired, Message: "content is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{
		"error": "validation failed",
		"fields": [
			{"field":"title","rule":"required","message":"title is required"},
			{"field":"content","rule":"required","message":"content is required"}
		]
	}`, w.Body.String())
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{name: "client error passes message", code: http.StatusNotFound, err: errors.New("article not found"),
			expectedCode: http.StatusNotFound, expectedMsg: "article not found"},
		{name: "server error is masked", code: http.StatusInternalServerError,
			err:          errors.New("dial tcp: postgres://u:secret@db:5432/press"),
			expectedCode: http.StatusInternalServerError, expectedMsg: MsgInternalError},
		{name: "validation error becomes 422", code: http.StatusInternalServerError,
			err:          entity.ValidationErrors{{Field: "title", Rule: entity.RuleMax, Message: "too long"}},
			expectedCode: http.StatusUnprocessableEntity, expectedMsg: MsgValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(context.Background(), w, tt.code, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMsg, body.Error)
		})
	}
}

func TestSafeError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(context.Background(), w, http.StatusBadRequest, nil)

	assert.Zero(t, w.Body.Len())
}

func TestSafeError_LogsSanitizedCause(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := logging.WithLogger(context.Background(), logger)

	w := httptest.NewRecorder()
	SafeError(ctx, w, http.StatusInternalServerError,
		errors.New("connect postgres://app:topsecret@db/press"))

	assert.Contains(t, buf.String(), "app:****@db")
	assert.NotContains(t, buf.String(), "topsecret")
	assert.NotContains(t, w.Body.String(), "postgres")
}
