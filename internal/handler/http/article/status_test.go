package article

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/pathutil"
	artUC "pressroom/internal/usecase/article"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", entity.ValidationErrors{{Field: "title", Rule: entity.RuleRequired}}, http.StatusUnprocessableEntity},
		{"invalid body", errInvalidBody, http.StatusBadRequest},
		{"article not found", artUC.ErrArticleNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", entity.ErrNotFound), http.StatusNotFound},
		{"invalid article id", artUC.ErrInvalidArticleID, http.StatusNotFound},
		{"invalid path id", pathutil.ErrInvalidID, http.StatusNotFound},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDecodeFields(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantValues map[string]string
		wantTypes  []string
		wantErr    error
	}{
		{"strings", `{"title":"a","content":"b","extra":1}`, map[string]string{"title": "a", "content": "b"}, nil, nil},
		{"empty body", ``, map[string]string{}, nil, nil},
		{"null values", `{"title":null}`, map[string]string{}, nil, nil},
		{"number", `{"title":12,"content":"b"}`, map[string]string{"content": "b"}, []string{"title"}, nil},
		{"bool and array", `{"title":true,"content":[]}`, map[string]string{}, []string{"title", "content"}, nil},
		{"truncated", `{"title":`, nil, nil, errInvalidBody},
		{"array body", `["title"]`, nil, nil, errInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(tt.body))

			values, mismatched, err := decodeFields(r, "title", "content")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(values) != len(tt.wantValues) {
				t.Errorf("values = %v, want %v", values, tt.wantValues)
			}
			for k, v := range tt.wantValues {
				if values[k] != v {
					t.Errorf("values[%q] = %q, want %q", k, values[k], v)
				}
			}
			if got := mismatched.Fields(); strings.Join(got, ",") != strings.Join(tt.wantTypes, ",") {
				t.Errorf("mismatched = %v, want %v", got, tt.wantTypes)
			}
		})
	}
}
