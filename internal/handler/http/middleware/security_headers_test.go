package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pressroom/pkg/security/csp"
)

func serveSecurityHeaders(cfg SecurityHeadersConfig, path string) *httptest.ResponseRecorder {
	h := SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestSecurityHeaders_PolicyByPath(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig()

	tests := []struct {
		path string
		want string
	}{
		{"/articles", csp.API().String()},
		{"/api/articles/1", csp.API().String()},
		{"/swagger/index.html", csp.SwaggerUI().String()},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := serveSecurityHeaders(cfg, tt.path)
			assert.Equal(t, tt.want, rr.Header().Get(csp.HeaderEnforce))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
		})
	}
}

func TestSecurityHeaders_LongestPrefixWins(t *testing.T) {
	cfg := SecurityHeadersConfig{
		PathPolicies: map[string]*csp.Policy{
			"/docs/":     csp.New().Set("default-src", "'self'"),
			"/docs/raw/": csp.New().Set("default-src", "'none'"),
		},
	}

	assert.Equal(t, "default-src 'none'", serveSecurityHeaders(cfg, "/docs/raw/a").Header().Get(csp.HeaderEnforce))
	assert.Equal(t, "default-src 'self'", serveSecurityHeaders(cfg, "/docs/a").Header().Get(csp.HeaderEnforce))
	assert.Empty(t, serveSecurityHeaders(cfg, "/other").Header().Get(csp.HeaderEnforce))
}

func TestSecurityHeaders_ReportOnly(t *testing.T) {
	cfg := SecurityHeadersConfig{Default: csp.API().ReportOnly(true)}

	rr := serveSecurityHeaders(cfg, "/articles")
	assert.Empty(t, rr.Header().Get(csp.HeaderEnforce))
	assert.Equal(t, csp.API().String(), rr.Header().Get(csp.HeaderReportOnly))
}
