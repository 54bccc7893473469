package middleware

import (
	"net/http"
	"strings"

	"pressroom/pkg/security/csp"
)

// SecurityHeadersConfig selects a CSP per path prefix.
type SecurityHeadersConfig struct {
	Default      *csp.Policy
	PathPolicies map[string]*csp.Policy
}

// DefaultSecurityHeadersConfig applies the API policy everywhere except the
// Swagger UI.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		Default: csp.API(),
		PathPolicies: map[string]*csp.Policy{
			"/swagger/": csp.SwaggerUI(),
		},
	}
}

// SecurityHeaders sets Content-Security-Policy, X-Content-Type-Options and
// X-Frame-Options on every response. Header values are rendered once.
func SecurityHeaders(config SecurityHeadersConfig) func(http.Handler) http.Handler {
	type rendered struct{ name, value string }
	render := func(p *csp.Policy) *rendered {
		if p == nil || p.String() == "" {
			return nil
		}
		return &rendered{name: p.HeaderName(), value: p.String()}
	}

	fallback := render(config.Default)
	byPrefix := make(map[string]*rendered, len(config.PathPolicies))
	for prefix, p := range config.PathPolicies {
		byPrefix[prefix] = render(p)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")

			policy, longest := fallback, -1
			for prefix, p := range byPrefix {
				if strings.HasPrefix(r.URL.Path, prefix) && len(prefix) > longest {
					policy, longest = p, len(prefix)
				}
			}
			if policy != nil {
				h.Set(policy.name, policy.value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
