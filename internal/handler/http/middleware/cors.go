// Package middleware provides cross-origin resource sharing for the browser
// client, which is served from a different origin than the API.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Defaults for the preflight response.
var (
	DefaultAllowedMethods = []string{"GET", "POST", "OPTIONS"}
	DefaultAllowedHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
)

// DefaultMaxAge is how long browsers may cache a preflight result, in seconds.
const DefaultMaxAge = 86400

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	Validator      OriginValidator
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
	Logger         *slog.Logger // optional
}

// OriginValidator decides whether an Origin header value may read responses.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// NewCORSConfig validates origins and returns a config with default methods
// and headers. Each origin must be an http or https URL without path,
// query, fragment or trailing slash.
func NewCORSConfig(origins []string) (*CORSConfig, error) {
	clean := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if err := validateOrigin(o); err != nil {
			return nil, err
		}
		clean = append(clean, o)
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("at least one allowed origin must be configured")
	}

	return &CORSConfig{
		Validator:      NewWhitelistValidator(clean),
		AllowedMethods: DefaultAllowedMethods,
		AllowedHeaders: DefaultAllowedHeaders,
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-Id", "Retry-After"},
		MaxAge:         DefaultMaxAge,
	}, nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Requests without an Origin header pass through untouched. Disallowed
// origins are logged and passed through without CORS headers, so the
// browser blocks the response. Preflight requests from allowed origins are
// answered with 204 and never reach next.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if exposed != "" {
				w.Header().Set("Access-Control-Expose-Headers", exposed)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
