// Package config provides helpers for reading typed values from environment
// variables. Invalid values fall back to the default and are logged, so a
// typo in a deployment never prevents startup on its own; callers that need
// strict checking validate the result afterwards (see validate.go).
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of key, or defaultValue when it is unset or empty.
//
// Example:
//
//	addr := GetEnvString("HTTP_ADDR", ":8000")
func GetEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the value of key parsed as a base-10 integer.
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		warnInvalid(key, raw, strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvFloat returns the value of key parsed as a float64.
//
// Example:
//
//	perSecond := GetEnvFloat("WRITE_RATE_LIMIT", 5)
func GetEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		warnInvalid(key, raw, strconv.FormatFloat(defaultValue, 'g', -1, 64), err)
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of key parsed with strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their upper-case forms).
func GetEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		warnInvalid(key, raw, strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of key parsed by time.ParseDuration ("30s", "1h30m").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		warnInvalid(key, raw, defaultValue.String(), err)
		return defaultValue
	}
	return value
}

// GetEnvStringList splits a comma-separated value, trimming each element and
// dropping empty ones. If nothing remains, defaultValue is returned.
//
// Example:
//
//	// CORS_ALLOWED_ORIGINS="http://localhost:3000, http://localhost:5173"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

func warnInvalid(key, value, defaultValue string, err error) {
	slog.Warn("invalid value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", defaultValue),
		slog.String("error", err.Error()))
}
