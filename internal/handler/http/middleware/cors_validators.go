package middleware

import (
	"strings"
)

// WhitelistValidator implements exact-match origin validation.
// Comparison ignores case and a trailing slash.
type WhitelistValidator struct {
	allowed map[string]struct{}
}

// NewWhitelistValidator creates a WhitelistValidator; empty entries are ignored.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if n := normalizeOrigin(origin); n != "" {
			allowed[n] = struct{}{}
		}
	}
	return &WhitelistValidator{allowed: allowed}
}

// IsAllowed reports whether origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	n := normalizeOrigin(origin)
	if n == "" {
		return false
	}
	_, ok := v.allowed[n]
	return ok
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
