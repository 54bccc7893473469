package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ValidatePositiveDuration reports an error unless d > 0.
func ValidatePositiveDuration(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, d)
	}
	return nil
}

// ValidatePositiveInt reports an error unless n > 0.
func ValidatePositiveInt(name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// ValidateOneOf reports an error unless value is one of allowed.
func ValidateOneOf(name, value string, allowed ...string) error {
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%s must be one of [%s], got %q", name, strings.Join(allowed, ", "), value)
	}
	return nil
}
