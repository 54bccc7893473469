// Package pathutil parses and normalizes request paths.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when a path segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive base-10 int64 identifier.
//
// Example:
//
//	id, err := ParseID("123")
//	// Returns: 123, nil
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID parses the named wildcard of a ServeMux pattern such as
// "GET /articles/{id}".
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(r.PathValue(name))
}
