package pathutil

import (
	"regexp"
	"strings"
)

// APIPrefix is the optional mount point in front of every resource route.
const APIPrefix = "/api"

type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Evaluated in order; the first match wins.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/[^/]+$`), template: "/articles/:id"},
	{pattern: regexp.MustCompile(`^/articles/[^/]+/comments$`), template: "/articles/:id/comments"},
}

// NormalizePath replaces identifiers in dynamic routes with placeholders so
// metric labels and span names stay low-cardinality. The /api prefix, if
// present, is kept.
//
// Examples:
//
//	NormalizePath("/articles/123")              // "/articles/:id"
//	NormalizePath("/api/articles/7/comments")   // "/api/articles/:id/comments"
//	NormalizePath("/articles/123/?x=1")         // "/articles/:id"
//	NormalizePath("/health")                    // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	prefix := ""
	if rest, ok := strings.CutPrefix(path, APIPrefix); ok && strings.HasPrefix(rest, "/") {
		prefix, path = APIPrefix, rest
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return prefix + p.template
		}
	}
	return prefix + path
}
