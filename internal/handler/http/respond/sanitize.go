package respond

import (
	"regexp"
)

var (
	// user:password@ inside URL-style DSNs
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// password=... inside keyword/value DSNs
	dbKeywordPasswordPattern = regexp.MustCompile(`(?i)(password=)('[^']*'|\S+)`)
)

// SanitizeError returns the error message with database credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = dbKeywordPasswordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
