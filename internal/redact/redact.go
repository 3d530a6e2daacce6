// Package redact scrubs sensitive fragments from strings before they are
// logged. Store and auth errors can embed connection strings, tokens, or
// SQL; those must never reach the log stream verbatim.
package redact

import "regexp"

const placeholder = "[REDACTED]"

// Patterns are checked in order; earlier patterns win on overlap.
var patterns = []*regexp.Regexp{
	// Database connection strings with credentials
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb)://[^@\s]+@[^\s]+`),

	// Three-part base64url JWT tokens
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),

	// Inline credentials and keys
	regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|token)[=:\s]+[^\s'"&]{4,}`),

	// SQL statement fragments
	regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)\s[\s\w,*()='"$]+(FROM|INTO|SET|TABLE|WHERE)[\s\w,*()='"$]*`),

	// host:port endpoints
	regexp.MustCompile(`\b[a-zA-Z0-9][a-zA-Z0-9.-]*\.[a-zA-Z]{2,}:\d{1,5}\b`),
}

// String returns s with any sensitive fragments replaced.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, placeholder)
	}
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
