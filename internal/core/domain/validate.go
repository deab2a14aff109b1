// internal/core/domain/validate.go
package domain

import "regexp"

// Format guards used before a create/update round trip. These are
// pre-submission checks only; the server is the final arbiter of validity.
var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,}$`)
)

// ValidEmail reports whether s has the standard local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s looks like a dialable phone number. An empty
// phone is handled by the caller; this only checks format.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
