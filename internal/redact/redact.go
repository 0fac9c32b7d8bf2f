// Package redact strips personally identifiable information from chat
// text before it is written anywhere.
package redact

import "regexp"

var (
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
)

// Scrub replaces email addresses and US-style phone numbers with fixed
// placeholders. Emails are replaced first so a phone number embedded in
// an address local part never splits the match.
func Scrub(s string) string {
	s = emailPattern.ReplaceAllString(s, "[EMAIL_REDACTED]")
	return phonePattern.ReplaceAllString(s, "[PHONE_REDACTED]")
}
