// Package redact removes credentials and other sensitive details from text
// before it is logged. Provider error messages can echo request URLs, API
// keys, or local file paths; everything logged from a generation failure
// passes through here first.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; earlier rules see the original text.
var rules = []rule{
	// Google API keys, e.g. AIzaSyD-...
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},

	// key=... in query strings
	{regexp.MustCompile(`([?&](?:key|api_key|apikey|access_token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},

	// Authorization headers and bearer tokens
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`), "${1}" + RedactedCredentialPlaceholder},

	// api_key: value, token=value, secret "value"
	{regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|password)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), "${1}${2}" + RedactedCredentialPlaceholder},

	// Absolute unix paths with at least two segments
	{regexp.MustCompile(`(^|[\s"'(=])(?:/[\w.\-]+){2,}`), "${1}" + RedactedPathPlaceholder},

	{regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
