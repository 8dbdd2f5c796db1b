package utils

import (
	"regexp"
	"strings"
)

// urlPattern accepts http(s) URLs with a dotted hostname (2-6 letter TLD,
// optional trailing dot), localhost, or a dotted-quad IPv4 address, an
// optional port and an optional path or query.
var urlPattern = regexp.MustCompile(
	`(?i)^https?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?|` +
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)

// ValidateURL trims the input, prepends https:// when no scheme is given
// and checks the result against the URL grammar. It returns the normalized
// URL or an INVALID_URL error. Pure function, no side effects.
func ValidateURL(raw string) (string, *AppError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewInvalidURLError("please enter a valid URL")
	}

	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}

	if !urlPattern.MatchString(trimmed) {
		return "", NewInvalidURLError("URL format is incorrect")
	}

	return trimmed, nil
}
