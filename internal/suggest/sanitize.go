package suggest

import (
	"strings"
	"unicode"
)

var schemePrefixes = []string{"http://", "https://"}

// sanitizeDomain normalizes a user-entered domain for validation and
// duplicate comparison: leading whitespace, an optional scheme and an
// optional www. prefix are stripped from the start, and one trailing slash
// is dropped. The stored entry stays untouched; only comparisons use the
// sanitized form.
func sanitizeDomain(raw string) (string, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	for _, prefix := range schemePrefixes {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
			break
		}
	}
	if len(s) >= len("www.") && strings.EqualFold(s[:len("www.")], "www.") {
		s = s[len("www."):]
	}

	if s == "" {
		return "", ErrInvalidURL
	}
	// A bare label without a dot cannot be a hostname worth completing.
	if !strings.Contains(s, ".") {
		return "", ErrInvalidURL
	}

	return strings.TrimSuffix(s, "/"), nil
}
