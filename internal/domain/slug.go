package domain

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title: lowercased ASCII letters
// and digits with single-hyphen separators. Non-Latin titles (Arabic)
// fall back to the empty string; callers use the English title for slugs.
func Slugify(title string) string {
	var b strings.Builder
	prevHyphen := true // suppress leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '/':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
