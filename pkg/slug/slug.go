package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	hyphenRunRegex = regexp.MustCompile(`--+`)
	nonSlugRegex   = regexp.MustCompile(`[^\w-]`)
)

// Make creates a URL-safe slug from the input string. The input is
// trimmed, spaces become hyphens, runs of hyphens collapse to one,
// diacritics are decomposed (NFD) so the combining marks fall to the
// non-word filter, and the result is lowercased. An input with no
// surviving characters yields the empty string.
func Make(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = hyphenRunRegex.ReplaceAllString(s, "-")
	s = norm.NFD.String(s)
	s = nonSlugRegex.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
