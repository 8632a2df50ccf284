package htmlx

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()

	urlRegex      = regexp.MustCompile(`https?://[^\s<>"']+`)
	imageURLRegex = regexp.MustCompile(`(?i)\.(?:png|jpe?g|gif|webp)$`)
)

// Escape escapes HTML special characters like "<" to become "&lt;".
func Escape(s string) string {
	return html.EscapeString(s)
}

// Nl2Br converts line breaks to <br> tags, normalizing CRLF and bare
// CR to LF first. The newline is kept after the tag so the source
// stays readable.
func Nl2Br(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "<br>\n")
}

// AddLinks wraps bare http/https URLs in anchor tags. When
// expandImages is true, URLs ending in a known image extension become
// inline <img> tags instead. The combined result is passed through a
// UGC sanitization policy, so hostile markup in the surrounding text
// does not survive.
func AddLinks(s string, expandImages bool) string {
	out := urlRegex.ReplaceAllStringFunc(s, func(raw string) string {
		if expandImages && imageURLRegex.MatchString(raw) {
			return `<img src="` + raw + `" alt="">`
		}
		return `<a href="` + raw + `">` + raw + `</a>`
	})
	return ugcPolicy.Sanitize(out)
}

// StripTags removes all HTML elements from s, keeping only the text
// content.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}
