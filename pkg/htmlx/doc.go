// Package htmlx provides the small HTML-facing helpers that the text
// pipeline hands cleaned content to: escaping, newline-to-break
// conversion, bare-URL autolinking and tag stripping, plus the
// lenient decoders used for user-supplied encoded values.
//
// HTML sanitization itself is delegated to bluemonday policies; this
// package never attempts its own tag filtering.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/htmlx"
//
//	body := htmlx.Nl2Br(htmlx.Escape(post))
//	body = htmlx.AddLinks(body, true)
//
// # Error handling
//
// The decoders report absence of a result with a boolean instead of
// an error: malformed Base64 or percent-encoding is a normal, expected
// outcome for user input, not an exceptional one. Everything else
// always produces a usable string.
package htmlx
