package sanitizer

import "strings"

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// fullCleanUp is the canonical cleanup chain. Order is load-bearing:
// normalization must run before garbage filtering because NFKC can
// introduce or resolve codepoints the classifier acts on, and symbol
// stripping runs last over the already-filtered text.
var fullCleanUp = Compose(
	Trim,
	Normalize,
	RemoveGarbage,
	StripSymbols,
)

// FullCleanUp trims s, normalizes it with ordinal indicators
// preserved, removes garbage codepoints and strips decorative
// symbols, in that fixed order. Callers needing only part of the
// behavior should call the individual steps directly.
func FullCleanUp(s string) string {
	return fullCleanUp(s)
}
