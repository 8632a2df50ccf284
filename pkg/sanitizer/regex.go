package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Decorative symbol stripping
	otherSymbolRegex = regexp.MustCompile(`\p{So}+`)

	// Prize/scam solicitation vocabulary: prize words and stems,
	// currency symbols, and the usd/btc codes next to a word boundary
	// or digit.
	prizeRegex = regexp.MustCompile(`(?i)\b(?:prize|rupee|rupiah|ringgit|dollar|paypal|cash|award|fees?|euros?|price|bitcoin)|[$€£¥₽元₹₱₿]|(?:\b|\d)(?:usd|btc)(?:\b|\d)`)
)
