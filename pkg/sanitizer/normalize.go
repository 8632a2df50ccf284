package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinels shielding ordinal indicators during normalization. NFKC
// folds º to "o" and ª to "a", destroying the glyphs; the C0 device
// controls are stable under every normalization form and never occur
// in realistic user text.
const (
	ordinalSentinel  = "\x11" // stands in for º and °
	feminineSentinel = "\x12" // stands in for ª
)

var (
	ordinalShield = strings.NewReplacer(
		"º", ordinalSentinel,
		"°", ordinalSentinel,
		"ª", feminineSentinel,
	)
	ordinalRestore = strings.NewReplacer(
		ordinalSentinel, "º",
		feminineSentinel, "ª",
	)
)

// Normalize applies NFKC normalization to s while keeping the ordinal
// indicators º, ° and ª as literal glyphs. Everything else is folded
// to its canonical composed form: fullwidth letters, ligatures,
// compatibility variants.
func Normalize(s string) string {
	s = ordinalShield.Replace(s)
	s = norm.NFKC.String(s)
	return ordinalRestore.Replace(s)
}
