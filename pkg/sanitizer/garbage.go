package sanitizer

import (
	"sort"
	"strings"
)

// garbageRange is an inclusive codepoint interval.
type garbageRange struct {
	lo, hi rune
}

// garbageRanges lists every codepoint interval classified as garbage,
// sorted by lower bound and non-overlapping. The mathematical
// operators block U+2200–U+22FF sits between the two symbol intervals
// and is deliberately absent: it must survive cleanup.
var garbageRanges = []garbageRange{
	{0x0250, 0x02AF}, // IPA extensions
	{0x06D6, 0x06FF}, // Quranic annotation marks
	{0x1D00, 0x1D7F}, // phonetic extensions
	{0x2000, 0x200F}, // invisible spaces, zero-width and format controls
	{0x2028, 0x202F}, // line/paragraph separators, bidi embedding controls
	{0x2100, 0x21FF}, // letterlike symbols and arrows
	{0x2300, 0x2C5F}, // technical, box-drawing and decorative blocks
	{0x534D, 0x534D},
	{0x5350, 0x5350},
	{0xA9C1, 0xA9C2}, // Javanese ornamental brackets
}

// IsGarbageRune reports whether r is a garbage codepoint: a character
// that is invisible, decorative or otherwise non-semantic for display
// purposes, per the fixed range table above.
func IsGarbageRune(r rune) bool {
	i := sort.Search(len(garbageRanges), func(i int) bool {
		return garbageRanges[i].hi >= r
	})
	return i < len(garbageRanges) && garbageRanges[i].lo <= r
}

// HasGarbage reports whether s contains at least one garbage codepoint.
func HasGarbage(s string) bool {
	return strings.ContainsFunc(s, IsGarbageRune)
}

// GarbageRunes returns the set of distinct garbage codepoints found in
// s. Useful for diagnostics and moderation reports.
func GarbageRunes(s string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range s {
		if IsGarbageRune(r) {
			set[r] = struct{}{}
		}
	}
	return set
}

// RemoveGarbage filters all garbage codepoints out of s, preserving
// the relative order of the remaining characters. The operation is
// idempotent.
func RemoveGarbage(s string) string {
	return strings.Map(func(r rune) rune {
		if IsGarbageRune(r) {
			return -1
		}
		return r
	}, s)
}
