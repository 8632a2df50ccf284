package sanitizer

import (
	"strings"
	"unicode"
)

const (
	shoutingMinLen = 5
	shoutingWindow = 80
)

// IsShouting reports whether s reads as excessive capitalization.
// Only the first 80 codepoints are examined: each uppercase letter
// scores +1, each lowercase letter -1, everything else is neutral,
// and a strictly positive total means shouting. Strings shorter than
// 5 codepoints never qualify.
func IsShouting(s string) bool {
	runes := []rune(s)
	if len(runes) < shoutingMinLen {
		return false
	}
	if len(runes) > shoutingWindow {
		runes = runes[:shoutingWindow]
	}

	score := 0
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			score++
		case unicode.IsLower(r):
			score--
		}
	}
	return score > 0
}

// NoShouting lowercases s only when IsShouting classifies it as
// shouting; otherwise the input is returned unchanged.
func NoShouting(s string) string {
	if IsShouting(s) {
		return strings.ToLower(s)
	}
	return s
}
