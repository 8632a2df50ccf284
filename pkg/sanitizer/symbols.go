package sanitizer

// StripSymbols removes every run of codepoints in the Unicode "Other
// Symbol" category: pictographs, emoji-adjacent glyphs and decorative
// signs. The category spans many non-contiguous blocks, so this is a
// pattern removal rather than a range check.
func StripSymbols(s string) string {
	return otherSymbolRegex.ReplaceAllString(s, "")
}
