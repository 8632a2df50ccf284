package sanitizer

// LooksLikePrize reports whether s reads like prize or scam
// solicitation: any prize vocabulary, currency symbol, or currency
// code appearing anywhere in the text triggers a match.
func LooksLikePrize(s string) bool {
	return prizeRegex.MatchString(s)
}
