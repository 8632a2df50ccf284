// Package sanitizer cleans, normalises and heuristically classifies
// user-submitted free text (usernames, forum posts, profile fields)
// before it is stored or displayed.
//
// The functions are grouped conceptually into several areas:
//
//   - Garbage filtering – detection and removal of invisible,
//     decorative or otherwise non-semantic codepoints, driven by a
//     fixed table of Unicode ranges.
//
//   - Normalisation – NFKC compatibility normalisation that preserves
//     the ordinal indicator glyphs (º, °, ª) which the standard form
//     would otherwise fold away.
//
//   - Symbol stripping – removal of pictographic "Other Symbol"
//     characters spread across many non-contiguous blocks.
//
//   - Heuristics – classifiers for shouting (excessive capitalization)
//     and prize/scam solicitation vocabulary.
//
// The canonical cleanup entry point composes the pieces in a fixed,
// order-sensitive chain:
//
//	clean := sanitizer.FullCleanUp(rawInput)
//	// equivalent to StripSymbols(RemoveGarbage(Normalize(Trim(rawInput))))
//
// The package is completely stateless; every helper is a pure function
// of its input. For convenience the higher-order Apply and Compose
// helpers allow the creation of custom sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.Normalize,
//	    sanitizer.NoShouting,
//	)
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/textkit/pkg/sanitizer"
//
// Example – cleaning a username before display:
//
//	name := sanitizer.FullCleanUp("  ＨＥＬＬＯ world  ")
//	name = sanitizer.NoShouting(name)
//
// # Error handling
//
// None of the helpers returns an error – every input, including the
// empty string and strings consisting entirely of garbage characters,
// produces a well-defined result (possibly the empty string).
//
// # Performance
//
// All operations are linear in the input length, allocate only what is
// necessary, and hold no global mutable state, so the helpers are safe
// for use from multiple goroutines concurrently.
package sanitizer
