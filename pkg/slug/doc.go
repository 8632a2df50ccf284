// Package slug provides URL-safe string generation for use in web applications.
//
// The package converts arbitrary free text into a lowercase, hyphen-delimited
// identifier suitable for URLs: spaces become hyphens, hyphen runs collapse,
// diacritics are decomposed and dropped, and everything outside the word
// character set is removed. This is particularly useful for creating readable
// URLs from user-generated content like forum topic titles or usernames.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/slug"
//
//	url := slug.Make("Hello World!!")
//	// Result: "hello-world"
//
//	url := slug.Make("Café au lait")
//	// Result: "cafe-au-lait"
//
// An input with no surviving characters produces the empty string; that is a
// valid, expected result, not an error.
//
// # Unicode Support
//
// Diacritics are handled by canonical decomposition (NFD): "café" becomes
// "cafe" because the combining mark is decomposed away from its base letter
// and then discarded. This is deliberately the opposite normalization
// direction from display cleanup, which targets the composed form.
//
// # Thread Safety
//
// Make is a pure function with no shared state and is safe for concurrent use.
package slug
