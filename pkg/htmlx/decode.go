package htmlx

import (
	"encoding/base64"
	"net/url"
)

// DecodeBase64 decodes a standard Base64 string. It reports false for
// malformed input instead of an error; callers treat that as a normal
// no-value outcome.
func DecodeBase64(s string) (string, bool) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// DecodePath decodes a percent-encoded URL path segment, reporting
// false for malformed escapes.
func DecodePath(s string) (string, bool) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", false
	}
	return out, true
}
