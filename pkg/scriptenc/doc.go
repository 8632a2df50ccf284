// Package scriptenc encodes structured values as literals that are
// safe to embed directly inside an HTML <script> context.
//
// A generic JSON serializer is not enough for that purpose: a string
// value containing "</script>" would terminate the surrounding script
// element, and the U+2028/U+2029 separators are line terminators in
// embedding contexts even though JSON allows them raw. Encode
// therefore escapes angle brackets, ampersands, quotes and the line
// separators on top of the usual JSON string escapes, so the output
// can be concatenated into a document without further processing:
//
//	v := scriptenc.Object(
//	    scriptenc.Member{Key: "user", Value: scriptenc.String(name)},
//	    scriptenc.Member{Key: "admin", Value: scriptenc.Bool(false)},
//	)
//	fmt.Fprintf(w, "<script>var ctx = %s;</script>", scriptenc.Encode(v))
//
// Values form a closed tagged union over null, boolean, number,
// string, array and object; object members keep their insertion
// order. Every variant has exactly one encoding rule and nothing ever
// falls through to an unescaped pass-through.
//
// The produced literal is valid JSON, so standard parsers decode it
// back to the original structure.
package scriptenc
