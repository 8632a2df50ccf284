package scriptenc

import (
	"math"
	"strconv"
	"strings"
)

// Encode renders v as a script-embeddable literal. The output is
// valid JSON with additional escaping: quotes, backslashes, angle
// brackets, ampersands, control characters and the U+2028/U+2029
// separators never appear raw, so sequences like "</script>" cannot
// survive into the output.
func Encode(v Value) string {
	var b strings.Builder
	encodeValue(&b, v)
	return b.String()
}

func encodeValue(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.boolVal {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.numVal))
	case KindString:
		encodeString(b, v.strVal)
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.arrVal {
			if i > 0 {
				b.WriteByte(',')
			}
			encodeValue(b, e)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.objVal {
			if i > 0 {
				b.WriteByte(',')
			}
			encodeString(b, m.Key)
			b.WriteByte(':')
			encodeValue(b, m.Value)
		}
		b.WriteByte('}')
	default:
		// Unknown kinds must never leak content unescaped.
		b.WriteString("null")
	}
}

// formatNumber mirrors the canonical decimal form used by
// encoding/json: plain notation for mid-range magnitudes, exponent
// notation outside it. Non-finite values have no literal form and
// encode as null.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}

const hexDigits = "0123456789abcdef"

func encodeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '<', '>', '&', '\'', '\u2028', '\u2029':
			writeHexEscape(b, r)
		default:
			if r < 0x20 {
				writeHexEscape(b, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

func writeHexEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(r>>shift)&0xF])
	}
}
