package scriptenc_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/scriptenc"
)

func TestEncodeScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    scriptenc.Value
		expected string
	}{
		{
			name:     "null",
			value:    scriptenc.Null(),
			expected: "null",
		},
		{
			name:     "zero value is null",
			value:    scriptenc.Value{},
			expected: "null",
		},
		{
			name:     "true",
			value:    scriptenc.Bool(true),
			expected: "true",
		},
		{
			name:     "false",
			value:    scriptenc.Bool(false),
			expected: "false",
		},
		{
			name:     "integer",
			value:    scriptenc.Int(42),
			expected: "42",
		},
		{
			name:     "negative integer",
			value:    scriptenc.Int(-7),
			expected: "-7",
		},
		{
			name:     "float",
			value:    scriptenc.Number(3.14),
			expected: "3.14",
		},
		{
			name:     "zero",
			value:    scriptenc.Number(0),
			expected: "0",
		},
		{
			name:     "plain string",
			value:    scriptenc.String("hello"),
			expected: `"hello"`,
		},
		{
			name:     "empty string",
			value:    scriptenc.String(""),
			expected: `""`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, scriptenc.Encode(tt.value))
		})
	}
}

func TestEncodeStringEscaping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "double quote",
			input:    `say "hi"`,
			expected: `"say \"hi\""`,
		},
		{
			name:     "backslash",
			input:    `a\b`,
			expected: `"a\\b"`,
		},
		{
			name:     "angle brackets",
			input:    "<b>",
			expected: `"\u003cb\u003e"`,
		},
		{
			name:     "ampersand",
			input:    "a&b",
			expected: `"a\u0026b"`,
		},
		{
			name:     "single quote",
			input:    "it's",
			expected: `"it\u0027s"`,
		},
		{
			name:     "newline and tab",
			input:    "a\n\tb",
			expected: `"a\n\tb"`,
		},
		{
			name:     "carriage return",
			input:    "a\rb",
			expected: `"a\rb"`,
		},
		{
			name:     "control character",
			input:    "a\x01b",
			expected: `"a\u0001b"`,
		},
		{
			name:     "line separator",
			input:    "a\u2028b",
			expected: `"a\u2028b"`,
		},
		{
			name:     "paragraph separator",
			input:    "a\u2029b",
			expected: `"a\u2029b"`,
		},
		{
			name:     "unicode text passes through",
			input:    "héllo wörld",
			expected: `"héllo wörld"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, scriptenc.Encode(scriptenc.String(tt.input)))
		})
	}
}

func TestEncodeBlocksScriptBreakout(t *testing.T) {
	t.Parallel()

	hostile := []string{
		"</script>",
		"</script><script>alert(1)</script>",
		"<!-- <script> -->",
		"a </script> b",
		"line\u2028break\u2029attack",
	}

	for _, input := range hostile {
		out := scriptenc.Encode(scriptenc.String(input))
		assert.NotContains(t, out, "</script>", "breakout survived for %q", input)
		assert.NotContains(t, out, "<", "raw angle bracket for %q", input)
		assert.NotContains(t, out, "\u2028", "raw line separator for %q", input)
		assert.NotContains(t, out, "\u2029", "raw paragraph separator for %q", input)
	}
}

func TestEncodeComposite(t *testing.T) {
	t.Parallel()

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		v := scriptenc.Array(
			scriptenc.Int(1),
			scriptenc.String("two"),
			scriptenc.Null(),
			scriptenc.Bool(true),
		)
		assert.Equal(t, `[1,"two",null,true]`, scriptenc.Encode(v))
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `[]`, scriptenc.Encode(scriptenc.Array()))
	})

	t.Run("object preserves insertion order", func(t *testing.T) {
		t.Parallel()

		v := scriptenc.Object(
			scriptenc.Member{Key: "zebra", Value: scriptenc.Int(1)},
			scriptenc.Member{Key: "apple", Value: scriptenc.Int(2)},
			scriptenc.Member{Key: "mango", Value: scriptenc.Int(3)},
		)
		assert.Equal(t, `{"zebra":1,"apple":2,"mango":3}`, scriptenc.Encode(v))
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `{}`, scriptenc.Encode(scriptenc.Object()))
	})

	t.Run("object keys are escaped", func(t *testing.T) {
		t.Parallel()

		v := scriptenc.Object(
			scriptenc.Member{Key: "</script>", Value: scriptenc.Null()},
		)
		out := scriptenc.Encode(v)
		assert.NotContains(t, out, "</script>")
	})

	t.Run("nested structures", func(t *testing.T) {
		t.Parallel()

		v := scriptenc.Object(
			scriptenc.Member{Key: "user", Value: scriptenc.Object(
				scriptenc.Member{Key: "name", Value: scriptenc.String("alice")},
				scriptenc.Member{Key: "tags", Value: scriptenc.Array(
					scriptenc.String("admin"),
					scriptenc.String("ops"),
				)},
			)},
			scriptenc.Member{Key: "count", Value: scriptenc.Int(2)},
		)
		assert.Equal(t, `{"user":{"name":"alice","tags":["admin","ops"]},"count":2}`, scriptenc.Encode(v))
	})
}

func TestEncodeRoundTripsThroughJSON(t *testing.T) {
	t.Parallel()

	v := scriptenc.Object(
		scriptenc.Member{Key: "title", Value: scriptenc.String(`<b>Hello & "world"</b>`)},
		scriptenc.Member{Key: "visits", Value: scriptenc.Number(1234)},
		scriptenc.Member{Key: "ratio", Value: scriptenc.Number(0.5)},
		scriptenc.Member{Key: "active", Value: scriptenc.Bool(true)},
		scriptenc.Member{Key: "parent", Value: scriptenc.Null()},
		scriptenc.Member{Key: "notes", Value: scriptenc.Array(
			scriptenc.String("line one\u2028line two"),
			scriptenc.String("</script>"),
		)},
	)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(scriptenc.Encode(v)), &decoded))

	assert.Equal(t, `<b>Hello & "world"</b>`, decoded["title"])
	assert.Equal(t, float64(1234), decoded["visits"])
	assert.Equal(t, 0.5, decoded["ratio"])
	assert.Equal(t, true, decoded["active"])
	assert.Nil(t, decoded["parent"])
	assert.Equal(t, []any{"line one\u2028line two", "</script>"}, decoded["notes"])
}

func TestEncodeNonFiniteNumbers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", scriptenc.Encode(scriptenc.Number(math.Inf(1))))
	assert.Equal(t, "null", scriptenc.Encode(scriptenc.Number(math.Inf(-1))))
	assert.Equal(t, "null", scriptenc.Encode(scriptenc.Number(math.NaN())))
}
