package tsconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Value {
	t.Helper()
	v, err := parseBytes("test.json", []byte(src))
	require.NoError(t, err)
	return v
}

func TestParseBytesToleratesJSONC(t *testing.T) {
	v := mustParse(t, `{
		// line comment
		"compilerOptions": {
			/* block comment */
			"strict": true,
		},
	}`)

	opts, ok := v.Get("compilerOptions")
	require.True(t, ok)
	strict, ok := opts.Get("strict")
	require.True(t, ok)
	assert.Equal(t, Bool, strict.Kind())
	assert.True(t, strict.Bool())
}

func TestParseBytesKeyOrder(t *testing.T) {
	v := mustParse(t, `{"z": 1, "a": 2, "m": 3}`)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
}

func TestParseBytesDuplicateKeysLastWins(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)

	a, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), a.Number())
	// first position is kept
	assert.Equal(t, []string{"a", "b"}, v.Keys())
}

func TestParseBytesPreservesNumberText(t *testing.T) {
	v := mustParse(t, `{"big": 9007199254740993, "frac": 0.1e2}`)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"big": 9007199254740993, "frac": 0.1e2}`, string(out))

	big, _ := v.Get("big")
	assert.Equal(t, json.Number("9007199254740993"), big.Number())
}

func TestParseBytesSyntaxError(t *testing.T) {
	_, err := parseBytes("broken.json", []byte("{\n  \"a\": ,\n}"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "broken.json", perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.NotEmpty(t, perr.Msg)
}

func TestParseBytesRejectsTrailingContent(t *testing.T) {
	_, err := parseBytes("extra.json", []byte(`{"a": 1} {"b": 2}`))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestMarshalRoundTrip(t *testing.T) {
	src := `{"compilerOptions":{"strict":true,"target":"ES2020","lib":["ES2020","DOM"]},"include":["src"],"custom":{"bar":1,"baz":null}}`
	v := mustParse(t, src)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestCloneIsIndependent(t *testing.T) {
	v := mustParse(t, `{"a": {"b": 1}}`)
	c := v.Clone()

	inner, _ := c.Get("a")
	inner.Set("b", newNumber("2"))

	orig, _ := v.Get("a")
	b, _ := orig.Get("b")
	assert.Equal(t, json.Number("1"), b.Number())
}

func TestInterfaceConversion(t *testing.T) {
	v := mustParse(t, `{"s": "x", "n": 1, "b": false, "nul": null, "arr": [1, "two"]}`)
	got := v.Interface().(map[string]any)

	assert.Equal(t, "x", got["s"])
	assert.Equal(t, json.Number("1"), got["n"])
	assert.Equal(t, false, got["b"])
	assert.Nil(t, got["nul"])
	assert.Equal(t, []any{json.Number("1"), "two"}, got["arr"])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "boolean", Bool.String())
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "array", Array.String())
	assert.Equal(t, "object", Object.String())
}
