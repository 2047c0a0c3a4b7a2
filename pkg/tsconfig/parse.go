package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/tsresolve/tsconfig/pkg/types"
)

// Parse materializes a single JSONC document from memory. No extends
// resolution happens; an extends field, if present, is consumed and
// dropped from the output. Use a Resolver when inheritance matters.
func Parse(data []byte) (*types.Config, error) {
	tree, err := parseBytes("", data)
	if err != nil {
		return nil, err
	}
	return Materialize(tree)
}

// parseBytes converts JSONC text into a value tree. tidwall/jsonc
// replaces comments and trailing commas with whitespace of equal
// length, so byte offsets reported by the JSON decoder map straight
// back to positions in the original text.
func parseBytes(path string, data []byte) (*Value, error) {
	plain := jsonc.ToJSON(data)
	dec := json.NewDecoder(bytes.NewReader(plain))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, parseError(path, plain, dec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, parseError(path, plain, dec, errors.New("trailing content after top-level value"))
	}
	return v, nil
}

func parseError(path string, data []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	line, col := lineCol(data, offset)
	return &ParseError{Path: path, Line: line, Column: col, Msg: err.Error()}
}

// lineCol converts a byte offset into a 1-based line/column pair.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
