package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the JSON shape a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of a parsed configuration tree. Object keys keep
// their insertion order, and numbers keep their source text, so a
// tree serializes back without loss.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []*Value
	obj  *orderedmap.OrderedMap[string, *Value]
}

// Kind returns the shape of the value.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Only meaningful for Bool values.
func (v *Value) Bool() bool { return v.b }

// Number returns the numeric payload. Only meaningful for Number values.
func (v *Value) Number() json.Number { return v.num }

// Text returns the string payload. Only meaningful for String values.
func (v *Value) Text() string { return v.str }

// Len returns the element count of an Array or the key count of an
// Object, and 0 for everything else.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return v.obj.Len()
	}
	return 0
}

// Index returns the i-th element of an Array value.
func (v *Value) Index(i int) *Value { return v.arr[i] }

// Get looks up a key on an Object value.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != Object {
		return nil, false
	}
	return v.obj.Get(key)
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Set stores a key on an Object value, appending it if new.
func (v *Value) Set(key string, val *Value) {
	v.obj.Set(key, val)
}

// Delete removes a key from an Object value.
func (v *Value) Delete(key string) {
	if v.kind == Object {
		v.obj.Delete(key)
	}
}

// Clone returns a deep copy sharing no nodes with the receiver.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{kind: v.kind, b: v.b, num: v.num, str: v.str}
	switch v.kind {
	case Array:
		out.arr = make([]*Value, len(v.arr))
		for i, elem := range v.arr {
			out.arr[i] = elem.Clone()
		}
	case Object:
		out.obj = orderedmap.New[string, *Value]()
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			out.obj.Set(pair.Key, pair.Value.Clone())
		}
	}
	return out
}

// Interface converts the tree into plain Go values: nil, bool,
// json.Number, string, []any and map[string]any. Object key order is
// lost in the map form; use MarshalJSON when order matters.
func (v *Value) Interface() any {
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.b
	case Number:
		return v.num
	case String:
		return v.str
	case Array:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, v.obj.Len())
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = pair.Value.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON serializes the tree, preserving object key order and
// the source form of numbers.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		if v.num == "" {
			buf.WriteByte('0')
		} else {
			buf.WriteString(string(v.num))
		}
	case String:
		enc, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(enc)
	case Array:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := elem.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		first := true
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := json.Marshal(pair.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := pair.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func newNull() *Value           { return &Value{kind: Null} }
func newBool(b bool) *Value     { return &Value{kind: Bool, b: b} }
func newString(s string) *Value { return &Value{kind: String, str: s} }

func newNumber(n json.Number) *Value { return &Value{kind: Number, num: n} }

func newObject() *Value {
	return &Value{kind: Object, obj: orderedmap.New[string, *Value]()}
}

// decodeValue builds a Value from the decoder's next complete JSON
// value. Duplicate object keys keep their first position but take the
// last value seen.
func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := newObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &Value{kind: Array}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.arr = append(arr.arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case bool:
		return newBool(t), nil
	case json.Number:
		return newNumber(t), nil
	case string:
		return newString(t), nil
	case nil:
		return newNull(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
