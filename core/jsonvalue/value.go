package jsonvalue

import (
	"bytes"
	"cmp"
	"encoding/json"
	"math"
	"slices"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	text    string // string contents or number literal
	items   []Value
	members []Member
	index   map[string]int // member position by key
}

// NullValue returns the JSON null value.
func NullValue() Value { return Value{} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// NumberValue wraps a number literal such as "42" or "-1.5e3".
func NumberValue(n json.Number) Value { return Value{kind: Number, text: string(n)} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue builds an array from items.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, items: items}
}

// ObjectValue builds an object from members. A duplicated key keeps the
// position of its first occurrence and the value of its last. Members are
// enumerated like JavaScript object keys: array-index keys ("0", "7", ...)
// first in ascending numeric order, then every other key in insertion order.
func ObjectValue(members ...Member) Value {
	b := newObjectBuilder(len(members))
	for _, m := range members {
		b.set(m.Key, m.Value)
	}
	return b.value()
}

type objectBuilder struct {
	members []Member
	index   map[string]int
}

func newObjectBuilder(size int) *objectBuilder {
	return &objectBuilder{
		members: make([]Member, 0, size),
		index:   make(map[string]int, size),
	}
}

func (b *objectBuilder) set(key string, v Value) {
	if i, ok := b.index[key]; ok {
		b.members[i].Value = v
		return
	}
	b.index[key] = len(b.members)
	b.members = append(b.members, Member{Key: key, Value: v})
}

func (b *objectBuilder) value() Value {
	var indexKeys, named []Member
	for _, m := range b.members {
		if _, ok := arrayIndex(m.Key); ok {
			indexKeys = append(indexKeys, m)
		} else {
			named = append(named, m)
		}
	}
	if len(indexKeys) > 0 {
		slices.SortStableFunc(indexKeys, func(x, y Member) int {
			a, _ := arrayIndex(x.Key)
			c, _ := arrayIndex(y.Key)
			return cmp.Compare(a, c)
		})
		b.members = append(indexKeys, named...)
		for i, m := range b.members {
			b.index[m.Key] = i
		}
	}
	return Value{kind: Object, members: b.members, index: b.index}
}

// arrayIndex reports whether key is a canonical array index as JavaScript
// defines one: a decimal integer below 2^32-1 without leading zeros.
func arrayIndex(key string) (uint32, bool) {
	if key == "" || len(key) > 10 || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsStructured reports whether v is an object or an array.
func (v Value) IsStructured() bool { return v.kind == Object || v.kind == Array }

// Str returns the contents of a string value.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Bool returns the contents of a boolean value.
func (v Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Number returns the literal of a number value.
func (v Value) Number() (json.Number, bool) {
	if v.kind != Number {
		return "", false
	}
	return json.Number(v.text), true
}

// Items returns the elements of an array, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Members returns the members of an object in enumeration order (see
// ObjectValue), or nil for any other kind.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Get looks up an object member by key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	if i, ok := v.index[key]; ok {
		return v.members[i].Value, true
	}
	return Value{}, false
}

// Len returns the number of elements of an array, members of an object, or
// bytes of a string. It returns 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	case String:
		return len(v.text)
	default:
		return 0
	}
}

// Children returns the nested values of an array or object in order.
func (v Value) Children() []Value {
	switch v.kind {
	case Array:
		return v.items
	case Object:
		out := make([]Value, len(v.members))
		for i, m := range v.members {
			out[i] = m.Value
		}
		return out
	default:
		return nil
	}
}

// Truthy applies JavaScript truthiness: null, false, 0, NaN and "" are falsy,
// every array and object (even empty) is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			// Out of range literals are still non-zero numbers.
			return true
		}
		return f != 0 && !math.IsNaN(f)
	case String:
		return v.text != ""
	case Array, Object:
		return true
	default:
		return false
	}
}

// Scalar returns the text form of a string, number or boolean value.
func (v Value) Scalar() (string, bool) {
	switch v.kind {
	case String, Number:
		return v.text, true
	case Bool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

// MarshalJSON encodes v, keeping object members in order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.b))
	case Number:
		buf.WriteString(v.text)
	case String:
		return writeString(buf, v.text)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
