package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// MaxNesting bounds how deeply arrays and objects may nest before Parse gives
// up. It matches the limit encoding/json applies to its own decoder.
const MaxNesting = 10000

var (
	// ErrInvalid is returned when the input is not a single well-formed JSON
	// value.
	ErrInvalid = errors.New("jsonvalue: invalid JSON")

	// ErrTrailingData is returned when a complete value is followed by more
	// non-whitespace input.
	ErrTrailingData = errors.New("jsonvalue: trailing data after top-level value")

	// ErrTooDeep is returned when the input nests deeper than MaxNesting.
	ErrTooDeep = errors.New("jsonvalue: exceeded max nesting depth")
)

// Parse decodes exactly one JSON value from data.
func Parse(data []byte) (Value, error) {
	return ParseString(string(data))
}

// ParseString decodes exactly one JSON value from s. The input is validated
// with gjson before any tree is built, so malformed text costs one linear scan.
func ParseString(s string) (Value, error) {
	if nesting(s) > MaxNesting {
		return Value{}, ErrTooDeep
	}
	if !gjson.Valid(s) {
		return Value{}, invalid(s)
	}
	return fromResult(gjson.Parse(s)), nil
}

// invalid tells trailing data apart from otherwise malformed input.
func invalid(s string) error {
	trimmed := strings.TrimLeft(s, " \t\r\n")
	if trimmed == "" {
		return fmt.Errorf("%w: empty input", ErrInvalid)
	}
	first := leadingValue(trimmed)
	if first != "" && gjson.Valid(first) && strings.TrimSpace(trimmed[len(first):]) != "" {
		return ErrTrailingData
	}
	return ErrInvalid
}

// leadingValue returns the text of the first value in s. gjson.Parse keeps
// the tail of the input in Raw for containers, so those are delimited here.
func leadingValue(s string) string {
	if s[0] != '{' && s[0] != '[' {
		return gjson.Parse(s).Raw
	}
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return NullValue()
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return NumberValue(json.Number(r.Raw))
	case gjson.String:
		return StringValue(r.Str)
	}

	if r.IsArray() {
		items := []Value{}
		r.ForEach(func(_, item gjson.Result) bool {
			items = append(items, fromResult(item))
			return true
		})
		return Value{kind: Array, items: items}
	}

	// ForEach visits every duplicate key; the builder keeps the last value.
	b := newObjectBuilder(0)
	r.ForEach(func(key, member gjson.Result) bool {
		b.set(key.Str, fromResult(member))
		return true
	})
	return b.value()
}

// nesting returns the deepest array/object nesting of s, ignoring brackets
// inside strings.
func nesting(s string) int {
	depth, deepest := 0, 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > deepest {
				deepest = depth
			}
		case '}', ']':
			depth--
		}
	}
	return deepest
}
