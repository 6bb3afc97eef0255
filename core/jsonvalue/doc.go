// Package jsonvalue provides an ordered, tagged representation of a parsed
// JSON document.
//
// Unlike decoding into map[string]interface{}, a [Value] remembers the order
// in which object members appeared in the source text, so key searches that
// depend on enumeration order behave the same way as in the producers that
// emitted the document. Keys are enumerated the way JavaScript enumerates
// object keys: canonical array indexes ("0", "1", ...) ascending, then every
// other key in source order. A repeated key keeps its first position and its
// last value, as JSON.parse does.
//
// Validation and tokenising are done by github.com/tidwall/gjson. The entry
// points are [Parse] and [ParseString].
package jsonvalue
