package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/leofalp/jsonshape/core/repair"
)

// As decodes raw into T for callers that want a typed view of a field.
//
// Strings are returned as given. Booleans and numbers are parsed from the
// trimmed text. Every other type is unmarshalled from the trimmed text, or
// from the body of a code fence around it, retrying with the repairs mode
// allows in the same order as Document.
//
//	type Script struct {
//	    Title string   `json:"titulo"`
//	    Tags  []string `json:"hashtags"`
//	}
//
//	s, err := parse.As[Script]("```json\n{\"titulo\": \"x\"}\n```", parse.ModeStrict)
//	n, err := parse.As[int](" 42 ", parse.ModeStrict)
func As[T any](raw string, mode Mode) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()
	text := strings.TrimSpace(raw)

	switch target.Kind() {
	case reflect.String:
		target.SetString(raw)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(text)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		target.SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(text, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		target.SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(text, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		target.SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(text, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		target.SetUint(val)
		return result, nil
	}

	candidate := text
	if body, ok := Unfence(text); ok {
		candidate = body
	}
	err := json.Unmarshal([]byte(candidate), &result)
	if err == nil {
		return result, nil
	}
	if mode < ModeTruncated {
		return result, fmt.Errorf("failed to unmarshal content as %T: %w", result, err)
	}

	if balanced := repair.Truncated(candidate); balanced != candidate {
		var retry T
		if json.Unmarshal([]byte(balanced), &retry) == nil {
			return retry, nil
		}
	}
	if mode < ModeLenient {
		return result, fmt.Errorf("failed to unmarshal content as %T after balancing delimiters: %w", result, err)
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(candidate)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}
	var retry T
	if err := json.Unmarshal([]byte(repairedJSON), &retry); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
	}
	return retry, nil
}
