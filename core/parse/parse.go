package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/leofalp/jsonshape/core/jsonvalue"
	"github.com/leofalp/jsonshape/core/repair"
)

// Mode selects how hard Document tries before giving up.
type Mode int

const (
	// ModeStrict accepts only well-formed JSON.
	ModeStrict Mode = iota
	// ModeTruncated retries after closing unbalanced quotes and delimiters.
	ModeTruncated
	// ModeLenient additionally retries through jsonrepair, which fixes
	// unquoted keys, single quotes, trailing commas and similar damage.
	ModeLenient
)

// ErrNotStructured is returned when parsing (or repairing) yields something
// other than an object or an array.
var ErrNotStructured = errors.New("parse: document is not an object or array")

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeTruncated:
		return "truncated"
	case ModeLenient:
		return "lenient"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as used in configuration files and flags.
// An empty name selects ModeStrict.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ModeStrict, nil
	case "truncated":
		return ModeTruncated, nil
	case "lenient":
		return ModeLenient, nil
	default:
		return ModeStrict, fmt.Errorf("unknown repair mode %q (want strict, truncated or lenient)", s)
	}
}

// LooksStructured reports whether text starts like a JSON object or array.
// Leading whitespace is ignored.
func LooksStructured(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[")
}

// Candidate trims text and reports whether the result should be treated as a
// structured document, that is whether it starts with '{' or '['.
//
//	Candidate(` {"title": "x"} `) // `{"title": "x"}`, true
//	Candidate("  My video  ")    // "My video", false
func Candidate(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, LooksStructured(trimmed)
}

// Unfence returns the body of a markdown code fence around text when that
// body looks structured. Text that is not fenced, or whose fenced body is
// prose, yields false.
//
//	Unfence("```json\n{\"title\": \"x\"}\n```") // `{"title": "x"}`, true
//	Unfence("```\nhello\n```")                  // "", false
func Unfence(text string) (string, bool) {
	body, ok := unfence(strings.TrimSpace(text))
	if !ok || !LooksStructured(body) {
		return "", false
	}
	return strings.TrimSpace(body), true
}

// unfence strips a leading ``` line (with optional language tag) and a
// trailing ``` if present. A fence cut off before its closing marker still
// yields its body.
func unfence(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return "", false
	}
	body := strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || isFenceTag(tag) {
			body = body[nl+1:]
		}
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return body, true
}

func isFenceTag(tag string) bool {
	for _, r := range tag {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

// Document parses candidate into an object or array according to mode.
// The returned bool reports whether a repair step was needed.
func Document(candidate string, mode Mode) (jsonvalue.Value, bool, error) {
	v, err := structured(candidate)
	if err == nil {
		return v, false, nil
	}
	if mode < ModeTruncated {
		return jsonvalue.Value{}, false, fmt.Errorf("failed to parse structured text: %w", err)
	}

	balanced := repair.Truncated(candidate)
	if balanced != candidate {
		if v, balancedErr := structured(balanced); balancedErr == nil {
			return v, true, nil
		}
	}
	if mode < ModeLenient {
		return jsonvalue.Value{}, false, fmt.Errorf("failed to parse structured text after balancing delimiters: %w", err)
	}

	repaired, repairErr := jsonrepair.JSONRepair(candidate)
	if repairErr != nil {
		return jsonvalue.Value{}, false, fmt.Errorf("failed to parse structured text and failed to repair it: parse error: %w, repair error: %v", err, repairErr)
	}
	v, err = structured(repaired)
	if err != nil {
		return jsonvalue.Value{}, false, fmt.Errorf("failed to parse repaired text: %w", err)
	}
	return v, true, nil
}

func structured(text string) (jsonvalue.Value, error) {
	v, err := jsonvalue.ParseString(text)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	if !v.IsStructured() {
		return jsonvalue.Value{}, ErrNotStructured
	}
	return v, nil
}
