package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/leofalp/jsonshape/core/jsonvalue"
	"github.com/leofalp/jsonshape/core/parse"
)

// TitleFilter decides whether a candidate string is a real title.
type TitleFilter struct {
	placeholders []string // folded
	markers      []string // folded
}

// NewTitleFilter builds a filter rejecting titles that contain any of the
// placeholder phrases or start with any of the pending markers.
func NewTitleFilter(placeholders, markers []string) TitleFilter {
	f := TitleFilter{}
	for _, p := range placeholders {
		if p = fold(strings.TrimSpace(p)); p != "" {
			f.placeholders = append(f.placeholders, p)
		}
	}
	for _, m := range markers {
		if m = fold(strings.TrimSpace(m)); m != "" {
			f.markers = append(f.markers, m)
		}
	}
	return f
}

// Valid reports whether s is non-empty, free of placeholder phrases and
// pending markers, and not itself an encoded JSON document.
func (f TitleFilter) Valid(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}

	folded := fold(trimmed)
	for _, p := range f.placeholders {
		if strings.Contains(folded, p) {
			return false
		}
	}
	for _, m := range f.markers {
		if strings.HasPrefix(folded, m) {
			return false
		}
	}
	return !isEncodedDocument(trimmed)
}

// fold normalises s to NFC and applies Unicode case folding, so that
// "PROJETO SEM TÍTULO" and a decomposed "título" compare equal.
// A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// isEncodedDocument reports whether s is the text of a JSON object or array.
func isEncodedDocument(s string) bool {
	if !parse.LooksStructured(s) {
		return false
	}
	v, err := jsonvalue.ParseString(s)
	return err == nil && v.IsStructured()
}
