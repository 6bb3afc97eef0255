package extract

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var htmlTag = regexp.MustCompile(`(?i)</?(p|br|b|strong|em|i|u|ul|ol|li|h[1-6]|a|div|span|blockquote)\b[^>]*>`)

// render applies the optional HTML-to-Markdown conversion to a description.
// Conversion failures keep the original text.
func (e *Extractor) render(s string) string {
	if !e.cfg.markdown || !htmlTag.MatchString(s) {
		return s
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return s
	}
	md = strings.TrimSpace(md)
	if md == "" {
		return s
	}
	return md
}
