package extract

import "github.com/leofalp/jsonshape/core/repair"

var defaultExtractor = New()

// ExtractTitle recovers a title from raw using the default configuration.
// The optional fallback defaults to DefaultTitleFallback.
//
//	ExtractTitle(`{"name": "Weak", "title": "Strong"}`)  // "Strong"
//	ExtractTitle(`{"title": "Untitled Project"}`, "x")   // "x"
//	ExtractTitle("{broken")                              // "Untitled Project"
func ExtractTitle(raw string, fallback ...string) string {
	fb := DefaultTitleFallback
	if len(fallback) > 0 {
		fb = fallback[0]
	}
	return defaultExtractor.Title(raw, fb)
}

// ExtractDescription recovers a description from raw using the default
// configuration. The optional fallback defaults to "".
func ExtractDescription(raw string, fallback ...string) string {
	fb := ""
	if len(fallback) > 0 {
		fb = fallback[0]
	}
	return defaultExtractor.Description(raw, fb)
}

// ExtractTags recovers a tag list from raw using the default configuration.
//
//	ExtractTags("funny, viral, shorts")      // ["funny" "viral" "shorts"]
//	ExtractTags(`{"hashtags": ["a", "b"]}`)  // ["a" "b"]
//	ExtractTags("")                          // []
func ExtractTags(raw string) []string {
	return defaultExtractor.Tags(raw)
}

// ExtractTagList returns an already-split tag list unchanged (nil becomes
// empty).
func ExtractTagList(tags []string) []string {
	return defaultExtractor.TagList(tags)
}

// RepairTruncated closes a JSON text that was cut off mid-stream. See
// repair.Truncated.
func RepairTruncated(text string) string {
	return repair.Truncated(text)
}
