// Package extract recovers a human-readable title, description or tag list
// from fields that upstream generators may have stored as plain text or as a
// JSON document of unknown shape.
//
// Every operation is total: malformed, truncated or unrecognised input yields
// the caller's fallback (or an empty tag list), never an error, and never the
// raw structured text. The key lists, placeholder phrases and depth budget
// that drive the search are exported as named values in keys.go and can be
// overridden per [Extractor] through options.
//
// The package-level functions ([ExtractTitle], [ExtractDescription],
// [ExtractTags], [ExtractTagList]) use a default Extractor; build your own
// with [New] to change the configuration or attach an observer.
package extract
