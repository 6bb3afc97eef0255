// Package config loads and validates jsonshape extraction profiles.
//
// A profile is a TOML file that overrides the extractor's key lists, title
// placeholders, fallbacks, search depth and repair mode. Missing fields keep
// the library defaults, so an empty file is a valid profile. Options converts a
// loaded profile into extract.Option values for extract.New.
package config
