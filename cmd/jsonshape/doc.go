// Package main hosts the jsonshape CLI.
//
// Each command reads one raw field from its arguments or stdin and prints what
// the extractor recovers from it: a title, a description, a tag list, a
// repaired document, or all three at once with their outcomes. Extraction
// settings come from a TOML profile (see internal/config) and a .env file in
// the working directory is loaded before anything else.
package main
