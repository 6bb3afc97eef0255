// Package parse turns raw model output into a structured document when the
// text looks like one. Because generators wrap JSON in markdown code fences
// or cut it off mid-stream, this package applies a layered strategy:
// candidate extraction, a strict parse, and then (depending on [Mode]) a
// truncation repair and a full jsonrepair pass.
//
// The main entry points are [Candidate], which decides whether text should be
// treated as structured at all, and [Document], which parses a candidate into
// a [jsonvalue.Value]. [Unfence] recovers the body of a fenced document for
// callers that opt in. [As] runs the same ladder into a typed Go value.
package parse
