// Package repair closes JSON text that was cut off mid-stream, for example a
// streamed model response that hit its token limit.
//
// [Truncated] only balances quotes, braces and brackets. It does not fix
// trailing commas, missing values or unquoted keys; use core/parse with
// ModeLenient when those are expected.
package repair
