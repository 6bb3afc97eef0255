package repair

import "strings"

type scanState uint8

const (
	stateNormal scanState = iota
	stateInString
	stateEscaped
)

// Truncated appends the closing quote and delimiters needed to balance text.
//
// A single left-to-right scan tracks whether it is inside a string literal,
// honouring backslash escapes there, and keeps a stack of expected closers for
// every '{' and '[' seen outside strings. A closer pops the stack only when it
// matches the top; mismatched closers are left in place. Balanced input is
// returned unchanged. An open string normally gets exactly one closing quote,
// except when the input ends on a lone backslash inside it: that backslash is
// completed as an escaped backslash first, so the quote that follows
// terminates the string instead of being escaped by it.
func Truncated(text string) string {
	if text == "" {
		return ""
	}

	var closers []byte
	state := stateNormal

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch state {
		case stateEscaped:
			state = stateInString
		case stateInString:
			switch c {
			case '\\':
				state = stateEscaped
			case '"':
				state = stateNormal
			}
		case stateNormal:
			switch c {
			case '"':
				state = stateInString
			case '{':
				closers = append(closers, '}')
			case '[':
				closers = append(closers, ']')
			case '}', ']':
				if n := len(closers); n > 0 && closers[n-1] == c {
					closers = closers[:n-1]
				}
			}
		}
	}

	if state == stateNormal && len(closers) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(closers) + 1)
	b.WriteString(text)
	if state == stateEscaped {
		// A dangling backslash would escape the closing quote.
		b.WriteByte('\\')
	}
	if state != stateNormal {
		b.WriteByte('"')
	}
	for i := len(closers) - 1; i >= 0; i-- {
		b.WriteByte(closers[i])
	}
	return b.String()
}
