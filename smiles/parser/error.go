package parser

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	// ErrMismatch means a mandatory token or rule did not match.
	ErrMismatch ErrorKind = iota
	// ErrExhausted means input ended while a mandatory token was required.
	ErrExhausted
	// ErrLimit means the input exceeded a configured length or nesting limit.
	ErrLimit
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMismatch:
		return "mismatch"
	case ErrExhausted:
		return "exhausted"
	case ErrLimit:
		return "limit"
	}
	return "unknown"
}

// Error is the diagnostic for a failed parse. Offset is the byte position
// of the cursor when the mandatory rule failed.
type Error struct {
	Kind     ErrorKind
	Message  string
	Offset   int
	Expected []string
	Got      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

// Render formats the diagnostic the way it is delivered to the host: the
// message, the original input, and a caret under the failing byte.
func (e *Error) Render(input string) string {
	var b strings.Builder
	b.WriteString("Failed to parse: ")
	b.WriteString(e.Message)
	b.WriteByte('\n')
	b.WriteString(input)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.Offset))
	b.WriteByte('^')
	return b.String()
}

const endOfInput = "end of input"

func describeByte(c byte, eof bool) string {
	if eof {
		return endOfInput
	}
	return string([]byte{c})
}
