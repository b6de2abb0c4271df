package parser

import "fmt"

// Cursor is a position-tracked view over an immutable input. Reading past
// the end does not panic: it sets the failure flag and yields a zero byte.
// Once failed, Peek and Consume keep returning zero without advancing.
type Cursor struct {
	input  string
	pos    int
	failed bool
	err    *Error

	// quiet counts the optional attempts in progress. Diagnostics raised
	// while it is non-zero would be thrown away, so they are not built.
	quiet int

	depth    int
	maxDepth int
	// limited is set once a resource limit is hit. It survives optional
	// attempts so the whole parse unwinds with the limit diagnostic.
	limited bool
}

func NewCursor(input string) *Cursor {
	return &Cursor{input: input, maxDepth: DefaultMaxDepth}
}

func (c *Cursor) Input() string {
	return c.input
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Failed() bool {
	return c.failed
}

// Err returns the diagnostic of the last non-speculative failure, if any.
func (c *Cursor) Err() *Error {
	return c.err
}

func (c *Cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

// AtBoundary reports whether no further token can be read: the input is
// exhausted or a failure is already set.
func (c *Cursor) AtBoundary() bool {
	return c.atEnd() || c.failed
}

func (c *Cursor) Peek() byte {
	if c.AtBoundary() {
		c.failed = true
		return 0
	}
	return c.input[c.pos]
}

func (c *Cursor) Consume() byte {
	if c.AtBoundary() {
		c.failed = true
		return 0
	}
	ch := c.input[c.pos]
	c.pos++
	return ch
}

func (c *Cursor) Mark() int {
	return c.pos
}

// Reset restores the position only. It does not clear a failure.
func (c *Cursor) Reset(pos int) {
	c.pos = pos
}

func (c *Cursor) clearFailure() {
	c.failed = false
	c.err = nil
}

func (c *Cursor) fail(kind ErrorKind, expected []string, got string, format string, args ...any) {
	c.failed = true
	if c.quiet > 0 || c.limited {
		return
	}
	c.err = &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Offset:   c.pos,
		Expected: expected,
		Got:      got,
	}
}

// mismatch records a failure, classifying it as exhaustion when the
// cursor had already run off the end of the input.
func (c *Cursor) mismatch(eof bool, expected []string, got string, format string, args ...any) {
	kind := ErrMismatch
	if eof {
		kind = ErrExhausted
	}
	c.fail(kind, expected, got, format, args...)
}

func (c *Cursor) enter() bool {
	c.depth++
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		c.failed = true
		c.limited = true
		c.err = &Error{
			Kind:    ErrLimit,
			Message: fmt.Sprintf("Expression nested deeper than %d levels", c.maxDepth),
			Offset:  c.pos,
		}
		return false
	}
	return true
}

func (c *Cursor) leave() {
	c.depth--
}
