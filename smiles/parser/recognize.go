package parser

import "strings"

// rule parses one grammar production. It returns nil and leaves the cursor
// failed when the production does not match.
type rule func(*Cursor) *Node

// literalSet recognizes the longest member of an ordered set of literal
// strings. Among candidates of equal length the first listed wins.
type literalSet struct {
	kind       NodeKind
	candidates []string
	maxLen     int
}

func newLiteralSet(kind NodeKind, candidates ...string) *literalSet {
	s := &literalSet{kind: kind, candidates: candidates}
	for _, cand := range candidates {
		s.maxLen = max(s.maxLen, len(cand))
	}
	return s
}

// Candidates returns the literals in listed order.
func (s *literalSet) Candidates() []string {
	return append([]string(nil), s.candidates...)
}

func (s *literalSet) parse(c *Cursor) *Node {
	start := c.Mark()
	best := ""
	for _, cand := range s.candidates {
		if len(cand) > len(best) && matchLiteral(c, cand) {
			best = cand
		}
		c.Reset(start)
	}
	if best != "" {
		matchLiteral(c, best)
		return &Node{Kind: s.kind, Text: best, Span: Span{Start: start, End: c.Mark()}}
	}

	eof := c.atEnd()
	if !c.reporting() {
		c.failed = true
		return nil
	}
	got := endOfInput
	if !eof {
		got = c.input[start:min(start+s.maxLen, len(c.input))]
	}
	c.mismatch(eof, s.candidates, got, "Expected one of %s, got %s", strings.Join(s.candidates, ", "), got)
	return nil
}

// matchLiteral consumes lit if the input continues with it, and restores
// the position otherwise. It never sets the failure flag.
func matchLiteral(c *Cursor, lit string) bool {
	start := c.Mark()
	for i := 0; i < len(lit); i++ {
		if c.AtBoundary() || c.Consume() != lit[i] {
			c.Reset(start)
			return false
		}
	}
	return true
}

func (c *Cursor) reporting() bool {
	return c.quiet == 0 && !c.limited
}

func singleChar(ch byte) rule {
	return func(c *Cursor) *Node {
		return char(c, ch)
	}
}

// char matches exactly one literal byte.
func char(c *Cursor, ch byte) *Node {
	start := c.Mark()
	eof := c.atEnd()
	got := c.Peek()
	if !eof && got == ch {
		c.Consume()
		return &Node{Kind: KindChar, Text: string([]byte{ch}), Span: Span{Start: start, End: start + 1}}
	}
	found := describeByte(got, eof)
	c.mismatch(eof, []string{string([]byte{ch})}, found, "Expected %c, got %s", ch, found)
	return nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// digit matches exactly one ASCII digit.
func digit(c *Cursor) *Node {
	start := c.Mark()
	eof := c.atEnd()
	got := c.Peek()
	if !eof && isDigit(got) {
		c.Consume()
		return &Node{Kind: KindNumber, Text: string([]byte{got}), Span: Span{Start: start, End: start + 1}}
	}
	found := describeByte(got, eof)
	c.mismatch(eof, []string{"digit"}, found, "Expected a digit, got %s", found)
	return nil
}

// number matches a run of one or more ASCII digits.
func number(c *Cursor) *Node {
	start := c.Mark()
	for !c.AtBoundary() && isDigit(c.Peek()) {
		c.Consume()
	}
	if c.pos == start {
		eof := c.atEnd()
		found := describeByte(c.Peek(), eof)
		c.mismatch(eof, []string{"number"}, found, "Expected a number, got %s", found)
		return nil
	}
	return &Node{Kind: KindNumber, Text: c.input[start:c.pos], Span: Span{Start: start, End: c.pos}}
}

// optional runs r speculatively. On failure the cursor is restored to where
// it was, the failure and its diagnostic are discarded, and nil is returned.
// It is the only alternation mechanism of the grammar.
func optional(c *Cursor, r rule) *Node {
	if c.AtBoundary() {
		return nil
	}
	start := c.Mark()
	c.quiet++
	n := r(c)
	c.quiet--
	if c.failed {
		if c.limited {
			return nil
		}
		c.Reset(start)
		c.clearFailure()
		return nil
	}
	return n
}

// orAbsent fills an optional slot that did not match.
func orAbsent(n *Node, pos int) *Node {
	if n == nil {
		return absentAt(pos)
	}
	return n
}
