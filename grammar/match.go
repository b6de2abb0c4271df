package grammar

import (
	"fmt"

	"golang.org/x/exp/ebnf"
)

type memoKey struct {
	name   string
	offset int
}

// Matcher recognizes prefixes of an input against productions of a
// grammar. Alternatives take the longest match, options and repetitions
// are greedy, and there is no backtracking into a finished repetition.
type Matcher struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[memoKey]int // match length, -1 for no match
	visiting map[memoKey]bool
}

func NewMatcher(g ebnf.Grammar, input string) *Matcher {
	return &Matcher{
		grammar:  g,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Match returns the length of the longest prefix of the input derived from
// the named production, and false when no prefix is.
func (m *Matcher) Match(name string) (int, bool) {
	return m.matchName(name, 0)
}

// Accepts reports whether the whole input derives from the named
// production.
func (m *Matcher) Accepts(name string) bool {
	n, ok := m.Match(name)
	return ok && n == len(m.input)
}

func (m *Matcher) match(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case nil:
		return 0, true

	case *ebnf.Token:
		return m.matchToken(e.String, offset)

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := m.match(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, found := 0, false
		for _, alt := range e {
			n, ok := m.match(alt, offset)
			if ok && (!found || n > best) {
				best, found = n, true
			}
		}
		return best, found

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := m.match(e.Body, offset+total)
			if !ok || n == 0 {
				break
			}
			total += n
		}
		return total, true

	case *ebnf.Option:
		n, ok := m.match(e.Body, offset)
		if !ok {
			return 0, true
		}
		return n, true

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)
	}
	return 0, false
}

func (m *Matcher) matchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n, n >= 0
	}
	// left recursion
	if m.visiting[key] {
		return 0, false
	}
	prod, ok := m.grammar[name]
	if !ok {
		m.memo[key] = -1
		return 0, false
	}

	m.visiting[key] = true
	n, ok := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	if !ok {
		m.memo[key] = -1
		return 0, false
	}
	m.memo[key] = n
	return n, true
}

func (m *Matcher) matchToken(token string, offset int) (int, bool) {
	if offset+len(token) > len(m.input) || m.input[offset:offset+len(token)] != token {
		return 0, false
	}
	return len(token), true
}

func (m *Matcher) matchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(m.input) || len(begin) != 1 || len(end) != 1 {
		return 0, false
	}
	ch := m.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1, true
	}
	return 0, false
}

// Match reports the longest prefix of input derived from the named
// production of g.
func Match(g ebnf.Grammar, name, input string) (int, error) {
	if _, ok := g[name]; !ok {
		return 0, fmt.Errorf("production %s not found", name)
	}
	n, ok := NewMatcher(g, input).Match(name)
	if !ok {
		return 0, fmt.Errorf("%s does not match %q", name, input)
	}
	return n, nil
}
