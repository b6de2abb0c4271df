package parser

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxDepth  = 1000
	DefaultMaxLength = 1 << 20
)

// ErrNoDiagnostic is returned when a parse failed without recording a
// diagnostic message.
var ErrNoDiagnostic = errors.New("parse failed")

type Option func(*Parser)

// WithMaxDepth bounds the nesting of branches. Zero disables the check.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithMaxLength bounds the input length in bytes. Zero disables the check.
func WithMaxLength(length int) Option {
	return func(p *Parser) {
		p.maxLength = length
	}
}

// Parser holds parse configuration. It keeps no state between calls and
// may be used from several goroutines at once.
type Parser struct {
	maxDepth  int
	maxLength int
}

func New(opts ...Option) *Parser {
	p := &Parser{
		maxDepth:  DefaultMaxDepth,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses one expression. On failure the returned error is an *Error
// carrying the diagnostic, or ErrNoDiagnostic.
func (p *Parser) Parse(input string) (*Node, error) {
	if p.maxLength > 0 && len(input) > p.maxLength {
		return nil, &Error{
			Kind:    ErrLimit,
			Message: fmt.Sprintf("Expression longer than %d bytes", p.maxLength),
			Offset:  p.maxLength,
		}
	}
	c := NewCursor(input)
	c.maxDepth = p.maxDepth
	root := smiles(c)
	if root == nil || c.Failed() {
		if c.Err() != nil {
			return nil, c.Err()
		}
		return nil, ErrNoDiagnostic
	}
	return root, nil
}

// Parse parses input with a Parser configured by opts.
func Parse(input string, opts ...Option) (*Node, error) {
	return New(opts...).Parse(input)
}
