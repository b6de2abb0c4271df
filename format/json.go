package format

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/dhamidi/smiles/smiles/parser"
)

type JSONEncoder struct {
	w         io.Writer
	node      *parser.Node
	positions bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, positions: true}
}

// WithoutPositions drops source spans from the output.
func (e *JSONEncoder) WithoutPositions() *JSONEncoder {
	e.positions = false
	return e
}

func (e *JSONEncoder) Encode(node *parser.Node) error {
	e.node = node
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	var raw []byte
	var err error
	if e.positions {
		raw, err = e.node.MarshalJSON()
	} else {
		raw, err = e.node.MarshalJSONWithoutSpans()
	}
	if err != nil {
		return nil, err
	}
	return indent(raw)
}

// ErrorJSON renders a parse diagnostic as indented JSON.
func ErrorJSON(perr *parser.Error) ([]byte, error) {
	raw, err := perr.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return indent(raw)
}

var errInvalidJSON = errors.New("format: invalid JSON")

// indent pretty-prints compact JSON with two spaces per level like
// json.Indent, but stops indenting past parser.MaxIndent levels. It does not
// share the decoder's nesting limit, so trees of long chains still render.
func indent(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(2 * len(raw))
	depth := 0
	opened := false
	inString, escaped := false, false
	newline := func() {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat("  ", min(depth, parser.MaxIndent)))
	}
	for _, c := range raw {
		if inString {
			buf.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if opened && c != '}' && c != ']' {
			opened = false
			newline()
		}
		switch c {
		case '"':
			inString = true
			buf.WriteByte(c)
		case '{', '[':
			buf.WriteByte(c)
			depth++
			opened = true
		case '}', ']':
			depth--
			if depth < 0 {
				return nil, errInvalidJSON
			}
			if opened {
				opened = false
			} else {
				newline()
			}
			buf.WriteByte(c)
		case ',':
			buf.WriteByte(c)
			newline()
		case ':':
			buf.WriteString(": ")
		default:
			buf.WriteByte(c)
		}
	}
	if depth != 0 || inString || len(raw) == 0 {
		return nil, errInvalidJSON
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
