package format

import (
	"io"

	"github.com/dhamidi/smiles/smiles/parser"
)

// TreeEncoder prints one node per line, indented by depth.
type TreeEncoder struct {
	w         io.Writer
	node      *parser.Node
	positions bool
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) WithPositions() *TreeEncoder {
	e.positions = true
	return e
}

func (e *TreeEncoder) Encode(node *parser.Node) error {
	e.node = node
	return write(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if e.positions {
		return []byte(e.node.StringWithPositions()), nil
	}
	return []byte(e.node.String()), nil
}
