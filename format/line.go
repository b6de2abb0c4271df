package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/smiles/smiles/parser"
)

// LineEncoder prints every present node in pre-order as a tab separated
// record: depth, kind, start, end and text.
type LineEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(node *parser.Node) error {
	e.node = node
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	e.writeNode(&sb, e.node, 0)
	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeNode(sb *strings.Builder, n *parser.Node, depth int) {
	if n.IsAbsent() {
		return
	}
	fmt.Fprintf(sb, "%d\t%s\t%d\t%d\t%s\n", depth, n.Kind, n.Span.Start, n.Span.End, n.Text)
	for _, child := range n.Children {
		e.writeNode(sb, child, depth+1)
	}
}
