package format

import (
	"encoding/hex"
	"io"

	"github.com/dhamidi/smiles/smiles/parser"
	"github.com/dhamidi/smiles/smiles/wire"
)

// WireEncoder writes the raw binary encoding of a tree.
type WireEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewWireEncoder(w io.Writer) *WireEncoder {
	return &WireEncoder{w: w}
}

func (e *WireEncoder) Encode(node *parser.Node) error {
	e.node = node
	return write(e.w, e)
}

func (e *WireEncoder) MarshalText() ([]byte, error) {
	return wire.Encode(e.node), nil
}

// HexEncoder writes the binary encoding as a hex dump.
type HexEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewHexEncoder(w io.Writer) *HexEncoder {
	return &HexEncoder{w: w}
}

func (e *HexEncoder) Encode(node *parser.Node) error {
	e.node = node
	return write(e.w, e)
}

func (e *HexEncoder) MarshalText() ([]byte, error) {
	return []byte(hex.Dump(wire.Encode(e.node))), nil
}
