package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dhamidi/smiles/smiles/parser"
)

// IntSize is the width of every integer on the wire, independent of the
// platform's native int size.
const IntSize = 4

// ErrCapacity is returned when an encoded tree does not fit the buffer.
var ErrCapacity = errors.New("encoded result exceeds buffer capacity")

// Size returns the number of bytes Encode produces for n.
func Size(n *parser.Node) int {
	size := IntSize + textSize(n.Text) + IntSize
	for _, child := range n.Children {
		size += Size(child)
	}
	return size
}

func textSize(text string) int {
	if text == "" {
		return 1
	}
	return len(text) + 1
}

// Encode serializes n depth-first in pre-order. Each node is its kind as a
// big-endian int32, its text followed by a NUL byte (a lone NUL when there
// is no text), its child count as a big-endian int32, then its children.
func Encode(n *parser.Node) []byte {
	buf := make([]byte, Size(n))
	encodeNode(buf, n)
	return buf
}

// EncodeTo writes the encoding of n to the front of dst and returns the
// number of bytes written. When dst is too small nothing is written.
func EncodeTo(dst []byte, n *parser.Node) (int, error) {
	size := Size(n)
	if size > len(dst) {
		return 0, fmt.Errorf("need %d bytes, have %d: %w", size, len(dst), ErrCapacity)
	}
	return encodeNode(dst, n), nil
}

func encodeNode(buf []byte, n *parser.Node) int {
	off := 0
	binary.BigEndian.PutUint32(buf[off:], uint32(int32(n.Kind)))
	off += IntSize
	off += copy(buf[off:], n.Text)
	buf[off] = 0
	off++
	binary.BigEndian.PutUint32(buf[off:], uint32(int32(len(n.Children))))
	off += IntSize
	for _, child := range n.Children {
		off += encodeNode(buf[off:], child)
	}
	return off
}
