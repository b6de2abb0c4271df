package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dhamidi/smiles/smiles/parser"
)

// DecodeError reports a malformed request or result buffer.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode at offset %d: %s", e.Offset, e.Reason)
}

// DecodeRequest extracts the expression from a request buffer. The buffer
// holds one NUL-terminated string; length is the capacity declared by the
// host and bounds the search for the terminator.
func DecodeRequest(buf []byte, length int) (string, error) {
	if length < 0 || length > len(buf) {
		return "", &DecodeError{Reason: fmt.Sprintf("declared length %d exceeds buffer of %d bytes", length, len(buf))}
	}
	end := bytes.IndexByte(buf[:length], 0)
	if end < 0 {
		return "", &DecodeError{Offset: length, Reason: "missing string terminator"}
	}
	return string(buf[:end]), nil
}

// EncodeRequest builds a request buffer holding expr.
func EncodeRequest(expr string) []byte {
	buf := make([]byte, len(expr)+1)
	copy(buf, expr)
	return buf
}

// minNodeSize is the encoding of a node with no text and no children.
const minNodeSize = IntSize + 1 + IntSize

type reader struct {
	data []byte
	off  int
	err  error
}

func (r *reader) fail(reason string) {
	if r.err == nil {
		r.err = &DecodeError{Offset: r.off, Reason: reason}
	}
}

func (r *reader) readInt() int32 {
	if r.err != nil {
		return 0
	}
	if len(r.data)-r.off < IntSize {
		r.fail("truncated integer")
		return 0
	}
	v := int32(binary.BigEndian.Uint32(r.data[r.off:]))
	r.off += IntSize
	return v
}

func (r *reader) readText() string {
	if r.err != nil {
		return ""
	}
	end := bytes.IndexByte(r.data[r.off:], 0)
	if end < 0 {
		r.fail("unterminated text")
		return ""
	}
	text := string(r.data[r.off : r.off+end])
	r.off += end + 1
	return text
}

func (r *reader) readNode() *parser.Node {
	n := &parser.Node{Kind: parser.NodeKind(r.readInt())}
	n.Text = r.readText()
	count := r.readInt()
	if r.err != nil {
		return nil
	}
	if count < 0 || int(count) > (len(r.data)-r.off)/minNodeSize {
		r.fail(fmt.Sprintf("invalid child count %d", count))
		return nil
	}
	if count > 0 {
		n.Children = make([]*parser.Node, 0, count)
	}
	for i := int32(0); i < count; i++ {
		child := r.readNode()
		if r.err != nil {
			return nil
		}
		n.Children = append(n.Children, child)
	}
	return n
}

// Decode reads a tree produced by Encode. Spans are not part of the
// encoding and are left zero.
func Decode(data []byte) (*parser.Node, error) {
	r := &reader{data: data}
	n := r.readNode()
	if r.err != nil {
		return nil, r.err
	}
	if r.off != len(data) {
		return nil, &DecodeError{Offset: r.off, Reason: fmt.Sprintf("%d trailing bytes", len(data)-r.off)}
	}
	return n, nil
}
