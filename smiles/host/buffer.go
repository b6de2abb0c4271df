package host

import (
	"fmt"

	"github.com/dhamidi/smiles/smiles/parser"
	"github.com/dhamidi/smiles/smiles/wire"
)

// Buffer is an in-memory Host. Input is the request buffer; Capacity, when
// positive, bounds the size of an encoded result.
type Buffer struct {
	Input    []byte
	Capacity int

	result []byte
	sends  int
}

// NewBuffer returns a Buffer whose request holds expr.
func NewBuffer(expr string) *Buffer {
	return &Buffer{Input: wire.EncodeRequest(expr)}
}

func (b *Buffer) Request(n int) ([]byte, error) {
	if n < 0 || n > len(b.Input) {
		return nil, fmt.Errorf("request of %d bytes exceeds input of %d bytes", n, len(b.Input))
	}
	req := make([]byte, n)
	copy(req, b.Input)
	return req, nil
}

func (b *Buffer) SendResult(payload []byte) {
	b.result = append(b.result[:0], payload...)
	b.sends++
}

func (b *Buffer) ResultCapacity() int {
	return b.Capacity
}

// Result returns the last payload sent.
func (b *Buffer) Result() []byte {
	return b.result
}

// Sends reports how many payloads have been sent.
func (b *Buffer) Sends() int {
	return b.sends
}

// Len is the request length to pass to ParseSmiles.
func (b *Buffer) Len() int {
	return len(b.Input)
}

// Call parses expr through a fresh Buffer and returns the status and the
// payload.
func Call(expr string, capacity int, opts ...parser.Option) (int, []byte) {
	b := NewBuffer(expr)
	b.Capacity = capacity
	status := ParseSmiles(b, b.Len(), opts...)
	return status, b.Result()
}
