// Package host implements the request/result boundary through which an
// embedding runtime asks for an expression to be parsed.
//
// The host places a NUL-terminated expression in a request buffer and
// calls ParseSmiles with the buffer's length. Exactly one payload is sent
// back: the encoded tree on success, a diagnostic string on failure.
package host

import (
	"errors"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/smiles/smiles/parser"
	"github.com/dhamidi/smiles/smiles/wire"
)

const (
	StatusOK     = 0
	StatusFailed = 1
)

// Fixed failure payloads.
const (
	MsgDecodeFailed = "Failed to decode parse"
	MsgParseFailed  = "Failed to parse"
	MsgEncodeFailed = "Failed to encode result"
)

var log = commonlog.GetLogger("smiles.host")

// Host is the embedding side of the boundary.
type Host interface {
	// Request returns the n-byte request buffer.
	Request(n int) ([]byte, error)
	// SendResult delivers the single payload of a call.
	SendResult(payload []byte)
}

// Limiter is implemented by hosts whose result buffer is bounded.
type Limiter interface {
	ResultCapacity() int
}

// ParseSmiles runs one parse call against h and returns StatusOK or
// StatusFailed. Each call keeps its own state, so calls may run
// concurrently against distinct hosts.
func ParseSmiles(h Host, n int, opts ...parser.Option) int {
	buf, err := h.Request(n)
	if err != nil {
		log.Debugf("request of %d bytes: %s", n, err)
		return fail(h, MsgDecodeFailed)
	}
	expr, err := wire.DecodeRequest(buf, n)
	if err != nil {
		log.Debugf("decode request: %s", err)
		return fail(h, MsgDecodeFailed)
	}

	root, err := parser.Parse(expr, opts...)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			log.Debugf("parse %q: %s", expr, perr)
			return fail(h, perr.Render(expr))
		}
		log.Debugf("parse %q: %s", expr, err)
		return fail(h, MsgParseFailed)
	}

	size := wire.Size(root)
	if l, ok := h.(Limiter); ok && l.ResultCapacity() > 0 && l.ResultCapacity() < size {
		size = l.ResultCapacity()
	}
	out := make([]byte, size)
	written, err := wire.EncodeTo(out, root)
	if err != nil {
		log.Debugf("encode %q: %s", expr, err)
		return fail(h, MsgEncodeFailed)
	}
	h.SendResult(out[:written])
	return StatusOK
}

func fail(h Host, msg string) int {
	h.SendResult([]byte(msg))
	return StatusFailed
}
