package host

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/dhamidi/smiles/smiles/parser"
	"github.com/dhamidi/smiles/smiles/wire"
)

func TestParseSmilesSuccess(t *testing.T) {
	tests := []string{"C", "CC(=O)O", "[13CH4:1]", "c1ccccc1", ""}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			b := NewBuffer(expr)
			if status := ParseSmiles(b, b.Len()); status != StatusOK {
				t.Fatalf("status = %d, payload %q", status, b.Result())
			}
			if b.Sends() != 1 {
				t.Errorf("sent %d payloads, want 1", b.Sends())
			}
			want, err := parser.Parse(expr)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if !bytes.Equal(b.Result(), wire.Encode(want)) {
				t.Error("payload differs from the encoded tree")
			}
		})
	}
}

func TestParseSmilesDiagnostic(t *testing.T) {
	status, payload := Call("Oc1c(*)ccccX1", 0)
	if status != StatusFailed {
		t.Fatalf("status = %d, want %d", status, StatusFailed)
	}
	want := "Failed to parse: Expected end of expression\n" +
		"Oc1c(*)ccccX1\n" +
		"           ^"
	if string(payload) != want {
		t.Errorf("payload =\n%s\nwant\n%s", payload, want)
	}
}

func TestParseSmilesDecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		b    *Buffer
		n    int
	}{
		{"missing terminator", &Buffer{Input: []byte("CCO")}, 3},
		{"request too long", NewBuffer("C"), 10},
		{"terminator outside request", NewBuffer("CCO"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := ParseSmiles(tt.b, tt.n); status != StatusFailed {
				t.Fatalf("status = %d, want %d", status, StatusFailed)
			}
			if string(tt.b.Result()) != MsgDecodeFailed {
				t.Errorf("payload = %q, want %q", tt.b.Result(), MsgDecodeFailed)
			}
			if tt.b.Sends() != 1 {
				t.Errorf("sent %d payloads, want 1", tt.b.Sends())
			}
		})
	}
}

func TestParseSmilesEncodeFailure(t *testing.T) {
	root, err := parser.Parse("CCO")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	size := wire.Size(root)

	status, payload := Call("CCO", size-1)
	if status != StatusFailed || string(payload) != MsgEncodeFailed {
		t.Errorf("capacity %d: status %d, payload %q", size-1, status, payload)
	}

	status, payload = Call("CCO", size)
	if status != StatusOK || len(payload) != size {
		t.Errorf("capacity %d: status %d, %d bytes", size, status, len(payload))
	}
}

func TestParseSmilesLimitDiagnostic(t *testing.T) {
	expr := strings.Repeat("C(", 20) + "C" + strings.Repeat(")", 20)
	status, payload := Call(expr, 0, parser.WithMaxDepth(5))
	if status != StatusFailed {
		t.Fatalf("status = %d, want %d", status, StatusFailed)
	}
	if !strings.HasPrefix(string(payload), "Failed to parse: Expression nested deeper than 5") {
		t.Errorf("payload = %q", payload)
	}
}

func TestParseSmilesDefaultDepth(t *testing.T) {
	nested := func(levels int) string {
		return strings.Repeat("C(", levels) + "C" + strings.Repeat(")", levels)
	}

	expr := nested(parser.DefaultMaxDepth)
	status, payload := Call(expr, 0)
	if status != StatusOK {
		t.Fatalf("status = %d, payload %q", status, payload)
	}
	decoded, err := wire.Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want, err := parser.Parse(expr)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !decoded.Equal(want) {
		t.Error("decoded tree differs from parsed tree")
	}

	status, payload = Call(nested(parser.DefaultMaxDepth+1), 0)
	if status != StatusFailed {
		t.Fatalf("status = %d, want %d", status, StatusFailed)
	}
	if !strings.HasPrefix(string(payload), "Failed to parse: Expression nested deeper than 1000 levels") {
		t.Errorf("payload = %q", payload)
	}
}

func TestParseSmilesConcurrent(t *testing.T) {
	exprs := []string{"C", "CC(=O)O", "c1ccccc1", "X", "[Na+].[Cl-]", "C(C"}
	want := make([][]byte, len(exprs))
	for i, expr := range exprs {
		_, want[i] = Call(expr, 0)
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(exprs)*8)
	for round := 0; round < 8; round++ {
		for i, expr := range exprs {
			wg.Add(1)
			go func(i int, expr string) {
				defer wg.Done()
				_, got := Call(expr, 0)
				if !bytes.Equal(got, want[i]) {
					errs <- expr
				}
			}(i, expr)
		}
	}
	wg.Wait()
	close(errs)
	for expr := range errs {
		t.Errorf("concurrent call for %q produced a different payload", expr)
	}
}
