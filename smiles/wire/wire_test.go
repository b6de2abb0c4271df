package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dhamidi/smiles/smiles/parser"
)

var corpus = []string{
	"",
	"C",
	"[13CH4:1]",
	"C(=O)O",
	"c1ccccc1",
	"CC(=O)Oc1ccccc1C(=O)O",
	"N[C@@H](C)C(=O)O",
	"[Na+].[Cl-]",
	"C%12CC%12",
	"[C@TB12](F)(Cl)Br",
	"F/C=C\\F",
	"[Fe+23]",
}

func TestEncodeLayout(t *testing.T) {
	node, err := parser.Parse("C")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []byte{
		0, 0, 0, 17, 0, 0, 0, 0, 2, // Smiles
		0, 0, 0, 15, 0, 0, 0, 0, 2, // Chain
		0, 0, 0, 13, 0, 0, 0, 0, 1, // BranchedAtom
		0, 0, 0, 0, 'C', 0, 0, 0, 0, 0, // AliphaticOrganic "C"
		0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 0, // Absent
		0, 0, 0, 16, 0, 0, 0, 0, 0, // Terminator
	}
	got := Encode(node)
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() =\n% x\nwant\n% x", got, want)
	}
	if Size(node) != len(want) {
		t.Errorf("Size() = %d, want %d", Size(node), len(want))
	}
}

func TestRoundTripShape(t *testing.T) {
	for _, input := range corpus {
		t.Run(input, func(t *testing.T) {
			node, err := parser.Parse(input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			data := Encode(node)
			if len(data) != Size(node) {
				t.Errorf("encoded %d bytes, Size() = %d", len(data), Size(node))
			}
			decoded, err := Decode(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !decoded.Equal(node) {
				t.Errorf("decoded tree differs\n got:\n%s\nwant:\n%s", decoded, node)
			}
		})
	}
}

func TestEncodeToCapacity(t *testing.T) {
	node, err := parser.Parse("CCO")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	size := Size(node)

	small := bytes.Repeat([]byte{0xAA}, size-1)
	n, err := EncodeTo(small, node)
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("EncodeTo() error = %v, want ErrCapacity", err)
	}
	if n != 0 {
		t.Errorf("EncodeTo() wrote %d bytes on failure", n)
	}
	if !bytes.Equal(small, bytes.Repeat([]byte{0xAA}, size-1)) {
		t.Error("EncodeTo() modified the buffer on failure")
	}

	exact := make([]byte, size)
	n, err = EncodeTo(exact, node)
	if err != nil {
		t.Fatalf("EncodeTo() error = %v", err)
	}
	if n != size || !bytes.Equal(exact, Encode(node)) {
		t.Error("EncodeTo() output differs from Encode()")
	}
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		length int
		want   string
		ok     bool
	}{
		{"simple", []byte("CCO\x00"), 4, "CCO", true},
		{"capacity larger than string", []byte("C\x00\x00\x00"), 4, "C", true},
		{"empty string", []byte{0}, 1, "", true},
		{"trailing garbage", []byte("CC\x00xyz"), 6, "CC", true},
		{"missing terminator", []byte("CCO"), 3, "", false},
		{"terminator beyond length", []byte("CCO\x00"), 3, "", false},
		{"length beyond buffer", []byte("C\x00"), 5, "", false},
		{"negative length", []byte("C\x00"), -1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRequest(tt.buf, tt.length)
			if tt.ok {
				if err != nil {
					t.Fatalf("DecodeRequest() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("DecodeRequest() = %q, want %q", got, tt.want)
				}
				return
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Errorf("DecodeRequest() error = %v, want *DecodeError", err)
			}
		})
	}

	if got, err := DecodeRequest(EncodeRequest("c1ccccc1"), len("c1ccccc1")+1); err != nil || got != "c1ccccc1" {
		t.Errorf("EncodeRequest round trip = %q, %v", got, err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	node, err := parser.Parse("CC")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	data := Encode(node)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", data[:len(data)-3]},
		{"trailing", append(append([]byte{}, data...), 0)},
		{"unterminated text", []byte{0, 0, 0, 0, 'C'}},
		{"negative count", []byte{0, 0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}},
		{"huge count", []byte{0, 0, 0, 0, 0, 0x7f, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode() succeeded on malformed input")
			}
		})
	}
}
