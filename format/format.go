// Package format renders parse trees for the command line.
package format

import (
	"encoding"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/smiles/smiles/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(node *parser.Node) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"json": func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"tree": func(w io.Writer) Encoder { return NewTreeEncoder(w) },
	"line": func(w io.Writer) Encoder { return NewLineEncoder(w) },
	"wire": func(w io.Writer) Encoder { return NewWireEncoder(w) },
	"hex":  func(w io.Writer) Encoder { return NewHexEncoder(w) },
}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, error) {
	mk, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (expected one of %v)", name, Names())
	}
	return mk(w), nil
}

func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
