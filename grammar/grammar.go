// Package grammar holds the EBNF description of the line notation and
// tools to verify and match against it.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/ebnf"
)

// Start is the production every expression is derived from.
const Start = "Smiles"

//go:embed smiles.ebnf
var source []byte

// Source returns the embedded grammar text.
func Source() []byte {
	return source
}

// Default parses and verifies the embedded grammar.
func Default() (ebnf.Grammar, error) {
	g, err := Read("smiles.ebnf", bytes.NewReader(source))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Load reads an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Read(filename, f)
}

func Read(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// tables maps each terminal table of the parser to the lexical productions
// listing its candidates.
var tables = map[string][]string{
	"AliphaticOrganic": {"aliphaticOrganic"},
	"AromaticOrganic":  {"aromaticOrganic"},
	"ElementSymbol":    {"elementSymbol"},
	"AromaticSymbol":   {"aromaticSymbol"},
	"Bond":             {"bond"},
	"Chiral":           {"chiralTag", "chiralOrder"},
}

// Tables returns the terminal candidates of g keyed the same way as
// parser.LiteralTables.
func Tables(g ebnf.Grammar) (map[string][]string, error) {
	out := make(map[string][]string, len(tables))
	for table, names := range tables {
		for _, name := range names {
			alts, err := Alternatives(g, name)
			if err != nil {
				return nil, err
			}
			out[table] = append(out[table], alts...)
		}
	}
	return out, nil
}

// Alternatives returns the literal strings of a production made only of
// alternative tokens, in the order they are written.
func Alternatives(g ebnf.Grammar, name string) ([]string, error) {
	prod, ok := g[name]
	if !ok || prod.Expr == nil {
		return nil, fmt.Errorf("production %s not found", name)
	}
	switch e := prod.Expr.(type) {
	case *ebnf.Token:
		return []string{e.String}, nil
	case ebnf.Alternative:
		out := make([]string, 0, len(e))
		for _, alt := range e {
			tok, ok := alt.(*ebnf.Token)
			if !ok {
				return nil, fmt.Errorf("production %s: alternative at %s is not a token", name, alt.Pos())
			}
			out = append(out, tok.String)
		}
		return out, nil
	}
	return nil, fmt.Errorf("production %s is not a list of tokens", name)
}
