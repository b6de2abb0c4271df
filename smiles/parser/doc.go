// Package parser implements a backtracking recursive-descent parser for
// SMILES line notation.
//
// # Overview
//
// The parser reads one expression from an in-memory string and produces a
// syntax tree of [Node] values. Every node carries the grammar rule that
// produced it, the literal text for terminals, its children, and the byte
// span of input it covers.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Cursor    │────▶│   Grammar   │
//	│  (string)   │     │ (peek/mark) │     │   (rules)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                           ┌───────────────────┴──┐
//	                           ▼                      ▼
//	                    ┌─────────────┐        ┌─────────────┐
//	                    │    Node     │        │    Error    │
//	                    │   (tree)    │        │ (diagnostic)│
//	                    └─────────────┘        └─────────────┘
//
// # Grammar
//
//	smiles        = [ chain ] terminator
//	chain         = branched-atom { [ bond | "." ] branched-atom }
//	branched-atom = atom { ring-bond } { branch }
//	branch        = "(" [ bond | "." ] chain ")"
//	atom          = aliphatic-organic | aromatic-organic | "*" | bracket-atom
//	bracket-atom  = "[" [ number ] symbol [ chiral ] [ hcount ] [ charge ] [ class ] "]"
//	symbol        = aromatic-symbol | "*" | element-symbol
//	ring-bond     = [ bond ] ( digit | "%" digit digit )
//	hcount        = "H" [ digit ]
//	charge        = ( "-" | "+" ) [ digit ] [ digit ]
//	class         = ":" number
//
// The full grammar, with terminal alphabets, lives in the grammar package
// as an EBNF document.
//
// # Backtracking
//
// Alternation is expressed only through the optional combinator: it runs a
// rule and, if the rule fails, restores the cursor and discards the failure.
// Diagnostics raised inside an optional attempt are never formatted. Only
// the failure of a mandatory rule reaches the caller.
//
// Literal sets always pick the longest matching candidate, so "Cl" is read
// as chlorine and never as carbon followed by a stray "l".
//
// # Tree shape
//
// Optional slots of bracket atoms, charges and ring bonds are filled with
// [KindAbsent] nodes so that every child position has a fixed meaning. A
// chain is right-nested: each Chain node ends with the rest of the chain or
// an Absent node.
//
// # Errors
//
// Parse never panics on malformed input. A failed parse returns an *[Error]
// with the message, the byte offset of the failure, the expected tokens and
// the text found. [Error.Render] produces the caret diagnostic:
//
//	Failed to parse: Expected end of expression
//	Oc1c(*)ccccX1
//	           ^
//
// Branch nesting and input length are bounded; see [WithMaxDepth] and
// [WithMaxLength].
package parser
