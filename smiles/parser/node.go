package parser

import (
	"strconv"
	"strings"
)

// NodeKind tags a node with the grammar rule that produced it. The ordinal
// values are part of the wire format and must not be reordered.
type NodeKind int32

const KindAbsent NodeKind = -1

const (
	KindAliphaticOrganic NodeKind = iota
	KindAromaticOrganic
	KindElementSymbol
	KindAromaticSymbol
	KindBond
	KindNumber
	KindChar
	KindBracketAtom
	KindCharge
	KindChiral
	KindClass
	KindHCount
	KindRingBond
	KindBranchedAtom
	KindBranch
	KindChain
	KindTerminator
	KindSmiles
)

var nodeKindNames = map[NodeKind]string{
	KindAbsent:           "Absent",
	KindAliphaticOrganic: "AliphaticOrganic",
	KindAromaticOrganic:  "AromaticOrganic",
	KindElementSymbol:    "ElementSymbol",
	KindAromaticSymbol:   "AromaticSymbol",
	KindBond:             "Bond",
	KindNumber:           "Number",
	KindChar:             "Char",
	KindBracketAtom:      "BracketAtom",
	KindCharge:           "Charge",
	KindChiral:           "Chiral",
	KindClass:            "Class",
	KindHCount:           "HCount",
	KindRingBond:         "RingBond",
	KindBranchedAtom:     "BranchedAtom",
	KindBranch:           "Branch",
	KindChain:            "Chain",
	KindTerminator:       "Terminator",
	KindSmiles:           "Smiles",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Span is the half-open byte range [Start, End) of the input a node covers.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Node is one application of a grammar rule. Terminals carry Text and no
// children; composite rules carry children and no text. A node owns its
// children exclusively.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
	Span     Span
}

func absentAt(pos int) *Node {
	return &Node{Kind: KindAbsent, Span: Span{Start: pos, End: pos}}
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// IsAbsent reports whether n stands in for an optional slot that did not match.
func (n *Node) IsAbsent() bool {
	return n == nil || n.Kind == KindAbsent
}

func (n *Node) IsTerminal() bool {
	return n.Text != ""
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Walk visits n and its descendants depth-first in pre-order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// NodeAt returns the innermost non-absent node whose span contains offset.
func (n *Node) NodeAt(offset int) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.IsAbsent() || offset < c.Span.Start || offset >= c.Span.End {
			return false
		}
		found = c
		return true
	})
	return found
}

// Atoms returns the BranchedAtom nodes of the tree in source order.
func (n *Node) Atoms() []*Node {
	var atoms []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == KindBranchedAtom {
			atoms = append(atoms, c)
		}
		return true
	})
	return atoms
}

// Equal reports whether two trees have the same kinds, texts and child
// counts at every level. Spans are not compared.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// MaxIndent is the deepest level rendered with its own indentation. Chain
// tails nest one level per bond, so deeper nodes share the last column to
// keep output linear in the size of the tree.
const MaxIndent = 32

func (n *Node) String() string {
	var b strings.Builder
	n.writeIndent(&b, 0, false)
	return b.String()
}

func (n *Node) StringWithPositions() string {
	var b strings.Builder
	n.writeIndent(&b, 0, true)
	return b.String()
}

func (n *Node) writeIndent(b *strings.Builder, indent int, showPositions bool) {
	b.WriteString(strings.Repeat("  ", min(indent, MaxIndent)))
	b.WriteString(n.Kind.String())
	if showPositions && !n.IsAbsent() {
		b.WriteString(" [" + n.Span.String() + "]")
	}
	if n.Text != "" {
		b.WriteString(" " + n.Text)
	}
	b.WriteByte('\n')
	for _, child := range n.Children {
		child.writeIndent(b, indent+1, showPositions)
	}
}
