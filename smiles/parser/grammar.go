package parser

var (
	aliphaticOrganic = newLiteralSet(KindAliphaticOrganic,
		"B", "C", "N", "O", "P", "S", "F", "Cl", "Br", "I")

	aromaticOrganic = newLiteralSet(KindAromaticOrganic,
		"b", "c", "n", "o", "s", "p")

	elementSymbols = newLiteralSet(KindElementSymbol,
		"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", "Na",
		"Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co",
		"Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr", "Nb", "Mo",
		"Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe", "Cs", "Ba", "Hf",
		"Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr",
		"Ra", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Fl", "Lv", "La", "Ce", "Pr",
		"Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu", "Ac", "Th", "Pa",
		"U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr")

	aromaticSymbols = newLiteralSet(KindAromaticSymbol,
		"b", "c", "n", "o", "p", "s", "se", "as")

	bonds = newLiteralSet(KindBond,
		"-", "=", "#", "$", ":", "/", `\`)

	chiralities = newLiteralSet(KindChiral,
		"@", "@@", "@TH1", "@TH2", "@AL1", "@AL2", "@SP1", "@SP2", "@SP3", "@TB", "@OH")
)

// LiteralTables returns the terminal alphabets of the grammar keyed by
// production name.
func LiteralTables() map[string][]string {
	return map[string][]string{
		"AliphaticOrganic": aliphaticOrganic.Candidates(),
		"AromaticOrganic":  aromaticOrganic.Candidates(),
		"ElementSymbol":    elementSymbols.Candidates(),
		"AromaticSymbol":   aromaticSymbols.Candidates(),
		"Bond":             bonds.Candidates(),
		"Chiral":           chiralities.Candidates(),
	}
}

func star(c *Cursor) *Node {
	return char(c, '*')
}

func atom(c *Cursor) *Node {
	if n := optional(c, aliphaticOrganic.parse); n != nil {
		return n
	}
	if n := optional(c, aromaticOrganic.parse); n != nil {
		return n
	}
	if n := optional(c, star); n != nil {
		return n
	}
	return bracketAtom(c)
}

func bracketAtom(c *Cursor) *Node {
	start := c.Mark()
	if char(c, '[') == nil {
		return nil
	}
	isotope := orAbsent(optional(c, number), c.Mark())
	sym := symbol(c)
	if sym == nil {
		return nil
	}
	chiral := orAbsent(optional(c, chirality), c.Mark())
	hydrogens := orAbsent(optional(c, hcount), c.Mark())
	chg := orAbsent(optional(c, charge), c.Mark())
	cls := orAbsent(optional(c, class), c.Mark())
	if char(c, ']') == nil {
		return nil
	}
	return &Node{
		Kind:     KindBracketAtom,
		Children: []*Node{isotope, sym, chiral, hydrogens, chg, cls},
		Span:     Span{Start: start, End: c.Mark()},
	}
}

func symbol(c *Cursor) *Node {
	if n := optional(c, aromaticSymbols.parse); n != nil {
		return n
	}
	if n := optional(c, star); n != nil {
		return n
	}
	return elementSymbols.parse(c)
}

// chirality parses a chirality class. @TB and @OH take one mandatory and
// one optional digit, which become part of the node text.
func chirality(c *Cursor) *Node {
	n := chiralities.parse(c)
	if n == nil {
		return nil
	}
	if n.Text != "@TB" && n.Text != "@OH" {
		return n
	}
	d := digit(c)
	if d == nil {
		return nil
	}
	n.Text += d.Text
	if d2 := optional(c, digit); d2 != nil {
		n.Text += d2.Text
	}
	n.Span.End = c.Mark()
	return n
}

func hcount(c *Cursor) *Node {
	start := c.Mark()
	h := char(c, 'H')
	if h == nil {
		return nil
	}
	n := &Node{Kind: KindHCount, Children: []*Node{h}}
	n.AddChild(optional(c, digit))
	n.Span = Span{Start: start, End: c.Mark()}
	return n
}

func charge(c *Cursor) *Node {
	start := c.Mark()
	sign := optional(c, singleChar('-'))
	if sign == nil {
		sign = optional(c, singleChar('+'))
	}
	if sign == nil {
		eof := c.atEnd()
		found := describeByte(c.Peek(), eof)
		c.mismatch(eof, []string{"-", "+"}, found, "Expected a sign, got %s", found)
		return nil
	}
	d1 := orAbsent(optional(c, digit), c.Mark())
	d2 := orAbsent(optional(c, digit), c.Mark())
	return &Node{
		Kind:     KindCharge,
		Children: []*Node{sign, d1, d2},
		Span:     Span{Start: start, End: c.Mark()},
	}
}

func class(c *Cursor) *Node {
	start := c.Mark()
	if char(c, ':') == nil {
		return nil
	}
	num := number(c)
	if num == nil {
		return nil
	}
	return &Node{Kind: KindClass, Children: []*Node{num}, Span: Span{Start: start, End: c.Mark()}}
}

func bondOrDot(c *Cursor) *Node {
	if b := optional(c, bonds.parse); b != nil {
		return b
	}
	return char(c, '.')
}

// ringBond parses a ring-closure reference: an optional bond followed by
// a single digit or by '%' and exactly two digits.
func ringBond(c *Cursor) *Node {
	start := c.Mark()
	n := &Node{Kind: KindRingBond}
	n.AddChild(orAbsent(optional(c, bonds.parse), start))
	if !c.AtBoundary() && c.Peek() == '%' {
		for _, r := range []rule{singleChar('%'), digit, digit} {
			child := r(c)
			if child == nil {
				return nil
			}
			n.AddChild(child)
		}
	} else {
		d := digit(c)
		if d == nil {
			return nil
		}
		n.AddChild(d)
	}
	n.Span = Span{Start: start, End: c.Mark()}
	return n
}

// branchedAtom parses an atom, its ring bonds, then its branches. Ring bonds
// are not attempted again once the first branch attempt has been made.
func branchedAtom(c *Cursor) *Node {
	start := c.Mark()
	a := atom(c)
	if a == nil {
		return nil
	}
	n := &Node{Kind: KindBranchedAtom, Children: []*Node{a}}
	for {
		rb := optional(c, ringBond)
		if rb == nil {
			break
		}
		n.AddChild(rb)
	}
	for {
		br := optional(c, branch)
		if br == nil {
			break
		}
		n.AddChild(br)
	}
	if c.limited {
		return nil
	}
	n.Span = Span{Start: start, End: c.Mark()}
	return n
}

func branch(c *Cursor) *Node {
	start := c.Mark()
	if char(c, '(') == nil {
		return nil
	}
	// Only an opened parenthesis counts as a nesting level.
	ok := c.enter()
	defer c.leave()
	if !ok {
		return nil
	}
	n := &Node{Kind: KindBranch}
	n.AddChild(optional(c, bondOrDot))
	sub := chain(c)
	if sub == nil {
		return nil
	}
	n.AddChild(sub)
	if char(c, ')') == nil {
		return nil
	}
	n.Span = Span{Start: start, End: c.Mark()}
	return n
}

// chain parses a branched atom followed by any number of tail segments. The
// segments are collected in a loop and then folded into right-nested Chain
// nodes, each ending in either the next segment or an Absent slot.
func chain(c *Cursor) *Node {
	start := c.Mark()
	head := branchedAtom(c)
	if head == nil {
		return nil
	}
	var segments []*Node
	for {
		seg := optional(c, chainSegment)
		if seg == nil {
			break
		}
		segments = append(segments, seg)
	}
	if c.limited {
		return nil
	}

	end := c.Mark()
	tail := absentAt(end)
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		seg.AddChild(tail)
		seg.Span.End = end
		tail = seg
	}
	return &Node{
		Kind:     KindChain,
		Children: []*Node{head, tail},
		Span:     Span{Start: start, End: end},
	}
}

func chainSegment(c *Cursor) *Node {
	start := c.Mark()
	n := &Node{Kind: KindChain}
	n.AddChild(optional(c, bondOrDot))
	a := branchedAtom(c)
	if a == nil {
		return nil
	}
	n.AddChild(a)
	n.Span = Span{Start: start, End: c.Mark()}
	return n
}

func isTerminatorByte(ch byte) bool {
	switch ch {
	case ' ', '\r', '\n', '\t', 0:
		return true
	}
	return false
}

// terminator succeeds at the end of input or before a whitespace or NUL
// byte. It consumes nothing.
func terminator(c *Cursor) *Node {
	pos := c.Mark()
	if c.atEnd() || isTerminatorByte(c.input[pos]) {
		return &Node{Kind: KindTerminator, Span: Span{Start: pos, End: pos}}
	}
	found := describeByte(c.input[pos], false)
	c.fail(ErrMismatch, []string{"end of expression"}, found, "Expected end of expression")
	return nil
}

// smiles is the top-level rule. A chain failure is forgiven only when the
// original input is empty or starts with a terminator byte, which denotes
// an explicitly empty expression.
func smiles(c *Cursor) *Node {
	n := &Node{Kind: KindSmiles}
	if ch := chain(c); ch != nil {
		n.AddChild(ch)
	} else {
		if c.limited {
			return nil
		}
		if len(c.input) > 0 && !isTerminatorByte(c.input[0]) {
			return nil
		}
		c.Reset(0)
		c.clearFailure()
	}
	t := terminator(c)
	if t == nil {
		return nil
	}
	n.AddChild(t)
	n.Span = Span{Start: 0, End: t.Span.End}
	return n
}
