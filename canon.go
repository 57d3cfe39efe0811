package algexpr

// less reports whether n orders before m. Applications order before
// variables, which order before constants. Applications order by symbol name,
// then arity; variables by name; constants by value. Only the roots of n and
// m are compared.
func (n *node) less(m *node, g, h *Grammar) bool {
	if n.kind != m.kind {
		return rank(n.kind) < rank(m.kind)
	}
	switch n.kind {
	case nodeApply:
		s, t := g.sym(n.sym), h.sym(m.sym)
		if s.name != t.name {
			return s.name < t.name
		}
		return len(n.args) < len(m.args)
	case nodeName:
		return n.name < m.name
	case nodeNum:
		return n.val < m.val
	default:
		return false
	}
}

func rank(k nodeKind) int {
	switch k {
	case nodeApply:
		return 0
	case nodeName:
		return 1
	case nodeNum:
		return 2
	default:
		return 3
	}
}

// sort puts the operands of every commutative binary operator in the tree
// into canonical order. Running sort on a sorted tree changes nothing.
func (n *node) sort(g *Grammar) {
	if n.kind != nodeApply {
		return
	}
	s := g.sym(n.sym)
	if s.fixity == Infix && s.comm && len(n.args) == 2 && n.args[1].less(n.args[0], g, g) {
		n.args[0], n.args[1] = n.args[1], n.args[0]
	}
	for _, a := range n.args {
		a.sort(g)
	}
}

// same reports whether two handles from possibly different grammars name the
// same operator or function.
func same(g *Grammar, a int, h *Grammar, b int) bool {
	if g == h {
		return a == b
	}
	s, t := g.sym(a), h.sym(b)
	return s.name == t.name && s.fixity == t.fixity && s.arity == t.arity
}

// equal reports whether n and m are structurally identical. Placeholders are
// never equal to anything.
func (n *node) equal(m *node, g, h *Grammar) bool {
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case nodeApply:
		if !same(g, n.sym, h, m.sym) || len(n.args) != len(m.args) {
			return false
		}
		for i, a := range n.args {
			if !a.equal(m.args[i], g, h) {
				return false
			}
		}
		return true
	case nodeName:
		return n.name == m.name
	case nodeNum:
		return n.val == m.val
	default:
		return false
	}
}

// contains reports whether sub occurs in the tree rooted at n, either as a
// subtree or, when sub applies an associative and commutative operator, as a
// sub-multiset of the operands of a chain of that operator in n. Both trees
// should be sorted.
func (n *node) contains(sub *node, g, h *Grammar) bool {
	if n.equal(sub, g, h) {
		return true
	}
	if n.kind != nodeApply {
		return false
	}
	if sub.kind == nodeApply && g.sym(n.sym).ac() && same(g, n.sym, h, sub.sym) {
		if submultiset(sub.chain(nil), n.chain(nil), h, g) {
			return true
		}
	}
	for _, a := range n.args {
		if a.contains(sub, g, h) {
			return true
		}
	}
	return false
}

// chain appends to v the operands of the maximal chain of n's operator
// rooted at n, left to right.
func (n *node) chain(v []*node) []*node {
	for _, a := range n.args {
		if a.kind == nodeApply && a.sym == n.sym {
			v = a.chain(v)
		} else {
			v = append(v, a)
		}
	}
	return v
}

// submultiset reports whether every node in sub can be paired with a distinct
// equal node in of.
func submultiset(sub, of []*node, g, h *Grammar) bool {
	if len(sub) > len(of) {
		return false
	}
	used := make([]bool, len(of))
outer:
	for _, a := range sub {
		for i, b := range of {
			if !used[i] && a.equal(b, g, h) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
