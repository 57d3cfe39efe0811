package algexpr

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Each node is
// owned by exactly one parent.
type node struct {
	kind nodeKind

	// sym is the grammar handle of an application.
	sym int
	// val is the value of a constant.
	val float64
	// name is the name of a variable.
	name string

	args []*node
}

type nodeKind int8

const (
	// nodeNone is the placeholder for an operand that has not been parsed
	// yet. It never appears in a finished tree.
	nodeNone nodeKind = iota

	nodeApply // apply sym to args
	nodeNum   // push val
	nodeName  // push lookup(name)
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeApply:
		return "Apply"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func hole() *node {
	return &node{kind: nodeNone}
}

func apply(sym int, args ...*node) *node {
	return &node{kind: nodeApply, sym: sym, args: args}
}

// clone deep-copies the tree rooted at n.
func (n *node) clone() *node {
	m := *n
	if n.args != nil {
		m.args = make([]*node, len(n.args))
		for i, a := range n.args {
			m.args[i] = a.clone()
		}
	}
	return &m
}

// fmt writes the fully parenthesized infix form of n.
func (n *node) fmt(b *strings.Builder, g *Grammar) {
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(fmtnum(n.val))
	case nodeName:
		b.WriteString(n.name)
	case nodeApply:
		s := g.sym(n.sym)
		switch s.fixity {
		case Prefix:
			b.WriteByte('(')
			b.WriteString(s.name)
			b.WriteByte(' ')
			n.args[0].fmt(b, g)
			b.WriteByte(')')
		case Infix:
			b.WriteByte('(')
			n.args[0].fmt(b, g)
			b.WriteByte(' ')
			b.WriteString(s.name)
			b.WriteByte(' ')
			n.args[1].fmt(b, g)
			b.WriteByte(')')
		case Postfix:
			b.WriteByte('(')
			n.args[0].fmt(b, g)
			b.WriteByte(' ')
			b.WriteString(s.name)
			b.WriteByte(')')
		default:
			b.WriteString(s.name)
			b.WriteByte('(')
			for i, a := range n.args {
				if i > 0 {
					b.WriteString(", ")
				}
				a.fmt(b, g)
			}
			b.WriteByte(')')
		}
	default:
		panic("algexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// tree writes n in prefix form, e.g. (+ 1 (* 2 x)).
func (n *node) tree(b *strings.Builder, g *Grammar) {
	switch n.kind {
	case nodeNone:
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(fmtnum(n.val))
	case nodeName:
		b.WriteString(n.name)
	case nodeApply:
		b.WriteByte('(')
		b.WriteString(g.sym(n.sym).name)
		for _, a := range n.args {
			b.WriteByte(' ')
			a.tree(b, g)
		}
		b.WriteByte(')')
	default:
		panic("algexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// fmtnum formats a constant so that the lexer reads it back exactly.
func fmtnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
