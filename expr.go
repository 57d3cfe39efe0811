package algexpr

import (
	"errors"
	"strings"
)

// Expr is a parsed expression together with its variable bindings. An Expr
// is not safe to modify concurrently with any other use. Expressions come
// from Parse or Combine; the zero value has no tree, so Eval returns an
// *InvariantError and the other methods may panic.
type Expr struct {
	// g is the grammar the expression was parsed with.
	g *Grammar
	// n is the root node of the expression.
	n *node
	// names is the sorted list of variable names used in the expression.
	names []string
	// vars holds the values set for variables.
	vars map[string]float64
}

// Vars returns the variable names used in the expression, in sorted order.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Grammar returns the grammar the expression was parsed with.
func (e *Expr) Grammar() *Grammar {
	return e.g
}

// Set sets the value of a variable. Returns e for chaining.
func (e *Expr) Set(name string, value float64) *Expr {
	if e.vars == nil {
		e.vars = make(map[string]float64)
	}
	e.vars[name] = value
	return e
}

// SetVars sets the values of any number of variables. Returns e for chaining.
func (e *Expr) SetVars(vars map[string]float64) *Expr {
	for k, v := range vars {
		e.Set(k, v)
	}
	return e
}

// Lookup returns the value set for a variable and whether it is set.
func (e *Expr) Lookup(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Eval evaluates the expression. Variables are looked up first in vars, which
// may be nil, then among the values set on e. A variable with no value
// anywhere results in a *NameError.
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	if e.n == nil {
		return 0, &InvariantError{What: "expression has no tree"}
	}
	return e.n.eval(e.g, func(name string) (float64, bool) {
		if v, ok := vars[name]; ok {
			return v, true
		}
		v, ok := e.vars[name]
		return v, ok
	})
}

// Canonicalize puts the operands of every commutative binary operator into
// canonical order, in place. Parse already returns canonical expressions, so
// this is only needed after changing an expression's tree by other means.
func (e *Expr) Canonicalize() {
	e.n.sort(e.g)
}

// Equal returns whether e and f have the same structure once both are in
// canonical order. Neither expression is modified. Bindings are not compared.
func (e *Expr) Equal(f *Expr) bool {
	a, b := e.n.clone(), f.n.clone()
	a.sort(e.g)
	b.sort(f.g)
	return a.equal(b, e.g, f.g)
}

// Contains returns whether sub occurs within e. That is the case when some
// subtree of e equals sub, or when sub applies an associative and
// commutative operator, e has a chain of the same operator, and the
// operands of sub's chain are all among the operands of e's chain. For
// example, 2+3+4 contains 2+3, 3+4, and 4+2, but 5-2-3 does not contain 2-3.
// Neither expression is modified.
func (e *Expr) Contains(sub *Expr) bool {
	a, b := e.n.clone(), sub.n.clone()
	a.sort(e.g)
	b.sort(sub.g)
	return a.contains(b, e.g, sub.g)
}

// Clone returns a deep copy of e, including its bindings.
func (e *Expr) Clone() *Expr {
	f := Expr{
		g:     e.g,
		n:     e.n.clone(),
		names: e.Vars(),
		vars:  make(map[string]float64, len(e.vars)),
	}
	for k, v := range e.vars {
		f.vars[k] = v
	}
	return &f
}

// ErrGrammarMismatch is returned by Combine for expressions parsed with
// different grammars.
var ErrGrammarMismatch = errors.New("algexpr: cannot combine expressions from different grammars")

// Combine creates a new expression applying the infix operator op to copies
// of a and b. The variable names and bindings of the result are those of
// both, with b's bindings taking precedence. The result is in canonical
// order.
func Combine(a *Expr, op string, b *Expr) (*Expr, error) {
	if a.g != b.g {
		return nil, ErrGrammarMismatch
	}
	k := a.g.operator(op, Infix)
	if k < 0 {
		return nil, &OperatorError{Src: op, Operator: op, Fixity: Infix}
	}
	r := a.Clone()
	r.n = apply(k, r.n, b.n.clone())
	r.n.sort(r.g)
	r.names = mergestrs(r.names, b.names)
	for k, v := range b.vars {
		r.vars[k] = v
	}
	return r, nil
}

// Add returns a+b. It panics if the grammar has no infix + operator.
func Add(a, b *Expr) *Expr { return mustCombine(a, "+", b) }

// Sub returns a-b. It panics if the grammar has no infix - operator.
func Sub(a, b *Expr) *Expr { return mustCombine(a, "-", b) }

// Mul returns a*b. It panics if the grammar has no infix * operator.
func Mul(a, b *Expr) *Expr { return mustCombine(a, "*", b) }

// Div returns a/b. It panics if the grammar has no infix / operator.
func Div(a, b *Expr) *Expr { return mustCombine(a, "/", b) }

func mustCombine(a *Expr, op string, b *Expr) *Expr {
	r, err := Combine(a, op, b)
	if err != nil {
		panic(err)
	}
	return r
}

// mergestrs merges two sorted string slices, dropping duplicates.
func mergestrs(a, b []string) []string {
	r := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			r = append(r, a[i])
			i++
		case a[i] > b[j]:
			r = append(r, b[j])
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	r = append(r, a[i:]...)
	return append(r, b[j:]...)
}

// String creates a fully parenthesized representation of the expression.
// Parsing the result gives an expression equal to e.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, e.g)
	return b.String()
}

// Tree creates a prefix representation of the expression, with each
// application written as (name args...).
func (e *Expr) Tree() string {
	var b strings.Builder
	e.n.tree(&b, e.g)
	return b.String()
}
