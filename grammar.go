package algexpr

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fixity is the position of an operator relative to its operands.
type Fixity int8

const (
	// Prefix operators precede their single operand, e.g. -x.
	Prefix Fixity = iota + 1
	// Infix operators sit between their two operands, e.g. x+y.
	Infix
	// Postfix operators follow their single operand, e.g. x!.
	Postfix
)

func (f Fixity) String() string {
	switch f {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	default:
		return "Fixity(" + strconv.Itoa(int(f)) + ")"
	}
}

// arity is the number of operands an operator of this fixity takes.
func (f Fixity) arity() int {
	if f == Infix {
		return 2
	}
	return 1
}

// OperatorSpec describes an operator for parsing.
type OperatorSpec struct {
	// Name is the literal text of the operator.
	Name string
	// Prec is the precedence of the operator. Higher binds tighter.
	Prec int
	// Fixity is the operator's position relative to its operands.
	Fixity Fixity
	// Commutative indicates that the operands of an infix operator may be
	// reordered without changing the result.
	Commutative bool
	// Associative indicates that chains of the infix operator may be
	// regrouped without changing the result.
	Associative bool
	// Apply evaluates the operator.
	Apply Func
}

// FunctionSpec describes a function for parsing.
type FunctionSpec struct {
	// Name is the identifier naming the function.
	Name string
	// Arity is the exact number of arguments the function requires.
	Arity int
	// Apply evaluates the function.
	Apply Func
}

// symbol is a grammar entry as referenced by AST nodes. Operators and
// functions share one table; a symbol with zero fixity is a function.
type symbol struct {
	name   string
	prec   int
	fixity Fixity
	arity  int
	comm   bool
	assoc  bool
	fn     Func
}

// ac returns whether chains of the symbol may be flattened and permuted.
func (s *symbol) ac() bool {
	return s.fixity == Infix && s.comm && s.assoc
}

// Grammar is an immutable registry of operators and functions. A Grammar is
// safe to share among any number of concurrent parses.
type Grammar struct {
	syms []symbol
	// ops[f] lists indices of operators with fixity f, in declaration order.
	ops [Postfix + 1][]int
	// funcs maps function names to indices.
	funcs map[string]int
}

// NewGrammar creates a grammar from operator and function specs. The specs
// are copied.
func NewGrammar(ops []OperatorSpec, funcs []FunctionSpec) (*Grammar, error) {
	g := Grammar{
		syms:  make([]symbol, 0, len(ops)+len(funcs)),
		funcs: make(map[string]int, len(funcs)),
	}
	for _, op := range ops {
		if op.Name == "" {
			return nil, errors.New("algexpr: operator with empty name")
		}
		if strings.ContainsAny(op.Name, "(),") || strings.IndexFunc(op.Name, unicode.IsSpace) >= 0 {
			return nil, errors.New("algexpr: invalid operator name " + strconv.Quote(op.Name))
		}
		if op.Fixity < Prefix || op.Fixity > Postfix {
			return nil, errors.New("algexpr: operator " + strconv.Quote(op.Name) + " has invalid fixity")
		}
		if op.Fixity != Infix && (op.Commutative || op.Associative) {
			return nil, errors.New("algexpr: " + op.Fixity.String() + " operator " + strconv.Quote(op.Name) + " cannot be commutative or associative")
		}
		if op.Apply == nil {
			return nil, errors.New("algexpr: operator " + strconv.Quote(op.Name) + " has no evaluation rule")
		}
		if g.operator(op.Name, op.Fixity) >= 0 {
			return nil, errors.New("algexpr: duplicate " + op.Fixity.String() + " operator " + strconv.Quote(op.Name))
		}
		g.ops[op.Fixity] = append(g.ops[op.Fixity], len(g.syms))
		g.syms = append(g.syms, symbol{
			name:   op.Name,
			prec:   op.Prec,
			fixity: op.Fixity,
			arity:  op.Fixity.arity(),
			comm:   op.Commutative,
			assoc:  op.Associative,
			fn:     op.Apply,
		})
	}
	for _, fn := range funcs {
		if !isIdent(fn.Name) {
			return nil, errors.New("algexpr: invalid function name " + strconv.Quote(fn.Name))
		}
		if fn.Arity < 1 {
			return nil, errors.New("algexpr: function " + fn.Name + " must take at least one argument")
		}
		if fn.Apply == nil {
			return nil, errors.New("algexpr: function " + fn.Name + " has no evaluation rule")
		}
		if _, ok := g.funcs[fn.Name]; ok {
			return nil, errors.New("algexpr: duplicate function " + fn.Name)
		}
		g.funcs[fn.Name] = len(g.syms)
		g.syms = append(g.syms, symbol{
			name:  fn.Name,
			arity: fn.Arity,
			fn:    fn.Apply,
		})
	}
	return &g, nil
}

// MustGrammar is like NewGrammar but panics if the specs are invalid.
func MustGrammar(ops []OperatorSpec, funcs []FunctionSpec) *Grammar {
	g, err := NewGrammar(ops, funcs)
	if err != nil {
		panic(err)
	}
	return g
}

// Operators returns a copy of the grammar's operator specs.
func (g *Grammar) Operators() []OperatorSpec {
	var r []OperatorSpec
	for _, s := range g.syms {
		if s.fixity == 0 {
			continue
		}
		r = append(r, OperatorSpec{
			Name:        s.name,
			Prec:        s.prec,
			Fixity:      s.fixity,
			Commutative: s.comm,
			Associative: s.assoc,
			Apply:       s.fn,
		})
	}
	return r
}

// Functions returns a copy of the grammar's function specs.
func (g *Grammar) Functions() []FunctionSpec {
	var r []FunctionSpec
	for _, s := range g.syms {
		if s.fixity != 0 {
			continue
		}
		r = append(r, FunctionSpec{Name: s.name, Arity: s.arity, Apply: s.fn})
	}
	return r
}

// sym returns the symbol for a handle.
func (g *Grammar) sym(k int) *symbol {
	return &g.syms[k]
}

// operator finds the operator with exactly the given name and fixity. The
// result is -1 if there is none.
func (g *Grammar) operator(name string, fix Fixity) int {
	for _, k := range g.ops[fix] {
		if g.syms[k].name == name {
			return k
		}
	}
	return -1
}

// function finds a function by name. The result is -1 if there is none.
func (g *Grammar) function(name string) int {
	k, ok := g.funcs[name]
	if !ok {
		return -1
	}
	return k
}

// match finds the operator of the given fixity with the longest name that
// is a prefix of src. The result is -1 if there is none.
func (g *Grammar) match(src string, fix Fixity) int {
	best := -1
	for _, k := range g.ops[fix] {
		name := g.syms[k].name
		if !strings.HasPrefix(src, name) {
			continue
		}
		if best >= 0 && len(g.syms[best].name) >= len(name) {
			continue
		}
		// An operator spelled like a word must not swallow part of an
		// identifier.
		r, _ := utf8.DecodeLastRuneInString(name)
		if isIdentRune(r) {
			if n, _ := utf8.DecodeRuneInString(src[len(name):]); len(src) > len(name) && isIdentRune(n) {
				continue
			}
		}
		best = k
	}
	return best
}

// isIdent returns whether s is a valid identifier.
func isIdent(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return s != ""
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
