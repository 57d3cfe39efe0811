package algexpr

import (
	"errors"
	"testing"
)

func TestEvalBrokenTree(t *testing.T) {
	add := defaultGrammar.operator("+", Infix)
	neg := defaultGrammar.operator("-", Prefix)
	one := func() *node { return &node{kind: nodeNum, val: 1} }
	cases := []struct {
		name string
		n    *node
	}{
		{"hole", apply(add, one(), hole())},
		{"holeroot", hole()},
		{"shortinfix", apply(add, one())},
		{"longprefix", apply(neg, one(), one())},
		{"deep", apply(add, one(), apply(neg, hole()))},
		{"kind", &node{kind: nodeKind(99)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.n.eval(defaultGrammar, func(string) (float64, bool) { return 0, false })
			var ie *InvariantError
			if !errors.As(err, &ie) {
				t.Fatalf("wrong error: want *InvariantError, got %T (%v)", err, err)
			}
			var in InputError
			if errors.As(err, &in) {
				t.Errorf("broken tree reported as input error: %v", err)
			}
		})
	}
}

func TestEvalZeroExpr(t *testing.T) {
	var e Expr
	_, err := e.Eval(nil)
	var ie *InvariantError
	if !errors.As(err, &ie) {
		t.Fatalf("wrong error: want *InvariantError, got %T (%v)", err, err)
	}
}
