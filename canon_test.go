package algexpr

import "testing"

func TestSort(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree string
	}{
		{"names", "b*a", "(* a b)"},
		{"nums", "2+1", "(+ 1 2)"},
		{"negnums", "1+-1", "(+ -1 1)"},
		{"namenum", "1+x", "(+ x 1)"},
		{"applyfirst", "x+sin(x)", "(+ (sin x) x)"},
		{"applyname", "sin(x)*cos(x)", "(* (cos x) (sin x))"},
		{"noncomm", "2-1", "(- 2 1)"},
		{"noncommdiv", "x/2/1", "(/ (/ x 2) 1)"},
		{"inner", "max(b+a, 1)", "(max (+ a b) 1)"},
		{"deep", "z*(y+(x*w))", "(* (+ (* w x) y) z)"},
		{"chain", "c+b+a", "(+ (+ b c) a)"},
		{"prefix", "-(b*a)", "(- (* a b))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := e.Tree(); got != c.tree {
				t.Errorf("wrong canonical tree for %q: want %s, got %s", c.src, c.tree, got)
			}
			// Sorting again must not change anything.
			m := e.n.clone()
			m.sort(e.g)
			if d, f := e.n.diff(m); d != nil || f != nil {
				t.Errorf("sort not idempotent on %q: %v became %v", c.src, d, f)
			}
		})
	}
}

func TestLess(t *testing.T) {
	g := defaultGrammar
	add, sub := g.operator("+", Infix), g.operator("-", Infix)
	x, y := &node{kind: nodeName, name: "x"}, &node{kind: nodeName, name: "y"}
	one, two := &node{kind: nodeNum, val: 1}, &node{kind: nodeNum, val: 2}
	neg := g.operator("-", Prefix)
	cases := []struct {
		name string
		a, b *node
	}{
		{"applyname", apply(add, x, y), x},
		{"applynum", apply(add, x, y), one},
		{"namenum", y, one},
		{"names", x, y},
		{"nums", one, two},
		{"applynames", apply(add, x, y), apply(sub, x, y)},
		{"arity", apply(neg, x), apply(sub, x, y)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.a.less(c.b, g, g) {
				t.Errorf("%v should order before %v", c.a, c.b)
			}
			if c.b.less(c.a, g, g) {
				t.Errorf("%v should not order before %v", c.b, c.a)
			}
		})
	}
}

func TestChain(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int
	}{
		{"single", "x+y", 2},
		{"left", "a+b+c+d", 4},
		{"right", "a+(b+(c+d))", 4},
		{"split", "(a+b)+(c+d)", 4},
		{"stop", "a+b*c+d", 3},
		{"sub", "a+(b-c)", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := len(e.n.chain(nil)); got != c.want {
				t.Errorf("wrong chain length for %q: want %d, got %d", c.src, c.want, got)
			}
		})
	}
}

func TestSameAcrossGrammars(t *testing.T) {
	e, err := Parse("x+y*2")
	if err != nil {
		t.Fatal(err)
	}
	f, err := Parse("2*y+x", WithGrammar(testGrammar))
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equal(f) {
		t.Errorf("%v should equal %v across grammars", e.Tree(), f.Tree())
	}
	if !f.Contains(e) || !e.Contains(f) {
		t.Errorf("%v and %v should contain each other", e.Tree(), f.Tree())
	}
}
