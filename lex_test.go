package algexpr

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	type tok struct {
		text string
		kind tokenKind
		pos  int
		fix  Fixity
	}
	cases := []struct {
		name    string
		src     string
		operand bool
		want    tok
	}{
		{"num", "12.5 + x", true, tok{"12.5", tokenNum, 0, 0}},
		{"negnum", "-3", true, tok{"-3", tokenNum, 0, 0}},
		{"negspace", "- 3", true, tok{"-", tokenOp, 0, Prefix}},
		{"negname", "-x", true, tok{"-", tokenOp, 0, Prefix}},
		{"sub", "-3", false, tok{"-", tokenOp, 0, Infix}},
		{"space", "  \tx", true, tok{"x", tokenIdent, 3, 0}},
		{"ident", "x_1+y", true, tok{"x_1", tokenIdent, 0, 0}},
		{"call", "max(1, 2)", true, tok{"max", tokenCall, 0, 0}},
		{"callspace", "max (1, 2)", true, tok{"max", tokenCall, 0, 0}},
		{"open", "(x)", true, tok{"(", tokenOpen, 0, 0}},
		{"close", ")", false, tok{")", tokenClose, 0, 0}},
		{"sep", ", y", false, tok{",", tokenSep, 0, 0}},
		{"eof", "   ", false, tok{"", tokenEOF, 3, 0}},
		{"longest", "**2", false, tok{"**", tokenOp, 0, Infix}},
		{"shortest", "* *2", false, tok{"*", tokenOp, 0, Infix}},
		{"pctinfix", "% -2", false, tok{"%", tokenOp, 0, Infix}},
		{"pctinfixname", "%y", false, tok{"%", tokenOp, 0, Infix}},
		{"pctpostfix", "%)", false, tok{"%", tokenOp, 0, Postfix}},
		{"pctpostfixop", "% + 1", false, tok{"%", tokenOp, 0, Postfix}},
		{"pctend", "%", false, tok{"%", tokenOp, 0, Postfix}},
		{"pctdot", "% .5", false, tok{"%", tokenOp, 0, Postfix}},
		{"word", "mod b", false, tok{"mod", tokenOp, 0, Infix}},
		{"wordident", "modb", false, tok{"modb", tokenIdent, 0, 0}},
		{"wordoperand", "modx", true, tok{"modx", tokenIdent, 0, 0}},
		{"postfix", "!", false, tok{"!", tokenOp, 0, Postfix}},
		{"numafter", "2", false, tok{"2", tokenNum, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lex(c.src, testGrammar)
			got, err := l.next(c.operand)
			if err != nil {
				t.Fatalf("couldn't lex %q: %v", c.src, err)
			}
			var fix Fixity
			if got.kind == tokenOp {
				fix = testGrammar.sym(got.sym).fixity
			}
			if g := (tok{got.text, got.kind, got.pos, fix}); g != c.want {
				t.Errorf("wrong token from %q: want %+v, got %+v", c.src, c.want, g)
			}
		})
	}
}

func TestLexSequence(t *testing.T) {
	cases := []struct {
		name string
		src  string
		// modes gives the operand flag for each call to next.
		modes []bool
		want  []tokenKind
	}{
		{"expr", "2*-x", []bool{true, false, true, true, false}, []tokenKind{tokenNum, tokenOp, tokenOp, tokenIdent, tokenEOF}},
		{"call", "f(a,b)", []bool{true, true, false, true, false, false}, []tokenKind{tokenCall, tokenIdent, tokenSep, tokenIdent, tokenClose, tokenEOF}},
		{"paren", "(1)", []bool{true, true, false, false}, []tokenKind{tokenOpen, tokenNum, tokenClose, tokenEOF}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lex(c.src, testGrammar)
			var got []tokenKind
			for _, m := range c.modes {
				tok, err := l.next(m)
				if err != nil {
					t.Fatalf("couldn't lex %q: %v", c.src, err)
				}
				got = append(got, tok.kind)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("wrong tokens from %q: want %v, got %v", c.src, c.want, got)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		operand bool
		err     error
		pos     int
	}{
		{"unknown", "$", true, new(LexError), 0},
		{"unknownop", "#", false, new(LexError), 0},
		{"dots", "1.2.3", true, new(LexError), 3},
		{"notprefix", "*", true, new(OperatorError), 0},
		{"notinfix", "-x", true, nil, 0},
		{"letter", "é$", true, nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lex(c.src, testGrammar)
			_, err := l.next(c.operand)
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("wrong error lexing %q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			if err == nil {
				return
			}
			if p := err.(InputError).Pos(); p != c.pos {
				t.Errorf("wrong position lexing %q: want %d, got %d", c.src, c.pos, p)
			}
		})
	}
}

func TestLexInfixNotPrefix(t *testing.T) {
	g := MustGrammar(
		[]OperatorSpec{
			{Name: "+", Prec: 1, Fixity: Infix, Apply: Dyadic(func(a, b float64) float64 { return a + b })},
			{Name: "~", Prec: 2, Fixity: Prefix, Apply: Monadic(func(a float64) float64 { return -a })},
		},
		nil,
	)
	_, err := lex("~", g).next(false)
	oe, ok := err.(*OperatorError)
	if !ok {
		t.Fatalf("wrong error: want *OperatorError, got %T (%v)", err, err)
	}
	if oe.Fixity != Infix || oe.Operator != "~" {
		t.Errorf("wrong error details: %+v", oe)
	}
}

func TestCol(t *testing.T) {
	cases := []struct {
		src  string
		pos  int
		want int
	}{
		{"", 0, 0},
		{"abc", 3, 3},
		{"äbc", 2, 1},
		{"日本+x", 7, 3},
	}
	for _, c := range cases {
		if got := lex(c.src, defaultGrammar).col(c.pos); got != c.want {
			t.Errorf("col(%q, %d): want %d, got %d", c.src, c.pos, c.want, got)
		}
	}
}
