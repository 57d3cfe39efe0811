package algexpr_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/zephyrtronium/algexpr"
)

func ExampleParse() {
	e, err := algexpr.Parse("2 + 3*x")
	if err != nil {
		panic(err)
	}
	v, err := e.Eval(map[string]float64{"x": 4})
	fmt.Println(v, err)
	fmt.Println(e)
	fmt.Println(e.Tree())

	// Output:
	// 14 <nil>
	// ((x * 3) + 2)
	// (+ (* x 3) 2)
}

func ExampleCaret() {
	_, err := algexpr.Parse("max(1, 2, 3)")
	var ie algexpr.InputError
	if errors.As(err, &ie) {
		fmt.Println(algexpr.Caret(ie))
	}

	// Output:
	// 8: excess argument to max
	// max(1, 2, 3)
	//         ^
}

func ExampleExpr_Contains() {
	a, _ := algexpr.Parse("2+3+4")
	b, _ := algexpr.Parse("4+2")
	c, _ := algexpr.Parse("5-2-3")
	d, _ := algexpr.Parse("2-3")
	fmt.Println(a.Contains(b))
	fmt.Println(c.Contains(d))

	// Output:
	// true
	// false
}

func ExampleExpr_Equal() {
	a, _ := algexpr.Parse("x*(1+y)")
	b, _ := algexpr.Parse("(y+1)*x")
	fmt.Println(a.Equal(b))

	// Output:
	// true
}

func ExampleCombine() {
	a, _ := algexpr.Parse("x+1", algexpr.Bind("x", 2))
	b, _ := algexpr.Parse("y", algexpr.Bind("y", 5))
	c, err := algexpr.Combine(a, "*", b)
	if err != nil {
		panic(err)
	}
	v, _ := c.Eval(nil)
	fmt.Println(c, c.Vars(), v)

	// Output:
	// ((x + 1) * y) [x y] 15
}

func ExampleNewGrammar() {
	ops := append(algexpr.DefaultOperators(),
		algexpr.OperatorSpec{Name: "^", Prec: 30, Fixity: algexpr.Infix, Apply: algexpr.Dyadic(math.Pow)},
		algexpr.OperatorSpec{Name: "%", Prec: 50, Fixity: algexpr.Postfix, Apply: algexpr.Monadic(func(x float64) float64 { return x / 100 })},
	)
	g, err := algexpr.NewGrammar(ops, algexpr.DefaultFunctions())
	if err != nil {
		panic(err)
	}
	e, err := algexpr.Parse("2^10 * 50%", algexpr.WithGrammar(g))
	if err != nil {
		panic(err)
	}
	v, _ := e.Eval(nil)
	fmt.Println(e.Tree(), v)

	// Output:
	// (* (% 50) (^ 2 10)) 512
}
