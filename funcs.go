package algexpr

import "math"

// Func is the evaluation rule of an operator or function. x has exactly as
// many elements as the operator or function's arity, in operand order. Func
// may modify the elements of x.
type Func func(x []float64) float64

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return func(x []float64) float64 {
		return f(x[0])
	}
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(f func(a, b float64) float64) Func {
	return func(x []float64) float64 {
		return f(x[0], x[1])
	}
}

// DefaultOperators returns the operators of the default grammar.
func DefaultOperators() []OperatorSpec {
	return []OperatorSpec{
		{Name: "+", Prec: 10, Fixity: Infix, Commutative: true, Associative: true, Apply: Dyadic(func(a, b float64) float64 { return a + b })},
		{Name: "-", Prec: 10, Fixity: Infix, Apply: Dyadic(func(a, b float64) float64 { return a - b })},
		{Name: "*", Prec: 20, Fixity: Infix, Commutative: true, Associative: true, Apply: Dyadic(func(a, b float64) float64 { return a * b })},
		{Name: "/", Prec: 20, Fixity: Infix, Apply: Dyadic(func(a, b float64) float64 { return a / b })},
		{Name: "-", Prec: 40, Fixity: Prefix, Apply: Monadic(func(a float64) float64 { return -a })},
	}
}

// DefaultFunctions returns the functions of the default grammar.
func DefaultFunctions() []FunctionSpec {
	return []FunctionSpec{
		{Name: "abs", Arity: 1, Apply: Monadic(math.Abs)},
		{Name: "ceil", Arity: 1, Apply: Monadic(math.Ceil)},
		{Name: "floor", Arity: 1, Apply: Monadic(math.Floor)},
		{Name: "max", Arity: 2, Apply: Dyadic(math.Max)},
		{Name: "min", Arity: 2, Apply: Dyadic(math.Min)},

		{Name: "sin", Arity: 1, Apply: Monadic(math.Sin)},
		{Name: "cos", Arity: 1, Apply: Monadic(math.Cos)},
		{Name: "tan", Arity: 1, Apply: Monadic(math.Tan)},
		{Name: "ctg", Arity: 1, Apply: Monadic(func(x float64) float64 { return 1 / math.Tan(x) })},
		{Name: "asin", Arity: 1, Apply: Monadic(math.Asin)},
		{Name: "acos", Arity: 1, Apply: Monadic(math.Acos)},
		{Name: "atan", Arity: 1, Apply: Monadic(math.Atan)},
		{Name: "atan2", Arity: 2, Apply: Dyadic(math.Atan2)},

		{Name: "cosh", Arity: 1, Apply: Monadic(math.Cosh)},
		{Name: "sinh", Arity: 1, Apply: Monadic(math.Sinh)},
		{Name: "tanh", Arity: 1, Apply: Monadic(math.Tanh)},
		{Name: "ctgh", Arity: 1, Apply: Monadic(func(x float64) float64 { return 1 / math.Tanh(x) })},
		{Name: "acosh", Arity: 1, Apply: Monadic(math.Acosh)},
		{Name: "asinh", Arity: 1, Apply: Monadic(math.Asinh)},
		{Name: "atanh", Arity: 1, Apply: Monadic(math.Atanh)},
		{Name: "actgh", Arity: 1, Apply: Monadic(func(x float64) float64 { return math.Atanh(1 / x) })},
	}
}

var defaultGrammar = MustGrammar(DefaultOperators(), DefaultFunctions())

// DefaultGrammar returns the grammar used when parsing without WithGrammar.
func DefaultGrammar() *Grammar {
	return defaultGrammar
}
