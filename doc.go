// Package algexpr parses, evaluates, and compares algebraic expressions.
//
// Expressions use operators with any mix of prefix, infix, and postfix
// positions, plus function calls with fixed numbers of arguments. The default
// grammar has + - * / and unary minus along with the usual real functions, so
// "2 + 3*max(x, -1)" parses as you'd expect. A Grammar can describe other
// operators and functions.
//
// Parsed expressions are kept in a canonical order in which the operands of
// commutative operators are sorted, so "x+1" and "1+x" compare equal.
// Contains checks whether one expression occurs inside another, including as
// part of a longer chain of an associative and commutative operator: 2+3+4
// contains 4+2.
//
// Variables are bound when evaluating. Evaluating a variable with no value is
// an error rather than defaulting to zero.
package algexpr
