package algexpr

import (
	"strconv"
	"strings"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Src is the source text being parsed.
	Src string
	// Offset is the character offset of the invalid text.
	Offset int
	// Text is the invalid text.
	Text string
	// Kind is the type of token the lexer was scanning, either "number" or
	// the empty string if no token kind had been decided.
	Kind string
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Offset, "unrecognized token "+strconv.Quote(err.Text))
	}
	return errpos(err.Offset, "invalid "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int       { return err.Offset }
func (err *LexError) Source() string { return err.Src }

// OperatorError is an error indicating an operator that cannot be used with
// the fixity the context requires. It implements InputError.
type OperatorError struct {
	Src    string
	Offset int
	// Operator is the operator text.
	Operator string
	// Fixity is the fixity the parser required.
	Fixity Fixity
}

func (err *OperatorError) Error() string {
	return errpos(err.Offset, "expected "+err.Fixity.String()+" operator, not "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int       { return err.Offset }
func (err *OperatorError) Source() string { return err.Src }

// AdjacentError is an error indicating two values with no operator between
// them. It implements InputError.
type AdjacentError struct {
	Src string
	// Offset is the position of the second value.
	Offset int
}

func (err *AdjacentError) Error() string {
	return errpos(err.Offset, "expected operator between two values")
}

func (err *AdjacentError) Pos() int       { return err.Offset }
func (err *AdjacentError) Source() string { return err.Src }

// MissingOperandError is an error indicating an operator without its right
// operand. It implements InputError.
type MissingOperandError struct {
	Src string
	// Offset is the position of the operator.
	Offset int
	// Operator is the operator missing an operand.
	Operator string
	// Fixity is the operator's fixity.
	Fixity Fixity
}

func (err *MissingOperandError) Error() string {
	if err.Fixity == Prefix {
		return errpos(err.Offset, "argument for prefix operator "+strconv.Quote(err.Operator)+" not found")
	}
	return errpos(err.Offset, "right argument for operator "+strconv.Quote(err.Operator)+" not found")
}

func (err *MissingOperandError) Pos() int       { return err.Offset }
func (err *MissingOperandError) Source() string { return err.Src }

// BracketError is an error indicating mismatched parentheses or an
// unfinished function call. It implements InputError.
type BracketError struct {
	Src string
	// Offset is the position of the unmatched bracket, or of the function
	// name for an unfinished call.
	Offset int
	// Left is the opening text, either "(" or a function name followed by
	// "(". It is empty for a close bracket with no open bracket.
	Left string
	// Right is the close bracket, or empty if the input ended first.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Offset, "close bracket "+err.Right+" with no open bracket")
	case err.Left != "(":
		return errpos(err.Offset, "unfinished function call "+err.Left)
	default:
		return errpos(err.Offset, "mismatched parentheses")
	}
}

func (err *BracketError) Pos() int       { return err.Offset }
func (err *BracketError) Source() string { return err.Src }

// SeparatorError is an error indicating an illegal use of the argument
// separator. It implements InputError.
type SeparatorError struct {
	Src string
	// Offset is the position of the separator.
	Offset int
	// Func is the function being called, or empty if the separator is outside
	// any call.
	Func string
}

func (err *SeparatorError) Error() string {
	if err.Func == "" {
		return errpos(err.Offset, "argument separator outside function call")
	}
	return errpos(err.Offset, "excess argument to "+err.Func)
}

func (err *SeparatorError) Pos() int       { return err.Offset }
func (err *SeparatorError) Source() string { return err.Src }

// CallError is an error indicating a call of an undefined function or a call
// with the wrong number of arguments. It implements InputError.
type CallError struct {
	Src string
	// Offset is the position of the function name.
	Offset int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
	// Arity is the number of arguments the function requires, or 0 if the
	// function is undefined.
	Arity int
}

func (err *CallError) Error() string {
	if err.Arity == 0 {
		return errpos(err.Offset, "undefined function "+err.Func)
	}
	return errpos(err.Offset, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments; want "+strconv.Itoa(err.Arity))
}

func (err *CallError) Pos() int       { return err.Offset }
func (err *CallError) Source() string { return err.Src }

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	Src string
	// Offset is the position of the token that ended the subexpression.
	Offset int
	// End is the token that ended the subexpression, or empty at the end of
	// the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Offset == 0 {
			return errpos(err.Offset, "no expression")
		}
		return errpos(err.Offset, "no expression at end")
	}
	return errpos(err.Offset, "unfinished expression before "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int       { return err.Offset }
func (err *EmptyExpressionError) Source() string { return err.Src }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the character offset of the token that caused the error.
	Pos() int
	// Source returns the text that was being parsed.
	Source() string
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*AdjacentError)(nil)
	_ InputError = (*MissingOperandError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// Caret formats an input error as three lines: the error message, the
// source text, and a caret under the offending character. Tabs in the source
// are kept in the marker line so that the caret stays aligned.
func Caret(err InputError) string {
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteByte('\n')
	src := err.Source()
	b.WriteString(src)
	b.WriteByte('\n')
	n := err.Pos()
	for _, r := range src {
		if n <= 0 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n--
	}
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}
