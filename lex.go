package algexpr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the byte offset of the token in the source.
	pos int
	// sym is the grammar handle of an operator token.
	sym int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal, possibly with a leading minus.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenCall is a function name followed by its open parenthesis. The
	// token text is the function name only.
	tokenCall
	// tokenOp is an operator whose fixity the lexer has resolved.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is a function argument separator.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenCall:
		return "Call"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src string
	pos int
	g   *Grammar
}

func lex(src string, g *Grammar) *lexer {
	return &lexer{src: src, g: g}
}

// col converts a byte offset in the source to a character offset.
func (l *lexer) col(pos int) int {
	return utf8.RuneCountInString(l.src[:pos])
}

// skip advances past whitespace starting at pos and returns the new offset.
func (l *lexer) skip(pos int) int {
	for pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += sz
	}
	return pos
}

// next scans the next token. The classification depends on whether the
// parser expects an operand, in which case operators are prefix and a minus
// sign immediately before a digit begins a number, or an operator, in which
// case operators are infix or postfix. In the latter case, operand tokens are
// still returned so that the parser can report the missing operator.
func (l *lexer) next(operand bool) (lexToken, error) {
	l.pos = l.skip(l.pos)
	tok := lexToken{pos: l.pos, sym: -1}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	rest := l.src[l.pos:]
	r, sz := utf8.DecodeRuneInString(rest)
	if operand {
		if isDigit(r) || r == '-' && len(rest) > 1 && isDigit(rune(rest[1])) {
			return l.scanNum(tok)
		}
		if k := l.g.match(rest, Prefix); k >= 0 {
			return l.op(tok, k), nil
		}
		if l.g.match(rest, Infix) >= 0 || l.g.match(rest, Postfix) >= 0 {
			return tok, &OperatorError{Src: l.src, Offset: l.col(tok.pos), Operator: l.opText(rest), Fixity: Prefix}
		}
	} else {
		in := l.g.match(rest, Infix)
		post := l.g.match(rest, Postfix)
		switch {
		case in >= 0 && post >= 0:
			if l.operandAt(l.pos + len(l.g.sym(in).name)) {
				return l.op(tok, in), nil
			}
			return l.op(tok, post), nil
		case in >= 0:
			return l.op(tok, in), nil
		case post >= 0:
			return l.op(tok, post), nil
		}
		if l.g.match(rest, Prefix) >= 0 {
			return tok, &OperatorError{Src: l.src, Offset: l.col(tok.pos), Operator: l.opText(rest), Fixity: Infix}
		}
		if isDigit(r) {
			return l.scanNum(tok)
		}
	}
	switch {
	case unicode.IsLetter(r):
		end := l.scanIdent(l.pos)
		tok.text = l.src[l.pos:end]
		if p := l.skip(end); p < len(l.src) && l.src[p] == '(' {
			tok.kind = tokenCall
			l.pos = p + 1
			return tok, nil
		}
		tok.kind = tokenIdent
		l.pos = end
		return tok, nil
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
	case r == ')':
		tok.text = ")"
		tok.kind = tokenClose
	case r == ',':
		tok.text = ","
		tok.kind = tokenSep
	default:
		return tok, &LexError{Src: l.src, Offset: l.col(tok.pos), Text: string(r)}
	}
	l.pos += sz
	return tok, nil
}

// op consumes operator k at tok's position.
func (l *lexer) op(tok lexToken, k int) lexToken {
	tok.text = l.g.sym(k).name
	tok.kind = tokenOp
	tok.sym = k
	l.pos += len(tok.text)
	return tok
}

// opText finds the text of the longest operator of any fixity at the start of
// src, for error messages.
func (l *lexer) opText(src string) string {
	var s string
	for f := Prefix; f <= Postfix; f++ {
		if k := l.g.match(src, f); k >= 0 && len(l.g.sym(k).name) > len(s) {
			s = l.g.sym(k).name
		}
	}
	return s
}

// operandAt returns whether an operand begins at or after whitespace from
// pos. This decides between infix and postfix operators with the same name.
// Only text the lexer accepts as an operand counts, so a leading dot does not.
func (l *lexer) operandAt(pos int) bool {
	pos = l.skip(pos)
	if pos >= len(l.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.src[pos:])
	if isDigit(r) || r == '(' || unicode.IsLetter(r) {
		return true
	}
	return l.g.match(l.src[pos:], Prefix) >= 0
}

// scanNum scans a numeric literal beginning at tok's position: an optional
// minus sign, then digits with at most one decimal point.
func (l *lexer) scanNum(tok lexToken) (lexToken, error) {
	p := l.pos
	if l.src[p] == '-' {
		p++
	}
	dot := false
	for p < len(l.src) {
		c := l.src[p]
		if c == '.' {
			if dot {
				return tok, &LexError{Src: l.src, Offset: l.col(p), Text: l.src[l.pos : p+1], Kind: "number"}
			}
			dot = true
		} else if !isDigit(rune(c)) {
			break
		}
		p++
	}
	tok.text = l.src[l.pos:p]
	tok.kind = tokenNum
	l.pos = p
	return tok, nil
}

// scanIdent returns the end of the identifier beginning at pos.
func (l *lexer) scanIdent(pos int) int {
	for pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[pos:])
		if !isIdentRune(r) {
			break
		}
		pos += sz
	}
	return pos
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
