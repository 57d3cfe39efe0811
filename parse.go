package algexpr

import "strconv"

// Expr    = Operand { infix Operand | postfix }
// Operand = num | name | prefix Operand | '(' Expr ')' | Call
// Call    = funcname '(' Expr { ',' Expr } ')'
//
// Infix and postfix operators group by precedence, left to right among equal
// precedences. A prefix operator applies to exactly the operand after it.

// Parse parses an expression using the given options, applied in order. The
// resulting tree is in canonical order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := parsectx{
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.g == nil {
		p.g = defaultGrammar
	}
	ps := parser{lex: lex(src, p.g), ctx: &p, g: p.g}
	n, end, err := ps.parseterm(scopeTop, lexToken{})
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &EmptyExpressionError{Src: src, Offset: ps.col(end.pos)}
	}
	n.sort(p.g)
	ex := Expr{
		g:     p.g,
		n:     n,
		names: make([]string, 0, len(p.names)),
		vars:  make(map[string]float64, len(p.binds)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	for k, v := range p.binds {
		ex.vars[k] = v
	}
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

type scopeKind int8

const (
	scopeTop scopeKind = iota
	scopeParen
	scopeCall
)

type parser struct {
	lex *lexer
	ctx *parsectx
	g   *Grammar
}

func (p *parser) col(pos int) int {
	return p.lex.col(pos)
}

// scope is a subexpression under construction. spine holds the applications
// still waiting for operators of lower precedence, from the scope's root
// downward; each is the last operand of the one before it. The hole is the
// last operand of the top of the spine, or the root if the spine is empty.
type scope struct {
	root   *node
	spine  []*node
	filled bool
	// last is the most recent infix or postfix operator.
	last lexToken
}

// slot returns the location of the hole.
func (s *scope) slot() **node {
	if len(s.spine) == 0 {
		return &s.root
	}
	top := s.spine[len(s.spine)-1]
	return &top.args[len(top.args)-1]
}

func (s *scope) fill(n *node) {
	*s.slot() = n
	s.filled = true
}

// splice applies the infix or postfix operator k to the value in the hole,
// after closing every application on the spine that binds at least as
// tightly. An infix application opens a new hole for its right operand.
func (s *scope) splice(g *Grammar, k int) {
	op := g.sym(k)
	operand := *s.slot()
	for len(s.spine) > 0 {
		top := s.spine[len(s.spine)-1]
		if g.sym(top.sym).prec < op.prec {
			break
		}
		operand = top
		s.spine = s.spine[:len(s.spine)-1]
	}
	n := apply(k, operand)
	*s.slot() = n
	if op.fixity == Infix {
		n.args = append(n.args, hole())
		s.spine = append(s.spine, n)
		s.filled = false
	}
}

// parseterm parses a subexpression up to the token that ends it, which is
// returned along with the subexpression. If the subexpression is empty, the
// result is nil with no error; callers must create an error in contexts where
// empty subexpressions are illegal. open is the token that opened the scope.
func (p *parser) parseterm(kind scopeKind, open lexToken) (*node, lexToken, error) {
	s := scope{root: hole()}
	for {
		tok, err := p.lex.next(!s.filled)
		if err != nil {
			return nil, tok, err
		}
		switch tok.kind {
		case tokenNum, tokenIdent, tokenCall, tokenOpen:
			if s.filled {
				return nil, tok, &AdjacentError{Src: p.lex.src, Offset: p.col(tok.pos)}
			}
			n, err := p.parseoperand(tok)
			if err != nil {
				return nil, tok, err
			}
			s.fill(n)
		case tokenOp:
			if p.g.sym(tok.sym).fixity == Prefix {
				n, err := p.parseoperand(tok)
				if err != nil {
					return nil, tok, err
				}
				s.fill(n)
				continue
			}
			s.last = tok
			s.splice(p.g, tok.sym)
		case tokenEOF, tokenClose, tokenSep:
			if err := p.checkend(kind, open, tok); err != nil {
				return nil, tok, err
			}
			if !s.filled {
				if len(s.spine) == 0 {
					return nil, tok, nil
				}
				return nil, tok, &MissingOperandError{Src: p.lex.src, Offset: p.col(s.last.pos), Operator: s.last.text, Fixity: Infix}
			}
			return s.root, tok, nil
		default:
			panic("algexpr: unknown token: " + tok.String())
		}
	}
}

// checkend checks that tok may end a scope of the given kind.
func (p *parser) checkend(kind scopeKind, open, tok lexToken) error {
	switch kind {
	case scopeTop:
		switch tok.kind {
		case tokenClose:
			return &BracketError{Src: p.lex.src, Offset: p.col(tok.pos), Right: tok.text}
		case tokenSep:
			return &SeparatorError{Src: p.lex.src, Offset: p.col(tok.pos)}
		}
	case scopeParen:
		switch tok.kind {
		case tokenEOF:
			return &BracketError{Src: p.lex.src, Offset: p.col(open.pos), Left: "("}
		case tokenSep:
			return &SeparatorError{Src: p.lex.src, Offset: p.col(tok.pos)}
		}
	case scopeCall:
		if tok.kind == tokenEOF {
			return &BracketError{Src: p.lex.src, Offset: p.col(open.pos), Left: open.text + "("}
		}
	}
	return nil
}

// parseoperand parses the operand that begins with tok. A prefix operator
// takes the single operand after it.
func (p *parser) parseoperand(tok lexToken) (*node, error) {
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &LexError{Src: p.lex.src, Offset: p.col(tok.pos), Text: tok.text, Kind: "number"}
		}
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		p.ctx.names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenCall:
		return p.parsecall(tok)
	case tokenOpen:
		return p.parseparen(tok)
	case tokenOp:
		next, err := p.lex.next(true)
		if err != nil {
			return nil, err
		}
		switch next.kind {
		case tokenNum, tokenIdent, tokenCall, tokenOpen, tokenOp:
			x, err := p.parseoperand(next)
			if err != nil {
				return nil, err
			}
			return apply(tok.sym, x), nil
		}
		return nil, &MissingOperandError{Src: p.lex.src, Offset: p.col(tok.pos), Operator: tok.text, Fixity: Prefix}
	default:
		panic("algexpr: not an operand: " + tok.String())
	}
}

// parseparen parses a parenthesized subexpression after its open token.
func (p *parser) parseparen(open lexToken) (*node, error) {
	n, end, err := p.parseterm(scopeParen, open)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &EmptyExpressionError{Src: p.lex.src, Offset: p.col(end.pos), End: end.text}
	}
	return n, nil
}

// parsecall parses the arguments of a call after the function name and its
// open parenthesis.
func (p *parser) parsecall(head lexToken) (*node, error) {
	k := p.g.function(head.text)
	if k < 0 {
		return nil, &CallError{Src: p.lex.src, Offset: p.col(head.pos), Func: head.text}
	}
	arity := p.g.sym(k).arity
	args := make([]*node, 0, arity)
	for {
		n, end, err := p.parseterm(scopeCall, head)
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenSep:
			if n == nil {
				return nil, &EmptyExpressionError{Src: p.lex.src, Offset: p.col(end.pos), End: end.text}
			}
			args = append(args, n)
			if len(args) >= arity {
				return nil, &SeparatorError{Src: p.lex.src, Offset: p.col(end.pos), Func: head.text}
			}
		case tokenClose:
			if n != nil {
				args = append(args, n)
			} else if len(args) > 0 {
				// f(a,)
				return nil, &EmptyExpressionError{Src: p.lex.src, Offset: p.col(end.pos), End: end.text}
			}
			if len(args) != arity {
				return nil, &CallError{Src: p.lex.src, Offset: p.col(head.pos), Func: head.text, Len: len(args), Arity: arity}
			}
			return apply(k, args...), nil
		default:
			panic("algexpr: call argument ended on " + end.String())
		}
	}
}
