package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/muesli/termenv"

	"github.com/zephyrtronium/algexpr"
)

// session evaluates lines of input against a persistent set of variables.
//
// A line is one of:
//
//	name = expr   evaluate expr and bind the result to name
//	:eq A ; B     whether A and B are equal up to commutative reordering
//	:sub A ; B    whether B occurs within A
//	:tree A       the prefix form of A
//	:vars         list variables
//	:quit         stop reading input
//	expr          evaluate expr
type session struct {
	out   io.Writer
	errs  io.Writer
	vars  map[string]float64
	verb  string
	echo  bool
	color termenv.Profile
}

// errQuit is returned by line for :quit. It is not reported.
var errQuit = errors.New("quit")

// line handles one line of input. Any error other than errQuit is reported
// to s.errs before it is returned.
func (s *session) line(src string) error {
	err := s.exec(strings.TrimSpace(src))
	if err != nil && err != errQuit {
		s.report(err)
	}
	return err
}

func (s *session) exec(src string) error {
	if src == "" {
		return nil
	}
	if src[0] == ':' {
		cmd, rest, _ := strings.Cut(src, " ")
		rest = strings.TrimSpace(rest)
		switch cmd {
		case ":vars":
			s.listvars()
			return nil
		case ":quit":
			return errQuit
		case ":tree":
			e, err := s.parse(rest)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, e.Tree())
			return nil
		case ":eq", ":sub":
			a, b, ok := strings.Cut(rest, ";")
			if !ok {
				return errors.New("usage: " + cmd + " A ; B")
			}
			x, err := s.parse(strings.TrimSpace(a))
			if err != nil {
				return err
			}
			y, err := s.parse(strings.TrimSpace(b))
			if err != nil {
				return err
			}
			if cmd == ":eq" {
				fmt.Fprintln(s.out, x.Equal(y))
			} else {
				fmt.Fprintln(s.out, x.Contains(y))
			}
			return nil
		default:
			return errors.New("unknown command " + cmd)
		}
	}
	if name, rhs, ok := strings.Cut(src, "="); ok && isName(strings.TrimSpace(name)) {
		name = strings.TrimSpace(name)
		v, err := s.eval(strings.TrimSpace(rhs))
		if err != nil {
			return err
		}
		s.vars[name] = v
		fmt.Fprintf(s.out, "%s = "+s.verb+"\n", name, v)
		return nil
	}
	v, err := s.eval(src)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, s.verb+"\n", v)
	return nil
}

func (s *session) parse(src string) (*algexpr.Expr, error) {
	return algexpr.Parse(src, algexpr.BindAll(s.vars))
}

func (s *session) eval(src string) (float64, error) {
	e, err := s.parse(src)
	if err != nil {
		return 0, err
	}
	if s.echo {
		fmt.Fprintf(s.out, "%v : ", e)
	}
	return e.Eval(nil)
}

func (s *session) listvars() {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(s.out, "%s = "+s.verb+"\n", k, s.vars[k])
	}
}

// report writes an error, with a caret under the offending text for input
// errors.
func (s *session) report(err error) {
	red := s.color.Color("1")
	var ie algexpr.InputError
	if !errors.As(err, &ie) {
		fmt.Fprintln(s.errs, s.color.String(err.Error()).Foreground(red))
		return
	}
	lines := strings.Split(algexpr.Caret(ie), "\n")
	marker := lines[len(lines)-1]
	fmt.Fprintln(s.errs, s.color.String(lines[0]).Foreground(red))
	for _, l := range lines[1 : len(lines)-1] {
		fmt.Fprintln(s.errs, l)
	}
	fmt.Fprintln(s.errs, s.color.String(marker).Foreground(red).Bold())
}

// isName returns whether s can be used as a variable name.
func isName(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
