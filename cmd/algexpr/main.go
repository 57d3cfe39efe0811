package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/zephyrtronium/algexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		varsname     string
		color        string
		with         [][2]string
		nl, echo     bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.StringVar(&varsname, "vars", "", "TOML or YAML file of variable definitions")
	flag.StringVar(&color, "color", "auto", "colorize errors: auto, always, or never")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print expressions before their values")
	flag.Parse()

	s := &session{
		out:  os.Stdout,
		errs: os.Stderr,
		vars: make(map[string]float64),
		verb: verb,
		echo: echo,
	}
	if varsname != "" {
		vars, err := loadvars(varsname)
		if err != nil {
			log.Fatal(err)
		}
		for k, v := range vars {
			s.vars[k] = v
		}
	}
	for _, d := range with {
		nm, vl := d[0], d[1]
		if !isName(nm) {
			log.Fatalf("setting %s: invalid variable name", nm)
		}
		e, err := algexpr.Parse(vl, algexpr.BindAll(s.vars))
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		r, err := e.Eval(nil)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		s.vars[nm] = r
	}

	interactive := inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd()))
	p, err := profile(color, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	s.color = p
	if interactive {
		if err := repl(s); err != nil {
			log.Fatal(err)
		}
		return
	}
	if p, err = profile(color, os.Stderr); err != nil {
		log.Fatal(err)
	}
	s.color = p

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		if nl {
			srcs = append(srcs, strings.Split(string(b), "\n")...)
		} else {
			srcs = append(srcs, string(b))
		}
	}
	srcs = append(srcs, flag.Args()...)
	if err := batch(s, srcs); err != nil {
		os.Exit(1)
	}
}

// batch runs each source through the session, stopping at the first error or
// at :quit. Errors are already reported by the session.
func batch(s *session, srcs []string) error {
	for _, src := range srcs {
		switch err := s.line(src); err {
		case nil:
		case errQuit:
			return nil
		default:
			return err
		}
	}
	return nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// profile chooses the color profile for diagnostics written to f.
func profile(mode string, f *os.File) (termenv.Profile, error) {
	switch mode {
	case "auto":
		return termenv.NewOutput(f).Profile, nil
	case "always":
		return termenv.ANSI256, nil
	case "never":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("-color must be auto, always, or never, not %q", mode)
}

// repl runs an interactive session on the terminal attached to stdin.
func repl(s *session) error {
	fd := int(os.Stdin.Fd())
	st, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, st)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "> ")
	s.out, s.errs = t, t
	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		// Other errors are already reported to the terminal.
		if s.line(line) == errQuit {
			return nil
		}
	}
}
