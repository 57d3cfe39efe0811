package algexpr

import "strconv"

// eval computes the value of the tree rooted at n. Arguments of applications
// are evaluated left to right.
func (n *node) eval(g *Grammar, vars func(string) (float64, bool)) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		v, ok := vars(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeApply:
		s := g.sym(n.sym)
		if len(n.args) != s.arity {
			return 0, &InvariantError{What: s.name + " applied to " + strconv.Itoa(len(n.args)) + " operands"}
		}
		x := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval(g, vars)
			if err != nil {
				return 0, err
			}
			x[i] = v
		}
		return s.fn(x), nil
	case nodeNone:
		return 0, &InvariantError{What: "incomplete node in finished tree"}
	default:
		return 0, &InvariantError{What: "invalid node kind " + n.kind.String()}
	}
}

// NameError is an error from a lookup for a variable that has no binding.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// InvariantError indicates a malformed expression tree. It is never caused by
// user input; receiving one means the parser produced a bad tree.
type InvariantError struct {
	What string
}

func (err *InvariantError) Error() string {
	return "algexpr: broken expression tree: " + err.What
}
