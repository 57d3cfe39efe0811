package algexpr

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	grammaropt struct {
		g *Grammar
	}
	bindopt struct {
		name string
		val  float64
	}
	bindsopt map[string]float64
)

// parsectx holds general data for parsing.
type parsectx struct {
	// g is the grammar to parse with.
	g *Grammar
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// binds is the set of initial variable bindings for the expression.
	binds map[string]float64
}

// WithGrammar sets the grammar for parsing. The default is DefaultGrammar().
func WithGrammar(g *Grammar) ParseOption {
	return grammaropt{g}
}

func (o grammaropt) parseOption(p parsectx) parsectx {
	p.g = o.g
	return p
}

// Bind sets the value of a variable in the parsed expression, as if by Set.
func Bind(name string, val float64) ParseOption {
	return bindopt{name, val}
}

func (o bindopt) parseOption(p parsectx) parsectx {
	if p.binds == nil {
		p.binds = make(map[string]float64)
	}
	p.binds[o.name] = o.val
	return p
}

// BindAll sets the values of any number of variables in the parsed
// expression.
func BindAll(vars map[string]float64) ParseOption {
	return bindsopt(vars)
}

func (o bindsopt) parseOption(p parsectx) parsectx {
	if p.binds == nil {
		// Always make a copy.
		p.binds = make(map[string]float64, len(o))
	}
	for k, v := range o {
		p.binds[k] = v
	}
	return p
}
