package mathematics

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		k    Kind
	}
	funcsopt map[string]Kind
	eofopt   struct {
		c  bool
		ws string
	}
	depthopt  int
	nodefopts struct{}
)

// DefaultMaxDepth is the nesting limit used when parsing without MaxDepth.
const DefaultMaxDepth = 256

// parsectx holds general data for parsing.
type parsectx struct {
	// funcs is the set of function names that trigger special parsing for ids,
	// overriding the defaults. A kind of KindNone disables a name.
	funcs map[string]Kind
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// ceof indicates whether commas are allowed at the end of an expression.
	ceof bool
	// nodefaults indicates that the default functions and constants are
	// disabled.
	nodefaults bool
	// maxdepth is the nesting limit and depth is the current nesting.
	maxdepth, depth int
}

func newparsectx(opts []ParseOption) parsectx {
	p := parsectx{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return p
}

// fn returns the function kind for a name, or KindNone if the name is not a
// function.
func (p *parsectx) fn(name string) Kind {
	if k, ok := p.funcs[name]; ok {
		return k
	}
	if p.nodefaults {
		return KindNone
	}
	return globalfuncs[name]
}

// constant returns the constant for a name.
func (p *parsectx) constant(name string) (Constant, bool) {
	if p.nodefaults {
		return 0, false
	}
	c, ok := globalconsts[name]
	return c, ok
}

// ParseFunc sets the kind of node that calls to name produce. k must be
// KindLog, a unary kind, or KindNone to parse name as a variable.
func ParseFunc(name string, k Kind) ParseOption {
	checkFuncKind(k)
	return &funcopt{name, k}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	m := make(map[string]Kind, len(p.funcs)+1)
	for k, v := range p.funcs {
		m[k] = v
	}
	m[o.name] = o.k
	p.funcs = m
	return p
}

// ParseFuncs sets a group of functions for parsing, as by ParseFunc for each.
func ParseFuncs(fns map[string]Kind) ParseOption {
	o := make(funcsopt, len(fns))
	for name, k := range fns {
		checkFuncKind(k)
		o[name] = k
	}
	return o
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	// Always make a copy.
	m := make(map[string]Kind, len(p.funcs)+len(o))
	for k, v := range p.funcs {
		m[k] = v
	}
	for k, v := range o {
		m[k] = v
	}
	p.funcs = m
	return p
}

func checkFuncKind(k Kind) {
	if k != KindNone && k != KindLog && !k.Unary() {
		panic("mathematics: " + k.String() + " cannot be a function")
	}
}

// DisableDefaultFuncs disables all default functions and constants during
// parsing. Their names will be parsed as variables instead. Functions set by
// ParseFunc or ParseFuncs still apply.
func DisableDefaultFuncs() ParseOption {
	return nodefopts{}
}

func (nodefopts) parseOption(p parsectx) parsectx {
	p.nodefaults = true
	return p
}

// MaxDepth sets the limit on how deeply an expression may nest. Both the
// nesting of brackets and unary operators in the source and the height of the
// parsed tree count, so a chain like x^x^x has depth 2. Parsing an expression
// that exceeds the limit fails with a *DepthError. Panics if n < 1.
func MaxDepth(n int) ParseOption {
	if n < 1 {
		panic("mathematics: max depth must be positive, got " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a comma or whitespace codepoint. Whitespace
// does not end an expression where a term is expected, e.g. at the beginning
// of an expression or following an operator or bracket. Commas do not end
// expressions inside bracketed function argument lists.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var o eofopt
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		switch {
		case r == ',':
			o.c = true
		case unicode.IsSpace(r):
			if have(r) {
				continue
			}
			v = append(v, r)
		default:
			panic("mathematics: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	o.ws = string(v)
	return &o
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.ceof = o.c
	p.wseof = o.ws
	return p
}
