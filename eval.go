package mathematics

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds variable bindings
// and the error from the most recent evaluation. It is not safe to use a
// Context concurrently.
type Context struct {
	names map[string]float64
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// i.e. a variable has no value, then the result is NaN and ctx.Err returns the
// error.
func (ctx *Context) Eval(e *Expr) float64 {
	r, err := e.eval(ctx.names)
	ctx.err = err
	if err != nil {
		return math.NaN()
	}
	return r
}

// Err returns the error that occurred while evaluating the most recent
// expression with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.names == nil {
		ctx.names = make(map[string]float64)
	}
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is set.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no error.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]float64, len(ctx.names))}
	for name, val := range ctx.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("mathematics: unknown option type")
		}
	}
	return &n
}

// Solve evaluates e with the given variable values. A nil map has no
// variables. Arithmetic follows IEEE-754, so e.g. 1/0 is +Inf and NaN
// propagates; the only error is a *MissingVariableError.
func (e *Expr) Solve(vars map[string]float64) (float64, error) {
	return e.eval(vars)
}

func (e *Expr) eval(vars map[string]float64) (float64, error) {
	switch e.kind {
	case KindNumber:
		return e.num.Float64(), nil
	case KindConstant:
		return e.c.Value(), nil
	case KindVariable:
		v, ok := vars[e.name]
		if !ok {
			return 0, &MissingVariableError{Name: e.name}
		}
		return v, nil
	case KindAdd:
		r := 0.0
		for _, a := range e.args {
			v, err := a.eval(vars)
			if err != nil {
				return 0, err
			}
			r += v
		}
		return r, nil
	case KindMultiply:
		r := 1.0
		for _, a := range e.args {
			v, err := a.eval(vars)
			if err != nil {
				return 0, err
			}
			r *= v
		}
		return r, nil
	case KindPower, KindLog:
		l, err := e.args[0].eval(vars)
		if err != nil {
			return 0, err
		}
		r, err := e.args[1].eval(vars)
		if err != nil {
			return 0, err
		}
		if e.kind == KindPower {
			return math.Pow(l, r), nil
		}
		return logb(l, r), nil
	}
	x, err := e.args[0].eval(vars)
	if err != nil {
		return 0, err
	}
	switch e.kind {
	case KindNegate:
		return -x, nil
	case KindInvert:
		return 1 / x, nil
	}
	f := monadic[e.kind]
	if f == nil {
		panic("mathematics: cannot evaluate " + e.kind.String())
	}
	return f(x), nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return math.NaN(), err
	}
	r := ctx.Eval(a)
	return r, ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// MissingVariableError is an error from a lookup for a variable that has no
// value during evaluation.
type MissingVariableError struct {
	// Name is the name that was missing.
	Name string
}

func (err *MissingVariableError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
