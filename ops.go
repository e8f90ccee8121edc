package mathematics

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Plus returns e + x. Operands which are sums have their terms spliced into
// the result instead of nesting.
func (e *Expr) Plus(x *Expr) *Expr {
	return Add(splice(nil, KindAdd, e, x)...)
}

// Minus returns e - x as a sum with x negated. If x is a sum, each of its
// terms is negated instead.
func (e *Expr) Minus(x *Expr) *Expr {
	r := splice(nil, KindAdd, e)
	if x.kind == KindAdd {
		for _, t := range x.args {
			r = append(r, Neg(t))
		}
	} else {
		r = append(r, Neg(x))
	}
	return Add(r...)
}

// Times returns e * x. Operands which are products have their factors spliced
// into the result instead of nesting.
func (e *Expr) Times(x *Expr) *Expr {
	return Multiply(splice(nil, KindMultiply, e, x)...)
}

// Over returns e / x as a product with x inverted.
func (e *Expr) Over(x *Expr) *Expr {
	return Multiply(append(splice(nil, KindMultiply, e), Inv(x))...)
}

// Negated returns -e.
func (e *Expr) Negated() *Expr {
	return Neg(e)
}

// splice appends each of xs to r, or its operands if it has kind k.
func splice(r []*Expr, k Kind, xs ...*Expr) []*Expr {
	for _, x := range xs {
		if x.kind == k {
			r = append(r, x.args...)
		} else {
			r = append(r, x)
		}
	}
	return r
}

// Walk calls f on each node of e in pre-order. If f returns false, Walk does
// not visit the node's operands.
func (e *Expr) Walk(f func(*Expr) bool) {
	if !f(e) {
		return
	}
	for _, a := range e.args {
		a.Walk(f)
	}
}

// Vars returns the sorted names of the variables in e.
func (e *Expr) Vars() []string {
	names := make(map[string]struct{})
	e.Walk(func(n *Expr) bool {
		if n.kind == KindVariable {
			names[n.name] = struct{}{}
		}
		return true
	})
	r := maps.Keys(names)
	slices.Sort(r)
	return r
}

// ContainsVariable reports whether the variable name appears in e.
func (e *Expr) ContainsVariable(name string) bool {
	found := false
	e.Walk(func(n *Expr) bool {
		if n.kind == KindVariable && n.name == name {
			found = true
		}
		return !found
	})
	return found
}
