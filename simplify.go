package mathematics

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// maxPasses bounds the number of times Simplify rewrites a tree.
const maxPasses = 8

// Simplify returns an expression equivalent to e in a canonical form. Sums
// and products are flattened, like terms and like factors are collected with
// their coefficients and exponents, numbers are folded together, and double
// negations and inversions cancel. The terms of the result are sorted, with
// any number last. Simplify never fails, and simplifying its result again
// gives a structurally equal tree.
func Simplify(e *Expr) *Expr {
	cur := simplify(e)
	for i := 1; i < maxPasses; i++ {
		next := simplify(cur)
		if next.Equal(cur) {
			break
		}
		cur = next
	}
	return cur
}

// Simplify is a shortcut for Simplify(e).
func (e *Expr) Simplify() *Expr {
	return Simplify(e)
}

func simplify(e *Expr) *Expr {
	switch e.kind {
	case KindNumber:
		if math.IsNaN(e.num.Float64()) {
			return number(e.num.Float64())
		}
		return e
	case KindConstant, KindVariable:
		return e
	case KindAdd:
		return collectAdd(simplifyArgs(e.args))
	case KindMultiply:
		return collectMultiply(simplifyArgs(e.args))
	case KindNegate:
		return simplifyNegate(simplify(e.args[0]))
	case KindInvert:
		return simplifyInvert(simplify(e.args[0]))
	case KindPower:
		return simplifyPower(simplify(e.args[0]), simplify(e.args[1]))
	default:
		return e.with(simplifyArgs(e.args))
	}
}

func simplifyArgs(args []*Expr) []*Expr {
	r := make([]*Expr, len(args))
	for i, a := range args {
		r[i] = simplify(a)
	}
	return r
}

// collectAdd builds the canonical sum of simplified terms.
func collectAdd(args []*Expr) *Expr {
	flat := make([]*Expr, 0, len(args))
	for _, a := range args {
		flat = flattenAdd(flat, a)
	}
	m := newTermmap(len(flat))
	total := 0.0
	for _, a := range flat {
		if a.kind == KindNumber {
			total += a.num.Float64()
			continue
		}
		c, key := splitCoefficient(a)
		if key.kind == KindNumber {
			total += c * key.num.Float64()
			continue
		}
		m.add(key, c)
	}
	r := make([]*Expr, 0, m.len()+1)
	for _, i := range m.sorted() {
		key, c := m.keys[i], m.vals[i]
		switch {
		case c == 1:
			r = append(r, key)
		case c == 0:
			// Cancelled.
		case c == -1:
			r = append(r, Neg(key))
		case c < 0:
			r = append(r, Neg(collectMultiply([]*Expr{key, number(-c)})))
		default:
			r = append(r, collectMultiply([]*Expr{key, number(c)}))
		}
	}
	if total != 0 {
		r = append(r, number(total))
	}
	switch len(r) {
	case 0:
		return Num(0)
	case 1:
		return r[0]
	default:
		return Add(r...)
	}
}

// flattenAdd appends the terms of a simplified term to r. Nested sums are
// spliced in, and a negated sum contributes each of its terms negated.
func flattenAdd(r []*Expr, a *Expr) []*Expr {
	switch {
	case a.kind == KindAdd:
		return append(r, a.args...)
	case a.kind == KindNegate && a.args[0].kind == KindAdd:
		for _, t := range a.args[0].args {
			r = append(r, simplifyNegate(t))
		}
		return r
	default:
		return append(r, a)
	}
}

// splitCoefficient separates a simplified term into a numeric coefficient and
// the remaining expression.
func splitCoefficient(e *Expr) (float64, *Expr) {
	switch e.kind {
	case KindNegate:
		c, key := splitCoefficient(e.args[0])
		return -c, key
	case KindMultiply:
		k := -1
		for i, a := range e.args {
			if a.kind == KindNumber {
				if k >= 0 {
					// More than one number; leave the product as it is.
					return 1, e
				}
				k = i
			}
		}
		if k < 0 || len(e.args) == 1 {
			return 1, e
		}
		rest := make([]*Expr, 0, len(e.args)-1)
		rest = append(rest, e.args[:k]...)
		rest = append(rest, e.args[k+1:]...)
		c := e.args[k].num.Float64()
		if len(rest) == 1 {
			return c, rest[0]
		}
		return c, Multiply(rest...)
	default:
		return 1, e
	}
}

// collectMultiply builds the canonical product of simplified factors.
func collectMultiply(args []*Expr) *Expr {
	flat := make([]*Expr, 0, len(args))
	for _, a := range args {
		if a.kind == KindMultiply {
			flat = append(flat, a.args...)
		} else {
			flat = append(flat, a)
		}
	}
	m := newTermmap(len(flat))
	prod := 1.0
	for _, a := range flat {
		switch {
		case a.kind == KindNumber:
			if a.num == 0 {
				return Num(0)
			}
			prod *= a.num.Float64()
		case a.kind == KindInvert:
			m.add(a.args[0], -1)
		case a.kind == KindPower && a.args[1].kind == KindNumber:
			m.add(a.args[0], a.args[1].num.Float64())
		default:
			m.add(a, 1)
		}
	}
	r := make([]*Expr, 0, m.len()+1)
	for _, i := range m.sorted() {
		key, x := m.keys[i], m.vals[i]
		switch x {
		case 1:
			r = append(r, key)
		case 0:
			// x^0 = 1
		case -1:
			r = append(r, simplifyInvert(key))
		default:
			r = append(r, Pow(key, number(x)))
		}
	}
	if prod != 1 {
		r = append(r, number(prod))
	}
	switch len(r) {
	case 0:
		return Num(1)
	case 1:
		return r[0]
	default:
		return Multiply(r...)
	}
}

func simplifyNegate(x *Expr) *Expr {
	switch x.kind {
	case KindNumber:
		return number(-x.num.Float64())
	case KindNegate:
		return x.args[0]
	default:
		return Neg(x)
	}
}

func simplifyInvert(x *Expr) *Expr {
	switch x.kind {
	case KindNumber:
		return number(1 / x.num.Float64())
	case KindInvert:
		return x.args[0]
	case KindMultiply:
		inv := make([]*Expr, len(x.args))
		for i, a := range x.args {
			inv[i] = simplifyInvert(a)
		}
		return collectMultiply(inv)
	default:
		return Inv(x)
	}
}

func simplifyPower(base, exp *Expr) *Expr {
	if exp.kind == KindNumber {
		if base.kind == KindNumber {
			return number(math.Pow(base.num.Float64(), exp.num.Float64()))
		}
		if exp.num == 1 {
			return base
		}
	}
	return Pow(base, exp)
}

// sorted returns the indices of the keys of m in canonical order.
func (m *termmap) sorted() []int {
	idx := make([]int, m.len())
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return compare(m.keys[a], m.keys[b]) })
	return idx
}

// kindrank orders kinds for canonical sorting. Variables come first and
// numbers last.
var kindrank = [...]int8{
	KindVariable: 0,
	KindConstant: 1,
	KindPower:    2,
	KindMultiply: 3,
	KindInvert:   4,
	KindNegate:   5,
	KindAdd:      6,
	KindLog:      7,
	KindSqrt:     8,
	KindLn:       9,
	KindAbs:      10,
	KindSin:      11,
	KindCos:      12,
	KindTan:      13,
	KindArcSin:   14,
	KindArcCos:   15,
	KindArcTan:   16,
	KindNumber:   17,
}

// compare is a total order on expressions which is consistent with Equal.
func compare(a, b *Expr) int {
	if a.kind != b.kind {
		return int(kindrank[a.kind]) - int(kindrank[b.kind])
	}
	switch a.kind {
	case KindNumber:
		x, y := a.num.Float64(), b.num.Float64()
		xn, yn := math.IsNaN(x), math.IsNaN(y)
		switch {
		case xn && yn:
			return cmpBits(a.num.Bits(), b.num.Bits())
		case xn:
			return 1
		case yn:
			return -1
		case x < y:
			return -1
		case x > y:
			return 1
		}
		// Equal values differ only in the sign of zero.
		return cmpBits(a.num.Bits(), b.num.Bits())
	case KindConstant:
		return int(a.c) - int(b.c)
	case KindVariable:
		return strings.Compare(a.name, b.name)
	}
	for i := 0; i < len(a.args) && i < len(b.args); i++ {
		if c := compare(a.args[i], b.args[i]); c != 0 {
			return c
		}
	}
	return len(a.args) - len(b.args)
}

func cmpBits(p, q uint64) int {
	switch {
	case p < q:
		return -1
	case p > q:
		return 1
	}
	return 0
}

// number creates a number leaf for a folded value. Every NaN becomes the same
// NaN so that folded results format and parse back to equal trees.
func number(f float64) *Expr {
	if math.IsNaN(f) {
		f = math.NaN()
	}
	return Num(f)
}
