package mathematics

import "strings"

// String formats e as infix text that parses back to an equivalent
// expression. Sums and products write their operands in order, with negated
// terms after the first written as subtractions and inverted factors after the
// first written as divisions.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case KindNumber:
		b.WriteString(e.num.String())
	case KindConstant:
		b.WriteString(e.c.String())
	case KindVariable:
		b.WriteString(e.name)
	case KindAdd:
		if len(e.args) == 0 {
			b.WriteString("0")
			return
		}
		for i, a := range e.args {
			switch {
			case i == 0:
				a.fmt(b)
			case a.kind == KindNegate:
				b.WriteString(" - ")
				a.args[0].wrap(b, a.args[0].kind == KindAdd)
			case a.negative():
				b.WriteString(" - ")
				b.WriteString((-a.num).String())
			default:
				b.WriteString(" + ")
				a.wrap(b, a.kind == KindAdd)
			}
		}
	case KindMultiply:
		if len(e.args) == 0 {
			b.WriteString("0")
			return
		}
		for i, a := range e.args {
			switch {
			case a.kind == KindInvert:
				if i == 0 {
					b.WriteString("1")
				}
				b.WriteString(" / ")
				x := a.args[0]
				x.wrap(b, x.kind == KindAdd || x.kind == KindMultiply || x.kind == KindInvert)
			case i == 0:
				a.wrap(b, a.kind == KindAdd)
			default:
				b.WriteString(" * ")
				a.wrap(b, a.kind == KindAdd || a.kind == KindMultiply)
			}
		}
	case KindPower:
		base, exp := e.args[0], e.args[1]
		base.wrap(b, base.grouped())
		b.WriteByte('^')
		exp.wrap(b, exp.grouped() || exp.kind == KindPower)
	case KindLog:
		b.WriteString("log(")
		e.args[1].fmt(b)
		b.WriteString(", ")
		e.args[0].fmt(b)
		b.WriteByte(')')
	case KindNegate:
		x := e.args[0]
		b.WriteByte('-')
		x.wrap(b, !x.kind.Leaf() || x.negative())
	case KindInvert:
		x := e.args[0]
		b.WriteString("1 / ")
		x.wrap(b, x.kind == KindAdd || x.kind == KindMultiply || x.kind == KindInvert)
	default:
		name, ok := funcnames[e.kind]
		if !ok {
			panic("mathematics: cannot format " + e.kind.String())
		}
		b.WriteString(name)
		b.WriteByte('(')
		e.args[0].fmt(b)
		b.WriteByte(')')
	}
}

// wrap formats e, in parentheses if paren is true.
func (e *Expr) wrap(b *strings.Builder, paren bool) {
	if !paren {
		e.fmt(b)
		return
	}
	b.WriteByte('(')
	e.fmt(b)
	b.WriteByte(')')
}

// negative reports whether e is a number leaf less than zero.
func (e *Expr) negative() bool {
	return e.kind == KindNumber && e.num < 0
}

// grouped reports whether e needs parentheses as an operand of a power.
func (e *Expr) grouped() bool {
	switch e.kind {
	case KindAdd, KindMultiply, KindNegate, KindInvert:
		return true
	}
	return e.negative()
}

// Dump formats the structure of e as an S-expression, e.g. (add 1 (neg x)).
// Constants are written with a leading #.
func (e *Expr) Dump() string {
	var b strings.Builder
	e.dump(&b)
	return b.String()
}

func (e *Expr) dump(b *strings.Builder) {
	switch e.kind {
	case KindNumber:
		b.WriteString(e.num.String())
		return
	case KindConstant:
		b.WriteByte('#')
		b.WriteString(e.c.String())
		return
	case KindVariable:
		b.WriteString(e.name)
		return
	}
	b.WriteByte('(')
	b.WriteString(dumpnames[e.kind])
	for _, a := range e.args {
		b.WriteByte(' ')
		a.dump(b)
	}
	b.WriteByte(')')
}

var dumpnames = [...]string{
	KindNone:     "none",
	KindAdd:      "add",
	KindMultiply: "mul",
	KindPower:    "pow",
	KindLog:      "log",
	KindNegate:   "neg",
	KindInvert:   "inv",
	KindSqrt:     "sqrt",
	KindLn:       "ln",
	KindAbs:      "abs",
	KindSin:      "sin",
	KindCos:      "cos",
	KindTan:      "tan",
	KindArcSin:   "arcsin",
	KindArcCos:   "arccos",
	KindArcTan:   "arctan",
}
