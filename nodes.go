package mathematics

import "math"

// Expr is a node in an expression tree. An Expr is immutable once built: the
// constructors copy their operands into the new node, and every operation that
// transforms a tree returns a new one. The zero Expr is not a valid
// expression.
type Expr struct {
	kind Kind

	num  Number
	c    Constant
	name string

	// args are the operands. Add and Multiply have any number, Power and Log
	// have two (base first), and the remaining non-leaf kinds have one.
	args []*Expr
	// height is the number of edges on the longest path to a leaf.
	height int
}

// Kind identifies the variant of an Expr.
type Kind int8

const (
	KindNone Kind = iota

	KindNumber   // leaf number
	KindConstant // leaf named constant
	KindVariable // leaf variable

	KindAdd      // sum of args
	KindMultiply // product of args
	KindPower    // args[0] ^ args[1]
	KindLog      // log base args[0] of args[1]
	KindNegate   // -args[0]
	KindInvert   // 1 / args[0]

	KindSqrt
	KindLn
	KindAbs
	KindSin
	KindCos
	KindTan
	KindArcSin
	KindArcCos
	KindArcTan
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Unary reports whether k is a kind with exactly one operand.
func (k Kind) Unary() bool {
	return k >= KindNegate && k <= KindArcTan
}

// Leaf reports whether k is a kind with no operands.
func (k Kind) Leaf() bool {
	return k >= KindNumber && k <= KindVariable
}

// Constant is a named mathematical constant.
type Constant int8

const (
	Pi Constant = iota
	E
)

// Value returns the float64 value of the constant.
func (c Constant) Value() float64 {
	switch c {
	case Pi:
		return math.Pi
	case E:
		return math.E
	default:
		panic("mathematics: invalid constant")
	}
}

func (c Constant) String() string {
	switch c {
	case Pi:
		return "pi"
	case E:
		return "e"
	default:
		return "Constant(?)"
	}
}

// Num creates a number leaf.
func Num(v float64) *Expr {
	return &Expr{kind: KindNumber, num: Number(v)}
}

// Const creates a named constant leaf.
func Const(c Constant) *Expr {
	return &Expr{kind: KindConstant, c: c}
}

// Var creates a variable leaf.
func Var(name string) *Expr {
	return &Expr{kind: KindVariable, name: name}
}

// Add creates a sum of the given terms in order. It does not flatten nested
// sums; Simplify does.
func Add(terms ...*Expr) *Expr {
	return nary(KindAdd, terms)
}

// Multiply creates a product of the given factors in order.
func Multiply(factors ...*Expr) *Expr {
	return nary(KindMultiply, factors)
}

// Pow creates base^exp.
func Pow(base, exp *Expr) *Expr {
	return grown(&Expr{kind: KindPower, args: []*Expr{base, exp}})
}

// Log creates the logarithm of x in the given base.
func Log(base, x *Expr) *Expr {
	return grown(&Expr{kind: KindLog, args: []*Expr{base, x}})
}

// Neg creates -x.
func Neg(x *Expr) *Expr { return Apply(KindNegate, x) }

// Inv creates the reciprocal 1/x.
func Inv(x *Expr) *Expr { return Apply(KindInvert, x) }

func Sqrt(x *Expr) *Expr   { return Apply(KindSqrt, x) }
func Ln(x *Expr) *Expr     { return Apply(KindLn, x) }
func Abs(x *Expr) *Expr    { return Apply(KindAbs, x) }
func Sin(x *Expr) *Expr    { return Apply(KindSin, x) }
func Cos(x *Expr) *Expr    { return Apply(KindCos, x) }
func Tan(x *Expr) *Expr    { return Apply(KindTan, x) }
func ArcSin(x *Expr) *Expr { return Apply(KindArcSin, x) }
func ArcCos(x *Expr) *Expr { return Apply(KindArcCos, x) }
func ArcTan(x *Expr) *Expr { return Apply(KindArcTan, x) }

// Apply creates a node of a unary kind around x. Panics if k is not unary.
func Apply(k Kind, x *Expr) *Expr {
	if !k.Unary() {
		panic("mathematics: " + k.String() + " is not a unary kind")
	}
	if x == nil {
		panic("mathematics: nil operand to " + k.String())
	}
	return grown(&Expr{kind: k, args: []*Expr{x}})
}

func nary(k Kind, args []*Expr) *Expr {
	n := &Expr{kind: k, args: make([]*Expr, len(args))}
	for i, a := range args {
		if a == nil {
			panic("mathematics: nil operand to " + k.String())
		}
		n.args[i] = a
	}
	return grown(n)
}

// grown sets the height of a new node from its operands.
func grown(n *Expr) *Expr {
	n.height = 0
	for _, a := range n.args {
		if a.height >= n.height {
			n.height = a.height + 1
		}
	}
	return n
}

// Kind returns the variant of e.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Value returns the value of a number leaf, or 0 for any other kind.
func (e *Expr) Value() Number {
	return e.num
}

// Constant returns the constant of a constant leaf.
func (e *Expr) Constant() Constant {
	return e.c
}

// Name returns the name of a variable leaf, or "" for any other kind.
func (e *Expr) Name() string {
	return e.name
}

// Len returns the number of operands of e.
func (e *Expr) Len() int {
	return len(e.args)
}

// Arg returns the ith operand of e.
func (e *Expr) Arg(i int) *Expr {
	return e.args[i]
}

// Height returns the number of operator levels between e and its deepest
// leaf. Leaves have height 0.
func (e *Expr) Height() int {
	return e.height
}

// Args returns a copy of the operands of e.
func (e *Expr) Args() []*Expr {
	return append(([]*Expr)(nil), e.args...)
}

// Equal reports whether e and f are structurally identical, including the
// order of operands of sums and products. Numbers compare by bit pattern.
func (e *Expr) Equal(f *Expr) bool {
	if e == f {
		return true
	}
	if e == nil || f == nil {
		return false
	}
	if e.kind != f.kind || len(e.args) != len(f.args) {
		return false
	}
	switch e.kind {
	case KindNumber:
		return e.num.Equal(f.num)
	case KindConstant:
		return e.c == f.c
	case KindVariable:
		return e.name == f.name
	}
	for i, a := range e.args {
		if !a.Equal(f.args[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of e. Expressions which are Equal have the
// same hash.
func (e *Expr) Hash() uint64 {
	h := offset64
	h ^= uint64(e.kind)
	h *= prime64
	switch e.kind {
	case KindNumber:
		h ^= e.num.Hash()
		h *= prime64
	case KindConstant:
		h ^= uint64(e.c)
		h *= prime64
	case KindVariable:
		for i := 0; i < len(e.name); i++ {
			h ^= uint64(e.name[i])
			h *= prime64
		}
	}
	for _, a := range e.args {
		h ^= a.Hash()
		h *= prime64
	}
	return h
}

// Clone returns a deep copy of e.
func (e *Expr) Clone() *Expr {
	n := *e
	if e.args != nil {
		n.args = make([]*Expr, len(e.args))
		for i, a := range e.args {
			n.args[i] = a.Clone()
		}
	}
	return &n
}

// with returns a node of the same kind and payload as e with new operands.
func (e *Expr) with(args []*Expr) *Expr {
	n := *e
	n.args = args
	return grown(&n)
}
