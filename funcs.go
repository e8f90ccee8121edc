package mathematics

import "math"

// globalfuncs maps the default function names to the kinds of nodes their
// calls produce.
var globalfuncs = map[string]Kind{
	"sqrt": KindSqrt,
	"ln":   KindLn,
	"log":  KindLog,
	"abs":  KindAbs,

	"sin": KindSin,
	"cos": KindCos,
	"tan": KindTan,

	"arcsin": KindArcSin,
	"arccos": KindArcCos,
	"arctan": KindArcTan,
	"asin":   KindArcSin,
	"acos":   KindArcCos,
	"atan":   KindArcTan,
}

// globalconsts maps the default constant names to their constants.
var globalconsts = map[string]Constant{
	"pi": Pi,
	"π":  Pi,
	"e":  E,
}

// Reserved reports whether name is one of the default function or constant
// names. Unless parsing with DisableDefaultFuncs, a reserved name never parses
// as a variable that a Context can define.
func Reserved(name string) bool {
	if _, ok := globalfuncs[name]; ok {
		return true
	}
	_, ok := globalconsts[name]
	return ok
}

// inverses maps trig kinds to the kinds named by the f^-1(x) spelling.
var inverses = map[Kind]Kind{
	KindSin: KindArcSin,
	KindCos: KindArcCos,
	KindTan: KindArcTan,
}

// monadic holds the float64 implementations of the unary function kinds.
var monadic = map[Kind]func(float64) float64{
	KindSqrt:   math.Sqrt,
	KindLn:     math.Log,
	KindAbs:    math.Abs,
	KindSin:    math.Sin,
	KindCos:    math.Cos,
	KindTan:    math.Tan,
	KindArcSin: math.Asin,
	KindArcCos: math.Acos,
	KindArcTan: math.Atan,
}

// funcnames are the names used to display calls.
var funcnames = map[Kind]string{
	KindSqrt:   "sqrt",
	KindLn:     "ln",
	KindLog:    "log",
	KindAbs:    "abs",
	KindSin:    "sin",
	KindCos:    "cos",
	KindTan:    "tan",
	KindArcSin: "arcsin",
	KindArcCos: "arccos",
	KindArcTan: "arctan",
}

// canCall returns whether a call to a function of kind k can have n arguments.
// log takes an optional base after its argument.
func canCall(k Kind, n int) bool {
	if k == KindLog {
		return n == 1 || n == 2
	}
	return n == 1
}

// logb computes the logarithm of x in base b.
func logb(b, x float64) float64 {
	return math.Log(x) / math.Log(b)
}
