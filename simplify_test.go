package mathematics

import (
	"math"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	cases := []struct {
		name string
		src  string
		dump string
	}{
		{"leaf", "x", "x"},
		{"num", "2", "2"},
		{"const", "pi", "#pi"},
		{"like-terms", "a + a", "(mul a 2)"},
		{"like-factors", "5*a*a^5*4/a", "(mul (pow a 5) 20)"},
		{"zero-factor", "x * 0", "0"},
		{"zero-factor-first", "0 * (x + y)", "0"},
		{"one-factor", "x * 1", "x"},
		{"cancel-terms", "x - x", "0"},
		{"cancel-factors", "x / x", "1"},
		{"cancel-mixed", "x * y / x", "y"},
		{"coefficients", "2*x + 3*x", "(mul x 5)"},
		{"fold-sum", "x + 1 + 2", "(add x 3)"},
		{"fold-all", "1 + 2 * 3", "7"},
		{"fold-div", "1 / 4", "0.25"},
		{"fold-pow", "2^3", "8"},
		{"pow-one", "x^1", "x"},
		{"pow-sum", "x^2 * x^3", "(pow x 5)"},
		{"pow-inv", "x^2 / x^3", "(inv x)"},
		{"neg-one", "a - 2*a", "(neg a)"},
		{"neg-coefficient", "a - 3*a", "(neg (mul a 2))"},
		{"neg-neg", "--x", "x"},
		{"neg-num", "-(2)", "-2"},
		{"inv-inv", "1/(1/x)", "x"},
		{"inv-num", "1/0", "inf"},
		{"inv-prod", "1/(x*y)", "(mul (inv x) (inv y))"},
		{"sorted-terms", "y + x", "(add x y)"},
		{"sorted-factors", "y * x", "(mul x y)"},
		{"sorted-kinds", "x^2 + x + 1", "(add x (pow x 2) 1)"},
		{"neg-sum", "-(a + b) + a", "(neg b)"},
		{"flatten", "(a + b) + (c + a)", "(add (mul a 2) b c)"},
		{"flatten-mul", "(a * b) * (c * a)", "(mul (pow a 2) b c)"},
		{"inside-call", "sin(x + x)", "(sin (mul x 2))"},
		{"inside-log", "log(x * x, 2 + 2)", "(log 4 (pow x 2))"},
		{"inside-pow", "(x + x)^(1 + 1)", "(pow (mul x 2) 2)"},
		{"product-terms", "x*y + y*x", "(mul x y 2)"},
		{"product-coefficient", "2*x*y - x*y", "(mul x y)"},
		{"nan-total", "x + (inf - inf)", "(add x NaN)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			require.NoError(t, err)
			s := Simplify(a)
			require.Equal(t, c.dump, s.Dump(), "simplifying %q:\n%s", c.src, spew.Sdump(s))
		})
	}
}

// simplifySources are expressions exercising every rewrite.
var simplifySources = []string{
	"a + a",
	"5*a*a^5*4/a",
	"x * 0",
	"x * 1",
	"2*x + 3*x - x/2",
	"a - 3*a + b*a - a*b",
	"1/(x*y) * x",
	"1/(2*x) + 1/(x*2)",
	"(x*y)^-1 * y",
	"-(-(a + b)) - -(c)",
	"x^2 * x^-2 + sqrt(x*x)",
	"(a + b) * (a + b) / (b + a)",
	"log(x, 2) + log(x, 2) * 3",
	"sin(x)^2 + cos(x)^2 + sin(x)^2",
	"(1 + x)^2 * (x + 1)^-2",
	"e^x * e^x / pi",
	"-(a*2) + -(2*a)",
	"((x))^1^1 - abs(-x) * -1",
	"1/(1/(1/x))",
	"x*(-1) + x",
	"2^x * 2^x * 2",
	"inf * x - inf * x",
}

func TestSimplifyIdempotent(t *testing.T) {
	for _, src := range simplifySources {
		t.Run(src, func(t *testing.T) {
			a, err := ParseString(src)
			require.NoError(t, err)
			s := Simplify(a)
			ss := Simplify(s)
			require.True(t, s.Equal(ss), "not idempotent:\n\tonce  %s\n\ttwice %s", s.Dump(), ss.Dump())
		})
	}
}

func TestSimplifyPreservesValue(t *testing.T) {
	bindings := []map[string]float64{
		{"a": 3, "b": -2, "c": 0.5, "x": 1.5, "y": 7},
		{"a": -1, "b": 4, "c": 10, "x": 0.25, "y": -3},
		{"a": 2.5, "b": 2.5, "c": -6, "x": 3, "y": 0.125},
	}
	for _, src := range simplifySources {
		t.Run(src, func(t *testing.T) {
			a, err := ParseString(src)
			require.NoError(t, err)
			s := Simplify(a)
			for _, vars := range bindings {
				want, err := a.Solve(vars)
				require.NoError(t, err)
				got, err := s.Solve(vars)
				require.NoError(t, err)
				if math.IsNaN(want) {
					require.True(t, math.IsNaN(got), "%q = NaN but simplified %q = %v", src, s, got)
					continue
				}
				require.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "%q simplified to %q with %v", src, s, vars)
			}
		})
	}
}

func TestSimplifyReparses(t *testing.T) {
	for _, src := range simplifySources {
		t.Run(src, func(t *testing.T) {
			a, err := ParseString(src)
			require.NoError(t, err)
			s := Simplify(a)
			b, err := ParseString(s.String())
			require.NoError(t, err, "simplified %q formats to %q", src, s.String())
			require.True(t, s.Equal(Simplify(b)), "%q formats to %q which simplifies to %s instead of %s", src, s, Simplify(b).Dump(), s.Dump())
		})
	}
}

func TestSimplifyDoesNotModify(t *testing.T) {
	a, err := ParseString("x + x * 2 - (y * y) / y")
	require.NoError(t, err)
	before := a.Clone()
	Simplify(a)
	require.True(t, a.Equal(before), "input changed to %s", a.Dump())
}

func TestSplitCoefficient(t *testing.T) {
	x, y := Var("x"), Var("y")
	cases := []struct {
		name string
		e    *Expr
		c    float64
		key  *Expr
	}{
		{"plain", x, 1, x},
		{"neg", Neg(x), -1, x},
		{"negneg", Neg(Neg(x)), 1, x},
		{"mul", Multiply(x, Num(3)), 3, x},
		{"mul-first", Multiply(Num(3), x, y), 3, Multiply(x, y)},
		{"neg-mul", Neg(Multiply(x, Num(3))), -3, x},
		{"two-nums", Multiply(Num(2), x, Num(3)), 1, Multiply(Num(2), x, Num(3))},
		{"no-num", Multiply(x, y), 1, Multiply(x, y)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			coef, key := splitCoefficient(c.e)
			require.Equal(t, c.c, coef)
			require.True(t, key.Equal(c.key), "want key %s, got %s", c.key.Dump(), key.Dump())
		})
	}
}

func TestCompareTotal(t *testing.T) {
	exprs := []*Expr{
		Var("a"), Var("b"), Const(Pi), Const(E), Num(1), Num(2), Num(math.NaN()),
		Num(0), Num(math.Copysign(0, -1)), Pow(Var("a"), Num(2)), Multiply(Var("a"), Var("b")),
		Multiply(Var("a"), Var("b"), Var("c")), Sin(Var("a")), Cos(Var("a")), Inv(Var("a")),
	}
	for _, a := range exprs {
		for _, b := range exprs {
			c, d := compare(a, b), compare(b, a)
			require.Equal(t, a.Equal(b), c == 0, "compare(%s, %s) = %d", a.Dump(), b.Dump(), c)
			require.True(t, (c < 0) == (d > 0), "compare not antisymmetric for %s and %s", a.Dump(), b.Dump())
		}
	}
}

func TestSimplifyDeepChain(t *testing.T) {
	// The deepest chains the parser accepts simplify and evaluate.
	for _, op := range []string{"^", "+", "*", "-", "/"} {
		t.Run(op, func(t *testing.T) {
			src := strings.Repeat("x"+op, DefaultMaxDepth/2) + "x"
			a, err := ParseString(src)
			require.NoError(t, err)
			require.LessOrEqual(t, a.Height(), DefaultMaxDepth)
			s := Simplify(a)
			want, err := a.Solve(map[string]float64{"x": 1})
			require.NoError(t, err)
			got, err := s.Solve(map[string]float64{"x": 1})
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)))
		})
	}
	_, err := ParseString(strings.Repeat("x^", 8*DefaultMaxDepth) + "x")
	require.IsType(t, (*DepthError)(nil), err)
}

func TestSimplifyNaNPayload(t *testing.T) {
	odd := math.Float64frombits(math.Float64bits(math.NaN()) ^ 2)
	for _, e := range []*Expr{Num(odd), Add(Var("x"), Num(odd)), Sin(Num(odd))} {
		s := Simplify(e)
		b, err := ParseString(s.String())
		require.NoError(t, err)
		require.True(t, s.Equal(b), "%s formats as %q which parses to %s", s.Dump(), s, b.Dump())
	}
}
