package mathematics_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigfloat"

	"github.com/Nahuel-M/mathematics"
)

const refPrec = 256

// refEval evaluates e in high precision. It reports false for expressions the
// reference cannot compute, which are trig calls and logs or powers outside
// the positive reals.
func refEval(e *mathematics.Expr, vars map[string]float64) (*big.Float, bool) {
	z := new(big.Float).SetPrec(refPrec)
	switch e.Kind() {
	case mathematics.KindNumber:
		f := e.Value().Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
		return z.SetFloat64(f), true
	case mathematics.KindConstant:
		switch e.Constant() {
		case mathematics.Pi:
			return bigfloat.Pi(z), true
		case mathematics.E:
			one := new(big.Float).SetPrec(refPrec).SetInt64(1)
			return bigfloat.Exp(z, one), true
		}
		return nil, false
	case mathematics.KindVariable:
		v, ok := vars[e.Name()]
		if !ok {
			return nil, false
		}
		return z.SetFloat64(v), true
	case mathematics.KindAdd, mathematics.KindMultiply:
		if e.Kind() == mathematics.KindMultiply {
			z.SetInt64(1)
		}
		for i := 0; i < e.Len(); i++ {
			x, ok := refEval(e.Arg(i), vars)
			if !ok {
				return nil, false
			}
			if e.Kind() == mathematics.KindAdd {
				z.Add(z, x)
			} else {
				z.Mul(z, x)
			}
		}
		return z, true
	case mathematics.KindPower, mathematics.KindLog:
		b, ok := refEval(e.Arg(0), vars)
		if !ok || b.Sign() <= 0 {
			return nil, false
		}
		x, ok := refEval(e.Arg(1), vars)
		if !ok {
			return nil, false
		}
		if e.Kind() == mathematics.KindPower {
			return bigfloat.Pow(z, b, x), true
		}
		if x.Sign() <= 0 {
			return nil, false
		}
		bigfloat.Log(z, x)
		lb := bigfloat.Log(new(big.Float).SetPrec(refPrec), b)
		if lb.Sign() == 0 {
			return nil, false
		}
		return z.Quo(z, lb), true
	}
	x, ok := refEval(e.Arg(0), vars)
	if !ok {
		return nil, false
	}
	switch e.Kind() {
	case mathematics.KindNegate:
		return z.Neg(x), true
	case mathematics.KindInvert:
		if x.Sign() == 0 {
			return nil, false
		}
		return z.Quo(new(big.Float).SetPrec(refPrec).SetInt64(1), x), true
	case mathematics.KindAbs:
		return z.Abs(x), true
	case mathematics.KindSqrt:
		if x.Sign() < 0 {
			return nil, false
		}
		return z.Sqrt(x), true
	case mathematics.KindLn:
		if x.Sign() <= 0 {
			return nil, false
		}
		return bigfloat.Log(z, x), true
	}
	return nil, false
}

func TestEvalReference(t *testing.T) {
	srcs := []string{
		"x^y + ln(x) * y",
		"log(x * y, 3)",
		"log(1000)",
		"sqrt(x) / (y - 1)",
		"e^x - pi * x^2",
		"(x + y)^-2",
		"2^0.5 * 2^0.5",
		"1 / (1 / x + 1 / y)",
		"abs(y - x) ^ (1 / 3)",
		"ln(e^y) - y",
		"x^2 + 2*x*y + y^2",
	}
	bindings := []map[string]float64{
		{"x": 2.5, "y": 1.75},
		{"x": 0.125, "y": 9},
		{"x": 100, "y": 3},
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			a, err := mathematics.ParseString(src)
			if err != nil {
				t.Fatal(err)
			}
			for _, vars := range bindings {
				ref, ok := refEval(a, vars)
				if !ok {
					t.Fatalf("no reference value for %q with %v", src, vars)
				}
				want, _ := ref.Float64()
				got, err := a.Solve(vars)
				if err != nil {
					t.Fatal(err)
				}
				tol := 1e-12 * math.Max(1, math.Abs(want))
				if math.Abs(got-want) > tol {
					t.Errorf("%q with %v: want %.17g, got %.17g", src, vars, want, got)
				}
				s, err := a.Simplify().Solve(vars)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(s-want) > tol {
					t.Errorf("simplified %q with %v: want %.17g, got %.17g", src, vars, want, s)
				}
			}
		})
	}
}
