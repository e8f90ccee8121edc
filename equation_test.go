package mathematics_test

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nahuel-M/mathematics"
)

func TestParseEquation(t *testing.T) {
	cases := []struct {
		name        string
		src         string
		left, right string
	}{
		{"simple", "x = 1", "x", "1"},
		{"exprs", "x^2 + 1 = 2*x", "(add (pow x 2) 1)", "(mul 2 x)"},
		{"neg-rhs", "y=-x", "y", "(neg x)"},
		{"brackets", "(a + b) = [c]", "(add a b)", "c"},
		{"calls", "log(x, 2) = 3", "(log 2 x)", "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eq, err := mathematics.ParseEquationString(c.src)
			require.NoError(t, err)
			require.Equal(t, c.left, eq.Left.Dump())
			require.Equal(t, c.right, eq.Right.Dump())
		})
	}
}

func TestParseEquationErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  interface{}
		msg  string
		pos  int
	}{
		{"none", "x + 1", new(*mathematics.EquationError), `no "="`, 6},
		{"two", "x = 1 = y", new(*mathematics.EquationError), `more than one "="`, 7},
		{"empty-left", "= 1", new(*mathematics.EmptyExpressionError), ``, 1},
		{"empty-right", "x =", new(*mathematics.EmptyExpressionError), ``, 4},
		{"in-bracket", "(x = 1)", new(*mathematics.TrailingInputError), `unexpected "=", expected ")"`, 4},
		{"trailing", "x = 1 2", new(*mathematics.TrailingInputError), `unexpected "2"`, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mathematics.ParseEquationString(c.src)
			require.Error(t, err)
			require.True(t, errors.As(err, c.err), "%q: wrong error type %#v", c.src, err)
			if c.msg != "" {
				require.Regexp(t, regexp.MustCompile(regexp.QuoteMeta(c.msg)), err.Error())
			}
			ierr, ok := err.(mathematics.InputError)
			require.True(t, ok)
			if c.pos > 0 {
				require.Equal(t, c.pos, ierr.Pos(), "%q: %v", c.src, err)
			}
		})
	}
}

func TestEquationInExpression(t *testing.T) {
	_, err := mathematics.ParseString("x = 1")
	var eqerr *mathematics.EquationError
	require.True(t, errors.As(err, &eqerr), "%#v", err)
	require.Equal(t, 1, eqerr.Count)
	require.Equal(t, 3, eqerr.Pos())
}

func TestEquation(t *testing.T) {
	eq, err := mathematics.ParseEquationString("x^2 - 3*x = 4")
	require.NoError(t, err)
	require.Equal(t, "x^2 - 3 * x = 4", eq.String())
	require.Equal(t, []string{"x"}, eq.Vars())

	cases := []struct {
		x     float64
		res   float64
		holds bool
	}{
		{4, 0, true},
		{-1, 0, true},
		{0, -4, false},
		{1, -6, false},
	}
	for _, c := range cases {
		vars := map[string]float64{"x": c.x}
		r, err := eq.Solve(vars)
		require.NoError(t, err)
		require.Equal(t, c.res, r)
		ok, err := eq.Holds(vars, 1e-12)
		require.NoError(t, err)
		require.Equal(t, c.holds, ok, "x = %g", c.x)
	}

	_, err = eq.Holds(nil, 0)
	var missing *mathematics.MissingVariableError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "x", missing.Name)
}

func TestEquationHoldsSpecial(t *testing.T) {
	x := mathematics.Var("x")
	inf := mathematics.NewEquation(mathematics.Num(math.Inf(1)), mathematics.Inv(x))
	ok, err := inf.Holds(map[string]float64{"x": 0}, 0)
	require.NoError(t, err)
	require.True(t, ok)

	nan := mathematics.NewEquation(x, x)
	ok, err = nan.Holds(map[string]float64{"x": math.NaN()}, math.Inf(1))
	require.NoError(t, err)
	require.False(t, ok)

	approx := mathematics.NewEquation(x, mathematics.Num(1))
	ok, err = approx.Holds(map[string]float64{"x": 1.001}, 0.01)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEquationSimplify(t *testing.T) {
	eq, err := mathematics.ParseEquationString("x + x = y * y / y")
	require.NoError(t, err)
	s := eq.Simplify()
	require.Equal(t, "x * 2 = y", s.String())
	require.Equal(t, "x + x = y * y / y", eq.String())
	require.Equal(t, "(add (mul x 2) (neg y))", s.Residual().Simplify().Dump())
}

func TestNewEquationPanics(t *testing.T) {
	require.Panics(t, func() { mathematics.NewEquation(nil, mathematics.Num(1)) })
	require.Panics(t, func() { mathematics.NewEquation(mathematics.Num(1), nil) })
}
