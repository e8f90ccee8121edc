package mathematics

import "math"

// Equation is a pair of expressions stated to be equal.
type Equation struct {
	Left, Right *Expr
}

// NewEquation creates the equation l = r.
func NewEquation(l, r *Expr) *Equation {
	if l == nil || r == nil {
		panic("mathematics: nil side of equation")
	}
	return &Equation{Left: l, Right: r}
}

func (eq *Equation) String() string {
	return eq.Left.String() + " = " + eq.Right.String()
}

// Simplify returns the equation with both sides simplified.
func (eq *Equation) Simplify() *Equation {
	return &Equation{Left: Simplify(eq.Left), Right: Simplify(eq.Right)}
}

// Residual returns Left - Right, which is zero wherever the equation holds.
func (eq *Equation) Residual() *Expr {
	return Add(eq.Left, Neg(eq.Right))
}

// Vars returns the sorted names of the variables on either side.
func (eq *Equation) Vars() []string {
	return eq.Residual().Vars()
}

// Solve evaluates the residual of the equation with the given variables.
func (eq *Equation) Solve(vars map[string]float64) (float64, error) {
	return eq.Residual().Solve(vars)
}

// Holds reports whether both sides evaluate to within tol of each other.
// NaN on either side never holds, and equal infinities do.
func (eq *Equation) Holds(vars map[string]float64, tol float64) (bool, error) {
	l, err := eq.Left.Solve(vars)
	if err != nil {
		return false, err
	}
	r, err := eq.Right.Solve(vars)
	if err != nil {
		return false, err
	}
	if l == r {
		return true, nil
	}
	return math.Abs(l-r) <= tol, nil
}

// Holds reports whether eq holds with the variables of ctx, as by
// eq.Holds. If a variable has no value, the result is false and ctx.Err
// returns the error.
func (ctx *Context) Holds(eq *Equation, tol float64) bool {
	ok, err := eq.Holds(ctx.names, tol)
	ctx.err = err
	return ok
}
