// Package mathematics parses, simplifies, and evaluates real-valued
// expressions and equations.
//
// The syntax is the math you'd write in your notes, with explicit operators:
// "2*x" is a product, but "2 x" is an error. "-x^2" is the same as "-(x^2)",
// and "2^3^2" is "(2^3)^2". Brackets may be (), [], or {}. Calls to sqrt, ln,
// log, abs, and the trig functions need brackets, and sin^-1(x) is arcsin(x).
// log(x) is base 10, and log(x, b) is base b.
//
// Expressions are immutable trees. Simplify rewrites a tree into a canonical
// form with like terms and factors collected and numbers folded. Solve and
// Context evaluate trees in float64 arithmetic, so 1/0 is +Inf rather than an
// error; the only evaluation error is a variable with no value.
//
package mathematics
