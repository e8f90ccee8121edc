package mathematics

import (
	"errors"
	"math"
	"strconv"
)

// Number is a float64 leaf value. Equal and Hash compare the IEEE-754 bit
// pattern rather than the numeric value, so that numbers can key the maps used
// during simplification. In particular, a NaN is equal to itself when the bits
// match, and +0 and -0 are distinct. Use == on the float64 value for IEEE
// comparison semantics.
type Number float64

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// Bits returns the IEEE-754 bit pattern of n.
func (n Number) Bits() uint64 {
	return math.Float64bits(float64(n))
}

// Equal reports whether n and m have identical bit patterns.
func (n Number) Equal(m Number) bool {
	return n.Bits() == m.Bits()
}

// Hash returns a hash of the bit pattern of n.
func (n Number) Hash() uint64 {
	h := offset64
	b := n.Bits()
	for i := 0; i < 8; i++ {
		h ^= b & 0xff
		h *= prime64
		b >>= 8
	}
	return h
}

// String formats n the way it is written in expressions. Integral values have
// no fraction, infinities are inf and -inf, and NaN is NaN.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// parseNumber converts a number token to its value. The lexer guarantees that
// the text is well-formed.
func parseNumber(text string) Number {
	switch text {
	case "inf", "Inf", "∞":
		return Number(math.Inf(1))
	case "NaN", "nan":
		return Number(math.NaN())
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range literals saturate to infinity like the float64 they
		// name would.
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			return Number(f)
		}
		panic("mathematics: invalid number: " + text + " (" + err.Error() + ")")
	}
	return Number(f)
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)
