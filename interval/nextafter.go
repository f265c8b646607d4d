package interval

import (
	"math"
)

// Succ returns the smallest float64 strictly greater than x.
// Succ(+Inf) is +Inf, Succ(±0) is the smallest positive subnormal
// and NaN is returned unchanged.
func Succ(x float64) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1):
		return x
	case x == 0:
		return math.SmallestNonzeroFloat64
	}

	bits := math.Float64bits(x)
	if x > 0 {
		bits++
	} else {
		bits--
	}

	return math.Float64frombits(bits)
}

// Pred returns the largest float64 strictly less than x.
// Pred(-Inf) is -Inf, Pred(±0) is the smallest negative subnormal
// and NaN is returned unchanged.
func Pred(x float64) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, -1):
		return x
	case x == 0:
		return -math.SmallestNonzeroFloat64
	}

	bits := math.Float64bits(x)
	if x < 0 {
		bits++
	} else {
		bits--
	}

	return math.Float64frombits(bits)
}
