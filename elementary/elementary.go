// Package elementary implements elementary functions over interval unions:
// absolute value, min and max, exponential, logarithm, powers and roots,
// and the trigonometric functions and their inverses.
//
// Functions are built on the public API of package interval. Bounds that are
// not exact are widened outward with [interval.Succ] and [interval.Pred], so
// the result always contains the image of the operand. Points outside the
// domain of a function are dropped: Log of [-2, -1] is the empty union.
package elementary

import (
	"math"

	"github.com/victorpoughon/not-so-float/interval"
)

var one = interval.MustNew(1, 1).ToUnion()

func operand(name string, a interval.Operand) interval.Union {
	return interval.ToUnion(name, a)
}

func single(lo, hi float64) interval.Union {
	return interval.MustNew(lo, hi).ToUnion()
}

func unary(name string, op func(x interval.Interval) interval.Union) func(a interval.Operand) interval.Union {
	lifted := interval.LiftUnary(op)
	return func(a interval.Operand) interval.Union {
		return lifted(operand(name, a))
	}
}

func binary(name string, op func(x, y interval.Interval) interval.Union) func(a, b interval.Operand) interval.Union {
	lifted := interval.LiftBinary(op)
	return func(a, b interval.Operand) interval.Union {
		return lifted(operand(name, a), operand(name, b))
	}
}

var (
	abs = unary("Abs", func(x interval.Interval) interval.Union {
		switch {
		case x.Lo() >= 0:
			return x.ToUnion()
		case x.Hi() <= 0:
			return x.Neg().ToUnion()
		default:
			return single(0, math.Max(-x.Lo(), x.Hi()))
		}
	})

	minimum = binary("Min", func(x, y interval.Interval) interval.Union {
		return single(math.Min(x.Lo(), y.Lo()), math.Min(x.Hi(), y.Hi()))
	})

	maximum = binary("Max", func(x, y interval.Interval) interval.Union {
		return single(math.Max(x.Lo(), y.Lo()), math.Max(x.Hi(), y.Hi()))
	})
)

// Abs returns |a|.
func Abs(a interval.Operand) interval.Union {
	return abs(a)
}

// Min returns the set of min(x, y) for x in a and y in b.
func Min(a, b interval.Operand) interval.Union {
	return minimum(a, b)
}

// Max returns the set of max(x, y) for x in a and y in b.
func Max(a, b interval.Operand) interval.Union {
	return maximum(a, b)
}

// down returns v moved n ulps toward -Inf.
func down(v float64, n int) float64 {
	for i := 0; i < n; i++ {
		v = interval.Pred(v)
	}
	return v
}

// up returns v moved n ulps toward +Inf.
func up(v float64, n int) float64 {
	for i := 0; i < n; i++ {
		v = interval.Succ(v)
	}
	return v
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
