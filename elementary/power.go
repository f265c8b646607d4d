package elementary

import (
	"math"

	"github.com/victorpoughon/not-so-float/interval"
)

// maxRootSteps bounds the correction loops of rootDown and rootUp.
const maxRootSteps = 64

// mulDown and mulUp are exact for a zero or unit factor.
func mulDown(a, b float64) float64 {
	switch {
	case a == 0 || b == 0:
		return 0
	case a == 1:
		return b
	case b == 1:
		return a
	}
	return math.Max(0, interval.Pred(a*b))
}

func mulUp(a, b float64) float64 {
	switch {
	case a == 0 || b == 0:
		return 0
	case a == 1:
		return b
	case b == 1:
		return a
	}
	return interval.Succ(a * b)
}

// powDown returns a lower bound of b^n for b >= 0 and n >= 0, by
// exponentiation by squaring with every product rounded down.
func powDown(b float64, n int) float64 {
	r := 1.0
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = mulDown(r, b)
		}
		b = mulDown(b, b)
	}
	return r
}

// powUp returns an upper bound of b^n for b >= 0 and n >= 0.
func powUp(b float64, n int) float64 {
	r := 1.0
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = mulUp(r, b)
		}
		b = mulUp(b, b)
	}
	return r
}

// signedPowDown is a lower bound of x^n for odd n.
func signedPowDown(x float64, n int) float64 {
	if x < 0 {
		return -powUp(-x, n)
	}
	return powDown(x, n)
}

// signedPowUp is an upper bound of x^n for odd n.
func signedPowUp(x float64, n int) float64 {
	if x < 0 {
		return -powDown(-x, n)
	}
	return powUp(x, n)
}

// rootEstimate returns an approximation of y^(1/n) for finite y > 0,
// refined by one Newton step since 1/n is itself rounded.
func rootEstimate(y float64, n int) float64 {
	r := math.Pow(y, 1/float64(n))
	if p := math.Pow(r, float64(n)); p > 0 && !math.IsInf(p, 0) {
		if refined := r + (y/p-1)*r/float64(n); refined > 0 && !math.IsInf(refined, 0) {
			return refined
		}
	}
	return r
}

// rootDown returns r <= y^(1/n) for y >= 0 and n >= 1. The estimate is
// lowered, by steps that double each time, until powUp certifies r^n <= y.
func rootDown(y float64, n int) float64 {
	if y == 0 || y == 1 || n == 1 || math.IsInf(y, 1) {
		return y
	}
	r := math.Max(0, down(rootEstimate(y, n), 2))
	for step := 0; r > 0 && powUp(r, n) > y; step++ {
		if step == maxRootSteps {
			return 0
		}
		r = math.Max(0, r-math.Ldexp(interval.Succ(r)-r, step))
	}
	return r
}

// rootUp returns r >= y^(1/n) for y >= 0 and n >= 1. The estimate is
// raised, by steps that double each time, until powDown certifies r^n >= y.
func rootUp(y float64, n int) float64 {
	if y == 0 || y == 1 || n == 1 || math.IsInf(y, 1) {
		return y
	}
	r := up(rootEstimate(y, n), 2)
	for step := 0; !math.IsInf(r, 1) && powDown(r, n) < y; step++ {
		if step == maxRootSteps {
			return math.Inf(1)
		}
		r += math.Ldexp(r-interval.Pred(r), step)
	}
	return r
}

// powIntInterval returns x^n for n >= 0.
func powIntInterval(x interval.Interval, n int) interval.Union {

	lo, hi := x.Lo(), x.Hi()

	switch {
	case n == 0:
		return one
	case n%2 == 1:
		return single(signedPowDown(lo, n), signedPowUp(hi, n))
	case lo >= 0:
		return single(powDown(lo, n), powUp(hi, n))
	case hi <= 0:
		return single(powDown(-hi, n), powUp(-lo, n))
	default:
		return single(0, powUp(math.Max(-lo, hi), n))
	}
}

// PowInt returns a^n. Negative exponents are computed as 1 / a^-n,
// so 0^-n is dropped from the result.
func PowInt(a interval.Operand, n int) interval.Union {
	u := operand("PowInt", a)
	if n < 0 {
		return interval.Div(one, PowInt(u, -n))
	}
	return interval.LiftUnary(func(x interval.Interval) interval.Union {
		return powIntInterval(x, n)
	})(u)
}

func powEvenInvInterval(y interval.Interval, n int) interval.Union {
	switch {
	case y.Hi() < 0:
		return interval.Empty
	case y.Hi() == 0:
		return single(0, 0)
	}
	root := interval.MustNew(rootDown(math.Max(0, y.Lo()), n), rootUp(y.Hi(), n))
	return interval.NewUnion(root.Neg(), root)
}

func powOddInvInterval(y interval.Interval, n int) interval.Union {
	lower := rootDown(y.Lo(), n)
	if y.Lo() < 0 {
		lower = -rootUp(-y.Lo(), n)
	}
	upper := rootUp(y.Hi(), n)
	if y.Hi() < 0 {
		upper = -rootDown(-y.Hi(), n)
	}
	return single(lower, upper)
}

// PowIntInv returns the set of x such that x^n is in a.
//
// For n = 0 this is the whole line if a contains 1 and empty otherwise.
// Even n yields the two symmetric roots, odd n the single real root.
// Negative n is computed as 1 / PowIntInv(a, -n).
func PowIntInv(a interval.Operand, n int) interval.Union {

	u := operand("PowIntInv", a)

	switch {
	case n == 0:
		if u.Contains(1) {
			return interval.Full
		}
		return interval.Empty
	case n == 1:
		return u
	case n < 0:
		if u.Lower() == 0 && u.Upper() == 0 {
			return interval.Empty
		}
		return interval.Div(one, PowIntInv(u, -n))
	case n%2 == 0:
		return interval.LiftUnary(func(y interval.Interval) interval.Union {
			return powEvenInvInterval(y, n)
		})(u)
	default:
		return interval.LiftUnary(func(y interval.Interval) interval.Union {
			return powOddInvInterval(y, n)
		})(u)
	}
}
