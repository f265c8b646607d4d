package interval

import (
	"math"
)

var negZero = math.Copysign(0, -1)

// addDown is a+b rounded toward -Inf, exact when an operand is zero.
func addDown(a, b float64) float64 {
	if a == 0 {
		return b
	} else if b == 0 {
		return a
	}
	return Pred(a + b)
}

// addUp is a+b rounded toward +Inf, exact when an operand is zero.
func addUp(a, b float64) float64 {
	if a == 0 {
		return b
	} else if b == 0 {
		return a
	}
	return Succ(a + b)
}

// mulDown is a*b rounded toward -Inf. A zero factor gives an exact 0,
// even against an infinity.
func mulDown(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return Pred(a * b)
}

// mulUp is a*b rounded toward +Inf. A zero factor gives an exact 0,
// even against an infinity.
func mulUp(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return Succ(a * b)
}

// divDown is a/b rounded toward -Inf.
// Dividing by an infinity gives a signed zero, dividing by ±1 is exact.
func divDown(a, b float64) float64 {
	switch {
	case math.IsInf(b, 1):
		return math.Copysign(0, a)
	case math.IsInf(b, -1):
		return math.Copysign(0, -a)
	case b == 1:
		return a
	case b == -1:
		return -a
	}
	return Pred(a / b)
}

// divUp is a/b rounded toward +Inf.
// Dividing by an infinity gives a signed zero, dividing by ±1 is exact.
func divUp(a, b float64) float64 {
	switch {
	case math.IsInf(b, 1):
		return math.Copysign(0, a)
	case math.IsInf(b, -1):
		return math.Copysign(0, -a)
	case b == 1:
		return a
	case b == -1:
		return -a
	}
	return Succ(a / b)
}

func single(lo, hi float64) Union {
	return Union{intervals: []Interval{{lo: lo, hi: hi}}}
}

// Add returns x + y.
func (x Interval) Add(y Interval) Union {
	return single(addDown(x.lo, y.lo), addUp(x.hi, y.hi))
}

// Neg returns -x. Negation is exact.
func (x Interval) Neg() Interval {
	return Interval{lo: -x.hi, hi: -x.lo}
}

// Sub returns x - y, computed as x + (-y).
func (x Interval) Sub(y Interval) Union {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Interval) Mul(y Interval) Union {

	a, b := x.lo, x.hi
	c, d := y.lo, y.hi

	switch {
	case b < 0:
		switch {
		case d < 0:
			return single(mulDown(b, d), mulUp(a, c)) // N1 * N1
		case c > 0:
			return single(mulDown(a, d), mulUp(b, c)) // N1 * P1
		default:
			return single(mulDown(a, d), mulUp(a, c)) // N1 * (M | P0 | N0 | Z)
		}
	case a > 0:
		switch {
		case d < 0:
			return single(mulDown(b, c), mulUp(a, d)) // P1 * N1
		case c > 0:
			return single(mulDown(a, c), mulUp(b, d)) // P1 * P1
		default:
			return single(mulDown(b, c), mulUp(b, d)) // P1 * (M | P0 | N0 | Z)
		}
	default:
		switch {
		case d < 0:
			return single(mulDown(b, c), mulUp(a, c)) // (M | P0 | N0 | Z) * N1
		case c > 0:
			return single(mulDown(a, d), mulUp(b, d)) // (M | P0 | N0 | Z) * P1
		default:
			return single(
				math.Min(mulDown(a, d), mulDown(b, c)),
				math.Max(mulUp(a, c), mulUp(b, d)),
			) // (M | P0 | N0 | Z) * (M | P0 | N0 | Z)
		}
	}
}

// Div returns x / y. The result has at most two intervals: it is split when
// y straddles zero and x is strictly one-signed. Dividing by [0, 0] yields
// the empty set, except for [0, 0] / [0, 0] which is [0, 0].
//
// The case table follows Figure 4 of Hickey, Ju and Van Emden,
// "Interval arithmetic: From principles to implementation" (2001).
func (x Interval) Div(y Interval) Union {

	xc, yc := x.Class(), y.Class()

	if yc == Z {
		if xc == Z {
			return single(0, 0)
		}
		return Empty
	}

	if xc == Z {
		return single(0, 0)
	}

	a, b := x.lo, x.hi
	c, d := y.lo, y.hi

	inf := math.Inf(1)

	switch yc {
	case P1:
		switch xc {
		case P1:
			return single(divDown(a, d), divUp(b, c))
		case P0:
			return single(0, divUp(b, c))
		case M:
			return single(divDown(a, c), divUp(b, c))
		case N0:
			return single(divDown(a, c), negZero)
		default: // N1
			return single(divDown(a, c), divUp(b, d))
		}
	case P0:
		switch xc {
		case P1:
			return single(divDown(a, d), inf)
		case P0:
			return single(0, inf)
		case M:
			return Full
		case N0:
			return single(-inf, negZero)
		default: // N1
			return single(-inf, divUp(b, d))
		}
	case M:
		switch xc {
		case P1:
			return NewUnion(
				Interval{lo: -inf, hi: divUp(a, c)},
				Interval{lo: divDown(a, d), hi: inf},
			)
		case N1:
			return NewUnion(
				Interval{lo: -inf, hi: divUp(b, d)},
				Interval{lo: divDown(b, c), hi: inf},
			)
		default: // P0, M, N0
			return Full
		}
	case N0:
		switch xc {
		case P1:
			return single(-inf, divUp(a, c))
		case P0:
			return single(-inf, negZero)
		case M:
			return Full
		case N0:
			return single(0, inf)
		default: // N1
			return single(divDown(b, c), inf)
		}
	default: // N1
		switch xc {
		case P1:
			return single(divDown(b, d), divUp(a, c))
		case P0:
			return single(divDown(b, d), negZero)
		case M:
			return single(divDown(b, d), divUp(a, d))
		case N0:
			return single(0, divUp(a, d))
		default: // N1
			return single(divDown(b, c), divUp(a, d))
		}
	}
}

// Add returns u + v.
func (u Union) Add(v Union) Union {
	return LiftBinary(Interval.Add)(u, v)
}

// Sub returns u - v.
func (u Union) Sub(v Union) Union {
	return LiftBinary(Interval.Sub)(u, v)
}

// Mul returns u * v.
func (u Union) Mul(v Union) Union {
	return LiftBinary(Interval.Mul)(u, v)
}

// Div returns u / v.
func (u Union) Div(v Union) Union {
	return LiftBinary(Interval.Div)(u, v)
}

// Neg returns -u.
func (u Union) Neg() Union {
	return LiftUnary(func(x Interval) Union {
		return Union{intervals: []Interval{x.Neg()}}
	})(u)
}
