package elementary

import (
	"math"

	"github.com/victorpoughon/not-so-float/interval"
)

// math.Exp and math.Log are accurate to less than one ulp and math.Sqrt is
// correctly rounded, so a single ulp of widening encloses the exact value.

func expDown(x float64) float64 {
	switch {
	case math.IsInf(x, -1):
		return 0
	case x == 0:
		return 1
	}
	return math.Max(0, interval.Pred(math.Exp(x)))
}

func expUp(x float64) float64 {
	if x == 0 {
		return 1
	}
	return interval.Succ(math.Exp(x))
}

func logDown(x float64) float64 {
	switch x {
	case 0:
		return math.Inf(-1)
	case 1:
		return 0
	}
	return interval.Pred(math.Log(x))
}

func logUp(x float64) float64 {
	switch x {
	case 0:
		return math.Inf(-1)
	case 1:
		return 0
	}
	return interval.Succ(math.Log(x))
}

func sqrtDown(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return math.Max(0, interval.Pred(math.Sqrt(x)))
}

func sqrtUp(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return interval.Succ(math.Sqrt(x))
}

func expInterval(x interval.Interval) interval.Union {
	return single(expDown(x.Lo()), expUp(x.Hi()))
}

func logInterval(x interval.Interval) interval.Union {
	switch {
	case x.Hi() <= 0:
		return interval.Empty
	case x.Lo() <= 0:
		return single(math.Inf(-1), logUp(x.Hi()))
	default:
		return single(logDown(x.Lo()), logUp(x.Hi()))
	}
}

func sqrtInterval(x interval.Interval) interval.Union {
	if x.Hi() < 0 {
		return interval.Empty
	}
	return single(sqrtDown(math.Max(0, x.Lo())), sqrtUp(x.Hi()))
}

var (
	exp  = unary("Exp", expInterval)
	log  = unary("Log", logInterval)
	sqrt = unary("Sqrt", sqrtInterval)

	pow = binary("Pow", func(x, y interval.Interval) interval.Union {
		if x.Hi() <= 0 {
			return interval.Empty
		}
		return exp(interval.Mul(y, logInterval(x)))
	})
)

// Exp returns e^a.
func Exp(a interval.Operand) interval.Union {
	return exp(a)
}

// Log returns the natural logarithm of the positive part of a.
// The lower bound is -Inf when a reaches zero.
func Log(a interval.Operand) interval.Union {
	return log(a)
}

// Pow returns a^b computed as exp(b * log(a)) over the positive part of a.
func Pow(a, b interval.Operand) interval.Union {
	return pow(a, b)
}

// Sqrt returns the square root of the non-negative part of a.
func Sqrt(a interval.Operand) interval.Union {
	return sqrt(a)
}

// SqInv returns the set of x such that x^2 is in a: both square roots.
func SqInv(a interval.Operand) interval.Union {
	roots := sqrt(operand("SqInv", a))
	return interval.NewUnion(append(roots.Neg().Intervals(), roots.Intervals()...)...)
}
