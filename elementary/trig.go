package elementary

import (
	"math"

	"github.com/victorpoughon/not-so-float/interval"
	"github.com/victorpoughon/not-so-float/utils"
)

// The trigonometric functions of package math are not guaranteed to one ulp,
// and the argument reduction of Sin and Cos loses absolute accuracy near
// their zeros. Their results are widened by trigUlps ulps plus an absolute
// slack of at least trigSlack, growing with the argument.
const (
	trigUlps  = 2
	trigSlack = 0x1p-64
)

// Above reduceThreshold, math.Sin and math.Cos use Payne-Hanek reduction,
// whose absolute error is about 2^-53. The slack is then at least
// reducedSlack.
const (
	reduceThreshold = 1 << 29
	reducedSlack    = 0x1p-50
)

// slackAt returns the absolute error bound of math.Sin and math.Cos at x.
func slackAt(x float64) float64 {
	ax := math.Abs(x)
	slack := math.Max(trigSlack, ax*0x1p-80)
	if ax >= reduceThreshold {
		slack = math.Max(slack, reducedSlack)
	}
	return slack
}

// math.Acos is computed as Pi/2 - Asin and is only accurate to an absolute
// error of a few ulps of Pi/2 near 1.
const acosSlack = 0x1p-50

// maxCriticalPoints is the number of candidate multiples of Pi above which
// an interval is considered to cover a whole period.
const maxCriticalPoints = 4

// trigDown and trigUp widen the value v of Sin or Cos at x.
func trigDown(v, x float64) float64 {
	return clamp(interval.Pred(down(v, trigUlps)-slackAt(x)), -1, 1)
}

func trigUp(v, x float64) float64 {
	return clamp(interval.Succ(up(v, trigUlps)+slackAt(x)), -1, 1)
}

// criticalPoints returns the range of integers k such that offset + k*Pi
// may lie in x. The range is widened so that no such k is missed, and ok is
// false when it is too large to enumerate.
func criticalPoints(x interval.Interval, offset float64) (first, last float64, ok bool) {
	first = math.Ceil(down((x.Lo()-offset)/math.Pi, 4))
	last = math.Floor(up((x.Hi()-offset)/math.Pi, 4))
	return first, last, last-first <= maxCriticalPoints
}

// periodic evaluates a 2Pi-periodic function with extrema +1 at
// offset + 2k*Pi and -1 at offset + (2k+1)*Pi.
func periodic(x interval.Interval, f func(float64) float64, exact func(float64) (float64, bool), offset float64) interval.Union {

	if x.Width() >= 2*math.Pi {
		return single(-1, 1)
	}

	first, last, ok := criticalPoints(x, offset)
	if !ok {
		return single(-1, 1)
	}

	lower := make([]float64, 0, 3)
	upper := make([]float64, 0, 3)

	for _, v := range []float64{x.Lo(), x.Hi()} {
		if y, ok := exact(v); ok {
			lower, upper = append(lower, y), append(upper, y)
		} else {
			y = f(v)
			lower, upper = append(lower, trigDown(y, v)), append(upper, trigUp(y, v))
		}
	}

	for k := first; k <= last; k++ {
		if math.Mod(k, 2) == 0 {
			upper = append(upper, 1)
		} else {
			lower = append(lower, -1)
		}
	}

	return single(utils.MinSlice(lower), utils.MaxSlice(upper))
}

func cosInterval(x interval.Interval) interval.Union {
	return periodic(x, math.Cos, func(v float64) (float64, bool) {
		return 1, v == 0
	}, 0)
}

func sinInterval(x interval.Interval) interval.Union {
	return periodic(x, math.Sin, func(v float64) (float64, bool) {
		return 0, v == 0
	}, math.Pi/2)
}

func acosInterval(x interval.Interval) interval.Union {
	if x.Lo() > 1 || x.Hi() < -1 {
		return interval.Empty
	}
	lower := 0.0
	if x.Hi() < 1 {
		lower = math.Max(0, interval.Pred(down(math.Acos(x.Hi()), trigUlps)-acosSlack))
	}
	return single(lower, interval.Succ(up(math.Acos(math.Max(-1, x.Lo())), trigUlps)+acosSlack))
}

func asinInterval(x interval.Interval) interval.Union {
	if x.Lo() > 1 || x.Hi() < -1 {
		return interval.Empty
	}
	lo, hi := math.Max(-1, x.Lo()), math.Min(1, x.Hi())
	lower, upper := math.Asin(lo), math.Asin(hi)
	if lo != 0 {
		lower = down(lower, trigUlps)
	}
	if hi != 0 {
		upper = up(upper, trigUlps)
	}
	return single(lower, upper)
}

func atanInterval(x interval.Interval) interval.Union {
	lower, upper := math.Atan(x.Lo()), math.Atan(x.Hi())
	if x.Lo() != 0 {
		lower = down(lower, trigUlps)
	}
	if x.Hi() != 0 {
		upper = up(upper, trigUlps)
	}
	return single(lower, upper)
}

var (
	cos = unary("Cos", cosInterval)
	sin = unary("Sin", sinInterval)
	tan = unary("Tan", func(x interval.Interval) interval.Union {
		return interval.Div(sinInterval(x), cosInterval(x))
	})
	acos = unary("Acos", acosInterval)
	asin = unary("Asin", asinInterval)
	atan = unary("Atan", atanInterval)
)

// Cos returns the cosine of a. Intervals at least 2Pi wide map to [-1, 1].
func Cos(a interval.Operand) interval.Union {
	return cos(a)
}

// Sin returns the sine of a. Intervals at least 2Pi wide map to [-1, 1].
func Sin(a interval.Operand) interval.Union {
	return sin(a)
}

// Tan returns Sin(x) / Cos(x) for each interval x of a. Where the cosine
// range contains zero the division splits the result, or gives the whole line.
func Tan(a interval.Operand) interval.Union {
	return tan(a)
}

// Acos returns the arc cosine of the part of a inside [-1, 1].
func Acos(a interval.Operand) interval.Union {
	return acos(a)
}

// Asin returns the arc sine of the part of a inside [-1, 1].
func Asin(a interval.Operand) interval.Union {
	return asin(a)
}

// Atan returns the arc tangent of a.
func Atan(a interval.Operand) interval.Union {
	return atan(a)
}
