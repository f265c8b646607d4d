// Package bignum implements arbitrary precision reference values used to
// check float64 enclosures.
package bignum

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"golang.org/x/exp/constraints"
)

// ExactPrec is a precision large enough for the sum, difference or product
// of any two finite float64 values to be represented without rounding.
const ExactPrec = 2200

// RefPrec is the precision used for quotients and transcendental values.
const RefPrec = 256

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
func NewFloat[T constraints.Integer | constraints.Float](x T, prec uint) (y *big.Float) {
	y = new(big.Float).SetPrec(prec)
	switch v := any(x).(type) {
	case float32:
		y.SetFloat64(float64(v))
	case float64:
		y.SetFloat64(v)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		y.SetUint64(uint64(x))
	default:
		y.SetInt64(int64(x))
	}
	return
}

// Add returns the exact sum a + b of two finite floats.
func Add(a, b float64) *big.Float {
	return new(big.Float).SetPrec(ExactPrec).Add(NewFloat(a, ExactPrec), NewFloat(b, ExactPrec))
}

// Sub returns the exact difference a - b of two finite floats.
func Sub(a, b float64) *big.Float {
	return new(big.Float).SetPrec(ExactPrec).Sub(NewFloat(a, ExactPrec), NewFloat(b, ExactPrec))
}

// Mul returns the exact product a * b of two finite floats.
func Mul(a, b float64) *big.Float {
	return new(big.Float).SetPrec(ExactPrec).Mul(NewFloat(a, ExactPrec), NewFloat(b, ExactPrec))
}

// Quo returns a / b with RefPrec bits of precision, rounded with mode.
func Quo(a, b float64, mode big.RoundingMode) *big.Float {
	return new(big.Float).SetPrec(RefPrec).SetMode(mode).Quo(NewFloat(a, RefPrec), NewFloat(b, RefPrec))
}

// Float64Bounds returns the two floats enclosing x as tightly as possible.
// Both are equal when x is representable.
func Float64Bounds(x *big.Float) (lo, hi float64) {
	f, acc := x.Float64()
	switch acc {
	case big.Above:
		return math.Nextafter(f, math.Inf(-1)), f
	case big.Below:
		return f, math.Nextafter(f, math.Inf(1))
	default:
		return f, f
	}
}

// Cos is an iterative arbitrary precision computation of Cos(x)
// Iterative process with an error of ~10^{−0.60206*k} = (1/4)^k after k iterations.
// ref : Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	tmp := new(big.Float)

	t := NewFloat(0.5, x.Prec())
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (x.Prec()>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, x.Prec())

	for i := uint(1); i < x.Prec()>>1; i++ { // (1/4)^k = (1/2)^(2*k)
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).Quo(s, NewFloat(2.0, x.Prec()))
	cosx.Sub(NewFloat(1.0, x.Prec()), cosx)
	return
}

// Mod2Pi returns x minus the multiple of 2Pi that truncates x/2Pi, in
// (-2Pi, 2Pi), with x.Prec() bits. The precision must exceed the binary
// exponent of x by the number of bits wanted in the result.
func Mod2Pi(x *big.Float) (r *big.Float) {
	prec := x.Prec()
	twoPi := Pi(prec)
	twoPi.Mul(twoPi, NewFloat(2, prec))
	k, _ := new(big.Float).SetPrec(prec).Quo(x, twoPi).Int(nil)
	r = new(big.Float).SetPrec(prec).SetInt(k)
	r.Mul(r, twoPi)
	return r.Sub(x, r)
}

// Sin returns Cos(x - Pi/2).
func Sin(x *big.Float) (sinx *big.Float) {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, new(big.Float).SetInt64(2))
	return Cos(new(big.Float).Sub(x, halfPi))
}

// Log return ln(x) with x.Prec() bits. x must be positive.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with x.Prec() bits.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y. x must be positive.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}
