// Package precision measures how tight and how sound the interval engine is.
//
// For random pairs of finite intervals, the result of each arithmetic
// operation is compared with the exact range of the operation, computed from
// the interval corners with math/big. A result that does not contain the
// exact range is a violation. For sound results, the distance between each
// computed bound and the tightest float64 bound is measured in ulps.
package precision

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/victorpoughon/not-so-float/interval"
	"github.com/victorpoughon/not-so-float/utils/bignum"
	"github.com/victorpoughon/not-so-float/utils/sampling"
)

// checkEvery is the number of samples between two context checks.
const checkEvery = 256

// seedSize is the length in bytes of seeds drawn when none is given.
const seedSize = 32

// Summary holds descriptive statistics of a set of overestimations in ulps.
type Summary struct {
	Min, Max, Mean, Median, P99 float64
}

// Result is the measurement of one operation.
type Result struct {
	Op         Op
	Samples    int
	Violations int
	Lower      Summary
	Upper      Summary
}

// Report is the outcome of Run.
type Report struct {
	Parameters Parameters
	Results    []Result
	Duration   time.Duration
}

// Violations returns the total number of violations over all operations.
func (r Report) Violations() (n int) {
	for _, res := range r.Results {
		n += res.Violations
	}
	return
}

func (res Result) String() string {
	return fmt.Sprintf(`
┌──────────┬──────────┬──────────┐
│ %-8s │ LOWER    │ UPPER    │
├──────────┼──────────┼──────────┤
│MIN ulps  │ %8.0f │ %8.0f │
│MAX ulps  │ %8.0f │ %8.0f │
│AVG ulps  │ %8.2f │ %8.2f │
│MED ulps  │ %8.0f │ %8.0f │
│P99 ulps  │ %8.0f │ %8.0f │
└──────────┴──────────┴──────────┘
Samples    : %d
Violations : %d
`,
		res.Op,
		res.Lower.Min, res.Upper.Min,
		res.Lower.Max, res.Upper.Max,
		res.Lower.Mean, res.Upper.Mean,
		res.Lower.Median, res.Upper.Median,
		res.Lower.P99, res.Upper.P99,
		res.Samples, res.Violations)
}

func (r Report) String() (s string) {
	for _, res := range r.Results {
		s += res.String()
	}
	return
}

// Run measures every operation of p.Ops concurrently and returns the
// results in the order of p.Ops. It stops early if ctx is cancelled.
// An empty seed is replaced by a random one, reported in Report.Parameters.
func Run(ctx context.Context, p Parameters) (Report, error) {

	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	if len(p.Seed) == 0 {
		seed, err := randomSeed()
		if err != nil {
			return Report{}, err
		}
		p.Seed = seed
	}

	start := time.Now()

	results := make([]Result, len(p.Ops))

	eg, ctx := errgroup.WithContext(ctx)
	for i, op := range p.Ops {
		i, op := i, op
		eg.Go(func() (err error) {
			results[i], err = measure(ctx, op, p)
			return
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	return Report{Parameters: p, Results: results, Duration: time.Since(start)}, nil
}

func randomSeed() ([]byte, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create PRNG")
	}
	seed := make([]byte, seedSize)
	if _, err := prng.Read(seed); err != nil {
		return nil, errors.Wrap(err, "cannot draw seed")
	}
	return seed, nil
}

func measure(ctx context.Context, op Op, p Parameters) (Result, error) {

	prng, err := sampling.NewKeyedPRNG(sampling.DeriveKey(p.Seed, string(op)))
	if err != nil {
		return Result{}, errors.Wrapf(err, "cannot create PRNG for %s", op)
	}
	s := sampling.NewSampler(prng)

	res := Result{Op: op, Samples: p.Samples}
	lower := make([]float64, 0, p.Samples)
	upper := make([]float64, 0, p.Samples)

	for i := 0; i < p.Samples; i++ {

		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, errors.Wrapf(err, "%s interrupted after %d samples", op, i)
			}
		}

		x := randomInterval(s, p.Magnitude)
		y := randomInterval(s, p.Magnitude)
		for op == Div && y.Contains(0) {
			y = randomInterval(s, p.Magnitude)
		}

		u := apply(op, x, y)
		lo, hi := exactRange(op, x, y)

		if u.Len() != 1 || bigFloat(u.Lower()).Cmp(lo) > 0 || bigFloat(u.Upper()).Cmp(hi) < 0 {
			res.Violations++
			continue
		}

		tightLo, _ := bignum.Float64Bounds(lo)
		_, tightHi := bignum.Float64Bounds(hi)

		lower = append(lower, Ulps(u.Lower(), tightLo))
		upper = append(upper, Ulps(u.Upper(), tightHi))
	}

	if res.Lower, err = summarize(lower); err != nil {
		return Result{}, errors.Wrapf(err, "cannot summarize %s", op)
	}

	if res.Upper, err = summarize(upper); err != nil {
		return Result{}, errors.Wrapf(err, "cannot summarize %s", op)
	}

	return res, nil
}

func randomInterval(s *sampling.Sampler, magnitude int) interval.Interval {
	a, b := s.Float64Exp(-magnitude, magnitude), s.Float64Exp(-magnitude, magnitude)
	return interval.MustNew(math.Min(a, b), math.Max(a, b))
}

func apply(op Op, x, y interval.Interval) interval.Union {
	switch op {
	case Add:
		return x.Add(y)
	case Sub:
		return x.Sub(y)
	case Mul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

// exactRange returns the exact lower and upper bounds of x op y for finite
// x and y, with y not containing zero for Div. Quotients are rounded outward.
func exactRange(op Op, x, y interval.Interval) (lo, hi *big.Float) {
	switch op {
	case Add:
		return bignum.Add(x.Lo(), y.Lo()), bignum.Add(x.Hi(), y.Hi())
	case Sub:
		return bignum.Sub(x.Lo(), y.Hi()), bignum.Sub(x.Hi(), y.Lo())
	case Mul:
		return extrema(func(a, b float64) (*big.Float, *big.Float) {
			p := bignum.Mul(a, b)
			return p, p
		}, x, y)
	default:
		return extrema(func(a, b float64) (*big.Float, *big.Float) {
			return bignum.Quo(a, b, big.ToNegativeInf), bignum.Quo(a, b, big.ToPositiveInf)
		}, x, y)
	}
}

// extrema returns the smallest lower and the largest upper value of f over
// the four corners of x and y.
func extrema(f func(a, b float64) (lo, hi *big.Float), x, y interval.Interval) (lo, hi *big.Float) {
	for _, a := range []float64{x.Lo(), x.Hi()} {
		for _, b := range []float64{y.Lo(), y.Hi()} {
			l, h := f(a, b)
			if lo == nil || l.Cmp(lo) < 0 {
				lo = l
			}
			if hi == nil || h.Cmp(hi) > 0 {
				hi = h
			}
		}
	}
	return
}

func bigFloat(x float64) *big.Float {
	return new(big.Float).SetFloat64(x)
}

// Ulps returns the number of float64 values between a and b, counting
// infinities as one step past the largest finite value.
func Ulps(a, b float64) float64 {
	return math.Abs(float64(ordered(a)) - float64(ordered(b)))
}

// ordered maps a float64 to an integer preserving its order, with both
// zeros mapped to 0.
func ordered(x float64) int64 {
	bits := int64(math.Float64bits(x) &^ (1 << 63))
	if math.Signbit(x) {
		return -bits
	}
	return bits
}

func summarize(data []float64) (s Summary, err error) {

	if len(data) == 0 {
		return
	}

	if s.Min, err = stats.Min(data); err != nil {
		return
	}
	if s.Max, err = stats.Max(data); err != nil {
		return
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return
	}
	if s.Median, err = stats.Median(data); err != nil {
		return
	}
	s.P99, err = stats.Percentile(data, 99)
	return
}
