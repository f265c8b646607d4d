// Package interval implements verified interval arithmetic over float64.
// Every operation returns a set guaranteed to contain the exact mathematical
// result: bounds computed with rounding error are moved outward with [Succ]
// and [Pred] before being returned.
//
// The two value types are [Interval], a closed range [lo, hi], and [Union],
// a sorted list of pairwise disjoint, non-touching intervals. Both are
// immutable and safe for concurrent use.
package interval

import (
	"math"

	"github.com/pkg/errors"
)

// Interval is the closed range [lo, hi] of the extended real line.
// A valid Interval never has a NaN bound, lo <= hi, lo != +Inf and hi != -Inf.
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	lo, hi float64
}

// FullInterval is (-Inf, +Inf).
var FullInterval = Interval{lo: math.Inf(-1), hi: math.Inf(1)}

// New returns the interval [lo, hi].
func New(lo, hi float64) (Interval, error) {
	switch {
	case math.IsNaN(lo) || math.IsNaN(hi):
		return Interval{}, errors.Wrapf(ErrInvalidBound, "[%v, %v]: bounds must not be NaN", lo, hi)
	case lo > hi:
		return Interval{}, errors.Wrapf(ErrInvalidBound, "[%v, %v]: lower bound is greater than upper bound", lo, hi)
	case math.IsInf(lo, 1):
		return Interval{}, errors.Wrapf(ErrInvalidBound, "[%v, %v]: lower bound cannot be +Inf", lo, hi)
	case math.IsInf(hi, -1):
		return Interval{}, errors.Wrapf(ErrInvalidBound, "[%v, %v]: upper bound cannot be -Inf", lo, hi)
	}
	return Interval{lo: lo, hi: hi}, nil
}

// NewPoint returns the degenerate interval [x, x].
func NewPoint(x float64) (Interval, error) {
	return New(x, x)
}

// MustNew is like New but panics on invalid bounds.
func MustNew(lo, hi float64) Interval {
	x, err := New(lo, hi)
	if err != nil {
		panic(err)
	}
	return x
}

// Lo returns the lower bound.
func (x Interval) Lo() float64 {
	return x.lo
}

// Hi returns the upper bound.
func (x Interval) Hi() float64 {
	return x.hi
}

// IsFull returns true if x is (-Inf, +Inf).
func (x Interval) IsFull() bool {
	return math.IsInf(x.lo, -1) && math.IsInf(x.hi, 1)
}

// IsFinite returns true if both bounds are finite.
func (x Interval) IsFinite() bool {
	return !math.IsInf(x.lo, 0) && !math.IsInf(x.hi, 0)
}

// IsDegenerate returns true if x contains a single float.
func (x Interval) IsDegenerate() bool {
	return x.lo == x.hi
}

// Contains returns true if lo <= v <= hi. NaN is never contained.
func (x Interval) Contains(v float64) bool {
	return x.lo <= v && v <= x.hi
}

// Superset returns true if other is included in x.
func (x Interval) Superset(other Interval) bool {
	return x.Contains(other.lo) && x.Contains(other.hi)
}

// Subset returns true if x is included in other.
func (x Interval) Subset(other Interval) bool {
	return other.Superset(x)
}

// Width returns hi - lo, which is +Inf for unbounded intervals.
func (x Interval) Width() float64 {
	return x.hi - x.lo
}
