package interval

import (
	"math"

	"github.com/samber/lo"
)

// Overlaps returns true if x and y share at least one point.
func (x Interval) Overlaps(y Interval) bool {
	return x.hi >= y.lo && x.lo <= y.hi
}

// Intersect returns [max(lo), min(hi)] and true if x and y overlap,
// and false otherwise.
func (x Interval) Intersect(y Interval) (Interval, bool) {
	if !x.Overlaps(y) {
		return Interval{}, false
	}
	return Interval{lo: math.Max(x.lo, y.lo), hi: math.Min(x.hi, y.hi)}, true
}

// Overlaps returns true if some interval of u overlaps some interval of v.
func (u Union) Overlaps(v Union) bool {
	return lo.SomeBy(u.intervals, func(x Interval) bool {
		return lo.SomeBy(v.intervals, x.Overlaps)
	})
}

// Disjoint returns true if every interval of u is disjoint from every
// interval of v. The empty set is disjoint from everything.
func (u Union) Disjoint(v Union) bool {
	return lo.EveryBy(u.intervals, func(x Interval) bool {
		return lo.EveryBy(v.intervals, func(y Interval) bool {
			return !x.Overlaps(y)
		})
	})
}

// Intersection returns u ∩ v. Both unions are walked once in order,
// always advancing the interval that ends first.
func (u Union) Intersection(v Union) Union {

	switch {
	case u.IsEmpty() || v.IsEmpty():
		return Empty
	case u.IsFull():
		return v
	case v.IsFull():
		return u
	}

	var out []Interval
	for i, j := 0, 0; i < len(u.intervals) && j < len(v.intervals); {
		x, y := u.intervals[i], v.intervals[j]

		if z, ok := x.Intersect(y); ok {
			out = append(out, z)
		}

		if x.hi < y.hi {
			i++
		} else {
			j++
		}
	}

	return NewUnion(out...)
}

// Complement returns the closure of the reals outside u: the gaps between
// consecutive intervals plus the two unbounded ends. Since intervals are
// closed, gap endpoints are shared with u.
func (u Union) Complement() Union {

	switch {
	case u.IsEmpty():
		return Full
	case u.IsFull():
		return Empty
	}

	inf := math.Inf(1)
	n := len(u.intervals)

	gaps := make([]Interval, 0, n+1)

	if first := u.intervals[0]; !math.IsInf(first.lo, -1) {
		gaps = append(gaps, Interval{lo: -inf, hi: first.lo})
	}

	for i := 1; i < n; i++ {
		gaps = append(gaps, Interval{lo: u.intervals[i-1].hi, hi: u.intervals[i].lo})
	}

	if last := u.intervals[n-1]; !math.IsInf(last.hi, 1) {
		gaps = append(gaps, Interval{lo: last.hi, hi: inf})
	}

	return NewUnion(gaps...)
}
