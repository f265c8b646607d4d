package interval

import (
	"math"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Union is a set of reals stored as intervals sorted by lower bound,
// pairwise disjoint and non-touching: intervals[i].hi < intervals[i+1].lo.
// The zero value is the empty set.
type Union struct {
	intervals []Interval
}

var (
	// Empty is the empty set.
	Empty = Union{}

	// Full is the whole real line.
	Full = Union{intervals: []Interval{FullInterval}}
)

// NewUnion returns the minimal disjoint cover of the given intervals.
// The input is copied, never aliased nor modified.
func NewUnion(intervals ...Interval) Union {

	if len(intervals) == 0 {
		return Union{}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].lo < sorted[j].lo
	})

	merged := sorted[:1]
	for _, curr := range sorted[1:] {
		last := &merged[len(merged)-1]
		if curr.lo <= last.hi {
			last.hi = math.Max(last.hi, curr.hi)
		} else {
			merged = append(merged, curr)
		}
	}

	return Union{intervals: merged}
}

// Single returns the union holding the single interval [lo, hi].
func Single(lo, hi float64) (Union, error) {
	x, err := New(lo, hi)
	if err != nil {
		return Union{}, err
	}
	return Union{intervals: []Interval{x}}, nil
}

// Bounded returns [Pred(v), Succ(v)], the tightest union
// guaranteed to contain a real whose nearest float is v.
func Bounded(v float64) (Union, error) {
	return Single(Pred(v), Succ(v))
}

// Len returns the number of intervals of u.
func (u Union) Len() int {
	return len(u.intervals)
}

// At returns the i-th interval of u.
func (u Union) At(i int) Interval {
	return u.intervals[i]
}

// Intervals returns a copy of the intervals of u.
func (u Union) Intervals() (intervals []Interval) {
	intervals = make([]Interval, len(u.intervals))
	copy(intervals, u.intervals)
	return
}

// IsEmpty returns true if u is the empty set.
func (u Union) IsEmpty() bool {
	return len(u.intervals) == 0
}

// IsFull returns true if u is the whole real line.
func (u Union) IsFull() bool {
	return len(u.intervals) == 1 && u.intervals[0].IsFull()
}

// Lower returns the infimum of u, +Inf if u is empty.
func (u Union) Lower() float64 {
	if u.IsEmpty() {
		return math.Inf(1)
	}
	return u.intervals[0].lo
}

// Upper returns the supremum of u, -Inf if u is empty.
func (u Union) Upper() float64 {
	if u.IsEmpty() {
		return math.Inf(-1)
	}
	return u.intervals[len(u.intervals)-1].hi
}

// Contains returns true if any interval of u contains v.
func (u Union) Contains(v float64) bool {
	for _, x := range u.intervals {
		if x.Contains(v) {
			return true
		}
	}
	return false
}

// Hull returns the smallest single interval union containing u.
// The hull of the empty set is empty.
func (u Union) Hull() Union {
	if u.IsEmpty() {
		return Empty
	}
	return Union{intervals: []Interval{{lo: u.Lower(), hi: u.Upper()}}}
}

// Equal returns true if u and other hold the same intervals.
func (u Union) Equal(other Union) bool {
	return cmp.Equal(u, other, cmp.AllowUnexported(Union{}, Interval{}), cmpopts.EquateEmpty())
}
