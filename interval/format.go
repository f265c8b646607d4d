package interval

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const emptySet = "{∅}"

// FormatFloat is the default number formatting used by String.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// StringFunc returns x as "[lo, hi]" with bounds formatted by numbers.
func (x Interval) StringFunc(numbers func(float64) string) string {
	return "[" + numbers(x.lo) + ", " + numbers(x.hi) + "]"
}

func (x Interval) String() string {
	return x.StringFunc(FormatFloat)
}

// StringFunc returns u as its intervals joined by " U ",
// with bounds formatted by numbers. The empty set is "{∅}".
func (u Union) StringFunc(numbers func(float64) string) string {
	if u.IsEmpty() {
		return emptySet
	}
	return strings.Join(lo.Map(u.intervals, func(x Interval, _ int) string {
		return x.StringFunc(numbers)
	}), " U ")
}

func (u Union) String() string {
	return u.StringFunc(FormatFloat)
}

// ParseInterval parses "[lo, hi]" or a bare number v, read as [v, v].
func ParseInterval(s string) (Interval, error) {

	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "[") {
		v, err := parseBound(s)
		if err != nil {
			return Interval{}, err
		}
		return NewPoint(v)
	}

	if !strings.HasSuffix(s, "]") {
		return Interval{}, errors.Wrapf(ErrSyntax, "%q: missing closing bracket", s)
	}

	bounds := strings.Split(s[1:len(s)-1], ",")

	switch len(bounds) {
	case 1:
		v, err := parseBound(bounds[0])
		if err != nil {
			return Interval{}, err
		}
		return NewPoint(v)
	case 2:
		lower, err := parseBound(bounds[0])
		if err != nil {
			return Interval{}, err
		}
		upper, err := parseBound(bounds[1])
		if err != nil {
			return Interval{}, err
		}
		return New(lower, upper)
	default:
		return Interval{}, errors.Wrapf(ErrSyntax, "%q: expected one or two bounds", s)
	}
}

// Parse parses a union written as intervals separated by "U" or "∪",
// for example "[-inf, 0] U [1, 2]". "{}", "{∅}" and the empty string
// denote the empty set. The result is normalized.
func Parse(s string) (Union, error) {

	s = strings.TrimSpace(s)

	switch s {
	case "", "{}", emptySet:
		return Empty, nil
	}

	parts := strings.FieldsFunc(strings.ReplaceAll(s, "∪", "U"), func(r rune) bool {
		return r == 'U'
	})

	intervals := make([]Interval, len(parts))
	for i, part := range parts {
		x, err := ParseInterval(part)
		if err != nil {
			return Union{}, err
		}
		intervals[i] = x
	}

	return NewUnion(intervals...), nil
}

// parseBound reads a float64 rounded to nearest. Out of range literals
// become the signed infinity.
func parseBound(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, errors.Wrapf(ErrSyntax, "%q: %s", s, err)
	}
	return v, nil
}
