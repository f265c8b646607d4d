package interval

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Operand is either an Interval or a Union.
// No other type implements it.
type Operand interface {
	// ToUnion returns the operand as a Union.
	ToUnion() Union
	isOperand()
}

// ToUnion returns the single interval union {x}.
func (x Interval) ToUnion() Union {
	return Union{intervals: []Interval{x}}
}

// ToUnion returns u.
func (u Union) ToUnion() Union {
	return u
}

func (Interval) isOperand() {}
func (Union) isOperand()    {}

// ToUnion coerces the argument a of the operation op. It panics with an
// error wrapping ErrTypeMismatch when a is nil, which includes a nil
// *Interval or *Union: pointers satisfy Operand through the value methods.
func ToUnion(op string, a Operand) Union {
	switch v := a.(type) {
	case Interval:
		return v.ToUnion()
	case Union:
		return v
	case *Interval:
		if v != nil {
			return v.ToUnion()
		}
	case *Union:
		if v != nil {
			return *v
		}
	}
	panic(errors.Wrapf(ErrTypeMismatch, "cannot %s: nil operand", op))
}

// LiftUnary lifts an interval operation to unions: op is applied to every
// interval and the results are merged into a normalized union.
func LiftUnary(op func(x Interval) Union) func(u Union) Union {
	return func(u Union) Union {
		return NewUnion(lo.FlatMap(u.intervals, func(x Interval, _ int) []Interval {
			return op(x).intervals
		})...)
	}
}

// LiftBinary lifts an interval operation to unions: op is applied to the
// cartesian product of the two unions and the results are merged into a
// normalized union.
func LiftBinary(op func(x, y Interval) Union) func(u, v Union) Union {
	return func(u, v Union) Union {
		return NewUnion(lo.FlatMap(u.intervals, func(x Interval, _ int) []Interval {
			return lo.FlatMap(v.intervals, func(y Interval, _ int) []Interval {
				return op(x, y).intervals
			})
		})...)
	}
}

// Add returns a + b.
func Add(a, b Operand) Union {
	return ToUnion("Add", a).Add(ToUnion("Add", b))
}

// Sub returns a - b.
func Sub(a, b Operand) Union {
	return ToUnion("Sub", a).Sub(ToUnion("Sub", b))
}

// Mul returns a * b.
func Mul(a, b Operand) Union {
	return ToUnion("Mul", a).Mul(ToUnion("Mul", b))
}

// Div returns a / b. Division by [0, 0] yields the empty set.
func Div(a, b Operand) Union {
	return ToUnion("Div", a).Div(ToUnion("Div", b))
}

// Neg returns -a.
func Neg(a Operand) Union {
	return ToUnion("Neg", a).Neg()
}

// Overlap returns true if a and b share at least one point.
func Overlap(a, b Operand) bool {
	return ToUnion("Overlap", a).Overlaps(ToUnion("Overlap", b))
}

// Disjoint returns true if a and b share no point.
func Disjoint(a, b Operand) bool {
	return ToUnion("Disjoint", a).Disjoint(ToUnion("Disjoint", b))
}

// Intersection returns the set of points in both a and b.
func Intersection(a, b Operand) Union {
	return ToUnion("Intersection", a).Intersection(ToUnion("Intersection", b))
}

// Complement returns the closure of the set of reals outside a.
func Complement(a Operand) Union {
	return ToUnion("Complement", a).Complement()
}
