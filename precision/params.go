package precision

import (
	"github.com/pkg/errors"
)

// Op names an arithmetic operation of the engine.
type Op string

const (
	Add Op = "add"
	Sub Op = "sub"
	Mul Op = "mul"
	Div Op = "div"
)

// AllOps lists every operation measured by Run.
var AllOps = []Op{Add, Sub, Mul, Div}

// MaxMagnitude is the largest binary exponent for which all sampled bounds
// are finite.
const MaxMagnitude = 1000

// ErrInvalidParameters is returned by Parameters.Validate.
var ErrInvalidParameters = errors.New("invalid precision parameters")

// Parameters configures a precision experiment.
type Parameters struct {
	// Samples is the number of random interval pairs per operation.
	Samples int
	// Seed keys the random generators. Each operation derives its own key,
	// so results do not depend on scheduling.
	Seed []byte
	// Magnitude bounds the binary exponent of the sampled bounds to
	// [-Magnitude, Magnitude].
	Magnitude int
	// Ops are the operations to measure.
	Ops []Op
}

// DefaultParameters is a quick experiment over every operation.
var DefaultParameters = Parameters{
	Samples:   4096,
	Seed:      []byte("not-so-float"),
	Magnitude: 64,
	Ops:       AllOps,
}

// ParseOp returns the Op named s.
func ParseOp(s string) (Op, error) {
	for _, op := range AllOps {
		if string(op) == s {
			return op, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidParameters, "unknown operation %q", s)
}

// Validate checks that p describes a runnable experiment.
func (p Parameters) Validate() error {

	if p.Samples <= 0 {
		return errors.Wrapf(ErrInvalidParameters, "samples must be positive, got %d", p.Samples)
	}

	if p.Magnitude < 0 || p.Magnitude > MaxMagnitude {
		return errors.Wrapf(ErrInvalidParameters, "magnitude must be in [0, %d], got %d", MaxMagnitude, p.Magnitude)
	}

	if len(p.Ops) == 0 {
		return errors.Wrap(ErrInvalidParameters, "no operation selected")
	}

	seen := map[Op]bool{}
	for _, op := range p.Ops {
		if _, err := ParseOp(string(op)); err != nil {
			return err
		}
		if seen[op] {
			return errors.Wrapf(ErrInvalidParameters, "operation %q selected twice", op)
		}
		seen[op] = true
	}

	return nil
}
