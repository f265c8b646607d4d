package interval

// SignClass is the position of an interval relative to zero.
// It drives the case tables of multiplication and division.
type SignClass int

const (
	// P1 is a strictly positive interval: 0 < lo.
	P1 = SignClass(iota)
	// P0 is a positive interval touching zero: lo == 0 < hi.
	P0
	// M straddles zero: lo < 0 < hi.
	M
	// N0 is a negative interval touching zero: lo < 0 == hi.
	N0
	// N1 is a strictly negative interval: hi < 0.
	N1
	// Z is the singleton [0, 0].
	Z
)

func (c SignClass) String() string {
	switch c {
	case P1:
		return "P1"
	case P0:
		return "P0"
	case M:
		return "M"
	case N0:
		return "N0"
	case N1:
		return "N1"
	case Z:
		return "Z"
	default:
		return "SignClass(?)"
	}
}

// Class returns the sign class of x.
func (x Interval) Class() SignClass {
	switch {
	case x.hi < 0:
		return N1
	case x.lo > 0:
		return P1
	case x.lo < 0 && x.hi == 0:
		return N0
	case x.lo == 0 && x.hi > 0:
		return P0
	case x.lo == 0 && x.hi == 0:
		return Z
	default:
		return M
	}
}
