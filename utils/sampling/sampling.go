// Package sampling implements reproducible sampling of bytes and floats.
package sampling

import (
	"encoding/binary"
	"math"
)

// Sampler draws integers and float64 values from a PRNG.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	prng PRNG
	buff [8]byte
}

// NewSampler returns a Sampler reading from prng.
func NewSampler(prng PRNG) *Sampler {
	return &Sampler{prng: prng}
}

// Uint64 returns a uniform value in [0, 0xFFFFFFFFFFFFFFFF].
func (s *Sampler) Uint64() uint64 {
	if _, err := s.prng.Read(s.buff[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buff[:])
}

// Intn returns a uniform value in [0, n-1]. It panics if n <= 0.
func (s *Sampler) Intn(n int) int {
	if n <= 0 {
		panic("cannot Intn: n must be positive")
	}
	return int(s.Uint64() % uint64(n))
}

// Bool returns a uniform boolean.
func (s *Sampler) Bool() bool {
	return s.Uint64()&1 == 1
}

// Float64 returns a uniform float in [min, max].
func (s *Sampler) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return math.Min(max, min+f*(max-min))
}

// Float64Exp returns a float of random sign with a mantissa uniform in
// [1, 2) and a binary exponent uniform in [minExp, maxExp], which spreads
// the samples over many orders of magnitude.
func (s *Sampler) Float64Exp(minExp, maxExp int) float64 {
	exp := minExp + s.Intn(maxExp-minExp+1)
	v := math.Ldexp(s.Float64(1, 2), exp)
	if s.Bool() {
		return -v
	}
	return v
}
