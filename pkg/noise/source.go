// Package noise provides the bounded random offsets the scoring engine adds
// to each algorithm's prediction. Sources are injected so that identical
// (factors, seed) pairs always reproduce identical assessments.
package noise

import (
	"math/rand/v2"
	"time"
)

// Source draws a symmetric offset in [-amplitude, +amplitude].
type Source interface {
	Offset(amplitude float64) float64
}

// Seeded is a Source backed by a PCG generator. Not safe for concurrent use.
type Seeded struct {
	rng  *rand.Rand
	seed uint64
}

// NewSeeded creates a Source whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// MaxSafeSeed is the largest seed a JSON client can hold exactly in an
// IEEE 754 double (2^53 - 1).
const MaxSafeSeed = 1<<53 - 1

// NewSeed returns a time-derived seed no larger than MaxSafeSeed, so it
// survives a round trip through JavaScript clients.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano()) & MaxSafeSeed
}

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() uint64 { return s.seed }

func (s *Seeded) Offset(amplitude float64) float64 {
	return (2*s.rng.Float64() - 1) * amplitude
}

// Zero is a Source that never perturbs.
type Zero struct{}

func (Zero) Offset(float64) float64 { return 0 }

// Scripted replays a fixed list of offsets, then returns 0. Each offset is
// clamped into the requested band.
type Scripted struct {
	offsets []float64
	next    int
}

// NewScripted creates a Scripted source that returns offsets in order.
func NewScripted(offsets ...float64) *Scripted {
	return &Scripted{offsets: offsets}
}

func (s *Scripted) Offset(amplitude float64) float64 {
	if s.next >= len(s.offsets) {
		return 0
	}
	v := s.offsets[s.next]
	s.next++
	if v > amplitude {
		return amplitude
	}
	if v < -amplitude {
		return -amplitude
	}
	return v
}
