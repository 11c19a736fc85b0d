package duel

import (
	"math/rand/v2"
	"time"
)

// Sampler picks a delay in the closed interval [min, max].
type Sampler interface {
	Between(min, max time.Duration) time.Duration
}

// RandSampler draws delays uniformly from a math/rand source.
type RandSampler struct {
	r *rand.Rand
}

// NewRandSampler returns a sampler seeded from the runtime's random source.
func NewRandSampler() *RandSampler {
	return &RandSampler{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSampler returns a reproducible sampler.
func NewSeededSampler(seed uint64) *RandSampler {
	return &RandSampler{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandSampler) Between(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.r.Int64N(int64(max-min)+1))
}

// Float returns a value in [0, 1).
func (s *RandSampler) Float() float64 {
	return s.r.Float64()
}
