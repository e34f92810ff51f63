package xrand

import (
	"math/rand"
)

const maxInt63 = (1 << 63) - 1

// Rand returns a math/rand generator drawing from src. They share state, so
// the same single goroutine rule applies.
func (src *Source) Rand() *rand.Rand {
	return rand.New(source64{src: src})
}

type source64 struct {
	src *Source
}

func (s source64) Uint64() uint64 {
	return s.src.Uint64()
}

// Int63 drops the lowest bit, the weakest one.
func (s source64) Int63() int64 {
	return int64(s.src.Uint64()>>1) & maxInt63
}

func (s source64) Seed(seed int64) {
	s.src.SeedInt64(seed)
}
