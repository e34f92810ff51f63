package xoroshiro

import (
	"math/bits"
)

// XoShiro256PP is xoshiro256++ 1.0 by David Blackman and Sebastiano Vigna
// (2019), an all-purpose generator with 256 bits of state. It is the default
// engine. See https://prng.di.unimi.it/xoshiro256plusplus.c
type XoShiro256PP struct {
	Mix   Mixer
	state [4]uint64
}

func NewXoShiro256PP(seed uint64, additional ...uint64) *XoShiro256PP {
	rng := &XoShiro256PP{}
	rng.Seed(seed, additional...)
	return rng
}

func (rng *XoShiro256PP) Seed(seed uint64, additional ...uint64) {
	seedState(rng.state[:], rng.Mix, seed, additional)
}

func (rng *XoShiro256PP) Uint64() uint64 {
	s := &rng.state

	result := bits.RotateLeft64(s[0]+s[3], 23) + s[0]
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

func (rng *XoShiro256PP) Fork() Engine {
	child := &XoShiro256PP{Mix: rng.Mix}
	child.Seed(rng.Uint64())
	return child
}

func (rng *XoShiro256PP) Name() string {
	return NameXoShiro256PP
}

func (rng *XoShiro256PP) SizeHint() int {
	return stateSizeHint(len(rng.state))
}

func (rng *XoShiro256PP) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return marshalState(idXoShiro256PP, rng.state[:], buf, rem)
}

func (rng *XoShiro256PP) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	return unmarshalState(idXoShiro256PP, rng.state[:], buf, rem)
}
