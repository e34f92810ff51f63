package xoroshiro

import (
	"math/bits"
)

// Rotation and shift constants of xoroshiro128+ (2016).
const (
	a = 55
	b = 14
	c = 36
)

// XoroShiro128 is the xoroshiro128+ generator by David Blackman and Sebastiano
// Vigna, the successor to xorshift128+. The lowest bit of each output is an
// LFSR, so callers should prefer the high bits. See http://xorshift.di.unimi.it/
type XoroShiro128 struct {
	Mix   Mixer
	state [2]uint64
}

func NewXoroShiro128(seed uint64, additional ...uint64) *XoroShiro128 {
	rng := &XoroShiro128{}
	rng.Seed(seed, additional...)
	return rng
}

func (rng *XoroShiro128) Seed(seed uint64, additional ...uint64) {
	seedState(rng.state[:], rng.Mix, seed, additional)
}

func (rng *XoroShiro128) Uint64() uint64 {
	result := rng.state[0] + rng.state[1]

	temp := rng.state[0] ^ rng.state[1]
	rng.state[0] = bits.RotateLeft64(rng.state[0], a) ^ temp ^ (temp << b)
	rng.state[1] = bits.RotateLeft64(temp, c)

	return result
}

func (rng *XoroShiro128) Fork() Engine {
	child := &XoroShiro128{Mix: rng.Mix}
	child.Seed(rng.Uint64())
	return child
}

func (rng *XoroShiro128) Name() string {
	return NameXoroShiro128
}

func (rng *XoroShiro128) SizeHint() int {
	return stateSizeHint(len(rng.state))
}

func (rng *XoroShiro128) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return marshalState(idXoroShiro128, rng.state[:], buf, rem)
}

func (rng *XoroShiro128) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	return unmarshalState(idXoroShiro128, rng.state[:], buf, rem)
}
