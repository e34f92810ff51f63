package xrand

import (
	"math"

	"github.com/renproject/xrand/murmur3"
)

// Hasher is a pure 64 bit mixing function.
type Hasher interface {
	Hash(uint64) uint64
}

// HashFunction derives typed values from a seed without any state: the same
// seed always gives the same value. The scaling formulas are those of Source,
// so a HashFunction and a Source give the same distributions for the same
// parameters. HashFunction values are safe for concurrent use as long as the
// Hasher is.
type HashFunction struct {
	hasher Hasher
}

// NewHashFunction wraps h. A nil Hasher means murmur3.
func NewHashFunction(h Hasher) HashFunction {
	if h == nil {
		h = murmur3.Hasher{}
	}
	return HashFunction{hasher: h}
}

func (h HashFunction) Hash(v uint64) uint64 {
	if h.hasher == nil {
		return murmur3.Hash(v)
	}
	return h.hasher.Hash(v)
}

// HashN combines several seeds, in order, by hashing the running result xored
// with each following seed.
func (h HashFunction) HashN(seed1, seed2 uint64, more ...uint64) uint64 {
	result := h.Hash(seed1)
	result = h.Hash(result ^ seed2)
	for _, s := range more {
		result = h.Hash(result ^ s)
	}
	return result
}

func (h HashFunction) HashInt32s(seed int32, more ...int32) uint64 {
	result := h.Hash(int32Seed(seed))
	for _, s := range more {
		result = h.Hash(result ^ int32Seed(s))
	}
	return result
}

// HashFloat32s hashes the IEEE-754 bit patterns of the values.
func (h HashFunction) HashFloat32s(seed float32, more ...float32) uint64 {
	result := h.Hash(float32Seed(seed))
	for _, s := range more {
		result = h.Hash(result ^ float32Seed(s))
	}
	return result
}

// HashFloat64s hashes the IEEE-754 bit patterns of the values.
func (h HashFunction) HashFloat64s(seed float64, more ...float64) uint64 {
	result := h.Hash(math.Float64bits(seed))
	for _, s := range more {
		result = h.Hash(result ^ math.Float64bits(s))
	}
	return result
}

// Bits returns the n most significant bits of the hash of seed.
func (h HashFunction) Bits(seed uint64, n uint) uint64 {
	return h.Hash(seed) >> (64 - n)
}

func (h HashFunction) Bool(seed uint64, p float64) bool {
	return h.Float64(seed) < p
}

func (h HashFunction) Bool32(seed uint64, p float32) bool {
	return h.Float32(seed) < p
}

func (h HashFunction) Byte(seed uint64) byte {
	return byte(int64(h.Hash(seed)) >> (64 - 8))
}

func (h HashFunction) Int32(seed uint64) int32 {
	return int32(int64(h.Hash(seed)) >> 32)
}

func (h HashFunction) Int64n(seed uint64, max int64) (int64, error) {
	if max < 0 {
		return 0, errNegativeMax(max)
	}
	if max == 0 {
		return 0, nil
	}

	return positive(int64(h.Hash(seed))) % max, nil
}

// Int64Range returns a value in [min, max). Ranges wider than MaxInt64 are
// reduced modulo their width.
func (h HashFunction) Int64Range(seed uint64, min, max int64) (int64, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}

	span := uint64(max) - uint64(min)
	if span > math.MaxInt64 {
		return int64(uint64(min) + h.Hash(seed)%span), nil
	}

	v, err := h.Int64n(seed, int64(span))
	return min + v, err
}

func (h HashFunction) Intn(seed uint64, max int) (int, error) {
	v, err := h.Int64n(seed, int64(max))
	return int(v), err
}

func (h HashFunction) IntRange(seed uint64, min, max int) (int, error) {
	v, err := h.Int64Range(seed, int64(min), int64(max))
	return int(v), err
}

func (h HashFunction) Float64(seed uint64) float64 {
	return float64(h.Bits(seed, 53)) / (1 << 53)
}

func (h HashFunction) Float64n(seed uint64, max float64) (float64, error) {
	if max < 0 {
		return 0, errNegativeMax(max)
	}
	return h.Float64(seed) * max, nil
}

func (h HashFunction) Float64Range(seed uint64, min, max float64) (float64, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}
	return min + h.Float64(seed)*(max-min), nil
}

func (h HashFunction) Float32(seed uint64) float32 {
	return float32(h.Bits(seed, 24)) / (1 << 24)
}

func (h HashFunction) Float32n(seed uint64, max float32) (float32, error) {
	if max < 0 {
		return 0, errNegativeMax(max)
	}
	return h.Float32(seed) * max, nil
}

func (h HashFunction) Float32Range(seed uint64, min, max float32) (float32, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}
	return min + h.Float32(seed)*(max-min), nil
}

// Gaussian returns a standard normal deviate for seed. The two uniforms come
// from hash(seed) and hash(hash(seed)); a rejected pair continues the chain
// from hash(hash(seed)).
func (h HashFunction) Gaussian(seed uint64) float64 {
	next := seed
	gaussian, _ := polar(func() float64 {
		next = h.Hash(next)
		return float64(next>>(64-53)) / (1 << 53)
	})
	return gaussian
}

func (h HashFunction) GaussianMeanStd(seed uint64, mean, stdDev float64) float64 {
	return h.Gaussian(seed)*stdDev + mean
}

func (h HashFunction) GaussianFloat32(seed uint64) float32 {
	return float32(h.Gaussian(seed))
}

func (h HashFunction) GaussianFloat32MeanStd(seed uint64, mean, stdDev float32) float32 {
	return float32(h.Gaussian(seed))*stdDev + mean
}
