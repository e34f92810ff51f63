// Package xrand derives typed random values from a single 64 bit primitive.
// A Source draws from a stateful xoroshiro.Engine, a HashFunction derives the
// same kinds of values from a pure function of a seed. Both use the same bit
// extraction and scaling so equal parameters give equal distributions.
//
// Nothing in this package is suitable for cryptographic purposes.
package xrand

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/renproject/xrand/xoroshiro"
)

// Source is a seeded random sequence. It is not safe for concurrent use; give
// each goroutine its own Source (see Fork and Default).
type Source struct {
	engine xoroshiro.Engine

	// Second deviate of the last polar Box-Muller draw.
	haveExtraGaussian bool
	extraGaussian     float64
}

// New returns a Source drawing from engine, which must not be nil. The engine
// is used as is, it is not re-seeded.
func New(engine xoroshiro.Engine) *Source {
	return &Source{engine: engine}
}

// NewSource returns a Source on the default engine (xoshiro256++).
func NewSource(seed uint64, additional ...uint64) *Source {
	return New(xoroshiro.NewXoShiro256PP(seed, additional...))
}

// Engine returns the underlying engine.
func (src *Source) Engine() xoroshiro.Engine {
	return src.engine
}

// Seed re-initialises the sequence. The same seeds always give the same
// sequence, for any engine.
func (src *Source) Seed(seed uint64, additional ...uint64) {
	src.engine.Seed(seed, additional...)

	// A cached gaussian was computed under the old seed.
	src.haveExtraGaussian = false
	src.extraGaussian = 0
}

func (src *Source) SeedInt64(seed int64, additional ...int64) {
	more := make([]uint64, len(additional))
	for i := range additional {
		more[i] = uint64(additional[i])
	}
	src.Seed(uint64(seed), more...)
}

// SeedInt32 sign-extends the seeds, so SeedInt32(-1) == SeedInt64(-1).
func (src *Source) SeedInt32(seed int32, additional ...int32) {
	more := make([]uint64, len(additional))
	for i := range additional {
		more[i] = int32Seed(additional[i])
	}
	src.Seed(int32Seed(seed), more...)
}

// SeedFloat32 seeds with the IEEE-754 bit patterns of the values, so 1.0 and
// 1 give different sequences.
func (src *Source) SeedFloat32(seed float32, additional ...float32) {
	more := make([]uint64, len(additional))
	for i := range additional {
		more[i] = float32Seed(additional[i])
	}
	src.Seed(float32Seed(seed), more...)
}

// SeedFloat64 seeds with the IEEE-754 bit patterns of the values.
func (src *Source) SeedFloat64(seed float64, additional ...float64) {
	more := make([]uint64, len(additional))
	for i := range additional {
		more[i] = math.Float64bits(additional[i])
	}
	src.Seed(math.Float64bits(seed), more...)
}

// SeedBytes seeds with b split into little endian 64 bit words, the last one
// zero padded. An empty slice seeds like Seed(0).
func (src *Source) SeedBytes(b []byte) {
	if len(b) == 0 {
		src.Seed(0)
		return
	}

	words := make([]uint64, (len(b)+7)/8)
	for i := range words {
		var word [8]byte
		copy(word[:], b[8*i:])
		words[i] = binary.LittleEndian.Uint64(word[:])
	}

	src.Seed(words[0], words[1:]...)
}

func int32Seed(v int32) uint64 {
	return uint64(int64(v))
}

func float32Seed(v float32) uint64 {
	return int32Seed(int32(math.Float32bits(v)))
}

// Uint64 advances the engine by one step.
func (src *Source) Uint64() uint64 {
	return src.engine.Uint64()
}

func (src *Source) Int64() int64 {
	return int64(src.engine.Uint64())
}

// Uint32 returns the high 32 bits of a draw.
func (src *Source) Uint32() uint32 {
	return uint32(src.engine.Uint64() >> 32)
}

// Int32 returns the signed high 32 bits of a draw.
func (src *Source) Int32() int32 {
	return int32(src.Int64() >> 32)
}

// Bits returns the n most significant bits of a draw, for 0 < n <= 64. The
// low bits of these engines are the weakest.
func (src *Source) Bits(n uint) uint64 {
	return src.engine.Uint64() >> (64 - n)
}

// Int64n returns a value in [0, max). A max of zero returns zero.
func (src *Source) Int64n(max int64) (int64, error) {
	if max < 0 {
		return 0, errNegativeMax(max)
	}
	if max == 0 {
		return 0, nil
	}

	return positive(src.Int64()) % max, nil
}

// Int64Range returns a value in [min, max).
func (src *Source) Int64Range(min, max int64) (int64, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}

	span := uint64(max) - uint64(min)
	if span > math.MaxInt64 {
		// Wider than any Int64n bound, draw until the value lands in range.
		for {
			v := src.Int64()
			if v >= min && v < max {
				return v, nil
			}
		}
	}

	v, err := src.Int64n(int64(span))
	return min + v, err
}

// Intn returns a value in [0, max).
func (src *Source) Intn(max int) (int, error) {
	v, err := src.Int64n(int64(max))
	return int(v), err
}

// IntRange returns a value in [min, max).
func (src *Source) IntRange(min, max int) (int, error) {
	v, err := src.Int64Range(int64(min), int64(max))
	return int(v), err
}

// Float64 returns a value in [0, 1) using all 53 mantissa bits.
func (src *Source) Float64() float64 {
	return float64(src.Bits(53)) / (1 << 53)
}

func (src *Source) Float64n(max float64) (float64, error) {
	if max < 0 {
		return 0, errNegativeMax(max)
	}
	return src.Float64() * max, nil
}

func (src *Source) Float64Range(min, max float64) (float64, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}
	return min + src.Float64()*(max-min), nil
}

// Float32 returns a value in [0, 1) using all 24 mantissa bits.
func (src *Source) Float32() float32 {
	return float32(src.Bits(24)) / (1 << 24)
}

func (src *Source) Float32n(max float32) (float32, error) {
	if max < 0 {
		return 0, errNegativeMax(max)
	}
	return src.Float32() * max, nil
}

func (src *Source) Float32Range(min, max float32) (float32, error) {
	if max < min {
		return 0, errMaxBelowMin(min, max)
	}
	return min + src.Float32()*(max-min), nil
}

// Bool returns true with a probability of one half.
func (src *Source) Bool() bool {
	return src.BoolP(0.5)
}

// BoolP returns true with probability p, where 0 is never and 1 is always.
func (src *Source) BoolP(p float64) bool {
	return src.Float64() < p
}

func (src *Source) BoolP32(p float32) bool {
	return src.Float32() < p
}

// Byte returns the high byte of a draw.
func (src *Source) Byte() byte {
	return byte(src.Int64() >> (64 - 8))
}

// Bytes writes count random bytes to out starting at start, one draw per
// byte.
func (src *Source) Bytes(out []byte, start, count int) error {
	if start < 0 || start > len(out) {
		return fmt.Errorf("%w: start %v is outside of 0..%v", ErrInvalidRange, start, len(out))
	}
	if count < 0 || count > len(out)-start {
		return fmt.Errorf("%w: count %v is outside of 0..%v", ErrInvalidRange, count, len(out)-start)
	}

	for i := start; i < start+count; i++ {
		out[i] = src.Byte()
	}

	return nil
}

// Read fills p with random bytes, eight per draw. It implements io.Reader and
// never fails.
func (src *Source) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], src.Uint64())
		copy(p[i:], word[:])
	}

	return len(p), nil
}

// Dice throws count dice with the given number of sides and sums the results.
func (src *Source) Dice(count, sides int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: dice count should not be negative, but it was %v", ErrInvalidRange, count)
	}

	sum := 0
	for i := 0; i < count; i++ {
		v, err := src.Intn(sides)
		if err != nil {
			return 0, err
		}
		sum += v + 1
	}

	return sum, nil
}

// RoundRandomly returns one of the two integers adjacent to v, choosing the
// upper one with a probability equal to the fractional part of v.
func (src *Source) RoundRandomly(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: can not randomly round %v", ErrNotFinite, v)
	}

	floor := math.Floor(v)
	if floor < float64(math.MinInt) || floor+1 > -float64(math.MinInt) {
		return 0, fmt.Errorf("%w: %v does not round to an int", ErrInvalidRange, v)
	}
	if src.BoolP(v - floor) {
		return int(floor) + 1, nil
	}
	return int(floor), nil
}

// Fork returns a new Source on a forked engine. The child is seeded from one
// draw of the parent.
func (src *Source) Fork() *Source {
	return New(src.engine.Fork())
}

func positive(v int64) int64 {
	if v < 0 {
		v = -v
	}
	// -MinInt64 overflows back to MinInt64.
	if v == math.MinInt64 {
		v = 0
	}
	return v
}
