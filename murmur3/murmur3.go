// Package murmur3 implements the 64 bit finalizer of MurmurHash3 as a
// standalone mixing function. See https://github.com/aappleby/smhasher.
package murmur3

const (
	// The finalizer maps zero to zero, so zero inputs are replaced by this
	// value before mixing.
	zeroReplacement = 9837421349

	c1 = 0xff51afd7ed558ccd
	c2 = 0xc4ceb9fe1a85ec53
)

// Hash returns the avalanche mix of v. It is a total function; Hash(0) is
// well defined and non-zero.
func Hash(v uint64) uint64 {
	if v == 0 {
		v = zeroReplacement
	}

	v ^= v >> 33
	v *= c1
	v ^= v >> 33
	v *= c2
	v ^= v >> 33

	return v
}

// Hasher is a stateless value wrapping Hash. The zero value is ready to use
// and safe for concurrent use.
type Hasher struct{}

func (Hasher) Hash(v uint64) uint64 {
	return Hash(v)
}
