package xoroshiro

// XorShift128Plus is the xorshift128+ generator, see
// http://xorshift.di.unimi.it/xorshift128plus.c
type XorShift128Plus struct {
	Mix   Mixer
	state [2]uint64
}

func NewXorShift128Plus(seed uint64, additional ...uint64) *XorShift128Plus {
	rng := &XorShift128Plus{}
	rng.Seed(seed, additional...)
	return rng
}

func (rng *XorShift128Plus) Seed(seed uint64, additional ...uint64) {
	seedState(rng.state[:], rng.Mix, seed, additional)
}

func (rng *XorShift128Plus) Uint64() uint64 {
	s1 := rng.state[0]
	s0 := rng.state[1]

	rng.state[0] = s0
	s1 ^= s1 << 23
	rng.state[1] = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)

	return rng.state[1] + s0
}

func (rng *XorShift128Plus) Fork() Engine {
	child := &XorShift128Plus{Mix: rng.Mix}
	child.Seed(rng.Uint64())
	return child
}

func (rng *XorShift128Plus) Name() string {
	return NameXorShift128Plus
}

func (rng *XorShift128Plus) SizeHint() int {
	return stateSizeHint(len(rng.state))
}

func (rng *XorShift128Plus) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return marshalState(idXorShift128Plus, rng.state[:], buf, rem)
}

func (rng *XorShift128Plus) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	return unmarshalState(idXorShift128Plus, rng.state[:], buf, rem)
}
