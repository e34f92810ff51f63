// Package xoroshiro implements small-state 64 bit pseudo random number
// engines from the xorshift family. Engines are not safe for concurrent use.
// None of them are suitable for cryptographic purposes.
package xoroshiro

import (
	"errors"
	"fmt"
	"sort"

	"github.com/renproject/xrand/murmur3"
)

var (
	ErrUnknownEngine  = errors.New("unknown engine")
	ErrZeroState      = errors.New("state must not be all zero")
	ErrEngineMismatch = errors.New("snapshot was taken from a different engine")
)

// Mixer hashes user provided seeds before they are written to the state, so
// that adjacent seeds give unrelated sequences. A nil Mixer means
// murmur3.Hash.
type Mixer func(uint64) uint64

// Engine is the minimal stateful generator. Uint64 advances the state by
// exactly one step.
type Engine interface {
	Seed(seed uint64, additional ...uint64)
	Uint64() uint64

	// Fork returns a new engine of the same kind seeded from a single draw
	// of this one.
	Fork() Engine
	Name() string

	SizeHint() int
	Marshal(buf []byte, rem int) ([]byte, int, error)
	Unmarshal(buf []byte, rem int) ([]byte, int, error)
}

const (
	NameXorShift128Plus = "xorshift128+"
	NameXoroShiro128    = "xoroshiro128"
	NameXoShiro256PP    = "xoshiro256++"

	DefaultName = NameXoShiro256PP
)

// Replaces zero state words. The constant itself is arbitrary.
const zeroWordBase = 687459134643853105

var constructors = map[string]func(mix Mixer) Engine{
	NameXorShift128Plus: func(mix Mixer) Engine { return &XorShift128Plus{Mix: mix} },
	NameXoroShiro128:    func(mix Mixer) Engine { return &XoroShiro128{Mix: mix} },
	NameXoShiro256PP:    func(mix Mixer) Engine { return &XoShiro256PP{Mix: mix} },
}

// New returns the named engine seeded with the given seeds, using the default
// mixer.
func New(name string, seed uint64, additional ...uint64) (Engine, error) {
	return NewWithMixer(name, nil, seed, additional...)
}

func NewWithMixer(name string, mix Mixer, seed uint64, additional ...uint64) (Engine, error) {
	construct, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	engine := construct(mix)
	engine.Seed(seed, additional...)

	return engine, nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (mix Mixer) hash(v uint64) uint64 {
	if mix == nil {
		return murmur3.Hash(v)
	}
	return mix(v)
}

// seedState fills state from one or more seeds. The first hashed seed goes to
// the first word, additional seeds are xored into the following words
// (wrapping around), words that no seed reached are filled by re-hashing the
// running value. Zero words are then replaced, since an all-zero state only
// ever produces zeros.
func seedState(state []uint64, mix Mixer, seed uint64, additional []uint64) {
	n := len(state)

	s := mix.hash(seed)
	state[0] = s

	inputs := 1 + len(additional)
	for i := 1; i < inputs; i++ {
		s = mix.hash(s) ^ mix.hash(additional[i-1])
		state[i%n] ^= s
	}

	for i := inputs; i < n; i++ {
		s = mix.hash(s)
		state[i] = s
	}

	for i := range state {
		if state[i] == 0 {
			state[i] = zeroWordBase + uint64(i)
		}
	}
}
