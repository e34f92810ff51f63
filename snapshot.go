package xrand

import (
	"fmt"
	"math"

	"github.com/renproject/surge"
)

// Snapshot format:
// - [0:1] whether a gaussian is cached
// - [1:9] the cached gaussian, as IEEE-754 bits
// - [9:]  engine snapshot, see xoroshiro
//
// A snapshot restores into a Source on the same kind of engine.

func (src *Source) SizeHint() int {
	return 1 + 8 + src.engine.SizeHint()
}

func (src *Source) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalBool(src.haveExtraGaussian, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling gaussian flag: %v", err)
	}

	buf, rem, err = surge.MarshalU64(math.Float64bits(src.extraGaussian), buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling gaussian: %v", err)
	}

	return src.engine.Marshal(buf, rem)
}

func (src *Source) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var haveExtra bool
	buf, rem, err := surge.UnmarshalBool(&haveExtra, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling gaussian flag: %v", err)
	}

	var extraBits uint64
	buf, rem, err = surge.UnmarshalU64(&extraBits, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling gaussian: %v", err)
	}

	buf, rem, err = src.engine.Unmarshal(buf, rem)
	if err != nil {
		return buf, rem, err
	}

	src.haveExtraGaussian = haveExtra
	src.extraGaussian = math.Float64frombits(extraBits)

	return buf, rem, nil
}
