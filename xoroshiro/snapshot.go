package xoroshiro

import (
	"fmt"

	"github.com/renproject/surge"
)

// Snapshot format:
// - [0:1]        engine id
// - [1:1+8*n]    state words, n depends on the engine
const (
	idXorShift128Plus = uint8(0x01)
	idXoroShiro128    = uint8(0x02)
	idXoShiro256PP    = uint8(0x03)
)

func stateSizeHint(n int) int {
	return 1 + 8*n
}

func marshalState(id uint8, state []uint64, buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU8(id, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling engine id: %v", err)
	}

	for i := range state {
		buf, rem, err = surge.MarshalU64(state[i], buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("marshaling state word %v: %v", i, err)
		}
	}

	return buf, rem, nil
}

// unmarshalState only overwrites state when the whole snapshot is valid.
func unmarshalState(id uint8, state []uint64, buf []byte, rem int) ([]byte, int, error) {
	var gotID uint8
	buf, rem, err := surge.UnmarshalU8(&gotID, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling engine id: %v", err)
	}
	if gotID != id {
		return buf, rem, fmt.Errorf("%w: expected id %v but got %v", ErrEngineMismatch, id, gotID)
	}

	words := make([]uint64, len(state))
	nonZero := false
	for i := range words {
		buf, rem, err = surge.UnmarshalU64(&words[i], buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("unmarshaling state word %v: %v", i, err)
		}
		nonZero = nonZero || words[i] != 0
	}
	if !nonZero {
		return buf, rem, ErrZeroState
	}

	copy(state, words)

	return buf, rem, nil
}
