package xrand

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrEmpty        = errors.New("no elements to choose from")
	ErrNotFinite    = errors.New("value is not finite")
)

func errMaxBelowMin(min, max interface{}) error {
	return fmt.Errorf("%w: max (%v) should be greater or equal to min (%v)", ErrInvalidRange, max, min)
}

func errNegativeMax(max interface{}) error {
	return fmt.Errorf("%w: max should not be negative, but it was %v", ErrInvalidRange, max)
}
