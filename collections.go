package xrand

// Element returns a uniformly chosen element of elems.
func Element[T any](src *Source, elems []T) (T, error) {
	var zero T
	if len(elems) == 0 {
		return zero, ErrEmpty
	}

	i, err := src.Intn(len(elems))
	if err != nil {
		return zero, err
	}
	return elems[i], nil
}

// ElementOrZero is like Element but reports an empty slice with false
// instead of an error.
func ElementOrZero[T any](src *Source, elems []T) (T, bool) {
	elem, err := Element(src, elems)
	return elem, err == nil
}

// HashElement returns the element of elems selected by seed.
func HashElement[T any](h HashFunction, seed uint64, elems []T) (T, error) {
	var zero T
	if len(elems) == 0 {
		return zero, ErrEmpty
	}

	i, err := h.Intn(seed, len(elems))
	if err != nil {
		return zero, err
	}
	return elems[i], nil
}

func HashElementOrZero[T any](h HashFunction, seed uint64, elems []T) (T, bool) {
	elem, err := HashElement(h, seed, elems)
	return elem, err == nil
}

// Shuffle permutes elems in place with a Fisher-Yates shuffle, walking
// forwards: element i is swapped with one of the elements i..n-1.
func Shuffle[T any](src *Source, elems []T) {
	n := len(elems)
	for i := 0; i < n-1; i++ {
		// n-i > 0, Intn can not fail.
		offset, _ := src.Intn(n - i)
		j := i + offset
		elems[i], elems[j] = elems[j], elems[i]
	}
}

// Shuffled returns a shuffled copy of elems.
func Shuffled[T any](src *Source, elems []T) []T {
	shuffled := make([]T, len(elems))
	copy(shuffled, elems)

	Shuffle(src, shuffled)

	return shuffled
}

// ShuffledString returns s with its runes shuffled.
func ShuffledString(src *Source, s string) string {
	runes := []rune(s)
	Shuffle(src, runes)
	return string(runes)
}

// Entries produces random values of one type from a Source.
type Entries[T any] interface {
	NextEntry(src *Source) T
}

// EntriesFunc adapts a function to Entries.
type EntriesFunc[T any] func(src *Source) T

func (f EntriesFunc[T]) NextEntry(src *Source) T {
	return f(src)
}

// Draw returns n entries drawn in order from src.
func Draw[T any](src *Source, entries Entries[T], n int) []T {
	if n < 0 {
		n = 0
	}

	drawn := make([]T, n)
	for i := range drawn {
		drawn[i] = entries.NextEntry(src)
	}

	return drawn
}
