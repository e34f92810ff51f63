package xrand

import (
	"fmt"
	"math"
)

// Weighted holds entries with weights and draws them with a probability
// proportional to their weight. Entries are visited in insertion order. The
// zero value is an empty Weighted ready to use.
type Weighted[T comparable] struct {
	order   []T
	weights map[T]float64
	total   float64
}

// NewWeighted returns a Weighted holding the given entries, added in the
// order of the slice.
func NewWeighted[T comparable](entries []T, weights []float64) (*Weighted[T], error) {
	if len(entries) != len(weights) {
		return nil, fmt.Errorf("%w: %v entries but %v weights", ErrInvalidRange, len(entries), len(weights))
	}

	w := &Weighted[T]{}
	for i, entry := range entries {
		if err := w.Add(entry, weights[i]); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func checkWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: weight %v", ErrNotFinite, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: weight should not be negative, but it was %v", ErrInvalidRange, weight)
	}
	return nil
}

// Add adds weight to entry, inserting it when it is not present yet.
func (w *Weighted[T]) Add(entry T, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}

	if w.weights == nil {
		w.weights = map[T]float64{}
	}
	current, ok := w.weights[entry]
	if !ok {
		w.order = append(w.order, entry)
	}
	w.weights[entry] = current + weight
	w.total += weight
	return nil
}

// Set replaces the weight of entry. A zero weight removes it.
func (w *Weighted[T]) Set(entry T, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}

	w.Remove(entry)
	if weight > 0 {
		return w.Add(entry, weight)
	}
	return nil
}

func (w *Weighted[T]) Remove(entry T) {
	weight, ok := w.weights[entry]
	if !ok {
		return
	}

	delete(w.weights, entry)
	w.total -= weight
	for i, e := range w.order {
		if e == entry {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	if len(w.order) == 0 {
		// Drop accumulated rounding error.
		w.total = 0
	}
}

func (w *Weighted[T]) Len() int {
	return len(w.order)
}

func (w *Weighted[T]) TotalWeight() float64 {
	return w.total
}

// RelativeWeight returns the share of the total weight held by entry, or 0
// for entries that are not present.
func (w *Weighted[T]) RelativeWeight(entry T) float64 {
	weight := w.weights[entry]
	if weight <= 0 {
		return 0
	}
	return weight / w.total
}

// Entry draws an entry. It returns ErrEmpty when no entry has a positive
// weight.
func (w *Weighted[T]) Entry(src *Source) (T, error) {
	var zero T
	if w.total <= 0 {
		return zero, ErrEmpty
	}

	pos, err := src.Float64n(w.total)
	if err != nil {
		return zero, err
	}

	last, found := zero, false
	for _, entry := range w.order {
		weight := w.weights[entry]
		if weight == 0 {
			continue
		}
		last, found = entry, true

		pos -= weight
		if pos <= 0 {
			return entry, nil
		}
	}

	// Rounding can leave pos slightly above zero after the last entry.
	if found {
		return last, nil
	}
	return zero, ErrEmpty
}

// NextEntry implements Entries. It returns the zero value when w is empty.
func (w *Weighted[T]) NextEntry(src *Source) T {
	entry, _ := w.Entry(src)
	return entry
}
