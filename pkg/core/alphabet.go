package core

import (
	"math/bits"

	"github.com/evolvekit/evolve-go/pkg/errors"
)

// Alphabet is the ordered set of legal gene values for a run. Its length
// fixes the bit width used by the codec; it is immutable once created.
type Alphabet[T comparable] struct {
	values      []T
	bitsPerGene int
}

// NewAlphabet creates an alphabet from the given ordered values.
func NewAlphabet[T comparable](values []T) (*Alphabet[T], error) {
	if len(values) == 0 {
		return nil, errors.New(errors.InvalidAlphabet, "alphabet must contain at least one value")
	}
	owned := make([]T, len(values))
	copy(owned, values)
	return &Alphabet[T]{
		values:      owned,
		bitsPerGene: bits.Len(uint(len(owned) - 1)),
	}, nil
}

// Len returns the number of legal gene values.
func (a *Alphabet[T]) Len() int {
	return len(a.values)
}

// Value returns the gene value at position i.
func (a *Alphabet[T]) Value(i int) T {
	return a.values[i]
}

// Values returns a copy of the full value list.
func (a *Alphabet[T]) Values() []T {
	out := make([]T, len(a.values))
	copy(out, a.values)
	return out
}

// IndexOf returns the position of v in the alphabet. The alphabet only
// requires equality of its value type, so lookup is a linear scan.
func (a *Alphabet[T]) IndexOf(v T) (int, bool) {
	for i, value := range a.values {
		if value == v {
			return i, true
		}
	}
	return 0, false
}

// BitsPerGene returns the smallest bit width able to index every alphabet
// position: the bit length of len-1. A single-value alphabet yields width 0,
// a degenerate encoding in which no mutation is possible.
func (a *Alphabet[T]) BitsPerGene() int {
	return a.bitsPerGene
}
