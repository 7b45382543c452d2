package core

import (
	"sort"

	"github.com/evolvekit/evolve-go/pkg/errors"
)

// Population is an ordered collection of candidates. The engine keeps it
// sorted by strength, strongest first, between generations.
type Population[T comparable] []*Candidate[T]

// NewPopulation builds a population from raw gene sequences. The first
// sequence fixes the gene length for the whole run; a mismatch anywhere is a
// fatal shape error.
func NewPopulation[T comparable](genes [][]T) (Population[T], error) {
	if len(genes) == 0 {
		return nil, errors.New(errors.InvalidPopulation, "population must contain at least one subject")
	}
	length := len(genes[0])
	population := make(Population[T], 0, len(genes))
	for i, sequence := range genes {
		if len(sequence) != length {
			return nil, errors.WithFields(
				errors.New(errors.InvalidPopulation, "all gene sequences must have the same length"),
				errors.Fields{"index": i, "want": length, "got": len(sequence)},
			)
		}
		population = append(population, NewCandidate(sequence))
	}
	return population, nil
}

// Sort orders candidates by strength descending. The sort is stable so
// candidates of equal strength keep their relative order.
func (p Population[T]) Sort() {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].strength > p[j].strength
	})
}

// TotalStrength sums all candidate strengths. Any ideal candidate makes the
// total +Inf.
func (p Population[T]) TotalStrength() float64 {
	total := 0.0
	for _, c := range p {
		total += c.strength
	}
	return total
}

// Genes returns a copy of every candidate's gene sequence in population
// order.
func (p Population[T]) Genes() [][]T {
	out := make([][]T, 0, len(p))
	for _, c := range p {
		out = append(out, c.Genes())
	}
	return out
}

// Clone returns an independent copy of the population.
func (p Population[T]) Clone() Population[T] {
	clone := make(Population[T], 0, len(p))
	for _, c := range p {
		clone = append(clone, c.Clone())
	}
	return clone
}
