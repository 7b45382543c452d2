package core

import (
	"math"
	"slices"

	"github.com/evolvekit/evolve-go/pkg/errors"
)

// StrengthFunc scores a gene sequence. It must return a non-negative value;
// +Inf is reserved to mean an ideal, terminal solution.
type StrengthFunc[T comparable] func(genes []T) float64

// OffspringFunc recombines two parent gene sequences into two children. Both
// outputs must keep the parents' length.
type OffspringFunc[T comparable] func(father, mother []T) ([]T, []T)

// Candidate is one member of the population: a gene sequence plus the
// strength and selection probability derived from it.
type Candidate[T comparable] struct {
	genes       []T
	strength    float64
	probability float64
}

// NewCandidate creates a candidate owning a copy of the given genes.
func NewCandidate[T comparable](genes []T) *Candidate[T] {
	owned := make([]T, len(genes))
	copy(owned, genes)
	return &Candidate[T]{genes: owned}
}

// Genes returns a copy of the candidate's gene sequence.
func (c *Candidate[T]) Genes() []T {
	out := make([]T, len(c.genes))
	copy(out, c.genes)
	return out
}

// Len returns the gene sequence length.
func (c *Candidate[T]) Len() int {
	return len(c.genes)
}

// Strength returns the last evaluated strength.
func (c *Candidate[T]) Strength() float64 {
	return c.strength
}

// Probability returns the candidate's normalized share of total population
// strength. Only valid after Normalize has been applied for the current
// strength values.
func (c *Candidate[T]) Probability() float64 {
	return c.probability
}

// Evaluate recomputes strength through the caller-supplied function and
// resets the probability. A negative result is a caller-contract violation.
func (c *Candidate[T]) Evaluate(strength StrengthFunc[T]) error {
	s := strength(c.genes)
	if s < 0 || math.IsNaN(s) {
		return errors.WithFields(
			errors.New(errors.InvalidStrength, "strength function returned an invalid value"),
			errors.Fields{"strength": s},
		)
	}
	c.strength = s
	c.probability = 0
	return nil
}

// Normalize derives the selection probability from the population's total
// strength. When the total is infinite only candidates that are themselves
// ideal carry probability mass; when the total is zero no candidate does.
func (c *Candidate[T]) Normalize(totalStrength float64) error {
	if math.IsInf(totalStrength, 1) {
		if math.IsInf(c.strength, 1) {
			c.probability = 1
		} else {
			c.probability = 0
		}
		return nil
	}
	if totalStrength == 0 {
		c.probability = 0
		return nil
	}

	p := c.strength / totalStrength
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.WithFields(
			errors.New(errors.InvalidProbability, "normalized probability outside [0,1]"),
			errors.Fields{"probability": p, "strength": c.strength, "total": totalStrength},
		)
	}
	c.probability = p
	return nil
}

// Mutate flips each encoded bit independently with the given odds and
// replaces the gene sequence with the decoded result. Every bit consumes one
// draw from the shared source regardless of outcome, keeping the draw order
// reproducible. A zero-width alphabet has no bits to flip and leaves the
// genes untouched.
func (c *Candidate[T]) Mutate(mutationOdds float64, alphabet *Alphabet[T], rng *Rng) error {
	if alphabet.BitsPerGene() == 0 {
		return nil
	}

	encoded, err := Encode(c.genes, alphabet)
	if err != nil {
		return err
	}
	for i := range encoded {
		if rng.Draw() <= mutationOdds {
			encoded[i] = !encoded[i]
		}
	}
	decoded, err := Decode(encoded, alphabet)
	if err != nil {
		return err
	}
	c.genes = decoded
	return nil
}

// SameGenes reports whether both candidates carry an identical gene sequence.
// Strength and probability never take part in equality; duplicate detection
// depends on that.
func (c *Candidate[T]) SameGenes(other *Candidate[T]) bool {
	return slices.Equal(c.genes, other.genes)
}

// Clone returns an independent copy of the candidate.
func (c *Candidate[T]) Clone() *Candidate[T] {
	clone := NewCandidate(c.genes)
	clone.strength = c.strength
	clone.probability = c.probability
	return clone
}
