package engine

import (
	"github.com/evolvekit/evolve-go/pkg/core"
)

// selectParent runs roulette-wheel selection over the current population,
// which is kept sorted strongest-first. The draw lies in (0,1]; candidates
// are scanned in sorted order accumulating probability mass, so the
// strongest candidates get the earliest selection opportunity.
//
// When excluded is non-nil (picking a mother after the father is fixed), the
// draw is rescaled by the probability mass that remains once the excluded
// candidate is taken out, and every candidate with the excluded gene
// sequence is skipped during the scan. The rescale treats the remaining mass
// as the new normalization base, not a recomputed conditional distribution.
// Exclusion compares gene content, so a distinct candidate carrying
// identical genes is skipped as well.
func (e *Engine[T]) selectParent(excluded *core.Candidate[T]) *core.Candidate[T] {
	r := e.rng.Draw()
	if excluded != nil {
		r *= 1 - excluded.Probability()
	}

	cumulative := 0.0
	for _, candidate := range e.population {
		if excluded != nil && candidate.SameGenes(excluded) {
			continue
		}
		cumulative += candidate.Probability()
		if cumulative >= r {
			return candidate
		}
	}

	// Floating rounding can leave the accumulated mass short of the draw;
	// fall back to the last candidate in sorted order.
	return e.population[len(e.population)-1]
}

// breedCouples selects father/mother pairs and produces two children per
// couple through the caller-supplied offspring function. Selection always
// draws father first, then mother, to keep the draw sequence fixed.
func (e *Engine[T]) breedCouples(couples int) core.Population[T] {
	children := make(core.Population[T], 0, couples*2)
	for i := 0; i < couples; i++ {
		father := e.selectParent(nil)
		mother := e.selectParent(father)

		genesA, genesB := e.offspring(father.Genes(), mother.Genes())
		children = append(children, core.NewCandidate(genesA), core.NewCandidate(genesB))
	}
	return children
}
