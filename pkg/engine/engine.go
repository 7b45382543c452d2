// Package engine implements the generational evolution loop: selection,
// breeding, mutation, elitism, duplicate control and termination.
//
// The engine is generic over the gene value type and fully synchronous. Its
// only mutable shared resource is the deterministic random source, consumed
// in a fixed left-to-right order each generation (father/mother draws per
// bred couple, then per-bit mutation draws in population order), so a fixed
// seed, population and configuration always reproduce the same run.
package engine

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/evolvekit/evolve-go/pkg/core"
	"github.com/evolvekit/evolve-go/pkg/errors"
	"github.com/evolvekit/evolve-go/pkg/logging"
)

// EndReason reports why a run stopped.
type EndReason int

const (
	// EndReasonNone means the engine has not terminated yet.
	EndReasonNone EndReason = iota
	// EndReasonCompleted means every configured generation ran.
	EndReasonCompleted
	// EndReasonIdealSolutionFound means a candidate reached infinite strength.
	EndReasonIdealSolutionFound
	// EndReasonPopulationPerished means fewer than two candidates survived.
	EndReasonPopulationPerished
)

// String provides human-readable end reasons.
func (r EndReason) String() string {
	switch r {
	case EndReasonNone:
		return "none"
	case EndReasonCompleted:
		return "completed"
	case EndReasonIdealSolutionFound:
		return "ideal solution found"
	case EndReasonPopulationPerished:
		return "population perished"
	default:
		return "unknown"
	}
}

// Engine drives the generational loop over a population of candidates. The
// strength and offspring functions are supplied by the caller; the engine
// only calls them through their contracts (strength non-negative with +Inf
// meaning ideal, offspring preserving gene length).
type Engine[T comparable] struct {
	config    *Config
	alphabet  *core.Alphabet[T]
	strength  core.StrengthFunc[T]
	offspring core.OffspringFunc[T]

	rng        *core.Rng
	population core.Population[T]
	seedGenes  [][]T

	generation int
	endReason  EndReason
}

// New validates all construction inputs eagerly and returns a ready engine.
// A nil config gets DefaultConfig. Every subject must use genes drawn from
// the alphabet, and all gene sequences must share one length.
func New[T comparable](
	genes [][]T,
	alphabet []T,
	strength core.StrengthFunc[T],
	offspring core.OffspringFunc[T],
	config *Config,
) (*Engine[T], error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if strength == nil {
		return nil, errors.New(errors.InvalidInput, "strength function is required")
	}
	if offspring == nil {
		return nil, errors.New(errors.InvalidInput, "offspring function is required")
	}

	alpha, err := core.NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	population, err := core.NewPopulation(genes)
	if err != nil {
		return nil, err
	}
	for _, sequence := range genes {
		for _, gene := range sequence {
			if _, ok := alpha.IndexOf(gene); !ok {
				return nil, errors.WithFields(
					errors.New(errors.UnknownGene, "population gene not present in alphabet"),
					errors.Fields{"gene": gene},
				)
			}
		}
	}

	cfg := *config
	seeds := make([][]T, len(genes))
	for i, sequence := range genes {
		seeds[i] = make([]T, len(sequence))
		copy(seeds[i], sequence)
	}

	return &Engine[T]{
		config:     &cfg,
		alphabet:   alpha,
		strength:   strength,
		offspring:  offspring,
		rng:        core.NewRng(cfg.Seed),
		population: population,
		seedGenes:  seeds,
	}, nil
}

// Evolve runs the full generational loop and returns the terminal reason.
// Generation 0 only evaluates the seed population; each later generation
// kills misfits, carries elitists forward, breeds the rest, resolves
// duplicates, mutates everyone and re-evaluates. Termination is only checked
// between generations; a generation that has begun runs to completion.
func (e *Engine[T]) Evolve(ctx context.Context) (EndReason, error) {
	logger := logging.GetLogger()
	ctx = logging.WithRunID(ctx, uuid.New().String())

	e.endReason = EndReasonNone
	e.generation = 0

	logger.Info(ctx, "starting evolution: population=%d generations=%d elitism=%.2f mutation_odds=%.4f duplication=%s seed=%d",
		len(e.population),
		e.config.Generations,
		e.config.ElitismRatio,
		e.config.MutationOdds,
		e.config.Duplication,
		e.config.Seed)

	genCtx := logging.WithGeneration(ctx, 0)
	if err := e.evaluate(); err != nil {
		return EndReasonNone, err
	}
	e.logGeneration(genCtx)
	if e.hasIdealSolution() {
		return e.terminate(genCtx, EndReasonIdealSolutionFound), nil
	}

	for generation := 1; generation <= e.config.Generations; generation++ {
		if err := errors.CheckContext(ctx, "evolve"); err != nil {
			return EndReasonNone, err
		}
		e.generation = generation
		genCtx := logging.WithGeneration(ctx, generation)

		reason, err := e.runGeneration(genCtx)
		if err != nil {
			return EndReasonNone, err
		}
		e.logGeneration(genCtx)
		if reason != EndReasonNone {
			return e.terminate(genCtx, reason), nil
		}
	}

	return e.terminate(ctx, EndReasonCompleted), nil
}

// runGeneration processes one reproduction round and reports a terminal
// reason, or EndReasonNone to continue.
func (e *Engine[T]) runGeneration(ctx context.Context) (EndReason, error) {
	prevSize := len(e.population)

	// Misfits have zero strength and no chance of reproducing.
	survivors := make(core.Population[T], 0, prevSize)
	for _, candidate := range e.population {
		if candidate.Strength() != 0 {
			survivors = append(survivors, candidate)
		}
	}
	e.population = survivors

	if len(e.population) < 2 {
		return EndReasonPopulationPerished, nil
	}

	// The population is still sorted from the previous generation, so the
	// elitists are its head. Misfit removal keeps the order and can only
	// drop zero-strength tails, clamped here for the rare case it cuts into
	// the elitist count.
	elitistCount := int(math.Round(e.config.ElitismRatio * float64(prevSize)))
	if elitistCount > len(e.population) {
		elitistCount = len(e.population)
	}

	next := make(core.Population[T], 0, prevSize)
	next = append(next, e.population[:elitistCount]...)

	// Integer division loses one slot when the non-elitist remainder is odd;
	// the shrinkage is accepted, not repaired.
	remainingCouples := (prevSize - elitistCount) / 2
	logging.GetLogger().Debug(ctx, "carrying %d elitists, breeding %d couples", elitistCount, remainingCouples)
	next = append(next, e.breedCouples(remainingCouples)...)

	next = e.resolveDuplicates(ctx, next)
	e.population = next

	// Everyone mutates, elitists included.
	for _, candidate := range e.population {
		if err := candidate.Mutate(e.config.MutationOdds, e.alphabet, e.rng); err != nil {
			return EndReasonNone, err
		}
	}

	if err := e.evaluate(); err != nil {
		return EndReasonNone, err
	}
	if e.hasIdealSolution() {
		return EndReasonIdealSolutionFound, nil
	}
	return EndReasonNone, nil
}

// resolveDuplicates applies the configured duplication policy to the freshly
// bred generation. Selection for replacement breeding still runs over the
// previous generation's population, whose probabilities are valid.
func (e *Engine[T]) resolveDuplicates(ctx context.Context, population core.Population[T]) core.Population[T] {
	switch e.config.Duplication.Kind {
	case DuplicationKill:
		deduped := dedupe(population)
		if removed := len(population) - len(deduped); removed > 0 {
			logging.GetLogger().Debug(ctx, "killed %d duplicate candidates", removed)
		}
		return deduped

	case DuplicationReplace:
		priorSize := len(population)
		for attempt := 0; attempt < e.config.Duplication.Attempts; attempt++ {
			deduped := dedupe(population)
			if len(deduped) == len(population) {
				return population
			}

			missing := priorSize - len(deduped)
			couples := (missing + 1) / 2
			replacements := e.breedCouples(couples)
			// An odd shortfall breeds one candidate too many; drop it.
			population = append(deduped, replacements[:missing]...)
		}
		logging.GetLogger().Debug(ctx, "duplicates persisted after %d replace attempts", e.config.Duplication.Attempts)
		return population

	default:
		return population
	}
}

// dedupe keeps the first candidate of every distinct gene sequence,
// preserving order. The gene type only guarantees equality, so the scan is
// quadratic rather than indexed.
func dedupe[T comparable](population core.Population[T]) core.Population[T] {
	unique := make(core.Population[T], 0, len(population))
	for _, candidate := range population {
		duplicate := false
		for _, kept := range unique {
			if kept.SameGenes(candidate) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, candidate)
		}
	}
	return unique
}

// evaluate scores every candidate, normalizes probabilities over the total
// strength and re-sorts the population strongest-first.
func (e *Engine[T]) evaluate() error {
	for _, candidate := range e.population {
		if err := candidate.Evaluate(e.strength); err != nil {
			return err
		}
	}
	total := e.population.TotalStrength()
	for _, candidate := range e.population {
		if err := candidate.Normalize(total); err != nil {
			return err
		}
	}
	e.population.Sort()
	return nil
}

func (e *Engine[T]) hasIdealSolution() bool {
	for _, candidate := range e.population {
		if math.IsInf(candidate.Strength(), 1) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) terminate(ctx context.Context, reason EndReason) EndReason {
	e.endReason = reason
	logging.GetLogger().Info(ctx, "evolution terminated after %d generations: %s", e.generation, reason)
	return reason
}

func (e *Engine[T]) logGeneration(ctx context.Context) {
	if len(e.population) == 0 {
		logging.GetLogger().Debug(ctx, "population extinct")
		return
	}
	logging.GetLogger().Debug(ctx, "generation processed: size=%d best_strength=%g",
		len(e.population), e.population[0].Strength())
}

// Reset restores the original seed population, rewinds the generation
// counter and re-derives the random source from the configured seed, so the
// next Evolve reproduces the engine's first run.
func (e *Engine[T]) Reset() {
	population := make(core.Population[T], 0, len(e.seedGenes))
	for _, sequence := range e.seedGenes {
		population = append(population, core.NewCandidate(sequence))
	}
	e.population = population
	e.generation = 0
	e.endReason = EndReasonNone
	e.rng = core.NewRng(e.config.Seed)
}

// Best returns the gene sequence of the strongest candidate in the current
// sorted population, or nil when the population is extinct.
func (e *Engine[T]) Best() []T {
	if len(e.population) == 0 {
		return nil
	}
	return e.population[0].Genes()
}

// BestN returns the gene sequences of the top n candidates, clamped to the
// population size.
func (e *Engine[T]) BestN(n int) [][]T {
	if n > len(e.population) {
		n = len(e.population)
	}
	if n < 0 {
		n = 0
	}
	return e.population[:n].Genes()
}

// CurrentGeneration returns the index of the last processed generation.
func (e *Engine[T]) CurrentGeneration() int {
	return e.generation
}

// EndReason returns why the last run stopped, or EndReasonNone before any
// run terminates.
func (e *Engine[T]) EndReason() EndReason {
	return e.endReason
}

// PopulationSize returns the current number of candidates.
func (e *Engine[T]) PopulationSize() int {
	return len(e.population)
}

// ElitismRatio returns the configured elitism ratio.
func (e *Engine[T]) ElitismRatio() float64 {
	return e.config.ElitismRatio
}

// SetElitismRatio replaces the elitism ratio, re-validating eagerly.
func (e *Engine[T]) SetElitismRatio(ratio float64) error {
	cfg := *e.config
	cfg.ElitismRatio = ratio
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.config.ElitismRatio = ratio
	return nil
}

// MutationOdds returns the configured per-bit mutation probability.
func (e *Engine[T]) MutationOdds() float64 {
	return e.config.MutationOdds
}

// SetMutationOdds replaces the mutation odds, re-validating eagerly.
func (e *Engine[T]) SetMutationOdds(odds float64) error {
	cfg := *e.config
	cfg.MutationOdds = odds
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.config.MutationOdds = odds
	return nil
}

// Generations returns the configured maximum number of reproduction rounds.
func (e *Engine[T]) Generations() int {
	return e.config.Generations
}

// SetGenerations replaces the generation count, re-validating eagerly.
func (e *Engine[T]) SetGenerations(generations int) error {
	cfg := *e.config
	cfg.Generations = generations
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.config.Generations = generations
	return nil
}

// Duplication returns the configured duplication policy.
func (e *Engine[T]) Duplication() DuplicationPolicy {
	return e.config.Duplication
}

// SetDuplication replaces the duplication policy, re-validating eagerly.
func (e *Engine[T]) SetDuplication(policy DuplicationPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	e.config.Duplication = policy
	return nil
}

// Seed returns the configured random seed.
func (e *Engine[T]) Seed() int64 {
	return e.config.Seed
}

// SetSeed replaces the seed and re-derives the random source from it.
func (e *Engine[T]) SetSeed(seed int64) {
	e.config.Seed = seed
	e.rng = core.NewRng(seed)
}
