// Package evolve is a generic evolutionary-optimization engine: given a
// population of candidate gene sequences, a caller-supplied strength
// (fitness) function and a caller-supplied offspring (recombination)
// function, it iteratively improves the population through selection,
// crossover, mutation, elitism and duplicate control.
//
// Key Components:
//
//   - Core: the leaf types — a generic Alphabet with its bit-level gene
//     codec, the deterministic random source shared by selection and
//     mutation, and the Candidate/Population records carrying strength and
//     selection probability.
//
//   - Engine: the generational loop. Each generation removes zero-strength
//     misfits, carries the configured share of elitists forward, breeds the
//     remainder through roulette-wheel selection, resolves duplicate gene
//     sequences by policy (ignore, kill, or replace with bounded retries),
//     mutates every candidate bit-wise, then re-evaluates and re-sorts the
//     population. A run ends when an ideal (infinite-strength) candidate
//     appears, when fewer than two candidates survive, or when all
//     configured generations have run.
//
//   - Config: YAML settings loading with eager validation for applications
//     that embed the engine.
//
// The engine is fully synchronous and deterministic: a fixed seed,
// population and configuration always reproduce the same run.
//
// Basic usage:
//
//	strength := func(genes []int) float64 {
//	    score := 0.0
//	    for _, g := range genes {
//	        score += float64(g)
//	    }
//	    return score
//	}
//	offspring := func(father, mother []int) ([]int, []int) {
//	    a := append(append([]int{}, father[:1]...), mother[1:]...)
//	    b := append(append([]int{}, mother[:1]...), father[1:]...)
//	    return a, b
//	}
//
//	eng, err := engine.New(seedGenes, []int{0, 1}, strength, offspring, engine.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reason, err := eng.Evolve(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(reason, eng.Best())
package evolve
