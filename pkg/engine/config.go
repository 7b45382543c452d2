package engine

import (
	"github.com/evolvekit/evolve-go/pkg/errors"
)

// Config contains configuration options for the evolution engine.
type Config struct {
	// Evolutionary parameters
	ElitismRatio float64 `json:"elitism_ratio"` // Default: 0.1
	MutationOdds float64 `json:"mutation_odds"` // Default: 0.01
	Generations  int     `json:"generations"`   // Default: 10

	// Duplicate handling
	Duplication DuplicationPolicy `json:"duplication"` // Default: ignore

	// Seed for the deterministic random source
	Seed int64 `json:"seed"` // Default: 1
}

// DefaultConfig returns the default configuration for the engine.
func DefaultConfig() *Config {
	return &Config{
		ElitismRatio: 0.1,
		MutationOdds: 0.01,
		Generations:  10,
		Duplication:  IgnoreDuplicates(),
		Seed:         1,
	}
}

// Validate checks all configuration fields. Every violation is fatal: the
// engine refuses to start, and setters refuse to apply the change.
func (c *Config) Validate() error {
	if c.ElitismRatio < 0 || c.ElitismRatio > 1 {
		return errors.WithFields(
			errors.New(errors.InvalidConfig, "elitism ratio must be in [0,1]"),
			errors.Fields{"elitism_ratio": c.ElitismRatio},
		)
	}
	if c.MutationOdds < 0 || c.MutationOdds > 1 {
		return errors.WithFields(
			errors.New(errors.InvalidConfig, "mutation odds must be in [0,1]"),
			errors.Fields{"mutation_odds": c.MutationOdds},
		)
	}
	if c.Generations < 1 {
		return errors.WithFields(
			errors.New(errors.InvalidConfig, "generation count must be at least 1"),
			errors.Fields{"generations": c.Generations},
		)
	}
	if err := c.Duplication.Validate(); err != nil {
		return err
	}
	return nil
}
