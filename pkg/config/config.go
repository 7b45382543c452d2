// Package config loads engine configuration from YAML for applications that
// embed the engine. Validation runs eagerly at load time; a settings file
// that fails validation never reaches the engine.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/evolvekit/evolve-go/pkg/engine"
	"github.com/evolvekit/evolve-go/pkg/errors"
	"github.com/evolvekit/evolve-go/pkg/logging"
)

// Settings is the YAML form of the engine configuration plus ambient
// options. Absent keys keep the engine defaults.
type Settings struct {
	ElitismRatio float64 `yaml:"elitism_ratio" validate:"gte=0,lte=1"`
	MutationOdds float64 `yaml:"mutation_odds" validate:"gte=0,lte=1"`
	Generations  int     `yaml:"generations" validate:"min=1"`
	Duplication  string  `yaml:"duplication" validate:"duplication_policy"`
	Seed         int64   `yaml:"seed"`

	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	err := validate.RegisterValidation("duplication_policy", func(fl validator.FieldLevel) bool {
		_, parseErr := engine.ParsePolicy(fl.Field().String())
		return parseErr == nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.Unknown, "failed to register duplication policy validator")
	}
	return validate, nil
}

// defaultSettings mirrors engine.DefaultConfig in YAML form.
func defaultSettings() Settings {
	cfg := engine.DefaultConfig()
	return Settings{
		ElitismRatio: cfg.ElitismRatio,
		MutationOdds: cfg.MutationOdds,
		Generations:  cfg.Generations,
		Duplication:  cfg.Duplication.String(),
		Seed:         cfg.Seed,
		LogLevel:     logging.INFO.String(),
	}
}

// Load parses and validates settings from YAML data.
func Load(data []byte) (*Settings, error) {
	settings := defaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "failed to parse settings")
	}

	validate, err := newValidator()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(&settings); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "settings failed validation")
	}
	return &settings, nil
}

// LoadFile reads and validates settings from a YAML file.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidConfig, "failed to read settings file"),
			errors.Fields{"path": path},
		)
	}
	return Load(data)
}

// EngineConfig converts validated settings into an engine configuration.
func (s *Settings) EngineConfig() (*engine.Config, error) {
	policy, err := engine.ParsePolicy(s.Duplication)
	if err != nil {
		return nil, err
	}
	cfg := &engine.Config{
		ElitismRatio: s.ElitismRatio,
		MutationOdds: s.MutationOdds,
		Generations:  s.Generations,
		Duplication:  policy,
		Seed:         s.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Severity returns the configured log level.
func (s *Settings) Severity() logging.Severity {
	return logging.ParseSeverity(s.LogLevel)
}
