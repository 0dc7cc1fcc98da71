package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables, e.g. FINALYZER_MATCH_THRESHOLD.
const envPrefix = "FINALYZER"

// Options holds the runtime tunables of an analysis run. Everything else,
// the field and ratio catalogs included, is data rather than configuration.
type Options struct {
	// MatchThreshold is the minimum fuzzy score at which a label maps to a
	// canonical field. Exact the threshold is accepted.
	MatchThreshold float64 `yaml:"match_threshold" envconfig:"MATCH_THRESHOLD" validate:"gte=0,lte=1"`

	// Precision is the decimal precision applied when results are rendered.
	// Stored values keep full floating-point precision.
	Precision int `yaml:"precision" envconfig:"PRECISION" validate:"gte=0,lte=12"`

	// Epsilon is the magnitude below which a ratio denominator counts as zero.
	Epsilon float64 `yaml:"epsilon" envconfig:"EPSILON" validate:"gt=0"`

	// MaxConcurrency bounds parallel ratio cell evaluation.
	MaxConcurrency int `yaml:"max_concurrency" envconfig:"MAX_CONCURRENCY" validate:"gte=1,lte=64"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		MatchThreshold: 0.72,
		Precision:      2,
		Epsilon:        1e-9,
		MaxConcurrency: 4,
	}
}

// Load builds options from the defaults, an optional YAML file, and the
// environment, in increasing precedence: file settings override defaults,
// FINALYZER_* variables override both. An empty path skips the file layer.
func Load(path string) (Options, error) {
	opts := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Options{}, fmt.Errorf("read options file: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parse options file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &opts); err != nil {
		return Options{}, fmt.Errorf("process environment: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the options against their declared constraints.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
