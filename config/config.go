// Package config loads experiment settings: defaults, then an optional
// YAML plan file, then HOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"hog/meta"
	"hog/strategy"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Name        string   `yaml:"name" json:"name" env:"HOG_EXPERIMENT"`
	NumSamples  int      `yaml:"num_samples" json:"numSamples" env:"HOG_NUM_SAMPLES"`
	Seed        uint64   `yaml:"seed" json:"seed" env:"HOG_SEED"` // 0 picks a seed at run time
	Goal        int      `yaml:"goal" json:"goal" env:"HOG_GOAL"`
	Baseline    string   `yaml:"baseline" json:"baseline" env:"HOG_BASELINE"`
	Strategies  []string `yaml:"strategies" json:"strategies" env:"HOG_STRATEGIES" envSeparator:","`
	Goroutines  int      `yaml:"goroutines" json:"goroutines" env:"HOG_GOROUTINES"`
	OutputDir   string   `yaml:"output_dir" json:"outputDir" env:"HOG_OUTPUT_DIR"`
	RecordGames bool     `yaml:"record_games" json:"recordGames" env:"HOG_RECORD_GAMES"`
}

func Default() Config {
	return Config{
		Name:       "strategies",
		NumSamples: meta.NUM_SAMPLES,
		Goal:       meta.GOAL_SCORE,
		Baseline:   fmt.Sprintf("always_roll_%d", meta.BASELINE_ROLLS),
		Strategies: []string{"always_roll_8", "bacon", "swap", "final"},
		Goroutines: meta.GO_ROUTINES,
	}
}

// Load returns the defaults overlaid with the YAML file at path, if any,
// and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.NumSamples < 1 {
		errs = append(errs, fmt.Errorf("num_samples must be positive, got %d", c.NumSamples))
	}
	if c.Goal < 1 {
		errs = append(errs, fmt.Errorf("goal must be positive, got %d", c.Goal))
	}
	if c.Goroutines < 1 {
		errs = append(errs, fmt.Errorf("goroutines must be positive, got %d", c.Goroutines))
	}
	if _, err := strategy.Lookup(c.Baseline); err != nil {
		errs = append(errs, fmt.Errorf("baseline: %w", err))
	}
	for _, name := range c.Strategies {
		if _, err := strategy.Lookup(name); err != nil {
			errs = append(errs, fmt.Errorf("strategies: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
