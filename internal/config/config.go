package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/driftsim/internal/drift"
)

const (
	DefaultFrequency   = 0.5
	DefaultSize        = 100
	DefaultGenerations = 100
	DefaultPopulations = 5

	// Slider ranges of the interactive dashboard.
	FrequencyStep  = 0.1
	MaxSize        = 1000
	MaxGenerations = 1000
	MaxPopulations = 10
)

type Config struct {
	InitialFrequency float64 `yaml:"p0"`
	PopulationSize   int     `yaml:"size"`
	Generations      int     `yaml:"generations"`
	Populations      int     `yaml:"populations"`
	Seed             int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		InitialFrequency: DefaultFrequency,
		PopulationSize:   DefaultSize,
		Generations:      DefaultGenerations,
		Populations:      DefaultPopulations,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() drift.Params {
	return drift.Params{
		InitialFrequency: c.InitialFrequency,
		PopulationSize:   c.PopulationSize,
		Generations:      c.Generations,
	}
}

func (c *Config) Validate() error {
	if c.Populations < 0 {
		return fmt.Errorf("populations must be non-negative, got %d", c.Populations)
	}
	return c.Params().Validate()
}
