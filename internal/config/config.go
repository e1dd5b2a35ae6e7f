package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultShape     = "random"
	DefaultTheme     = "cyberpunk"
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	DelayMs   int    `yaml:"delay_ms"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
	Shape     string `yaml:"shape"`
	// Input is a comma-separated custom array; it takes precedence over
	// Shape and Size.
	Input string `yaml:"input,omitempty"`
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		DelayMs:   playback.DefaultDelay,
		Size:      input.DefaultSize,
		Shape:     DefaultShape,
		Theme:     DefaultTheme,
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.DelayMs < playback.MinDelay || c.DelayMs > playback.MaxDelay {
		return fmt.Errorf("delay_ms %d: %w", c.DelayMs, playback.ErrDelayBounds)
	}
	if c.Input == "" && (c.Size < 0 || c.Size > input.MaxSize) {
		return fmt.Errorf("size %d: %w", c.Size, input.ErrTooLarge)
	}
	return nil
}

// Array resolves the sequence to sort: the custom input when set, otherwise
// a generated array of the configured shape.
func (c *Config) Array(rng *rand.Rand) ([]int, error) {
	if c.Input != "" {
		return input.Parse(c.Input)
	}
	return input.Shape(c.Shape, c.Size, rng)
}

// Rand returns a generator seeded from Seed, or from the clock when Seed
// is zero.
func (c *Config) Rand(now int64) *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewSource(c.Seed))
	}
	return rand.New(rand.NewSource(now))
}
