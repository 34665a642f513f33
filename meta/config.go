package meta

import (
	"errors"
	"fmt"
	"os"
	"time"

	"abalone/game"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	AlphaBeta = "alphabeta"
	Minimax   = "minimax"

	Weighted = "weighted"
	Mobility = "mobility"
)

// Config describes one agent. Zero values are replaced by the defaults of VariantA.
type Config struct {
	Algorithm string        `yaml:"algorithm"`
	Depth     *int          `yaml:"depth"`
	Ordering  *bool         `yaml:"ordering"`
	Evaluator string        `yaml:"evaluator"`
	Weights   *game.Weights `yaml:"weights"`
	Duration  time.Duration `yaml:"duration"`   // Per move, 0 for no limit
	NodeLimit int           `yaml:"node_limit"` // Per move, 0 for no limit
}

// VariantA searches one ply below each root move with alpha-beta, the weighted
// evaluator and root move ordering.
func VariantA() Config {
	depth := Depth
	ordering := true
	weights := DefaultWeights
	return Config{
		Algorithm: AlphaBeta,
		Depth:     &depth,
		Ordering:  &ordering,
		Evaluator: Weighted,
		Weights:   &weights,
	}
}

// VariantB searches three plies with the mobility evaluator and no ordering.
func VariantB() Config {
	depth := 3
	ordering := false
	return Config{
		Algorithm: Minimax,
		Depth:     &depth,
		Ordering:  &ordering,
		Evaluator: Mobility,
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithDefaults fills unset fields from VariantA.
func (c Config) WithDefaults() Config {
	d := VariantA()
	if c.Algorithm == "" {
		c.Algorithm = d.Algorithm
	}
	if c.Depth == nil {
		c.Depth = d.Depth
	}
	if c.Ordering == nil {
		c.Ordering = d.Ordering
	}
	if c.Evaluator == "" {
		c.Evaluator = d.Evaluator
	}
	if c.Weights == nil {
		c.Weights = d.Weights
	}
	return c
}

func (c Config) Validate() error {
	switch c.Algorithm {
	case AlphaBeta, Minimax:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	switch c.Evaluator {
	case Weighted, Mobility:
	default:
		return fmt.Errorf("%w: unknown evaluator %q", ErrInvalidConfig, c.Evaluator)
	}
	if c.Depth != nil && *c.Depth < 0 {
		return fmt.Errorf("%w: depth must not be negative, got %d", ErrInvalidConfig, *c.Depth)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %s", ErrInvalidConfig, c.Duration)
	}
	if c.NodeLimit < 0 {
		return fmt.Errorf("%w: node limit must not be negative, got %d", ErrInvalidConfig, c.NodeLimit)
	}
	return nil
}
