// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is resolved from options and passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	directed bool
}

// BuilderOption configures Build.
type BuilderOption func(*builderConfig)

// WithRand attaches r for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirected emits each edge in its forward direction only.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
