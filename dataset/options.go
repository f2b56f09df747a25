// SPDX-License-Identifier: MIT

package dataset

import "math/rand/v2"

// DefaultSeed seeds the Gaussian generator when no option overrides it.
const DefaultSeed int64 = 42

// Option customizes a Generate call.
type Option func(*config)

type config struct {
	src rand.Source
}

// WithSeed seeds a fresh PCG source. Same seed, same dataset.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = newSource(seed)
	}
}

// WithSource supplies an explicit random source. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("dataset: WithSource(nil)")
	}

	return func(c *config) {
		c.src = src
	}
}

func newSource(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), uint64(seed))
}

func gatherOptions(opts ...Option) config {
	c := config{src: newSource(DefaultSeed)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
