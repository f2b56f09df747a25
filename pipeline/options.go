// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/qpca/classical"
	"github.com/katalvlaran/qpca/dataset"
	"github.com/katalvlaran/qpca/encoding"
)

// Option customizes Run.
type Option func(*options)

type options struct {
	seed     int64
	renderer Renderer
	log      zerolog.Logger
	method   encoding.Method
	solver   classical.Solver
}

// WithSeed seeds the dataset generator.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRenderer replaces the default SVG renderer. Panics on nil.
func WithRenderer(r Renderer) Option {
	if r == nil {
		panic("pipeline: WithRenderer(nil)")
	}

	return func(o *options) { o.renderer = r }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithEncoding selects the state encoding (angle by default).
func WithEncoding(m encoding.Method) Option {
	return func(o *options) { o.method = m }
}

// WithClassicalSolver selects the classical PCA solver. Panics on an unknown solver.
func WithClassicalSolver(s classical.Solver) Option {
	if s != classical.SolverSVD && s != classical.SolverCovariance {
		panic("pipeline: WithClassicalSolver: unknown solver")
	}

	return func(o *options) { o.solver = s }
}

func gatherOptions(opts ...Option) options {
	o := options{
		seed:   dataset.DefaultSeed,
		log:    zerolog.Nop(),
		method: encoding.MethodAngle,
		solver: classical.SolverSVD,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
