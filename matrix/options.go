// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// spectral kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); kernels never panic on user input.
package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultEpsilon is the symmetry tolerance and the Jacobi convergence
	// threshold on the largest off-diagonal magnitude.
	DefaultEpsilon = 1e-12

	// DefaultMaxIterations caps the number of Jacobi rotations.
	DefaultMaxIterations = 10000
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// Option mutates Options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps     float64
	maxIter int
}

// WithEpsilon sets the tolerance used for symmetry checks and convergence.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps the number of Jacobi rotations. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user setters on top of the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations reports the resolved rotation cap.
func (o Options) MaxIterations() int { return o.maxIter }

// NewOptions resolves opts into an Options snapshot.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
