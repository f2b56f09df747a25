// SPDX-License-Identifier: MIT

package classical

// Solver selects how principal components are computed.
type Solver int

const (
	// SolverSVD uses gonum's stat.PC (thin SVD of the centered data).
	SolverSVD Solver = iota
	// SolverCovariance diagonalizes the sample covariance with matrix.EigenSym.
	SolverCovariance
)

// String returns the solver name.
func (s Solver) String() string {
	switch s {
	case SolverSVD:
		return "svd"
	case SolverCovariance:
		return "covariance"
	default:
		return "unknown"
	}
}

// Option customizes Fit.
type Option func(*options)

type options struct {
	solver Solver
}

// WithSolver picks the decomposition. Panics on an unknown solver.
func WithSolver(s Solver) Option {
	if s != SolverSVD && s != SolverCovariance {
		panic("classical: WithSolver: unknown solver")
	}

	return func(o *options) { o.solver = s }
}

func gatherOptions(opts ...Option) options {
	o := options{solver: SolverSVD}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
