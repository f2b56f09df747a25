// SPDX-License-Identifier: MIT

package density

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpca/quantum"
)

// Build returns the ensemble density matrix ρ = (1/n) Σ |ψi⟩⟨ψi|, rescaled to
// unit trace when the trace is non-zero.
// Implementation:
//   - Stage 1: validate a non-empty input of one common dimension d.
//   - Stage 2: accumulate outer products in i→j order.
//   - Stage 3: divide by n, then by the real trace if it is non-zero.
//
// Errors: ErrNoStates, ErrDimensionMismatch.
// Complexity: O(n·d²).
func Build(states []quantum.Statevector) (*Matrix, error) {
	// Stage 1 (Validate)
	if len(states) == 0 {
		return nil, densityErrorf("Build", ErrNoStates)
	}
	d := len(states[0])
	if d == 0 {
		return nil, densityErrorf("Build", ErrDimensionMismatch)
	}
	for _, s := range states[1:] {
		if len(s) != d {
			return nil, densityErrorf("Build", ErrDimensionMismatch)
		}
	}

	// Stage 2 (Accumulate)
	acc := make([]complex128, d*d)
	var i, j int
	for _, s := range states {
		for i = 0; i < d; i++ {
			if s[i] == 0 {
				continue
			}
			for j = 0; j < d; j++ {
				acc[i*d+j] += s[i] * cmplx.Conj(s[j])
			}
		}
	}

	// Stage 3 (Normalize)
	inv := complex(1/float64(len(states)), 0)
	var tr float64
	for k := range acc {
		acc[k] *= inv
	}
	for i = 0; i < d; i++ {
		tr += real(acc[i*d+i])
	}
	if tr != 0 {
		scale := complex(1/tr, 0)
		for k := range acc {
			acc[k] *= scale
		}
	}

	return &Matrix{d: d, c: mat.NewCDense(d, d, acc)}, nil
}
