// SPDX-License-Identifier: MIT

// Package overlap estimates state overlaps with the SWAP test.
//
// The circuit runs on the exact statevector simulator in package quantum,
// so the returned probability carries no shot noise:
//
//	P(control = 0) = (1 + |⟨a|b⟩|²) / 2
package overlap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/quantum"
)

// NormTolerance bounds |‖ψ‖ − 1| for SWAP-test inputs.
const NormTolerance = 1e-6

var (
	// ErrDimensionMismatch is returned when inputs differ in length or are not 2^n long.
	ErrDimensionMismatch = fmt.Errorf("%w: overlap: dimension mismatch", qpca.ErrInvalidArgument)

	// ErrNotUnitNorm is returned when an input is not normalized within NormTolerance.
	ErrNotUnitNorm = fmt.Errorf("%w: overlap: state is not unit norm", qpca.ErrInvalidArgument)

	// ErrNoStates is returned by Matrix for an empty input.
	ErrNoStates = fmt.Errorf("%w: overlap: no states", qpca.ErrInvalidArgument)
)

// SwapTest returns P(control = 0) of the SWAP test on a and b.
// Implementation:
//   - Stage 1: validate equal power-of-two dimension and unit norms.
//   - Stage 2: prepare |0⟩_c ⊗ |a⟩ ⊗ |b⟩ and apply H on the control.
//   - Stage 3: controlled-SWAP each qubit pair of the a and b registers.
//   - Stage 4: H on the control, read P(0).
//
// Complexity: O(m·2^(2m+1)) for m-qubit inputs.
func SwapTest(a, b quantum.Statevector) (float64, error) {
	// Stage 1 (Validate)
	if len(a) != len(b) {
		return 0, fmt.Errorf("overlap.SwapTest: %w", ErrDimensionMismatch)
	}
	m, err := a.Qubits()
	if err != nil {
		return 0, fmt.Errorf("overlap.SwapTest: %w: %w", ErrDimensionMismatch, err)
	}
	for _, s := range []quantum.Statevector{a, b} {
		if math.Abs(s.Norm()-1) > NormTolerance {
			return 0, fmt.Errorf("overlap.SwapTest: %w (norm %g)", ErrNotUnitNorm, s.Norm())
		}
	}

	// Stage 2 (Prepare): control is the most significant qubit.
	control := 2 * m
	reg, err := quantum.NewRegisterFrom(quantum.Statevector{1, 0}, a, b)
	if err != nil {
		return 0, fmt.Errorf("overlap.SwapTest: %w", err)
	}
	if err = reg.H(control); err != nil {
		return 0, fmt.Errorf("overlap.SwapTest: %w", err)
	}

	// Stage 3 (Controlled swaps): a occupies qubits m..2m-1, b occupies 0..m-1.
	for k := 0; k < m; k++ {
		if err = reg.CSWAP(control, m+k, k); err != nil {
			return 0, fmt.Errorf("overlap.SwapTest: %w", err)
		}
	}

	// Stage 4 (Interfere & read)
	if err = reg.H(control); err != nil {
		return 0, fmt.Errorf("overlap.SwapTest: %w", err)
	}
	p0, err := reg.Probability(control, 0)
	if err != nil {
		return 0, fmt.Errorf("overlap.SwapTest: %w", err)
	}

	return p0, nil
}

// Fidelity returns 2·P(0) − 1 = |⟨a|b⟩|² from the SWAP test.
func Fidelity(a, b quantum.Statevector) (float64, error) {
	p0, err := SwapTest(a, b)
	if err != nil {
		return 0, err
	}

	return 2*p0 - 1, nil
}

// Matrix returns the n×n overlap matrix of states: unit diagonal, and each
// pair i<j evaluated once with Fidelity and mirrored.
// Complexity: O(n²) SWAP tests.
func Matrix(states []quantum.Statevector) (*mat.SymDense, error) {
	n := len(states)
	if n == 0 {
		return nil, fmt.Errorf("overlap.Matrix: %w", ErrNoStates)
	}
	out := mat.NewSymDense(n, nil)
	var (
		f   float64
		err error
	)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			if f, err = Fidelity(states[i], states[j]); err != nil {
				return nil, fmt.Errorf("overlap.Matrix: pair (%d,%d): %w", i, j, err)
			}
			out.SetSym(i, j, f)
		}
	}

	return out, nil
}
