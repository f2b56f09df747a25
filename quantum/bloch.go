// SPDX-License-Identifier: MIT

package quantum

import (
	"math/cmplx"
)

// BlochPoint is a single-qubit pure state on the unit sphere.
type BlochPoint struct {
	X, Y, Z float64
}

// Bloch returns the Bloch coordinates of a one-qubit state from its
// outer product ρ = |ψ⟩⟨ψ|: x = 2·Re ρ01, y = 2·Im ρ10, z = Re(ρ00 − ρ11).
func Bloch(s Statevector) (BlochPoint, error) {
	if len(s) != 2 {
		return BlochPoint{}, quantumErrorf("Bloch", ErrDimensionMismatch)
	}
	rho01 := s[0] * cmplx.Conj(s[1])
	rho10 := s[1] * cmplx.Conj(s[0])
	rho00 := s[0] * cmplx.Conj(s[0])
	rho11 := s[1] * cmplx.Conj(s[1])

	return BlochPoint{
		X: 2 * real(rho01),
		Y: 2 * imag(rho10),
		Z: real(rho00 - rho11),
	}, nil
}
