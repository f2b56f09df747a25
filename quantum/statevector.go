// SPDX-License-Identifier: MIT

// Package quantum simulates small qubit systems with exact statevectors.
//
// A Statevector of length 2^n describes n qubits. Basis index i encodes the
// qubits little-endian: qubit q is bit (1<<q) of i. Kron(a, b) puts b on the
// low qubits and a above it, so registers compose left to right from the
// most significant qubit down.
package quantum

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// Statevector is the amplitude vector of a pure state.
type Statevector []complex128

// Zero returns |0…0⟩ on n qubits.
func Zero(qubits int) (Statevector, error) {
	if qubits < 1 {
		return nil, quantumErrorf("Zero", ErrQubitOutOfRange)
	}
	s := make(Statevector, 1<<qubits)
	s[0] = 1

	return s, nil
}

// Dim returns the number of amplitudes.
func (s Statevector) Dim() int { return len(s) }

// Qubits returns n for a length-2^n vector, or an error otherwise.
func (s Statevector) Qubits() (int, error) {
	n := len(s)
	if n < 2 || n&(n-1) != 0 {
		return 0, quantumErrorf("Qubits", ErrNotPowerOfTwo)
	}

	return bits.TrailingZeros(uint(n)), nil
}

// Norm returns the Euclidean norm Σ|aᵢ|² under a square root.
func (s Statevector) Norm() float64 {
	var sum, a float64
	for _, amp := range s {
		a = cmplx.Abs(amp)
		sum += a * a
	}

	return math.Sqrt(sum)
}

// Clone returns an independent copy.
func (s Statevector) Clone() Statevector {
	out := make(Statevector, len(s))
	copy(out, s)

	return out
}

// Normalized returns s/‖s‖.
func (s Statevector) Normalized() (Statevector, error) {
	n := s.Norm()
	if n == 0 {
		return nil, quantumErrorf("Normalized", ErrZeroNorm)
	}
	out := make(Statevector, len(s))
	inv := complex(1/n, 0)
	for i, amp := range s {
		out[i] = amp * inv
	}

	return out, nil
}

// Inner returns ⟨s|t⟩ = Σ conj(sᵢ)·tᵢ.
func (s Statevector) Inner(t Statevector) (complex128, error) {
	if len(s) != len(t) {
		return 0, quantumErrorf("Inner", ErrDimensionMismatch)
	}
	var acc complex128
	for i := range s {
		acc += cmplx.Conj(s[i]) * t[i]
	}

	return acc, nil
}

// Probabilities returns |aᵢ|² for every basis state.
func (s Statevector) Probabilities() []float64 {
	out := make([]float64, len(s))
	var a float64
	for i, amp := range s {
		a = cmplx.Abs(amp)
		out[i] = a * a
	}

	return out
}

// Kron returns the tensor product a ⊗ b: out[i*len(b)+j] = a[i]·b[j].
func Kron(a, b Statevector) Statevector {
	out := make(Statevector, len(a)*len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		base := i * len(b)
		for j, bj := range b {
			out[base+j] = ai * bj
		}
	}

	return out
}
