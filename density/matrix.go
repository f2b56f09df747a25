// SPDX-License-Identifier: MIT

// Package density builds and inspects density matrices of pure-state ensembles.
//
// A Matrix is a d×d complex matrix stored in a gonum CDense. Instances are
// immutable after construction: accessors return copies or values.
package density

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable d×d complex matrix.
type Matrix struct {
	d int
	c *mat.CDense
}

// New builds a d×d matrix from row-major entries (copied).
// Errors: ErrDimensionMismatch (d < 1 or len(data) != d*d), ErrNonFinite.
func New(d int, data []complex128) (*Matrix, error) {
	if d < 1 || len(data) != d*d {
		return nil, densityErrorf("New", ErrDimensionMismatch)
	}
	buf := make([]complex128, len(data))
	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, densityErrorf("New", ErrNonFinite)
		}
		buf[i] = v
	}

	return &Matrix{d: d, c: mat.NewCDense(d, d, buf)}, nil
}

// Dim returns d.
func (m *Matrix) Dim() int { return m.d }

// At returns entry (i, j).
func (m *Matrix) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.d || j < 0 || j >= m.d {
		return 0, densityErrorf("At", ErrOutOfRange)
	}

	return m.c.At(i, j), nil
}

// Trace returns Σ ρii.
func (m *Matrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < m.d; i++ {
		tr += m.c.At(i, i)
	}

	return tr
}

// IsHermitian reports |ρij − conj(ρji)| ≤ tol for every pair (including the diagonal).
func (m *Matrix) IsHermitian(tol float64) bool {
	for i := 0; i < m.d; i++ {
		for j := i; j < m.d; j++ {
			if cmplx.Abs(m.c.At(i, j)-cmplx.Conj(m.c.At(j, i))) > tol {
				return false
			}
		}
	}

	return true
}

// ConjugateTranspose returns ρ† as a new Matrix.
func (m *Matrix) ConjugateTranspose() *Matrix {
	out := mat.NewCDense(m.d, m.d, nil)
	out.Copy(m.c.H())

	return &Matrix{d: m.d, c: out}
}

// Purity returns Re Tr(ρ²), which is 1 for pure states and 1/d for the
// maximally mixed state.
func (m *Matrix) Purity() float64 {
	var tr complex128
	for i := 0; i < m.d; i++ {
		for k := 0; k < m.d; k++ {
			tr += m.c.At(i, k) * m.c.At(k, i)
		}
	}

	return real(tr)
}

// Raw returns a row-major copy of the entries.
func (m *Matrix) Raw() []complex128 {
	out := make([]complex128, 0, m.d*m.d)
	for i := 0; i < m.d; i++ {
		for j := 0; j < m.d; j++ {
			out = append(out, m.c.At(i, j))
		}
	}

	return out
}

// Parts splits ρ = A + iB into its real and imaginary gonum matrices.
func (m *Matrix) Parts() (re, im *mat.Dense) {
	re = mat.NewDense(m.d, m.d, nil)
	im = mat.NewDense(m.d, m.d, nil)
	var v complex128
	for i := 0; i < m.d; i++ {
		for j := 0; j < m.d; j++ {
			v = m.c.At(i, j)
			re.Set(i, j, real(v))
			im.Set(i, j, imag(v))
		}
	}

	return re, im
}
