// SPDX-License-Identifier: MIT

// Package spectral estimates the principal components of a density matrix.
//
// The estimate is an exact Hermitian eigen-decomposition. A d×d matrix
// ρ = A + iB is embedded into the real symmetric 2d×2d matrix
//
//	M = | A  −B |
//	    | B   A |
//
// and diagonalized with matrix.EigenSym (Jacobi). Every eigenvalue of ρ
// appears twice in M, and a real eigenvector (x; y) of M maps to the complex
// eigenvector x + iy of ρ. Complex Gram–Schmidt keeps one vector per
// complex direction.
package spectral

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/density"
	"github.com/katalvlaran/qpca/matrix"
	"github.com/katalvlaran/qpca/quantum"
)

var (
	// ErrBadComponentCount is returned when k < 1.
	ErrBadComponentCount = fmt.Errorf("%w: spectral: component count must be >= 1", qpca.ErrInvalidArgument)

	// ErrNilDensity is returned for a nil density matrix.
	ErrNilDensity = fmt.Errorf("%w: spectral: nil density matrix", qpca.ErrInvalidArgument)

	// ErrIncompleteBasis is returned when fewer than d independent complex
	// eigenvectors could be recovered from the real embedding.
	ErrIncompleteBasis = errors.New("spectral: incomplete eigenvector basis")
)

// acceptResidual is the squared residual norm above which a recovered complex
// vector is taken as a new direction. Unit real eigenvectors give residual 1
// for a fresh direction and 0 for the i-multiple of an accepted one.
const (
	acceptResidual   = 0.5
	fallbackResidual = 1e-8
)

// Components holds the top-k eigenpairs of ρ, eigenvalue descending.
type Components struct {
	// Values are the real eigenvalues.
	Values []float64
	// Vectors is d×k; column j holds the real part of eigenvector j after
	// phase normalization.
	Vectors *mat.Dense
	// States are the phase-normalized complex eigenvectors.
	States []quantum.Statevector
}

// Estimate returns the k dominant eigenpairs of rho. k larger than d yields
// all d pairs. opts tune the Jacobi tolerance and rotation cap.
// Errors: ErrBadComponentCount, ErrNilDensity, matrix.ErrMatrixEigenFailed.
func Estimate(rho *density.Matrix, k int, opts ...matrix.Option) (*Components, error) {
	if k < 1 {
		return nil, fmt.Errorf("spectral.Estimate: %w (k=%d)", ErrBadComponentCount, k)
	}
	if rho == nil {
		return nil, fmt.Errorf("spectral.Estimate: %w", ErrNilDensity)
	}
	vals, vecs, err := decompose(rho, opts...)
	if err != nil {
		return nil, fmt.Errorf("spectral.Estimate: %w", err)
	}
	if k > len(vals) {
		k = len(vals)
	}

	d := rho.Dim()
	out := &Components{
		Values:  append([]float64(nil), vals[:k]...),
		Vectors: mat.NewDense(d, k, nil),
		States:  vecs[:k],
	}
	for j := 0; j < k; j++ {
		for i := 0; i < d; i++ {
			out.Vectors.Set(i, j, real(vecs[j][i]))
		}
	}

	return out, nil
}

// Eigenvalues returns the k largest eigenvalues of rho.
func Eigenvalues(rho *density.Matrix, k int, opts ...matrix.Option) ([]float64, error) {
	c, err := Estimate(rho, k, opts...)
	if err != nil {
		return nil, err
	}

	return c.Values, nil
}

// decompose returns all d eigenpairs of the Hermitian part of rho, eigenvalue
// descending, with phase-normalized complex eigenvectors.
// Implementation:
//   - Stage 1: build M from the Hermitian part (ρ + ρ†)/2.
//   - Stage 2: matrix.EigenSym(M): sorted real eigenpairs.
//   - Stage 3: complex Gram–Schmidt over x + iy in sorted order.
//   - Stage 4: rotate each vector so its largest-magnitude entry is real positive.
func decompose(rho *density.Matrix, opts ...matrix.Option) ([]float64, []quantum.Statevector, error) {
	d := rho.Dim()
	re, im := rho.Parts()

	// Stage 1 (Embed)
	M, err := matrix.NewDense(2*d, 2*d)
	if err != nil {
		return nil, nil, err
	}
	var a, b float64
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			a = (re.At(i, j) + re.At(j, i)) / 2
			b = (im.At(i, j) - im.At(j, i)) / 2
			_ = M.Set(i, j, a)
			_ = M.Set(d+i, d+j, a)
			_ = M.Set(i, d+j, -b)
			_ = M.Set(d+i, j, b)
		}
	}

	// Stage 2 (Diagonalize)
	vals, Q, err := matrix.EigenSym(M, opts...)
	if err != nil {
		return nil, nil, err
	}

	// Stage 3 (Recover complex vectors)
	candidates := make([]quantum.Statevector, 2*d)
	var x, y float64
	for c := 0; c < 2*d; c++ {
		z := make(quantum.Statevector, d)
		for i := 0; i < d; i++ {
			x, _ = Q.At(i, c)
			y, _ = Q.At(d+i, c)
			z[i] = complex(x, y)
		}
		candidates[c] = z
	}
	idx, basis := gramSchmidt(candidates, d, acceptResidual)
	if len(basis) < d {
		idx, basis = gramSchmidt(candidates, d, fallbackResidual)
	}
	if len(basis) < d {
		return nil, nil, ErrIncompleteBasis
	}

	// Stage 4 (Phase)
	values := make([]float64, d)
	for j, c := range idx {
		values[j] = vals[c]
		normalizePhase(basis[j])
	}

	return values, basis, nil
}

// gramSchmidt walks candidates in order and keeps those whose residual after
// projection onto the kept set exceeds threshold, until want are kept.
// It returns the indices of the kept candidates and the orthonormal vectors.
func gramSchmidt(candidates []quantum.Statevector, want int, threshold float64) ([]int, []quantum.Statevector) {
	idx := make([]int, 0, want)
	basis := make([]quantum.Statevector, 0, want)
	for c, cand := range candidates {
		if len(basis) == want {
			break
		}
		r := cand.Clone()
		for _, q := range basis {
			proj, _ := q.Inner(r)
			for i := range r {
				r[i] -= proj * q[i]
			}
		}
		n := r.Norm()
		if n*n <= threshold {
			continue
		}
		inv := complex(1/n, 0)
		for i := range r {
			r[i] *= inv
		}
		idx = append(idx, c)
		basis = append(basis, r)
	}

	return idx, basis
}

// normalizePhase multiplies z by a global phase so that its first
// largest-magnitude entry becomes real and positive.
func normalizePhase(z quantum.Statevector) {
	best, bestAbs := 0, -1.0
	for i, v := range z {
		if a := cmplx.Abs(v); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	if bestAbs <= 0 {
		return
	}
	phase := cmplx.Conj(z[best]) / complex(bestAbs, 0)
	for i := range z {
		z[i] *= phase
	}
	z[best] = complex(bestAbs, 0)
}
