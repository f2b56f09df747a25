// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels used by statistics and spectral code.
//
// Purpose:
//   - Mul/Transpose/Scale: canonical building blocks (fresh *Dense results, operands untouched).
//   - Eigen: Jacobi eigen-decomposition of a real symmetric matrix.
//   - EigenSym: options-driven facade that also sorts eigenpairs by value, descending.
//
// Notes:
//   - All kernels validate inputs through validators.go and wrap errors with an op tag.
//   - Fast paths operate on the flat buffer when an operand is *Dense; other
//     implementations go through At/Set.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// asDense returns m as *Dense, copying through At when m is another implementation.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	A, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	B, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := A.r, A.c, B.c
	C, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i→k→j order keeps the inner loop on contiguous rows of B and C.
	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = A.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				C.data[i*c+j] += aik * B.data[k*c+j]
			}
		}
	}

	return C, nil
}

// Transpose returns mᵀ as a fresh *Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	A, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	T, err := NewDense(A.c, A.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < A.r; i++ {
		for j = 0; j < A.c; j++ {
			T.data[j*A.r+i] = A.data[i*A.c+j]
		}
	}

	return T, nil
}

// Scale returns alpha*m as a fresh *Dense.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	A, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := A.Clone().(*Dense)
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: validate symmetric square input within tol.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation, accumulating it into Q.
//   - Stage 3: verify convergence and read eigenvalues off the diagonal.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on max |A[p,q]|.
//   - maxIter: cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - *Dense: Q whose column i is the eigenvector of eigenvalue i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (tol),
//     ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Complexity:
//   - O(n^2) per rotation for the pivot scan, O(n) for the update.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)

	// Stage 1 (Prepare): working copy A and orthogonal accumulator Q = I.
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	A := src.Clone().(*Dense)
	n := A.r
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter               int
		i, j, p, q         int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		newIP, newIQ       float64
		theta, t, c, s     float64
	)
	// Stage 2 (Execute): Jacobi rotations.
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: converged.
		if maxOff <= tol {
			break
		}

		// J.3: rotation parameters; t = sign(θ)/(|θ|+√(θ²+1)).
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/columns p and q of A.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			A.data[i*n+p], A.data[p*n+i] = newIP, newIP
			A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Stage 3 (Finalize): the loop may have exhausted maxIter on the last rotation.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(A.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrMatrixEigenFailed))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = A.data[i*n+i]
	}

	return vals, Q, nil
}

// EigenSym runs Eigen under the resolved numeric policy and returns the
// eigenpairs sorted by eigenvalue, descending. Ties keep diagonal order
// (stable sort). Column i of the returned matrix pairs with value i.
// Complexity: Eigen + O(n log n + n^2).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	vals, Q, err := Eigen(m, o.eps, o.maxIter)
	if err != nil {
		return nil, nil, err
	}

	n := len(vals)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	sortedVals := make([]float64, n)
	sortedQ, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, k int
	for k = 0; k < n; k++ {
		sortedVals[k] = vals[order[k]]
		for i = 0; i < n; i++ {
			sortedQ.data[i*n+k] = Q.data[i*n+order[k]]
		}
	}

	return sortedVals, sortedQ, nil
}
