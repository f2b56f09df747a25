// SPDX-License-Identifier: MIT

// Package classical computes the classical PCA baseline the qPCA estimate is
// compared against.
//
// Variances are sample variances (denominator n−1) along the principal
// directions, sorted descending. Each direction is sign-normalized so its
// largest-magnitude entry is positive, which makes results deterministic
// across solvers.
package classical

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/matrix"
)

var (
	// ErrBadComponentCount is returned when components is outside [1, min(n, d)].
	ErrBadComponentCount = fmt.Errorf("%w: classical: component count out of range", qpca.ErrInvalidArgument)

	// ErrTooFewSamples is returned for fewer than two observations.
	ErrTooFewSamples = fmt.Errorf("%w: classical: at least two samples required", qpca.ErrInvalidArgument)

	// ErrDecomposition is returned when the SVD does not converge.
	ErrDecomposition = errors.New("classical: decomposition failed")
)

// Components holds the leading principal components.
type Components struct {
	// Values are the explained variances, descending.
	Values []float64
	// Vectors is d×k; column j is direction j.
	Vectors *mat.Dense
	// Ratios are Values divided by the total variance (zero when it is zero).
	Ratios []float64
}

// Fit computes the top components of data (n observations × d features).
// Errors: ErrTooFewSamples, ErrBadComponentCount, ErrDecomposition,
// matrix.ErrMatrixEigenFailed.
func Fit(data mat.Matrix, components int, opts ...Option) (*Components, error) {
	if data == nil {
		return nil, fmt.Errorf("classical.Fit: %w", ErrTooFewSamples)
	}
	n, d := data.Dims()
	if n < 2 {
		return nil, fmt.Errorf("classical.Fit: %w (n=%d)", ErrTooFewSamples, n)
	}
	if components < 1 || components > min(n, d) {
		return nil, fmt.Errorf("classical.Fit: %w (components=%d, limit=%d)", ErrBadComponentCount, components, min(n, d))
	}

	var (
		vars []float64
		vecs *mat.Dense
		err  error
	)
	switch gatherOptions(opts...).solver {
	case SolverCovariance:
		vars, vecs, err = covarianceSolve(data)
	default:
		vars, vecs, err = svdSolve(data)
	}
	if err != nil {
		return nil, fmt.Errorf("classical.Fit: %w", err)
	}

	total := floats.Sum(vars)
	out := &Components{
		Values:  append([]float64(nil), vars[:components]...),
		Vectors: mat.NewDense(d, components, nil),
		Ratios:  make([]float64, components),
	}
	col := make([]float64, d)
	for j := 0; j < components; j++ {
		mat.Col(col, j, vecs)
		orientColumn(col)
		out.Vectors.SetCol(j, col)
		if total > 0 {
			out.Ratios[j] = vars[j] / total
		}
	}

	return out, nil
}

// svdSolve runs stat.PC; vectors are d×min(n,d).
func svdSolve(data mat.Matrix) ([]float64, *mat.Dense, error) {
	var pc stat.PC
	if !pc.PrincipalComponents(data, nil) {
		return nil, nil, ErrDecomposition
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	return pc.VarsTo(nil), &vecs, nil
}

// covarianceSolve diagonalizes (XcᵀXc)/(n−1) with the Jacobi routine.
// Tiny negative eigenvalues from round-off are clamped to zero.
func covarianceSolve(data mat.Matrix) ([]float64, *mat.Dense, error) {
	n, d := data.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, data)
	}
	X, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, err
	}
	cov, _, err := matrix.Covariance(X)
	if err != nil {
		return nil, nil, err
	}
	vals, Q, err := matrix.EigenSym(cov)
	if err != nil {
		return nil, nil, err
	}

	vecs := mat.NewDense(d, d, nil)
	var v float64
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v, _ = Q.At(i, j)
			vecs.Set(i, j, v)
		}
	}
	for i := range vals {
		vals[i] = math.Max(vals[i], 0)
	}

	return vals, vecs, nil
}

// orientColumn flips v so its first largest-magnitude entry is positive.
func orientColumn(v []float64) {
	best := 0
	for i := range v {
		if math.Abs(v[i]) > math.Abs(v[best]) {
			best = i
		}
	}
	if v[best] < 0 {
		floats.Scale(-1, v)
	}
}
