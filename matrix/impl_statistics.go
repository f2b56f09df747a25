// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column centering and sample covariance as compositions over Mul/Transpose/Scale.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism:
//   - Fixed i→j traversal; Dense fast-path on the flat buffer.

package matrix

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: validate X.
//   - Stage 2: accumulate column sums in i→j order and divide by r.
//   - Stage 3: write the centered copy.
//
// Returns the centered copy (r×c) and the column means (len=c).
// Complexity: O(r*c) time and memory.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate)
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := d.r, d.c

	// Stage 2 (Means)
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3 (Apply)
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = d.data[base+j] - means[j]
		}
	}

	return out, means, nil
}

// Covariance computes the sample covariance matrix of the columns of X.
// Implementation:
//   - Stage 1: require at least two observations (rows).
//   - Stage 2: Xc = CenterColumns(X).
//   - Stage 3: Cov = (Xcᵀ × Xc) / (r-1).
//
// The product Xcᵀ×Xc is bitwise symmetric: both triangles sum identical
// products in identical order, so Eigen accepts it under any tolerance.
//
// Errors: ErrNilMatrix, ErrTooFewObservations (r < 2).
// Complexity: O(r*c^2).
func Covariance(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate)
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrTooFewObservations)
	}

	// Stage 2 (Center)
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Gram & scale)
	XcT, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(XcT, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}
