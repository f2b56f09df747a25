// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// gaussianCov is the correlated covariance of the gaussian kind. It is
// indefinite (det = -0.04), so draws use |Σ| from its eigen-decomposition.
var gaussianCov = mat.NewSymDense(2, []float64{
	1.0, 0.8,
	0.8, 0.6,
})

var gaussianMean = []float64{0, 0}

// absEigenSym is a distmv.EigenSym over |Σ| = Q·diag(|λ|)·Qᵀ.
// Values are ascending; column k of q pairs with values[k].
type absEigenSym struct {
	*mat.SymDense
	values []float64
	q      *mat.Dense
}

var _ distmv.EigenSym = (*absEigenSym)(nil)

func (e *absEigenSym) RawValues() []float64 { return e.values }
func (e *absEigenSym) RawQ() mat.Matrix     { return e.q }

// newAbsEigenSym factorizes cov and replaces every eigenvalue by its magnitude.
func newAbsEigenSym(cov mat.Symmetric) (*absEigenSym, error) {
	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return nil, ErrCovarianceFactorization
	}
	raw := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	n := len(raw)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return math.Abs(raw[order[a]]) < math.Abs(raw[order[b]]) })

	values := make([]float64, n)
	q := mat.NewDense(n, n, nil)
	col := make([]float64, n)
	for k, idx := range order {
		values[k] = math.Abs(raw[idx])
		mat.Col(col, idx, &vecs)
		q.SetCol(k, col)
	}

	sym := mat.NewSymDense(n, nil)
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v = 0
			for k := 0; k < n; k++ {
				v += q.At(i, k) * values[k] * q.At(j, k)
			}
			sym.SetSym(i, j, v)
		}
	}

	return &absEigenSym{SymDense: sym, values: values, q: q}, nil
}

// gaussian draws n bivariate normal rows, centers each column and divides
// by the largest absolute entry (1 when every entry is zero).
func gaussian(n int, src rand.Source) ([]Sample, error) {
	cov, err := newAbsEigenSym(gaussianCov)
	if err != nil {
		return nil, datasetErrorf("gaussian", err)
	}

	// Stage 1: draw.
	data := mat.NewDense(n, 2, nil)
	row := make([]float64, 2)
	for i := 0; i < n; i++ {
		row = distmv.NormalRandCov(row, gaussianMean, cov, src)
		data.SetRow(i, row)
	}

	// Stage 2: center columns.
	col := make([]float64, n)
	for j := 0; j < 2; j++ {
		mat.Col(col, j, data)
		floats.AddConst(-stat.Mean(col, nil), col)
		data.SetCol(j, col)
	}

	// Stage 3: scale into [-1, 1].
	scale := floats.Norm(data.RawMatrix().Data, math.Inf(1))
	if scale == 0 {
		scale = 1
	}
	data.Scale(1/scale, data)

	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{data.At(i, 0), data.At(i, 1)}
	}

	return out, nil
}
