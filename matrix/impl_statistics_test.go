// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca/matrix"
)

func TestCenterColumns(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})
	Xc, means, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 11, 16.5}, means)
	require.Equal(t, -4.5, mustAt(t, Xc, 0, 0))
	require.Equal(t, 13.5, mustAt(t, Xc, 1, 2))

	_, _, err = matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	// Columns: x = [1,2,3,4], y = 2x.
	X := mustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}, {4, 8}})
	cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 5}, means)

	varX := 5.0 / 3.0
	require.InDelta(t, varX, mustAt(t, cov, 0, 0), epsTight)
	require.InDelta(t, 2*varX, mustAt(t, cov, 0, 1), epsTight)
	require.InDelta(t, 4*varX, mustAt(t, cov, 1, 1), epsTight)
	require.NoError(t, matrix.ValidateSymmetric(cov, 0))

	_, _, err = matrix.Covariance(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrTooFewObservations)
}
