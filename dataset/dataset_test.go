// SPDX-License-Identifier: MIT

package dataset_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/dataset"
)

func TestGenerate_GaussianShapeAndRange(t *testing.T) {
	t.Parallel()

	data, err := dataset.Generate(dataset.KindGaussian, 10)
	require.NoError(t, err)
	require.Len(t, data, 10)

	var maxAbs float64
	var sum [2]float64
	for _, s := range data {
		for j, v := range s {
			assert.LessOrEqual(t, math.Abs(v), 1.0)
			maxAbs = math.Max(maxAbs, math.Abs(v))
			sum[j] += v
		}
	}
	// Scaled by the largest entry, so one entry sits on the boundary.
	require.InDelta(t, 1.0, maxAbs, 1e-12)
	// Columns are centered.
	require.InDelta(t, 0.0, sum[0], 1e-9)
	require.InDelta(t, 0.0, sum[1], 1e-9)
}

func TestGenerate_GaussianReproducible(t *testing.T) {
	t.Parallel()

	a, err := dataset.Generate(dataset.KindGaussian, 25, dataset.WithSeed(7))
	require.NoError(t, err)
	b, err := dataset.Generate(dataset.KindGaussian, 25, dataset.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := dataset.Generate(dataset.KindGaussian, 25, dataset.WithSeed(8))
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	d, err := dataset.Generate(dataset.KindGaussian, 25, dataset.WithSource(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	require.Equal(t, a, d)
}

func TestGenerate_GaussianIsPositivelyCorrelated(t *testing.T) {
	t.Parallel()

	data, err := dataset.Generate(dataset.KindGaussian, 500)
	require.NoError(t, err)
	var sxy float64
	for _, s := range data {
		sxy += s[0] * s[1]
	}
	require.Greater(t, sxy, 0.0)
}

func TestGenerate_SingleGaussianSample(t *testing.T) {
	t.Parallel()

	data, err := dataset.Generate(dataset.KindGaussian, 1)
	require.NoError(t, err)
	require.Equal(t, []dataset.Sample{{0, 0}}, data)
}

func TestGenerate_BinaryCycles(t *testing.T) {
	t.Parallel()

	data, err := dataset.Generate(dataset.KindBinary, 5)
	require.NoError(t, err)
	require.Equal(t, []dataset.Sample{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0.5}}, data)

	long, err := dataset.Generate(dataset.KindBinary, 13, dataset.WithSeed(99))
	require.NoError(t, err)
	for i := 6; i < len(long); i++ {
		require.Equal(t, long[i-6], long[i])
	}

	again, err := dataset.Generate(dataset.KindBinary, 13)
	require.NoError(t, err)
	require.Equal(t, long, again)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := dataset.Generate("uniform", 10)
	require.ErrorIs(t, err, dataset.ErrUnknownKind)
	require.ErrorIs(t, err, qpca.ErrInvalidArgument)

	_, err = dataset.Generate(dataset.KindBinary, 0)
	require.ErrorIs(t, err, dataset.ErrBadSampleCount)
	require.ErrorIs(t, err, qpca.ErrInvalidArgument)

	require.Panics(t, func() { dataset.WithSource(nil) })
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   string
		want dataset.Kind
	}{
		{"gaussian", dataset.KindGaussian},
		{" Binary ", dataset.KindBinary},
	} {
		got, err := dataset.ParseKind(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := dataset.ParseKind("circles")
	require.ErrorIs(t, err, dataset.ErrUnknownKind)
	require.Len(t, dataset.Kinds(), 2)
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	m := dataset.Matrix([]dataset.Sample{{1, 2}, {3, 4}})
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, m.At(1, 0))
	require.Nil(t, dataset.Matrix(nil))
}
