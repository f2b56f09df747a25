// SPDX-License-Identifier: MIT

package plots_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/plots"
	"github.com/katalvlaran/qpca/quantum"
)

func newRenderer(t *testing.T, format string) *plots.Renderer {
	t.Helper()
	cfg := plots.DefaultConfig()
	cfg.Dir = filepath.Join(t.TempDir(), "nested", "charts")
	cfg.Format = format
	r, err := plots.New(cfg)
	require.NoError(t, err)

	return r
}

func requireFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	return b
}

func TestRenderer_WritesSVGCharts(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, "svg")
	h := complex(1/math.Sqrt2, 0)

	require.NoError(t, r.Eigenvalues([]float64{0.8, 0.2}, []float64{0.3, 0.05}))
	require.NoError(t, r.VarianceExplained([]float64{0.8, 0.2}))
	require.NoError(t, r.States([]quantum.Statevector{{1, 0}, {h, h}, {h, complex(0, 1/math.Sqrt2)}}))

	for _, stem := range []string{plots.EigenvaluesFile, plots.VarianceFile, plots.StatesFile} {
		path := r.Path(stem)
		require.True(t, strings.HasSuffix(path, stem+".svg"))
		b := requireFile(t, path)
		require.Contains(t, string(b), "<svg")
	}
}

func TestRenderer_PNG(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, ".PNG")
	require.Equal(t, "png", r.Config().Format)
	require.NoError(t, r.VarianceExplained([]float64{1}))
	b := requireFile(t, r.Path(plots.VarianceFile))
	require.Equal(t, "\x89PNG", string(b[:4]))
}

func TestRenderer_CapsStates(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, "svg")
	states := make([]quantum.Statevector, 50)
	for i := range states {
		states[i] = quantum.Statevector{1, 0}
	}
	require.NoError(t, r.States(states))
	requireFile(t, r.Path(plots.StatesFile))
}

func TestRenderer_Errors(t *testing.T) {
	t.Parallel()

	cfg := plots.DefaultConfig()
	cfg.Format = "bmp"
	_, err := plots.New(cfg)
	require.ErrorIs(t, err, plots.ErrUnsupportedFormat)
	require.ErrorIs(t, err, qpca.ErrInvalidArgument)

	cfg = plots.DefaultConfig()
	cfg.Width = 0
	_, err = plots.New(cfg)
	require.ErrorIs(t, err, plots.ErrBadSize)

	r := newRenderer(t, "svg")
	require.ErrorIs(t, r.Eigenvalues(nil, nil), plots.ErrNoData)
	require.ErrorIs(t, r.VarianceExplained(nil), plots.ErrNoData)
	require.ErrorIs(t, r.States(nil), plots.ErrNoData)
	require.ErrorIs(t, r.States([]quantum.Statevector{{1, 0, 0, 0}}), quantum.ErrDimensionMismatch)
}

func TestCumulativeVariance(t *testing.T) {
	t.Parallel()

	cum := plots.CumulativeVariance([]float64{0.6, 0.4})
	require.InDelta(t, 0.6, cum[0], 1e-8)
	require.InDelta(t, 1.0, cum[1], 1e-8)
	require.Less(t, cum[1], 1.0)

	zero := plots.CumulativeVariance([]float64{0, 0})
	require.Equal(t, []float64{0, 0}, zero)
}

func TestProject(t *testing.T) {
	t.Parallel()

	x, y := plots.Project(quantum.BlochPoint{X: 1, Z: 0})
	require.Equal(t, 1.0, x)
	require.Equal(t, 0.0, y)

	x, y = plots.Project(quantum.BlochPoint{Y: 1})
	require.Less(t, x, 0.0)
	require.Less(t, y, 0.0)
}
