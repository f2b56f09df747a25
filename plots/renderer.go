// SPDX-License-Identifier: MIT

// Package plots renders the comparison charts of a qPCA run with gonum/plot.
//
// Three charts are produced per run:
//   - qpca_eigenvalues:         bar chart, qPCA bars then classical bars.
//   - qpca_variance_plot:       cumulative variance of the qPCA eigenvalues.
//   - qpca_state_visualization: oblique projection of encoded states on the Bloch sphere.
package plots

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/qpca/quantum"
)

// MaxStates caps the number of states drawn on the Bloch projection.
const MaxStates = 20

// Renderer writes charts according to its Config.
type Renderer struct {
	cfg Config
}

// New validates cfg and returns a Renderer.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plots.New: %w", err)
	}

	return &Renderer{cfg: cfg}, nil
}

// Config returns the resolved configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Path returns the output path for a chart stem.
func (r *Renderer) Path(stem string) string {
	return filepath.Join(r.cfg.Dir, stem+"."+r.cfg.Format)
}

// Eigenvalues draws the qPCA and classical eigenvalues side by side.
func (r *Renderer) Eigenvalues(qpcaValues, classicalValues []float64) error {
	if len(qpcaValues)+len(classicalValues) == 0 {
		return fmt.Errorf("plots.Eigenvalues: %w", ErrNoData)
	}

	p := plot.New()
	p.Title.Text = "Dominant eigenvalues: quantum vs classical"
	p.Y.Label.Text = "Eigenvalue magnitude"
	p.X.Tick.Label.Rotation = math.Pi / 6

	names := make([]string, 0, len(qpcaValues)+len(classicalValues))
	groups := []struct {
		label  string
		values []float64
	}{
		{"qPCA", qpcaValues},
		{"Classical", classicalValues},
	}
	offset := 0
	for g, group := range groups {
		for i := range group.values {
			names = append(names, fmt.Sprintf("%s %d", group.label, i))
		}
		if len(group.values) == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(plotter.Values(group.values), vg.Points(20))
		if err != nil {
			return fmt.Errorf("plots.Eigenvalues: %w", err)
		}
		bars.Color = plotutil.Color(g)
		bars.LineStyle.Width = vg.Length(0)
		bars.XMin = float64(offset)
		offset += len(group.values)
		p.Add(bars)
		p.Legend.Add(group.label, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	return r.save(p, EigenvaluesFile)
}

// CumulativeVariance returns cumsum(values) / (Σ values + 1e-9).
func CumulativeVariance(values []float64) []float64 {
	total := 1e-9
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	var acc float64
	for i, v := range values {
		acc += v
		out[i] = acc / total
	}

	return out
}

// VarianceExplained draws the cumulative variance curve of values.
func (r *Renderer) VarianceExplained(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("plots.VarianceExplained: %w", ErrNoData)
	}

	cum := CumulativeVariance(values)
	pts := make(plotter.XYs, len(cum))
	for i, c := range cum {
		pts[i] = plotter.XY{X: float64(i + 1), Y: c}
	}

	p := plot.New()
	p.Title.Text = "Variance captured by leading components"
	p.X.Label.Text = "Number of components"
	p.Y.Label.Text = "Cumulative variance explained"
	p.Y.Min, p.Y.Max = 0, 1.05
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("plots.VarianceExplained: %w", err)
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	return r.save(p, VarianceFile)
}

// States draws the first MaxStates single-qubit states on the Bloch sphere.
func (r *Renderer) States(states []quantum.Statevector) error {
	if len(states) == 0 {
		return fmt.Errorf("plots.States: %w", ErrNoData)
	}
	if len(states) > MaxStates {
		states = states[:MaxStates]
	}

	pts := make(plotter.XYs, len(states))
	for i, s := range states {
		b, err := quantum.Bloch(s)
		if err != nil {
			return fmt.Errorf("plots.States: state %d: %w", i, err)
		}
		pts[i].X, pts[i].Y = Project(b)
	}

	p := plot.New()
	p.Title.Text = "Encoded states on the Bloch sphere (projection)"
	p.X.Label.Text = "X (Y receding)"
	p.Y.Label.Text = "Z"
	p.X.Min, p.X.Max = -1.5, 1.5
	p.Y.Min, p.Y.Max = -1.5, 1.5

	outline, err := plotter.NewLine(sphereOutline(96))
	if err != nil {
		return fmt.Errorf("plots.States: %w", err)
	}
	outline.Color = plotutil.Color(6)
	equator, err := plotter.NewLine(equatorOutline(96))
	if err != nil {
		return fmt.Errorf("plots.States: %w", err)
	}
	equator.Color = plotutil.Color(6)
	equator.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plots.States: %w", err)
	}
	scatter.Color = plotutil.Color(2)
	scatter.Radius = vg.Points(3)

	p.Add(outline, equator, scatter)

	return r.save(p, StatesFile)
}

// save writes p into the configured directory, creating it first.
func (r *Renderer) save(p *plot.Plot, stem string) (err error) {
	path := r.Path(stem)
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("plots: %w", err)
	}
	wt, err := p.WriterTo(r.cfg.Width, r.cfg.Height, r.cfg.Format)
	if err != nil {
		return fmt.Errorf("plots: %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plots: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("plots: %w", cerr)
		}
	}()
	if _, err = wt.WriteTo(f); err != nil {
		return fmt.Errorf("plots: %s: %w", path, err)
	}

	return nil
}
