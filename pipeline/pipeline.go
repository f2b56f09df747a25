// SPDX-License-Identifier: MIT

// Package pipeline runs the end-to-end qPCA demonstration:
//
//	dataset → encoding → density → spectral
//	dataset → classical
//	results → renderer
//
// A run is synchronous and all-or-nothing: any failure returns an error and
// no partial Result.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/qpca/classical"
	"github.com/katalvlaran/qpca/dataset"
	"github.com/katalvlaran/qpca/density"
	"github.com/katalvlaran/qpca/encoding"
	"github.com/katalvlaran/qpca/plots"
	"github.com/katalvlaran/qpca/quantum"
	"github.com/katalvlaran/qpca/spectral"
)

// Renderer draws the charts of a run.
type Renderer interface {
	Eigenvalues(qpcaValues, classicalValues []float64) error
	VarianceExplained(values []float64) error
	States(states []quantum.Statevector) error
}

var _ Renderer = (*plots.Renderer)(nil)

// Result carries every intermediate artifact of a run.
type Result struct {
	RunID         string
	Data          []dataset.Sample
	EncodedStates []quantum.Statevector
	DensityMatrix *density.Matrix
	QPCA          *spectral.Components
	Classical     *classical.Components
}

// Run executes the pipeline on a freshly generated dataset.
// Implementation:
//   - Stage 1: generate samples of kind.
//   - Stage 2: encode every sample and build the density matrix.
//   - Stage 3: estimate the top components of ρ.
//   - Stage 4: fit classical PCA on the raw samples.
//   - Stage 5: render the eigenvalue, variance and Bloch charts.
func Run(samples, components int, kind dataset.Kind, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	runID := uuid.New().String()
	log := o.log.With().Str("run_id", runID).Logger()
	start := time.Now()

	log.Info().
		Int("samples", samples).
		Int("components", components).
		Str("dataset", string(kind)).
		Int64("seed", o.seed).
		Msg("pipeline started")

	// Stage 1 (Dataset)
	data, err := dataset.Generate(kind, samples, dataset.WithSeed(o.seed))
	if err != nil {
		return nil, stageErrorf("dataset", err)
	}
	log.Debug().Int("rows", len(data)).Msg("dataset generated")

	// Stage 2 (Encode & density)
	states, err := encoding.EncodeAll(data, o.method)
	if err != nil {
		return nil, stageErrorf("encoding", err)
	}
	rho, err := density.Build(states)
	if err != nil {
		return nil, stageErrorf("density", err)
	}
	log.Debug().
		Str("method", string(o.method)).
		Float64("trace", real(rho.Trace())).
		Float64("purity", rho.Purity()).
		Msg("density matrix built")

	// Stage 3 (qPCA)
	q, err := spectral.Estimate(rho, components)
	if err != nil {
		return nil, stageErrorf("qpca", err)
	}
	log.Debug().Floats64("values", q.Values).Msg("qpca estimated")

	// Stage 4 (Classical baseline)
	c, err := classical.Fit(dataset.Matrix(data), components, classical.WithSolver(o.solver))
	if err != nil {
		return nil, stageErrorf("classical", err)
	}
	log.Debug().Floats64("values", c.Values).Str("solver", o.solver.String()).Msg("classical pca fitted")

	// Stage 5 (Render)
	r := o.renderer
	if r == nil {
		pr, err := plots.New(plots.DefaultConfig())
		if err != nil {
			return nil, stageErrorf("render", err)
		}
		r = pr
	}
	if err = r.Eigenvalues(q.Values, c.Values); err != nil {
		return nil, stageErrorf("render", err)
	}
	if err = r.VarianceExplained(q.Values); err != nil {
		return nil, stageErrorf("render", err)
	}
	if err = r.States(states[:min(len(states), plots.MaxStates)]); err != nil {
		return nil, stageErrorf("render", err)
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("pipeline finished")

	return &Result{
		RunID:         runID,
		Data:          data,
		EncodedStates: states,
		DensityMatrix: rho,
		QPCA:          q,
		Classical:     c,
	}, nil
}

func stageErrorf(stage string, err error) error {
	return fmt.Errorf("pipeline: %s: %w", stage, err)
}
