// SPDX-License-Identifier: MIT

// Package dataset generates the small two-dimensional datasets fed to the
// qPCA and classical PCA pipelines.
//
// Two kinds are supported:
//   - gaussian: correlated bivariate normal draws, centered and scaled into [-1, 1].
//   - binary:   a fixed bank of six ±1/0.5 patterns repeated cyclically.
//
// Gaussian draws are reproducible for a given seed (WithSeed, default 42).
// The binary kind never consumes randomness.
package dataset

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sample is one observation: an ordered pair of reals in [-1, 1].
type Sample [2]float64

// Kind names a dataset generator.
type Kind string

const (
	KindGaussian Kind = "gaussian"
	KindBinary   Kind = "binary"
)

// Kinds lists the supported kinds in CLI order.
func Kinds() []Kind { return []Kind{KindGaussian, KindBinary} }

// ParseKind resolves a user-supplied name (case-insensitive, trimmed).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generate produces samples rows of the requested kind.
// Errors: ErrBadSampleCount (samples < 1), ErrUnknownKind.
func Generate(kind Kind, samples int, opts ...Option) ([]Sample, error) {
	if samples < 1 {
		return nil, datasetErrorf("Generate", ErrBadSampleCount)
	}
	cfg := gatherOptions(opts...)

	switch kind {
	case KindGaussian:
		return gaussian(samples, cfg.src)
	case KindBinary:
		return binary(samples), nil
	default:
		return nil, datasetErrorf("Generate", fmt.Errorf("%w: %q", ErrUnknownKind, string(kind)))
	}
}

// Matrix lays samples out as an n×2 gonum matrix. Returns nil for no samples.
func Matrix(samples []Sample) *mat.Dense {
	if len(samples) == 0 {
		return nil
	}
	m := mat.NewDense(len(samples), 2, nil)
	for i, s := range samples {
		m.SetRow(i, s[:])
	}

	return m
}
