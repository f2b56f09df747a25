// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qpca"
)

var (
	// ErrUnknownKind is returned for a dataset kind other than gaussian or binary.
	ErrUnknownKind = fmt.Errorf("%w: dataset: unknown kind", qpca.ErrInvalidArgument)

	// ErrBadSampleCount is returned when fewer than one sample is requested.
	ErrBadSampleCount = fmt.Errorf("%w: dataset: samples must be >= 1", qpca.ErrInvalidArgument)

	// ErrCovarianceFactorization is returned when the sampling covariance
	// cannot be eigen-decomposed.
	ErrCovarianceFactorization = errors.New("dataset: covariance factorization failed")
)

// datasetErrorf wraps err with the generator name.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("dataset.%s: %w", tag, err)
}
