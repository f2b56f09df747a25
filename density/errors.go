// SPDX-License-Identifier: MIT

package density

import (
	"fmt"

	"github.com/katalvlaran/qpca"
)

var (
	// ErrNoStates is returned when Build receives an empty slice.
	ErrNoStates = fmt.Errorf("%w: density: no states", qpca.ErrInvalidArgument)

	// ErrDimensionMismatch is returned for states of differing length or
	// entry counts that do not match d×d.
	ErrDimensionMismatch = fmt.Errorf("%w: density: dimension mismatch", qpca.ErrInvalidArgument)

	// ErrNonFinite is returned when an entry is NaN or infinite.
	ErrNonFinite = fmt.Errorf("%w: density: NaN or Inf entry", qpca.ErrInvalidArgument)

	// ErrOutOfRange is returned by At for indices outside [0, d).
	ErrOutOfRange = fmt.Errorf("%w: density: index out of range", qpca.ErrInvalidArgument)
)

func densityErrorf(op string, err error) error {
	return fmt.Errorf("density.%s: %w", op, err)
}
