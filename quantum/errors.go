// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"

	"github.com/katalvlaran/qpca"
)

var (
	// ErrNotPowerOfTwo is returned when a statevector length is not 2^n, n ≥ 1.
	ErrNotPowerOfTwo = fmt.Errorf("%w: quantum: dimension is not a power of two", qpca.ErrInvalidArgument)

	// ErrQubitOutOfRange is returned when a gate addresses a qubit outside the register.
	ErrQubitOutOfRange = fmt.Errorf("%w: quantum: qubit index out of range", qpca.ErrInvalidArgument)

	// ErrDimensionMismatch is returned when two statevectors must share a dimension and do not.
	ErrDimensionMismatch = fmt.Errorf("%w: quantum: dimension mismatch", qpca.ErrInvalidArgument)

	// ErrZeroNorm is returned when a zero vector is normalized.
	ErrZeroNorm = fmt.Errorf("%w: quantum: zero-norm vector", qpca.ErrInvalidArgument)
)

// quantumErrorf tags err with the failing operation.
func quantumErrorf(op string, err error) error {
	return fmt.Errorf("quantum.%s: %w", op, err)
}
