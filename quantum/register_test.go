// SPDX-License-Identifier: MIT

package quantum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca/quantum"
)

func TestRegister_HadamardTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	r, err := quantum.NewRegister(1)
	require.NoError(t, err)
	require.NoError(t, r.H(0))
	p0, err := r.Probability(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p0, 1e-12)

	require.NoError(t, r.H(0))
	p0, err = r.Probability(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p0, 1e-12)
}

func TestRegister_Rotations(t *testing.T) {
	t.Parallel()

	r, err := quantum.NewRegister(1)
	require.NoError(t, err)
	require.NoError(t, r.RY(0, math.Pi))
	s := r.State()
	require.InDelta(t, 0.0, real(s[0]), 1e-12)
	require.InDelta(t, 1.0, real(s[1]), 1e-12)

	// RZ only changes phases.
	require.NoError(t, r.RZ(0, math.Pi/2))
	p1, err := r.Probability(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p1, 1e-12)
	require.InDelta(t, 1.0, r.State().Norm(), 1e-12)
}

func TestRegister_SwapAndControlledSwap(t *testing.T) {
	t.Parallel()

	one := quantum.Statevector{0, 1}
	zero := quantum.Statevector{1, 0}

	// |1⟩⊗|0⟩: qubit 1 set. SWAP moves it to qubit 0.
	r, err := quantum.NewRegisterFrom(one, zero)
	require.NoError(t, err)
	require.Equal(t, 2, r.Qubits())
	require.NoError(t, r.SWAP(0, 1))
	p, err := r.Probability(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-12)

	// Control |0⟩: CSWAP is a no-op.
	r, err = quantum.NewRegisterFrom(zero, one, zero)
	require.NoError(t, err)
	require.NoError(t, r.CSWAP(2, 0, 1))
	p, err = r.Probability(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-12)

	// Control |1⟩: qubits 0 and 1 exchange.
	r, err = quantum.NewRegisterFrom(one, one, zero)
	require.NoError(t, err)
	require.NoError(t, r.CSWAP(2, 0, 1))
	p, err = r.Probability(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-12)

	require.ErrorIs(t, r.CSWAP(0, 0, 1), quantum.ErrQubitOutOfRange)
	require.ErrorIs(t, r.H(3), quantum.ErrQubitOutOfRange)
	_, err = quantum.NewRegisterFrom(quantum.Statevector{1, 0, 0})
	require.ErrorIs(t, err, quantum.ErrNotPowerOfTwo)
}
