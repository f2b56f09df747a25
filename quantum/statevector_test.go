// SPDX-License-Identifier: MIT

package quantum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/quantum"
)

func TestStatevector_Basics(t *testing.T) {
	t.Parallel()

	s, err := quantum.Zero(2)
	require.NoError(t, err)
	require.Equal(t, 4, s.Dim())
	q, err := s.Qubits()
	require.NoError(t, err)
	require.Equal(t, 2, q)
	require.Equal(t, 1.0, s.Norm())

	_, err = quantum.Zero(0)
	require.ErrorIs(t, err, qpca.ErrInvalidArgument)

	_, err = quantum.Statevector{1, 0, 0}.Qubits()
	require.ErrorIs(t, err, quantum.ErrNotPowerOfTwo)
}

func TestStatevector_NormalizeAndInner(t *testing.T) {
	t.Parallel()

	s, err := quantum.Statevector{3, 4i}.Normalized()
	require.NoError(t, err)
	require.InDelta(t, 1.0, s.Norm(), 1e-12)

	ip, err := s.Inner(s)
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(ip), 1e-12)
	require.InDelta(t, 0.0, imag(ip), 1e-12)

	// ⟨0|+i⟩ conjugates the bra.
	ip, err = quantum.Statevector{0, 1i}.Inner(quantum.Statevector{0, 1})
	require.NoError(t, err)
	require.Equal(t, complex(0, -1), ip)

	_, err = quantum.Statevector{0, 0}.Normalized()
	require.ErrorIs(t, err, quantum.ErrZeroNorm)
	_, err = s.Inner(quantum.Statevector{1, 0, 0, 0})
	require.ErrorIs(t, err, quantum.ErrDimensionMismatch)
}

func TestKron(t *testing.T) {
	t.Parallel()

	a := quantum.Statevector{0, 1}
	b := quantum.Statevector{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)}
	k := quantum.Kron(a, b)
	require.Len(t, k, 4)
	require.InDeltaSlice(t, []float64{0, 0, 0.5, 0.5}, k.Probabilities(), 1e-12)
}

func TestBloch(t *testing.T) {
	t.Parallel()

	p, err := quantum.Bloch(quantum.Statevector{1, 0})
	require.NoError(t, err)
	require.Equal(t, quantum.BlochPoint{X: 0, Y: 0, Z: 1}, p)

	h := complex(1/math.Sqrt2, 0)
	p, err = quantum.Bloch(quantum.Statevector{h, h})
	require.NoError(t, err)
	require.InDelta(t, 1.0, p.X, 1e-12)
	require.InDelta(t, 0.0, p.Z, 1e-12)

	// |+i⟩ = (|0⟩ + i|1⟩)/√2 sits on +Y.
	p, err = quantum.Bloch(quantum.Statevector{h, complex(0, 1/math.Sqrt2)})
	require.NoError(t, err)
	require.InDelta(t, 1.0, p.Y, 1e-12)

	_, err = quantum.Bloch(quantum.Statevector{1, 0, 0, 0})
	require.ErrorIs(t, err, quantum.ErrDimensionMismatch)
}
