// SPDX-License-Identifier: MIT

package encoding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/dataset"
	"github.com/katalvlaran/qpca/encoding"
	"github.com/katalvlaran/qpca/quantum"
)

var samples = []dataset.Sample{
	{0, 0}, {1, 1}, {-1, 1}, {0.3, -0.7}, {1, 0}, {0, -1}, {-0.25, -0.5},
}

func TestEncode_UnitNorm(t *testing.T) {
	t.Parallel()

	for _, m := range []encoding.Method{encoding.MethodAngle, encoding.MethodAmplitude} {
		for _, s := range samples {
			psi, err := encoding.Encode(s, m)
			require.NoError(t, err)
			require.Len(t, psi, 2)
			require.InDelta(t, 1.0, psi.Norm(), 1e-6, "method=%s sample=%v", m, s)
		}
	}
}

func TestEncode_Angle(t *testing.T) {
	t.Parallel()

	// x0 = 1 → RY(π/2) gives |+⟩; x1 = 0 adds only a global phase of 1.
	psi, err := encoding.Encode(dataset.Sample{1, 0}, encoding.MethodAngle)
	require.NoError(t, err)
	require.InDelta(t, 1/math.Sqrt2, real(psi[0]), 1e-12)
	require.InDelta(t, 1/math.Sqrt2, real(psi[1]), 1e-12)

	// The second feature only moves the phase.
	psi, err = encoding.Encode(dataset.Sample{1, 1}, encoding.MethodAngle)
	require.NoError(t, err)
	p, err := quantum.Bloch(psi)
	require.NoError(t, err)
	require.InDelta(t, 0.0, p.Z, 1e-12)
	require.InDelta(t, 1.0, p.Y, 1e-12)
}

func TestEncode_Amplitude(t *testing.T) {
	t.Parallel()

	psi, err := encoding.Encode(dataset.Sample{3, 4}, encoding.MethodAmplitude)
	require.NoError(t, err)
	require.InDelta(t, 0.6, real(psi[0]), 1e-9)
	require.InDelta(t, 0.8, real(psi[1]), 1e-9)

	psi, err = encoding.Encode(dataset.Sample{-1, 0}, encoding.MethodAmplitude)
	require.NoError(t, err)
	require.InDelta(t, -1.0, real(psi[0]), 1e-9)

	zero, err := encoding.Encode(dataset.Sample{0, 0}, encoding.MethodAmplitude)
	require.NoError(t, err)
	require.Equal(t, quantum.Statevector{1, 0}, zero)
}

func TestEncode_UnknownMethod(t *testing.T) {
	t.Parallel()

	_, err := encoding.Encode(dataset.Sample{0, 0}, "basis")
	require.ErrorIs(t, err, encoding.ErrUnknownMethod)
	require.ErrorIs(t, err, qpca.ErrInvalidArgument)

	_, err = encoding.EncodeAll(samples, "basis")
	require.ErrorIs(t, err, encoding.ErrUnknownMethod)

	_, err = encoding.ParseMethod("qram")
	require.ErrorIs(t, err, encoding.ErrUnknownMethod)
	m, err := encoding.ParseMethod("Amplitude")
	require.NoError(t, err)
	require.Equal(t, encoding.MethodAmplitude, m)
}

func TestEncodeAll(t *testing.T) {
	t.Parallel()

	states, err := encoding.EncodeAll(samples, encoding.MethodAngle)
	require.NoError(t, err)
	require.Len(t, states, len(samples))

	empty, err := encoding.EncodeAll(nil, encoding.MethodAngle)
	require.NoError(t, err)
	require.Empty(t, empty)
}
