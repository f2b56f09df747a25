// SPDX-License-Identifier: MIT

// Package encoding maps two-dimensional samples onto single-qubit states.
//
// Methods:
//   - angle:     RY(x0·π/2) then RZ(x1·π/2) applied to |0⟩.
//   - amplitude: the sample divided by (‖x‖ + 1e-9), prepared as real
//     amplitudes with RY(2·atan2(b, a)); a zero sample prepares |0⟩.
//
// Both methods return unit-norm statevectors for every finite input.
package encoding

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qpca"
	"github.com/katalvlaran/qpca/dataset"
	"github.com/katalvlaran/qpca/quantum"
)

// Method names an encoding scheme.
type Method string

const (
	MethodAngle     Method = "angle"
	MethodAmplitude Method = "amplitude"
)

// amplitudeEpsilon is added to the norm before dividing.
const amplitudeEpsilon = 1e-9

// ErrUnknownMethod is returned for a method other than angle or amplitude.
var ErrUnknownMethod = fmt.Errorf("%w: encoding: unknown method", qpca.ErrInvalidArgument)

// ParseMethod resolves a user-supplied method name.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodAngle, MethodAmplitude:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Encode returns the one-qubit statevector for sample under method.
func Encode(sample dataset.Sample, method Method) (quantum.Statevector, error) {
	switch method {
	case MethodAngle:
		return angle(sample)
	case MethodAmplitude:
		return amplitude(sample)
	default:
		return nil, fmt.Errorf("encoding.Encode: %w: %q", ErrUnknownMethod, string(method))
	}
}

// EncodeAll encodes every sample, stopping at the first error.
func EncodeAll(samples []dataset.Sample, method Method) ([]quantum.Statevector, error) {
	out := make([]quantum.Statevector, len(samples))
	var err error
	for i, s := range samples {
		if out[i], err = Encode(s, method); err != nil {
			return nil, fmt.Errorf("encoding.EncodeAll: sample %d: %w", i, err)
		}
	}

	return out, nil
}

func angle(x dataset.Sample) (quantum.Statevector, error) {
	r, err := quantum.NewRegister(1)
	if err != nil {
		return nil, err
	}
	if err = r.RY(0, x[0]*math.Pi/2); err != nil {
		return nil, err
	}
	if err = r.RZ(0, x[1]*math.Pi/2); err != nil {
		return nil, err
	}

	return r.State(), nil
}

func amplitude(x dataset.Sample) (quantum.Statevector, error) {
	v := []float64{x[0], x[1]}
	floats.Scale(1/(floats.Norm(v, 2)+amplitudeEpsilon), v)

	r, err := quantum.NewRegister(1)
	if err != nil {
		return nil, err
	}
	// atan2(0, 0) = 0 leaves |0⟩ untouched.
	if err = r.RY(0, 2*math.Atan2(v[1], v[0])); err != nil {
		return nil, err
	}

	return r.State(), nil
}
