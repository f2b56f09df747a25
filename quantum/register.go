// SPDX-License-Identifier: MIT

package quantum

import (
	"math"
	"math/cmplx"
)

// Register is a mutable n-qubit state evolved in place by gates.
// Gates follow the bitmask pairing: for a target bit b, each index i with
// i&b == 0 is paired with i|b.
type Register struct {
	qubits int
	amps   Statevector
}

// NewRegister returns an n-qubit register in |0…0⟩.
func NewRegister(qubits int) (*Register, error) {
	s, err := Zero(qubits)
	if err != nil {
		return nil, quantumErrorf("NewRegister", err)
	}

	return &Register{qubits: qubits, amps: s}, nil
}

// NewRegisterFrom prepares the product state states[0] ⊗ states[1] ⊗ ….
// states[0] lands on the most significant qubits. Each input must have a
// power-of-two length.
func NewRegisterFrom(states ...Statevector) (*Register, error) {
	if len(states) == 0 {
		return nil, quantumErrorf("NewRegisterFrom", ErrNotPowerOfTwo)
	}
	total := 0
	acc := Statevector{1}
	for _, s := range states {
		q, err := s.Qubits()
		if err != nil {
			return nil, quantumErrorf("NewRegisterFrom", err)
		}
		total += q
		acc = Kron(acc, s)
	}

	return &Register{qubits: total, amps: acc}, nil
}

// Qubits returns the register width.
func (r *Register) Qubits() int { return r.qubits }

// State returns a copy of the current amplitudes.
func (r *Register) State() Statevector { return r.amps.Clone() }

func (r *Register) check(op string, qs ...int) error {
	for _, q := range qs {
		if q < 0 || q >= r.qubits {
			return quantumErrorf(op, ErrQubitOutOfRange)
		}
	}

	return nil
}

// H applies the Hadamard gate to qubit q.
func (r *Register) H(q int) error {
	if err := r.check("H", q); err != nil {
		return err
	}
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	var a0, a1 complex128
	for i := range r.amps {
		if i&bit != 0 {
			continue
		}
		a0, a1 = r.amps[i], r.amps[i|bit]
		r.amps[i] = h * (a0 + a1)
		r.amps[i|bit] = h * (a0 - a1)
	}

	return nil
}

// RY rotates qubit q by theta about the Y axis:
// |0⟩ → cos(θ/2)|0⟩ + sin(θ/2)|1⟩.
func (r *Register) RY(q int, theta float64) error {
	if err := r.check("RY", q); err != nil {
		return err
	}
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	bit := 1 << q
	var a0, a1 complex128
	for i := range r.amps {
		if i&bit != 0 {
			continue
		}
		a0, a1 = r.amps[i], r.amps[i|bit]
		r.amps[i] = c*a0 - s*a1
		r.amps[i|bit] = s*a0 + c*a1
	}

	return nil
}

// RZ rotates qubit q by theta about the Z axis: diag(e^{-iθ/2}, e^{iθ/2}).
func (r *Register) RZ(q int, theta float64) error {
	if err := r.check("RZ", q); err != nil {
		return err
	}
	p0 := cmplx.Exp(complex(0, -theta/2))
	p1 := cmplx.Exp(complex(0, theta/2))
	bit := 1 << q
	for i := range r.amps {
		if i&bit == 0 {
			r.amps[i] *= p0
		} else {
			r.amps[i] *= p1
		}
	}

	return nil
}

// SWAP exchanges qubits a and b.
func (r *Register) SWAP(a, b int) error {
	if err := r.check("SWAP", a, b); err != nil {
		return err
	}
	r.swap(a, b, 0)

	return nil
}

// CSWAP exchanges qubits a and b on the branch where control is |1⟩ (Fredkin gate).
func (r *Register) CSWAP(control, a, b int) error {
	if err := r.check("CSWAP", control, a, b); err != nil {
		return err
	}
	if control == a || control == b {
		return quantumErrorf("CSWAP", ErrQubitOutOfRange)
	}
	r.swap(a, b, 1<<control)

	return nil
}

// swap exchanges amplitudes of indices that differ only in bits a and b
// (one set, the other clear) and carry every bit of mask.
func (r *Register) swap(a, b, mask int) {
	if a == b {
		return
	}
	ba, bb := 1<<a, 1<<b
	var j int
	for i := range r.amps {
		if i&mask != mask || i&ba == 0 || i&bb != 0 {
			continue
		}
		j = (i &^ ba) | bb
		r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
	}
}

// Probability returns P(qubit q measures bit), bit ∈ {0,1}.
func (r *Register) Probability(q, bit int) (float64, error) {
	if err := r.check("Probability", q); err != nil {
		return 0, err
	}
	mask := 1 << q
	var p, a float64
	for i, amp := range r.amps {
		if (i&mask != 0) != (bit != 0) {
			continue
		}
		a = cmplx.Abs(amp)
		p += a * a
	}

	return p, nil
}
