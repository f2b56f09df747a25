// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// binaryBank is the pattern set repeated by the binary generator.
var binaryBank = [...]Sample{
	{1, 1},
	{1, -1},
	{-1, 1},
	{-1, -1},
	{1, 0.5},
	{0.5, 1},
}

// binary cycles binaryBank until n rows exist, scaled by the bank's max |value|.
func binary(n int) []Sample {
	flat := make([]float64, 0, 2*len(binaryBank))
	for _, s := range binaryBank {
		flat = append(flat, s[0], s[1])
	}
	scale := floats.Norm(flat, math.Inf(1))

	out := make([]Sample, n)
	for i := range out {
		b := binaryBank[i%len(binaryBank)]
		out[i] = Sample{b[0] / scale, b[1] / scale}
	}

	return out
}
