// SPDX-License-Identifier: MIT

package plots

import (
	"math"

	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/qpca/quantum"
)

// Oblique (cabinet) projection: the Y axis recedes at obliqueAngle with
// depth scaled by obliqueDepth.
const (
	obliqueAngle = math.Pi / 6
	obliqueDepth = 0.5
)

// Project maps a Bloch point onto the drawing plane:
// (x − d·y·cos α, z − d·y·sin α).
func Project(b quantum.BlochPoint) (float64, float64) {
	return b.X - obliqueDepth*b.Y*math.Cos(obliqueAngle),
		b.Z - obliqueDepth*b.Y*math.Sin(obliqueAngle)
}

// sphereOutline is the unit circle in the X–Z plane, closed.
func sphereOutline(n int) plotter.XYs {
	pts := make(plotter.XYs, n+1)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = plotter.XY{X: math.Cos(t), Y: math.Sin(t)}
	}

	return pts
}

// equatorOutline is the projected z = 0 great circle, closed.
func equatorOutline(n int) plotter.XYs {
	pts := make(plotter.XYs, n+1)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i].X, pts[i].Y = Project(quantum.BlochPoint{X: math.Cos(t), Y: math.Sin(t)})
	}

	return pts
}
