// Package matter compensates part dimensions for 3D printing material
// behavior.
package matter

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Scale grows a solid to counter thermal shrinkage of the printed part.
func (m ViscousMaterial) Scale(s solid.Solid3) solid.Solid3 {
	scale := 1 / (1 - m.shrink)
	return solid.Transform3(s, solid.Scale3(r3.Vec{X: scale, Y: scale, Z: scale}))
}

// InternalDimScale compensates an internal cavity dimension such as a
// hole diameter so the cooled print measures real.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic(&solid.ParamError{Fn: "InternalDimScale", Param: "real", Reason: "not positive"})
	}
	return real*(m.shrink+1) + m.pullShrink
}
