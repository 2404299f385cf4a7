// Package solid models 3D solids as signed distance functions built from a
// small fixed set of generators: linear and rotational sweeps of 2D
// profiles, half-space cuts, intersection and union. It is not a general
// boolean-CSG kernel; shape construction lives in the profile and form3
// packages, mesh extraction in render.
package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid2 is the interface to a 2D signed distance field.
type Solid2 interface {
	// Evaluate returns the minimum distance from p to the boundary.
	// The distance is negative if p is contained within the solid.
	Evaluate(p r2.Vec) float64

	// Bounds returns a bounding box that completely contains the solid.
	Bounds() r2.Box
}

// Solid3 is the interface to a 3D signed distance field.
type Solid3 interface {
	// Evaluate returns the minimum distance from p to the boundary.
	// The distance is negative if p is contained within the solid.
	Evaluate(p r3.Vec) float64

	// Bounds returns a bounding box that completely contains the solid.
	Bounds() r3.Box
}

// MinFunc is a minimum function for blending solids in unions.
type MinFunc func(a, b float64) float64

// MaxFunc is a maximum function for blending solids in intersections
// and differences.
type MaxFunc func(a, b float64) float64

const (
	pi  = math.Pi
	tau = 2 * pi

	tolerance = 1e-9
	epsilon   = 1e-12
)

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp clamps x between a and b, assuming a <= b.
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Sign returns the sign of x.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
