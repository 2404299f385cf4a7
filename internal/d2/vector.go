// Package d2 holds the 2D vector and box helpers shared by the solid
// kernel and the profile builders.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinElem returns a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem returns a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// AbsElem returns a vector with the absolute values of the components.
func AbsElem(a r2.Vec) r2.Vec {
	return r2.Vec{X: math.Abs(a.X), Y: math.Abs(a.Y)}
}

// Set is an ordered collection of 2D points.
type Set []r2.Vec
