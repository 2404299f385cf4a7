package must3

import (
	"math"

	"github.com/purefab/solid"
	"github.com/purefab/solid/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// box is a 3d box centered on the origin.
type box struct {
	size  r3.Vec
	round float64
	bb    r3.Box
}

// Box returns a 3d box centered on the origin, rounded with round > 0.
func Box(size r3.Vec, round float64) solid.Solid3 {
	if d3.LTEZero(size) {
		panic(&solid.ParamError{Fn: "Box", Param: "size", Reason: "not positive"})
	}
	if round < 0 {
		panic(&solid.ParamError{Fn: "Box", Param: "round", Reason: "negative"})
	}
	size = r3.Scale(0.5, size)
	return &box{
		size:  r3.Sub(size, d3.Elem(round)),
		round: round,
		bb:    r3.Box{Min: r3.Scale(-1, size), Max: size},
	}
}

// Evaluate returns the minimum distance to the box.
func (s *box) Evaluate(p r3.Vec) float64 {
	return sdfBox3d(p, s.size) - s.round
}

// Bounds returns the bounding box of the box.
func (s *box) Bounds() r3.Box {
	return s.bb
}

// cylinder is a z-axis cylinder centered on the origin.
type cylinder struct {
	height float64
	radius float64
	round  float64
	bb     r3.Box
}

// Cylinder returns a z-axis cylinder centered on the origin, with
// rounded edges for round > 0.
func Cylinder(height, radius, round float64) solid.Solid3 {
	if radius <= 0 {
		panic(&solid.ParamError{Fn: "Cylinder", Param: "radius", Reason: "not positive"})
	}
	if round < 0 {
		panic(&solid.ParamError{Fn: "Cylinder", Param: "round", Reason: "negative"})
	}
	if round > radius {
		panic(&solid.ParamError{Fn: "Cylinder", Param: "round", Reason: "exceeds radius"})
	}
	if height < 2*round {
		panic(&solid.ParamError{Fn: "Cylinder", Param: "height", Reason: "less than the rounding diameter"})
	}
	s := cylinder{
		height: (height / 2) - round,
		radius: radius - round,
		round:  round,
	}
	d := r3.Vec{X: radius, Y: radius, Z: height / 2}
	s.bb = r3.Box{Min: r3.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to the cylinder.
func (s *cylinder) Evaluate(p r3.Vec) float64 {
	d := sdfBox2d(r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}, r2.Vec{X: s.radius, Y: s.height})
	return d - s.round
}

// Bounds returns the bounding box of the cylinder.
func (s *cylinder) Bounds() r3.Box {
	return s.bb
}
