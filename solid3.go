package solid

import (
	"math"
	"strconv"

	"github.com/purefab/solid/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// 3D signed distance functions.

// revolve3 is a solid of revolution about the z-axis.
type revolve3 struct {
	solid Solid2
	theta float64 // angle for partial revolutions, 0 is a full revolution
	norm  r2.Vec  // pre-calculated normal to the theta line
	bb    r3.Box
}

// Revolve3 returns the solid of revolution of a 2D solid about the z-axis.
// The profile x-axis becomes the radial direction and the profile y-axis
// the z-axis. theta is the swept angle in radians, measured from the
// positive x-axis towards the positive y-axis. The sweep is bounded in
// the distance field itself so no planar cuts are needed afterwards.
// For a full revolution call
//
//	Revolve3(s0, 2*math.Pi)
//
// Revolve3 panics if s is nil. A non-positive theta yields an empty solid.
func Revolve3(s Solid2, theta float64) Solid3 {
	if s == nil {
		panic("nil solid argument")
	}
	if theta <= 0 {
		return Empty3(r3.Vec{})
	}
	if math.Abs(theta-tau) < tolerance {
		theta = 0 // internally theta=0 is a full revolution.
	}
	sol := revolve3{}
	sol.solid = s
	sol.theta = math.Mod(math.Abs(theta), tau)
	sin := math.Sin(sol.theta)
	cos := math.Cos(sol.theta)
	sol.norm = r2.Vec{X: -sin, Y: cos}
	// work out the bounding box from the directions the sweep reaches
	var vset []r2.Vec
	if sol.theta == 0 {
		vset = []r2.Vec{{X: 1, Y: 1}, {X: -1, Y: -1}}
	} else {
		vset = []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: cos, Y: sin}}
		if sol.theta > 0.5*pi {
			vset = append(vset, r2.Vec{X: 0, Y: 1})
		}
		if sol.theta > pi {
			vset = append(vset, r2.Vec{X: -1, Y: 0})
		}
		if sol.theta > 1.5*pi {
			vset = append(vset, r2.Vec{X: 0, Y: -1})
		}
	}
	bb := s.Bounds()
	l := math.Max(math.Abs(bb.Min.X), math.Abs(bb.Max.X))
	vmin := vset[0]
	vmax := vset[0]
	for _, v := range vset[1:] {
		vmin = r2.Vec{X: math.Min(vmin.X, v.X), Y: math.Min(vmin.Y, v.Y)}
		vmax = r2.Vec{X: math.Max(vmax.X, v.X), Y: math.Max(vmax.Y, v.Y)}
	}
	vmin = r2.Scale(l, vmin)
	vmax = r2.Scale(l, vmax)
	sol.bb = r3.Box{
		Min: r3.Vec{X: vmin.X, Y: vmin.Y, Z: bb.Min.Y},
		Max: r3.Vec{X: vmax.X, Y: vmax.Y, Z: bb.Max.Y},
	}
	return &sol
}

// Evaluate returns the minimum distance to the solid of revolution.
func (s *revolve3) Evaluate(p r3.Vec) float64 {
	x := math.Hypot(p.X, p.Y)
	a := s.solid.Evaluate(r2.Vec{X: x, Y: p.Z})
	b := a
	if s.theta != 0 {
		// combine two vertical planes to give the swept wedge
		d := r2.Dot(s.norm, r2.Vec{X: p.X, Y: p.Y})
		if s.theta < pi {
			b = math.Max(-p.Y, d) // intersect
		} else {
			b = math.Min(-p.Y, d) // union
		}
	}
	return math.Max(a, b)
}

// Bounds returns the bounding box of the solid of revolution.
func (s *revolve3) Bounds() r3.Box {
	return s.bb
}

// extrude3 is a linear extrusion of a 2D solid.
type extrude3 struct {
	solid  Solid2
	height float64 // half height
	bb     r3.Box
}

// Extrude3 returns the linear extrusion of a 2D solid along the z-axis.
// The extrusion is centered on z so it spans [-height/2, height/2].
// Extrude3 panics if s is nil. A non-positive height yields an empty solid.
func Extrude3(s Solid2, height float64) Solid3 {
	if s == nil {
		panic("nil solid argument")
	}
	if height <= 0 {
		return Empty3(r3.Vec{})
	}
	sol := extrude3{}
	sol.solid = s
	sol.height = height / 2
	bb := s.Bounds()
	sol.bb = r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: -sol.height},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: sol.height},
	}
	return &sol
}

// Evaluate returns the minimum distance to the extrusion.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	// distance to the projected 2D surface
	a := s.solid.Evaluate(r2.Vec{X: p.X, Y: p.Y})
	// distance to the extrusion region z = [-height, height]
	b := math.Abs(p.Z) - s.height
	return math.Max(a, b)
}

// Bounds returns the bounding box of the extrusion.
func (s *extrude3) Bounds() r3.Box {
	return s.bb
}

// transform3 is a 3D solid transformed with a 4x4 matrix.
type transform3 struct {
	solid Solid3
	inv   M44
	bb    r3.Box
}

// Transform3 applies a transformation matrix to a 3D solid.
// Distance is not preserved with scaling.
func Transform3(s Solid3, m M44) Solid3 {
	if s == nil {
		panic("nil solid argument")
	}
	return &transform3{
		solid: s,
		inv:   m.Inverse(),
		bb:    m.MulBox(s.Bounds()),
	}
}

// Evaluate returns the minimum distance to the transformed solid.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.solid.Evaluate(s.inv.MulPosition(p))
}

// Bounds returns the bounding box of the transformed solid.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// union3 is a union of 3D solids.
type union3 struct {
	solid []Solid3
	min   MinFunc
	bb    r3.Box
}

// Union3 returns the union of multiple 3D solids.
// Union3 panics if the argument list is empty or contains a nil solid.
func Union3(solid ...Solid3) Solid3 {
	if len(solid) == 0 {
		panic("union requires at least 1 solid")
	}
	for i, x := range solid {
		if x == nil {
			panic("nil solid argument (" + strconv.Itoa(i) + ") to Union3")
		}
	}
	if len(solid) == 1 {
		return solid[0]
	}
	s := union3{solid: solid, min: math.Min}
	bb := d3.Box(solid[0].Bounds())
	for _, x := range solid[1:] {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the 3D union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.solid[0].Evaluate(p)
	for _, x := range s.solid[1:] {
		d = s.min(d, x.Evaluate(p))
	}
	return d
}

// SetMin sets the minimum function to control blending.
func (s *union3) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of the 3D union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// intersect3 is the intersection of two 3D solids.
type intersect3 struct {
	s0, s1 Solid3
	max    MaxFunc
	bb     r3.Box
}

// Intersect3 returns the intersection of two 3D solids.
// Intersect3 panics if either argument is nil.
func Intersect3(s0, s1 Solid3) Solid3 {
	if s0 == nil || s1 == nil {
		panic("nil solid argument")
	}
	return &intersect3{
		s0:  s0,
		s1:  s1,
		max: math.Max,
		// TODO tighten to the intersection of the two boxes
		bb: s0.Bounds(),
	}
}

// Evaluate returns the minimum distance to the intersection.
func (s *intersect3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *intersect3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the intersection.
func (s *intersect3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of two 3D solids, s0 - s1.
type diff3 struct {
	s0, s1 Solid3
	max    MaxFunc
	bb     r3.Box
}

// Difference3 returns the difference of two 3D solids, s0 - s1.
// Difference3 panics if either argument is nil.
func Difference3(s0, s1 Solid3) Solid3 {
	if s0 == nil || s1 == nil {
		panic("nil solid argument")
	}
	return &diff3{
		s0:  s0,
		s1:  s1,
		max: math.Max,
		bb:  s0.Bounds(),
	}
}

// Evaluate returns the minimum distance to the difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the difference.
func (s *diff3) Bounds() r3.Box {
	return s.bb
}

// cut3 is a planar cut through a 3D solid.
type cut3 struct {
	solid Solid3
	a     r3.Vec // point on plane
	n     r3.Vec // normal to plane
	bb    r3.Box
}

// Cut3 cuts a 3D solid along the plane through a with normal n.
// The side the normal points to remains.
func Cut3(s Solid3, a, n r3.Vec) Solid3 {
	if s == nil {
		panic("nil solid argument")
	}
	return &cut3{
		solid: s,
		a:     a,
		n:     r3.Scale(-1, r3.Unit(n)),
		bb:    s.Bounds(),
	}
}

// Evaluate returns the minimum distance to the cut solid.
func (s *cut3) Evaluate(p r3.Vec) float64 {
	return math.Max(r3.Dot(r3.Sub(p, s.a), s.n), s.solid.Evaluate(p))
}

// Bounds returns the bounding box of the cut solid.
func (s *cut3) Bounds() r3.Box {
	return s.bb
}

// Orient3 returns a union of copies of a solid rotated from direction
// base to each of the given directions.
func Orient3(s Solid3, base r3.Vec, directions []r3.Vec) Solid3 {
	if s == nil {
		panic("nil solid argument")
	}
	if len(directions) == 0 {
		return empty3From(s)
	}
	objects := make([]Solid3, len(directions))
	for i, d := range directions {
		objects[i] = Transform3(s, RotateToVec(base, d))
	}
	return Union3(objects...)
}

func empty3From(s Solid3) Solid3 {
	return Empty3(d3.Box(s.Bounds()).Center())
}

// Empty3 returns a 3D solid with no interior located at center.
func Empty3(center r3.Vec) Solid3 {
	return empty3{center: center}
}

type empty3 struct {
	center r3.Vec
}

func (e empty3) Evaluate(r3.Vec) float64 {
	return math.MaxFloat64
}

func (e empty3) Bounds() r3.Box {
	return r3.Box{Min: e.center, Max: e.center}
}
