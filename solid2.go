package solid

import (
	"math"

	"github.com/purefab/solid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D signed distance functions.

// polygon2 is a closed 2D polygon.
type polygon2 struct {
	vertex d2.Set
	bb     r2.Box
}

// Polygon2 returns a solid from a closed polygon described by its vertices.
// The winding order does not matter. Polygon2 panics if given fewer than
// 3 vertices.
func Polygon2(vertex []r2.Vec) Solid2 {
	if len(vertex) < 3 {
		panic("polygon requires at least 3 vertices")
	}
	s := polygon2{}
	s.vertex = make(d2.Set, len(vertex))
	copy(s.vertex, vertex)
	bb := d2.Box{Min: vertex[0], Max: vertex[0]}
	for _, v := range vertex[1:] {
		bb = bb.Include(v)
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the polygon. The sign is
// resolved by even/odd edge crossings so self-touching contours still
// evaluate sensibly.
func (s *polygon2) Evaluate(p r2.Vec) float64 {
	v := s.vertex
	dd := r2.Norm2(r2.Sub(p, v[0]))
	sign := 1.0
	for i, j := 0, len(v)-1; i < len(v); j, i = i, i+1 {
		e := r2.Sub(v[j], v[i])
		w := r2.Sub(p, v[i])
		// a repeated vertex makes a zero-length edge whose nearest
		// point is the vertex itself
		b := w
		if ee := r2.Norm2(e); ee > 0 {
			b = r2.Sub(w, r2.Scale(Clamp(r2.Dot(w, e)/ee, 0, 1), e))
		}
		dd = math.Min(dd, r2.Norm2(b))
		// winding by crossing tests
		c1 := p.Y >= v[i].Y
		c2 := p.Y < v[j].Y
		c3 := e.X*w.Y > e.Y*w.X
		if (c1 && c2 && c3) || (!c1 && !c2 && !c3) {
			sign = -sign
		}
	}
	return sign * math.Sqrt(dd)
}

// Bounds returns the bounding box of the polygon.
func (s *polygon2) Bounds() r2.Box {
	return s.bb
}

// transform2 is a transformed 2D solid.
type transform2 struct {
	solid Solid2
	inv   M33
	bb    r2.Box
}

// Transform2 applies a transformation matrix to a 2D solid.
// Distance is not preserved with scaling.
func Transform2(s Solid2, m M33) Solid2 {
	if s == nil {
		panic("nil solid argument")
	}
	return &transform2{
		solid: s,
		inv:   m.Inverse(),
		bb:    m.MulBox(s.Bounds()),
	}
}

// Evaluate returns the minimum distance to the transformed solid.
func (s *transform2) Evaluate(p r2.Vec) float64 {
	return s.solid.Evaluate(s.inv.MulPosition(p))
}

// Bounds returns the bounding box of the transformed solid.
func (s *transform2) Bounds() r2.Box {
	return s.bb
}

// union2 is a union of 2D solids.
type union2 struct {
	solid []Solid2
	min   MinFunc
	bb    r2.Box
}

// Union2 returns the union of multiple 2D solids.
// Union2 panics if the argument list is empty or contains a nil solid.
func Union2(solid ...Solid2) Solid2 {
	if len(solid) == 0 {
		panic("union requires at least 1 solid")
	}
	for _, x := range solid {
		if x == nil {
			panic("nil solid argument")
		}
	}
	if len(solid) == 1 {
		return solid[0]
	}
	s := union2{solid: solid, min: math.Min}
	bb := d2.Box(solid[0].Bounds())
	for _, x := range solid[1:] {
		bb = bb.Extend(d2.Box(x.Bounds()))
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the 2D union.
func (s *union2) Evaluate(p r2.Vec) float64 {
	d := s.solid[0].Evaluate(p)
	for _, x := range s.solid[1:] {
		d = s.min(d, x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the 2D union.
func (s *union2) Bounds() r2.Box {
	return s.bb
}

// cut2 is a 2D solid cut along a line.
type cut2 struct {
	solid Solid2
	a     r2.Vec // point on line
	n     r2.Vec // normal to line
	bb    r2.Box
}

// Cut2 cuts a 2D solid along the line through a in direction v.
// The half to the right of the line remains.
func Cut2(s Solid2, a, v r2.Vec) Solid2 {
	if s == nil {
		panic("nil solid argument")
	}
	v = r2.Unit(v)
	return &cut2{
		solid: s,
		a:     a,
		n:     r2.Vec{X: -v.Y, Y: v.X},
		bb:    s.Bounds(),
	}
}

// Evaluate returns the minimum distance to the cut solid.
func (s *cut2) Evaluate(p r2.Vec) float64 {
	return math.Max(r2.Dot(s.n, r2.Sub(p, s.a)), s.solid.Evaluate(p))
}

// Bounds returns the bounding box of the cut solid.
func (s *cut2) Bounds() r2.Box {
	return s.bb
}

// Empty2 returns a 2D solid with no interior located at center.
func Empty2(center r2.Vec) Solid2 {
	return empty2{center: center}
}

type empty2 struct {
	center r2.Vec
}

func (e empty2) Evaluate(r2.Vec) float64 {
	return math.MaxFloat64
}

func (e empty2) Bounds() r2.Box {
	return r2.Box{Min: e.center, Max: e.center}
}
