// Package render converts solids to triangle meshes and mesh files.
//
// Meshing happens only here. Solids stay exact signed distance fields
// until a Renderer walks them, so tessellation resolution is a render
// parameter, not a modeling one.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a triangle mesh source. ReadTriangles fills t with
// triangles and returns the number filled. It returns io.EOF once
// the mesh is exhausted, in the style of io.Reader.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle by the right hand rule
// on the vertex winding.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Centroid returns the mean of the triangle vertices.
func (t Triangle3) Centroid() r3.Vec {
	sum := r3.Add(t.V[0], r3.Add(t.V[1], t.V[2]))
	return r3.Scale(1./3., sum)
}

// Area returns the triangle surface area.
func (t Triangle3) Area() float64 {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}

// Degenerate returns true if any two vertices coincide within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return equalWithin(t.V[0], t.V[1], tol) ||
		equalWithin(t.V[1], t.V[2], tol) ||
		equalWithin(t.V[2], t.V[0], tol)
}

func equalWithin(a, b r3.Vec, tol float64) bool {
	d := r3.Sub(a, b)
	return d.X >= -tol && d.X <= tol &&
		d.Y >= -tol && d.Y <= tol &&
		d.Z >= -tol && d.Z <= tol
}
