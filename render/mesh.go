package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// vertexQuantum is the snap distance used to identify coincident mesh
// vertices. Marching cubes emits shared vertices bit-exactly so this
// only needs to absorb float32 round trips through STL files.
const vertexQuantum = 1e-6

type meshVertex [3]int64

type meshEdge struct {
	a, b meshVertex
}

func quantize(v r3.Vec) meshVertex {
	return meshVertex{
		int64(math.Round(v.X / vertexQuantum)),
		int64(math.Round(v.Y / vertexQuantum)),
		int64(math.Round(v.Z / vertexQuantum)),
	}
}

// Watertight reports whether model forms a closed oriented surface.
// Every edge must be shared by exactly two triangles traversing it in
// opposite directions. Open shells, T-junctions and flipped triangles
// all fail this check.
func Watertight(model []Triangle3) bool {
	edges := make(map[meshEdge]int, 3*len(model))
	for _, t := range model {
		v := [3]meshVertex{quantize(t.V[0]), quantize(t.V[1]), quantize(t.V[2])}
		if v[0] == v[1] || v[1] == v[2] || v[2] == v[0] {
			return false
		}
		for i := 0; i < 3; i++ {
			a, b := v[i], v[(i+1)%3]
			if vertexLess(a, b) {
				edges[meshEdge{a, b}]++
			} else {
				edges[meshEdge{b, a}]--
			}
		}
	}
	for _, count := range edges {
		if count != 0 {
			return false
		}
	}
	return true
}

func vertexLess(a, b meshVertex) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Volume returns the volume enclosed by model as the sum of signed
// tetrahedra against the origin. The result is only meaningful for
// watertight meshes with outward normals.
func Volume(model []Triangle3) float64 {
	var vol float64
	for _, t := range model {
		vol += r3.Dot(t.V[0], r3.Cross(t.V[1], t.V[2]))
	}
	return vol / 6
}

// SurfaceArea returns the total triangle area of model.
func SurfaceArea(model []Triangle3) float64 {
	var area float64
	for _, t := range model {
		area += t.Area()
	}
	return area
}
