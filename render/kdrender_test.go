package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid/form3/must3"
)

func TestKDMeshNearest(t *testing.T) {
	s := must3.Cylinder(4, 2, 0.5)
	model, err := RenderAll(NewMarchingCubesUniform(s, 20))
	if err != nil {
		t.Fatal(err)
	}
	mesh := NewKDMesh(model)
	for _, query := range []r3.Vec{
		{X: 3, Y: 0, Z: 0},
		{X: 0, Y: -5, Z: 1},
		{X: 1, Y: 1, Z: 10},
		{},
	} {
		got := mesh.Nearest(query)
		want := bruteNearest(model, query)
		gotDist := r3.Norm(r3.Sub(got.Centroid(), query))
		wantDist := r3.Norm(r3.Sub(want.Centroid(), query))
		if math.Abs(gotDist-wantDist) > 1e-9 {
			t.Errorf("nearest to %v: kd distance %g, brute force %g", query, gotDist, wantDist)
		}
	}
}

func TestKDMeshBounds(t *testing.T) {
	s := must3.Box(r3.Vec{X: 2, Y: 2, Z: 2}, 0)
	model, err := RenderAll(NewMarchingCubesUniform(s, 16))
	if err != nil {
		t.Fatal(err)
	}
	mesh := NewKDMesh(model)
	bb := mesh.Bounds()
	// Mesh bounds stay within the padded solid bounds.
	want := float64(1.1)
	for _, v := range []float64{bb.Min.X, bb.Min.Y, bb.Min.Z} {
		if v < -want {
			t.Errorf("bound %g outside solid", v)
		}
	}
	for _, v := range []float64{bb.Max.X, bb.Max.Y, bb.Max.Z} {
		if v > want {
			t.Errorf("bound %g outside solid", v)
		}
	}
	// Far outside points evaluate positive, surface points near zero.
	if d := mesh.Evaluate(r3.Vec{X: 10}); d <= 0 {
		t.Errorf("outside point evaluated %g", d)
	}
}

func bruteNearest(model []Triangle3, v r3.Vec) Triangle3 {
	best := model[0]
	bestDist := math.MaxFloat64
	for _, tri := range model {
		if d := r3.Norm2(r3.Sub(tri.Centroid(), v)); d < bestDist {
			bestDist = d
			best = tri
		}
	}
	return best
}
