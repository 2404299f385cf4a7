package render

import (
	"io"
	"testing"

	"github.com/purefab/solid/form3/must3"
)

func TestMarchingCubesRead(t *testing.T) {
	mc := NewMarchingCubesUniform(must3.Cylinder(20, 8, 1), 40)
	buf := make([]Triangle3, 64)
	var err error
	var nt int
	var model []Triangle3
	for err == nil {
		nt, err = mc.ReadTriangles(buf)
		model = append(model, buf[:nt]...)
	}
	if err != io.EOF {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("empty mesh")
	}
	if len(model) != mc.triangles {
		t.Errorf("triangles lost. got %d. mesher produced %d", len(model), mc.triangles)
	}
	for _, tri := range model {
		if tri.Degenerate(1e-12) {
			t.Fatalf("degenerate triangle in mesh: %+v", tri)
		}
	}
	// Further reads keep returning EOF.
	nt, err = mc.ReadTriangles(buf)
	if nt != 0 || err != io.EOF {
		t.Errorf("read after exhaustion got %d triangles, err %v", nt, err)
	}
}

func TestMarchingCubesOctreeRead(t *testing.T) {
	mc := NewMarchingCubesOctree(must3.Cylinder(20, 8, 1), 40)
	model, err := RenderAll(mc)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("empty mesh")
	}
}
