package render_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid/form3"
	"github.com/purefab/solid/internal/d3"
	"github.com/purefab/solid/profile"
	"github.com/purefab/solid/render"
)

func TestSTLCreateWriteRead(t *testing.T) {
	const cells = 20
	const path = "box.stl"
	defer os.Remove(path)
	box, err := form3.Box(r3.Vec{X: 3, Y: 2, Z: 1}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(path, render.NewMarchingCubesUniform(box, cells))
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMarchingCubesUniform(box, cells))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestSTLReadback(t *testing.T) {
	const (
		cells = 50
		tol   = 1e-5
	)
	s, err := form3.RoundedCylinder(8, 20, 2, 3, true, profile.Tolerances{})
	if err != nil {
		t.Fatal(err)
	}
	size := r3.Norm(d3.Box(s.Bounds()).Size())
	// calculate relative tolerance
	rtol := tol * size / cells
	input, err := render.RenderAll(render.NewMarchingCubesUniform(s, cells))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, input)
	if err != nil {
		t.Fatal(err)
	}
	// ReadSTL returns triangles alongside a tolerable normal mismatch
	// error, so only a nil model is fatal here.
	output, err := render.ReadSTL(&b)
	if err != nil && output == nil {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		if got.Degenerate(1e-12) {
			t.Fatalf("triangle degenerate: %+v", got)
		}
		for i := range expect.V {
			if !d3.EqualWithin(got.V[i], expect.V[i], rtol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i], expect.V[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestSTLWriteEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSTL(&b, nil); err == nil {
		t.Error("expected error writing empty model")
	}
	if _, err := render.ReadSTL(&b); err == nil {
		t.Error("expected error reading empty stream")
	}
}

func TestSTLReadTruncated(t *testing.T) {
	box, err := form3.Box(r3.Vec{X: 1, Y: 1, Z: 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMarchingCubesUniform(box, 10))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	trunc := b.Bytes()[:b.Len()-25]
	_, err = render.ReadSTL(bytes.NewReader(trunc))
	if err == nil {
		t.Fatal("expected error reading truncated STL")
	}
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected EOF kind error, got %v", err)
	}
}
