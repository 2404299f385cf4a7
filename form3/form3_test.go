package form3_test

import (
	"errors"
	"testing"

	"github.com/purefab/solid"
	"github.com/purefab/solid/form3"
	"github.com/purefab/solid/form3/must3"
	"github.com/purefab/solid/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWrappersReturnSolids(t *testing.T) {
	if _, err := form3.Box(r3.Vec{X: 1, Y: 2, Z: 3}, 0.1); err != nil {
		t.Errorf("Box: %v", err)
	}
	if _, err := form3.Cylinder(4, 1, 0.2); err != nil {
		t.Errorf("Cylinder: %v", err)
	}
	if _, err := form3.RoundedCylinder(5, 10, 1, 2, false, profile.Tolerances{}); err != nil {
		t.Errorf("RoundedCylinder: %v", err)
	}
	rect, err := profile.RoundedRectangle(profile.RectParams{
		Size:  profile.Square(1),
		Radii: profile.RadiiAll(0.2),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := form3.BoxWrap(must3.BoxWrapParams{
		Size:    r3.Vec{X: 10, Y: 6, Z: 1},
		Profile: rect,
		Epsilon: 0.01,
	}); err != nil {
		t.Errorf("BoxWrap: %v", err)
	}
}

func TestWrappersRecoverParamErrors(t *testing.T) {
	var pe *solid.ParamError
	if _, err := form3.Box(r3.Vec{X: -1, Y: 1, Z: 1}, 0); !errors.As(err, &pe) {
		t.Errorf("Box: got %v, want ParamError", err)
	}
	if pe.Fn != "Box" {
		t.Errorf("error names builder %q, want Box", pe.Fn)
	}
	if _, err := form3.Cylinder(1, -1, 0); !errors.As(err, &pe) {
		t.Errorf("Cylinder: got %v, want ParamError", err)
	}
	if _, err := form3.RoundedCylinder(-5, 10, 0, 0, false, profile.Tolerances{}); !errors.As(err, &pe) {
		t.Errorf("RoundedCylinder: got %v, want ParamError", err)
	}
	if _, err := form3.BoxWrap(must3.BoxWrapParams{Epsilon: 0.1}); !errors.As(err, &pe) {
		t.Errorf("BoxWrap: got %v, want ParamError", err)
	}
	// one failed construction leaves the next unaffected
	if _, err := form3.Box(r3.Vec{X: 1, Y: 1, Z: 1}, 0); err != nil {
		t.Errorf("Box after failure: %v", err)
	}
}
