package matter_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid"
	"github.com/purefab/solid/helpers/matter"
)

func block() solid.Solid3 {
	sq := solid.Polygon2([]r2.Vec{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	})
	return solid.Extrude3(sq, 2)
}

func TestScale(t *testing.T) {
	s := block()
	grown := matter.PLA.Scale(s)
	// A point just outside the nominal surface lies inside the
	// compensated part.
	probe := r3.Vec{X: 1.001}
	if d := s.Evaluate(probe); d <= 0 {
		t.Fatalf("probe %v inside nominal part, distance %g", probe, d)
	}
	if d := grown.Evaluate(probe); d >= 0 {
		t.Errorf("probe %v outside compensated part, distance %g", probe, d)
	}
	if bb := grown.Bounds(); bb.Max.X <= 1 {
		t.Errorf("compensated bounds %+v did not grow", bb)
	}
}

func TestInternalDimScale(t *testing.T) {
	got := matter.PLA.InternalDimScale(10)
	if got <= 10 {
		t.Errorf("compensated internal dimension %g, want larger than 10", got)
	}
	if math.Abs(got-10.47) > 1e-9 {
		t.Errorf("compensated internal dimension %g, want 10.47", got)
	}
}

func TestInternalDimScaleInvalid(t *testing.T) {
	defer func() {
		a := recover()
		if a == nil {
			t.Fatal("expected panic")
		}
		var perr *solid.ParamError
		if err, ok := a.(error); !ok || !errors.As(err, &perr) {
			t.Fatalf("panic %v, want ParamError", a)
		}
	}()
	matter.PLA.InternalDimScale(0)
}
