package measure_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid"
	"github.com/purefab/solid/measure"
	"github.com/purefab/solid/render"
)

func close(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRodAngles(t *testing.T) {
	for _, test := range []struct {
		name                 string
		from, to             r3.Vec
		distance             float64
		inclination, azimuth float64
	}{
		{
			name: "alongY", to: r3.Vec{Y: 5},
			distance: 5, inclination: 0, azimuth: 0,
		},
		{
			name: "alongX", to: r3.Vec{X: 3},
			distance: 3, inclination: 0, azimuth: 90,
		},
		{
			name: "alongNegX", to: r3.Vec{X: -3},
			distance: 3, inclination: 0, azimuth: -90,
		},
		{
			name: "up", to: r3.Vec{Z: 2},
			distance: 2, inclination: 90, azimuth: 0,
		},
		{
			name: "down", from: r3.Vec{Z: 2}, to: r3.Vec{},
			distance: 2, inclination: -90, azimuth: 0,
		},
		{
			name: "oblique", to: r3.Vec{X: 1, Y: 1, Z: math.Sqrt2},
			distance: 2, inclination: 45, azimuth: 45,
		},
		{
			name: "translated", from: r3.Vec{X: 10, Y: -4, Z: 1}, to: r3.Vec{X: 10, Y: -1, Z: 5},
			distance: 5, inclination: solid.RtoD(math.Asin(4. / 5)), azimuth: 0,
		},
	} {
		rod := measure.Between(test.from, test.to)
		if got := rod.Distance(); !close(got, test.distance) {
			t.Errorf("%s: distance got %g, want %g", test.name, got, test.distance)
		}
		if got := rod.Inclination(); !close(got, test.inclination) {
			t.Errorf("%s: inclination got %g, want %g", test.name, got, test.inclination)
		}
		if got := rod.Azimuth(); !close(got, test.azimuth) {
			t.Errorf("%s: azimuth got %g, want %g", test.name, got, test.azimuth)
		}
	}
}

func TestRodSolid(t *testing.T) {
	from := r3.Vec{X: 1, Y: 1, Z: 1}
	to := r3.Vec{X: 4, Y: 5, Z: 1}
	rod := measure.Rod{From: from, To: to, Diameter: 0.5}
	s, err := rod.Solid()
	if err != nil {
		t.Fatal(err)
	}
	mid := r3.Scale(0.5, r3.Add(from, to))
	if d := s.Evaluate(mid); d >= 0 {
		t.Errorf("rod midpoint not inside solid, distance %g", d)
	}
	// Points just inside each endpoint lie in the rod.
	dir := r3.Unit(r3.Sub(to, from))
	for _, p := range []r3.Vec{
		r3.Add(from, r3.Scale(0.1, dir)),
		r3.Add(to, r3.Scale(-0.1, dir)),
	} {
		if d := s.Evaluate(p); d >= 0 {
			t.Errorf("endpoint probe %v not inside solid, distance %g", p, d)
		}
	}
	// Off-axis points are outside.
	perp := r3.Unit(r3.Cross(dir, r3.Vec{Z: 1}))
	if d := s.Evaluate(r3.Add(mid, perp)); d <= 0 {
		t.Errorf("off-axis probe inside solid, distance %g", d)
	}
	if d := s.Evaluate(r3.Add(to, dir)); d <= 0 {
		t.Errorf("probe past endpoint inside solid, distance %g", d)
	}
}

func TestRodSolidDefaultDiameter(t *testing.T) {
	rod := measure.Between(r3.Vec{}, r3.Vec{X: 100})
	s, err := rod.Solid()
	if err != nil {
		t.Fatal(err)
	}
	// Default diameter is 1% of the span.
	if d := s.Evaluate(r3.Vec{X: 50, Y: 0.4}); d >= 0 {
		t.Errorf("probe inside default diameter expected, distance %g", d)
	}
	if d := s.Evaluate(r3.Vec{X: 50, Y: 0.6}); d <= 0 {
		t.Errorf("probe outside default diameter expected, distance %g", d)
	}
}

func TestRodSnappedTo(t *testing.T) {
	// Two well-separated triangles with known centroids. Snapping must
	// move each endpoint to the centroid of its nearest triangle.
	near := render.Triangle3{V: [3]r3.Vec{
		{X: -1, Y: -1}, {X: 2, Y: -1}, {X: -1, Y: 2},
	}}
	far := render.Triangle3{V: [3]r3.Vec{
		{X: 9, Y: -1}, {X: 12, Y: -1}, {X: 9, Y: 2},
	}}
	kd := render.NewKDMesh([]render.Triangle3{near, far})
	rod := measure.Between(r3.Vec{X: 0.3, Y: 0.1, Z: 0.4}, r3.Vec{X: 9.5, Z: 1}).SnappedTo(kd)
	if want := (r3.Vec{}); r3.Norm(r3.Sub(rod.From, want)) > 1e-9 {
		t.Errorf("snapped From %v, want %v", rod.From, want)
	}
	if want := (r3.Vec{X: 10}); r3.Norm(r3.Sub(rod.To, want)) > 1e-9 {
		t.Errorf("snapped To %v, want %v", rod.To, want)
	}
	if got := rod.Distance(); !close(got, 10) {
		t.Errorf("snapped distance got %g, want 10", got)
	}
}

func TestRodSolidInvalid(t *testing.T) {
	var perr *solid.ParamError
	_, err := measure.Between(r3.Vec{X: 1}, r3.Vec{X: 1}).Solid()
	if !errors.As(err, &perr) || perr.Param != "To" {
		t.Errorf("coincident endpoints: got %v", err)
	}
	_, err = measure.Rod{To: r3.Vec{X: 1}, Diameter: -1}.Solid()
	if !errors.As(err, &perr) || perr.Param != "Diameter" {
		t.Errorf("negative diameter: got %v", err)
	}
}
