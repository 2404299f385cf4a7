package profile

import (
	"errors"
	"testing"

	"github.com/purefab/solid"
)

func segs(t *testing.T, tl Tolerances, radius, sweep float64) int {
	t.Helper()
	n, err := tl.Segments(radius, sweep)
	if err != nil {
		t.Fatalf("Segments(%g, %g): %v", radius, sweep, err)
	}
	return n
}

func TestSegmentsMinimumFullCircle(t *testing.T) {
	// loose tolerances still give at least 5 segments for a full circle
	loose := Tolerances{AngleDeg: 179, Linear: 1000}
	if n := segs(t, loose, 1, 360); n < 5 {
		t.Errorf("full circle resolved to %d segments, want >= 5", n)
	}
}

func TestSegmentsMonotonic(t *testing.T) {
	// tightening either tolerance never decreases the count
	prev := 0
	for _, a := range []float64{45, 12, 6, 1, 0.5} {
		n := segs(t, Tolerances{AngleDeg: a, Linear: 2}, 10, 360)
		if n < prev {
			t.Errorf("AngleDeg=%g: %d segments, less than previous %d", a, n, prev)
		}
		prev = n
	}
	prev = 0
	for _, l := range []float64{10, 2, 1, 0.1, 0.01} {
		n := segs(t, Tolerances{AngleDeg: 12, Linear: l, MaxSegments: 1 << 20}, 10, 360)
		if n < prev {
			t.Errorf("Linear=%g: %d segments, less than previous %d", l, n, prev)
		}
		prev = n
	}
}

func TestSegmentsSweepScaling(t *testing.T) {
	tl := DefaultTolerances
	full := segs(t, tl, 10, 360)
	half := segs(t, tl, 10, 180)
	if half > full {
		t.Errorf("half sweep %d > full sweep %d", half, full)
	}
	if n := segs(t, tl, 10, 0.001); n < 1 {
		t.Errorf("tiny positive sweep resolved to %d segments, want >= 1", n)
	}
	if n := segs(t, tl, 10, 0); n != 0 {
		t.Errorf("zero sweep resolved to %d segments, want 0", n)
	}
}

func TestSegmentsOverride(t *testing.T) {
	// the override bypasses tolerances and the clamp entirely
	tl := Tolerances{AngleDeg: 12, Linear: 2, Override: 7, MaxSegments: 3}
	if n := segs(t, tl, 1000, 360); n != 7 {
		t.Errorf("override: got %d segments, want 7", n)
	}
	_, err := Tolerances{Override: -1}.Segments(1, 360)
	var pe *solid.ParamError
	if !errors.As(err, &pe) {
		t.Fatalf("negative override: got %v, want ParamError", err)
	}
	if pe.Param != "Override" {
		t.Errorf("error names parameter %q, want Override", pe.Param)
	}
}

func TestSegmentsWallAlignment(t *testing.T) {
	for _, r := range []float64{0.5, 1, 3, 10, 100} {
		n, err := Tolerances{AngleDeg: 7, Linear: 0.3}.SegmentsWall(r, 360)
		if err != nil {
			t.Fatal(err)
		}
		if n%4 != 0 {
			t.Errorf("radius %g: full circle wall count %d not a multiple of 4", r, n)
		}
		q, err := Tolerances{AngleDeg: 7, Linear: 0.3}.SegmentsWall(r, 90)
		if err != nil {
			t.Fatal(err)
		}
		if q != n/4 {
			t.Errorf("radius %g: quarter sweep %d, want %d", r, q, n/4)
		}
	}
}

func TestSegmentsClamp(t *testing.T) {
	tl := Tolerances{AngleDeg: 0.001, Linear: 0.001, MaxSegments: 64}
	if n := segs(t, tl, 100, 360); n != 64 {
		t.Errorf("got %d segments, want clamp at 64", n)
	}
}

func TestSegmentsInvalid(t *testing.T) {
	var pe *solid.ParamError
	if _, err := DefaultTolerances.Segments(-1, 360); !errors.As(err, &pe) {
		t.Errorf("negative radius: got %v, want ParamError", err)
	}
	if _, err := DefaultTolerances.Segments(1, -90); !errors.As(err, &pe) {
		t.Errorf("negative sweep: got %v, want ParamError", err)
	}
}
