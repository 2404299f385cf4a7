package profile

import (
	"math"

	"github.com/purefab/solid"
)

// Tolerances are the ambient tessellation targets threaded through every
// builder in this package. They are read-only inputs; builders never
// mutate them.
type Tolerances struct {
	// AngleDeg is the maximum angular deviation of a polygon edge from
	// the true circle, in degrees.
	AngleDeg float64
	// Linear is the maximum chord length of a polygon edge, in length
	// units.
	Linear float64
	// Override is an explicit segment count for a full circle. When
	// positive it bypasses the tolerance computation entirely and is
	// used verbatim. Negative values are rejected.
	Override int
	// MaxSegments clamps tolerance-derived full-circle counts against
	// pathologically tight tolerances. Zero means no clamp. The clamp
	// never applies to Override.
	MaxSegments int
}

// DefaultTolerances is the package default tessellation configuration.
var DefaultTolerances = Tolerances{
	AngleDeg:    12,
	Linear:      2,
	MaxSegments: 512,
}

// Segments returns the number of segments approximating an arc of the
// given radius and sweep, in degrees. The full-circle count is the finer
// of the angular and linear tolerance constraints, never below 5, and is
// scaled by sweep/360 rounding up, so any positive sweep gets at least
// one segment. A zero sweep yields zero segments.
func (t Tolerances) Segments(radius, sweepDeg float64) (int, error) {
	n, err := t.circleSegments(radius)
	if err != nil {
		return 0, err
	}
	return t.sweepSegments(n, sweepDeg)
}

// SegmentsWall behaves as Segments but additionally forces the
// full-circle count up to a multiple of 4, so the last tessellation
// point of a quarter sweep lands exactly on the tangent line of a
// perpendicular wall.
func (t Tolerances) SegmentsWall(radius, sweepDeg float64) (int, error) {
	n, err := t.circleSegments(radius)
	if err != nil {
		return 0, err
	}
	if n%4 != 0 {
		n += 4 - n%4
	}
	return t.sweepSegments(n, sweepDeg)
}

// circleSegments resolves the full-circle segment count.
func (t Tolerances) circleSegments(radius float64) (int, error) {
	if radius < 0 {
		return 0, &solid.ParamError{Fn: "Segments", Param: "radius", Reason: "negative"}
	}
	if t.Override != 0 {
		if t.Override < 0 {
			return 0, &solid.ParamError{Fn: "Segments", Param: "Override", Reason: "negative"}
		}
		return t.Override, nil
	}
	if t.AngleDeg <= 0 || t.Linear <= 0 {
		return 0, &solid.ParamError{Fn: "Segments", Param: "Tolerances", Reason: "non-positive tolerance"}
	}
	// finer of the two constraints, so neither tolerance is exceeded
	n := math.Max(360/t.AngleDeg, radius*2*math.Pi/t.Linear)
	n = math.Max(n, 5)
	c := int(math.Ceil(n))
	if t.MaxSegments > 0 && c > t.MaxSegments {
		Log.Debug().
			Int("resolved", c).
			Int("max", t.MaxSegments).
			Msg("segment count clamped")
		c = t.MaxSegments
	}
	return c, nil
}

// sweepSegments scales a full-circle count to a partial sweep.
func (t Tolerances) sweepSegments(full int, sweepDeg float64) (int, error) {
	if sweepDeg < 0 {
		return 0, &solid.ParamError{Fn: "Segments", Param: "sweepDeg", Reason: "negative"}
	}
	if sweepDeg == 0 {
		return 0, nil
	}
	n := int(math.Ceil(float64(full) * sweepDeg / 360))
	if n < 1 {
		n = 1
	}
	return n, nil
}
