package profile

import (
	"math"

	"github.com/purefab/solid"
	"github.com/purefab/solid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// RectParams describes a rounded rectangle. Scalar-vs-vector parameter
// broadcasting is resolved here at the API boundary, with the Square and
// RadiiAll helpers, never inside the builder.
type RectParams struct {
	// Size is the rectangle width and height.
	Size r2.Vec
	// Radii holds one corner radius per corner, indexed clockwise
	// starting at the lower-left corner.
	Radii [4]float64
	// Center translates the result by minus half the size.
	Center bool
	// Tol is the tessellation configuration for the corner fillets.
	// The zero value means DefaultTolerances.
	Tol Tolerances
}

// Square returns a square size for RectParams.
func Square(s float64) r2.Vec {
	return r2.Vec{X: s, Y: s}
}

// RadiiAll broadcasts a single radius to all four corners.
func RadiiAll(r float64) [4]float64 {
	return [4]float64{r, r, r, r}
}

// corner fillet rotations, clockwise from the lower-left corner.
var rectCornerRot = [4]float64{math.Pi, math.Pi / 2, 0, 3 * math.Pi / 2}

// RoundedRectangle builds a closed rectangle profile with per-corner
// rounding. Each corner anchor is the rectangle corner inset by its own
// radius along both axes; the profile is the convex hull of the four
// anchors and each corner's fillet profile rotated into place and
// translated to its anchor. The hull closes the union with tangent
// continuity because every fillet arc endpoint lies exactly on a
// rectangle edge line. The result is in counter-clockwise order.
//
// A corner whose diameter exceeds the smaller rectangle dimension emits
// a non-fatal diagnostic; the geometry is still produced but may
// self-intersect. Non-positive sizes and negative radii are rejected.
func RoundedRectangle(q RectParams) (Profile, error) {
	w := q.Size.X
	h := q.Size.Y
	if w <= 0 || h <= 0 {
		return nil, &solid.ParamError{Fn: "RoundedRectangle", Param: "Size", Reason: "not positive"}
	}
	tol := q.Tol
	if tol == (Tolerances{}) {
		tol = DefaultTolerances
	}
	anchors := [4]r2.Vec{
		{X: q.Radii[0], Y: q.Radii[0]},
		{X: q.Radii[1], Y: h - q.Radii[1]},
		{X: w - q.Radii[2], Y: h - q.Radii[2]},
		{X: w - q.Radii[3], Y: q.Radii[3]},
	}
	points := make(d2.Set, 0, 64)
	for c, r := range q.Radii {
		if r < 0 {
			return nil, &solid.ParamError{Fn: "RoundedRectangle", Param: "Radii", Reason: "negative"}
		}
		if 2*r > math.Min(w, h) {
			Log.Warn().
				Int("corner", c).
				Float64("diameter", 2*r).
				Float64("min dimension", math.Min(w, h)).
				Msg("corner rounding exceeds rectangle dimension")
		}
		points = append(points, anchors[c])
		fillet, err := Fillet(r, tol)
		if err != nil {
			return nil, err
		}
		points = append(points, fillet.Rotate(rectCornerRot[c]).Translate(anchors[c])...)
	}
	hull := Profile(d2.ConvexHull(points))
	if q.Center {
		hull = hull.Translate(r2.Scale(-0.5, q.Size))
	}
	return hull, nil
}
