package profile

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Fillet builds a corner fillet profile from a signed radius.
//
// A zero radius returns an empty profile: the zero fillet contributes
// nothing, not a degenerate point. A positive radius gives a convex
// quarter-disc, the origin plus a 90 degree arc from (0,r) to (r,0),
// used to round an outer corner. A negative radius gives the concave
// complement of the quarter-disc inside the |r| by |r| square, the
// origin plus an arc from (|r|,0) to (0,|r|) curving towards the origin,
// used for inner fillets.
//
// The arc endpoints lie exactly on the corner's local axes, which is
// what makes the profile hull cleanly against straight edges. The facet
// count is wall-aligned (a multiple of 4 for the full circle) so fillets
// stitch against perpendicular walls.
func Fillet(radius float64, tol Tolerances) (Profile, error) {
	if radius == 0 {
		return Profile{}, nil
	}
	r := math.Abs(radius)
	n, err := tol.SegmentsWall(r, 90)
	if err != nil {
		return nil, err
	}
	if radius > 0 {
		p := make(Profile, 0, n+2)
		p = append(p, r2.Vec{})
		return append(p, Arc(r, 0, 90, n, r2.Vec{})...), nil
	}
	p := make(Profile, 0, n+2)
	p = append(p, r2.Vec{})
	return append(p, Arc(r, 180, 270, n, r2.Vec{X: r, Y: r})...), nil
}
