package must3

import (
	"math"

	"github.com/purefab/solid"
	"github.com/purefab/solid/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoxWrapParams describes a box-wrap extrusion: a 2D cross-section swept
// around the perimeter of a rectangular footprint.
type BoxWrapParams struct {
	// Size.X and Size.Y are the rectangular footprint. Size.Z does not
	// shape the wrap, whose vertical extent comes from the profile; it
	// participates only in the Center translation.
	Size r3.Vec
	// Profile is the cross-section in the plane perpendicular to the
	// footprint boundary: profile x points outward from the boundary,
	// profile y becomes z.
	Profile profile.Profile
	// Fill unions in a solid core spanning the footprint.
	Fill bool
	// Center translates the result by minus half of Size on every axis.
	Center bool
	// Epsilon is the controlled seam overlap. Side pieces are extended
	// by Epsilon past both ends so adjacent pieces overlap rather than
	// touch exactly, which would leave coincident non-identical faces.
	Epsilon float64
}

// BoxWrap sweeps a 2D cross-section around the perimeter of a
// rectangular footprint, producing a closed shell whose cross-section is
// everywhere the profile. The boundary is split into eight pieces: each
// corner is a bounded 90 degree revolution of the profile rotated into
// its quadrant, each side a linear extrusion rotated onto its edge. Side
// sweeps overlap the corners by Epsilon at every seam.
//
// The profile should be tessellated with wall-aligned resolution (see
// profile.Tolerances.SegmentsWall) so corner and side pieces present
// matching vertex counts at the seams; mismatched counts still union but
// may leave hairline gaps.
func BoxWrap(q BoxWrapParams) solid.Solid3 {
	w := q.Size.X
	h := q.Size.Y
	if w <= 0 || h <= 0 {
		panic(&solid.ParamError{Fn: "BoxWrap", Param: "Size", Reason: "footprint not positive"})
	}
	if len(q.Profile) < 3 {
		panic(&solid.ParamError{Fn: "BoxWrap", Param: "Profile", Reason: "fewer than 3 points"})
	}
	if q.Epsilon < 0 {
		panic(&solid.ParamError{Fn: "BoxWrap", Param: "Epsilon", Reason: "negative"})
	}
	if q.Epsilon == 0 {
		Log.Warn().Msg("zero epsilon leaves coincident seams between wrap pieces")
	}
	for _, v := range q.Profile {
		if v.X < 0 {
			Log.Warn().
				Float64("x", v.X).
				Msg("profile vertex behind the footprint boundary")
			break
		}
	}

	section := q.Profile.Solid()
	eps := q.Epsilon
	pieces := make([]solid.Solid3, 0, 9)

	// four corners: bounded quarter revolutions rotated into quadrants,
	// in order upper right, upper left, lower left, lower right
	wedge := solid.Revolve3(section, math.Pi/2)
	corners := []struct {
		rot float64
		at  r3.Vec
	}{
		{0, r3.Vec{X: w, Y: h}},
		{math.Pi / 2, r3.Vec{Y: h}},
		{math.Pi, r3.Vec{}},
		{3 * math.Pi / 2, r3.Vec{X: w}},
	}
	for _, c := range corners {
		m := solid.Translate3(c.at).Mul(solid.RotateZ(c.rot))
		pieces = append(pieces, solid.Transform3(wedge, m))
	}

	// four sides: linear extrusions rotated onto each edge, extended by
	// epsilon past both ends, in order right, left, top, bottom
	vertical := solid.RotateX(math.Pi/2)
	sides := []struct {
		length float64
		m      solid.M44
	}{
		{h, solid.Translate3(r3.Vec{X: w, Y: h / 2}).Mul(vertical)},
		{h, solid.Translate3(r3.Vec{Y: h / 2}).Mul(solid.RotateZ(math.Pi)).Mul(vertical)},
		{w, solid.Translate3(r3.Vec{X: w / 2, Y: h}).Mul(solid.RotateZ(math.Pi/2)).Mul(vertical)},
		{w, solid.Translate3(r3.Vec{X: w / 2}).Mul(solid.RotateZ(-math.Pi/2)).Mul(vertical)},
	}
	for _, side := range sides {
		ext := solid.Extrude3(section, side.length+2*eps)
		pieces = append(pieces, solid.Transform3(ext, side.m))
	}

	if q.Fill {
		bb := q.Profile.Bounds()
		size := r3.Vec{X: w + 2*eps, Y: h + 2*eps, Z: bb.Max.Y - bb.Min.Y}
		center := r3.Vec{X: w / 2, Y: h / 2, Z: (bb.Min.Y + bb.Max.Y) / 2}
		pieces = append(pieces, solid.Transform3(Box(size, 0), solid.Translate3(center)))
	}

	s := solid.Union3(pieces...)
	if q.Center {
		s = solid.Transform3(s, solid.Translate3(r3.Scale(-0.5, q.Size)))
	}
	return s
}
