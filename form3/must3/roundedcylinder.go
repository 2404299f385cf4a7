package must3

import (
	"math"

	"github.com/purefab/solid"
	"github.com/purefab/solid/profile"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// RoundedCylinder returns a z-axis cylinder with independent bottom and
// top edge fillets, built by revolving a half cross-section a full turn.
// The half profile runs up the axis, across the top fillet arc, down the
// wall and back along the bottom fillet arc. A zero fillet radius
// degenerates its arc to the sharp corner point, so the corresponding
// end stays flat by construction. center translates the result by minus
// half the height along z.
func RoundedCylinder(radius, height, filletBottom, filletTop float64, center bool, tol profile.Tolerances) solid.Solid3 {
	if radius <= 0 {
		panic(&solid.ParamError{Fn: "RoundedCylinder", Param: "radius", Reason: "not positive"})
	}
	if height <= 0 {
		panic(&solid.ParamError{Fn: "RoundedCylinder", Param: "height", Reason: "not positive"})
	}
	if filletBottom < 0 || filletTop < 0 {
		panic(&solid.ParamError{Fn: "RoundedCylinder", Param: "fillet", Reason: "negative"})
	}
	if filletBottom+filletTop > height {
		Log.Warn().
			Float64("fillets", filletBottom+filletTop).
			Float64("height", height).
			Msg("fillets overlap along the cylinder height")
	}
	if f := math.Max(filletBottom, filletTop); f > radius {
		Log.Warn().
			Float64("fillet", f).
			Float64("radius", radius).
			Msg("fillet exceeds the cylinder radius")
	}

	p := make(profile.Profile, 0, 32)
	p = append(p, r2.Vec{}, r2.Vec{Y: height})
	if filletTop > 0 {
		n := mustSegments(tol, filletTop)
		at := r2.Vec{X: radius - filletTop, Y: height - filletTop}
		p = append(p, profile.Arc(filletTop, 0, 90, n, at)...)
	} else {
		p = append(p, r2.Vec{X: radius, Y: height})
	}
	if filletBottom > 0 {
		n := mustSegments(tol, filletBottom)
		at := r2.Vec{X: radius - filletBottom, Y: filletBottom}
		p = append(p, profile.Arc(filletBottom, 90, 180, n, at)...)
	} else {
		p = append(p, r2.Vec{X: radius})
	}

	s := solid.Revolve3(p.Solid(), 2*math.Pi)
	if center {
		s = solid.Transform3(s, solid.Translate3(r3.Vec{Z: -height / 2}))
	}
	return s
}

// mustSegments resolves a quarter-arc facet count, converting resolver
// errors back into builder panics.
func mustSegments(tol profile.Tolerances, radius float64) int {
	if tol == (profile.Tolerances{}) {
		tol = profile.DefaultTolerances
	}
	n, err := tol.SegmentsWall(radius, 90)
	if err != nil {
		panic(err)
	}
	return n
}
