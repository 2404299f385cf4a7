package profile

import (
	"math"

	"github.com/purefab/solid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Arc samples a circular arc of the given radius from angle a1 to a2,
// both in degrees, translated by at. It returns segments+1 points with
// point i at angle a1+(a2-a1)*i/segments, so both endpoints are always
// included and the spacing is even in angle. Angles are measured from
// the positive y-axis towards the positive x-axis:
//
//	point(a) = at + radius*(sin a, cos a)
//
// a1 may be greater or less than a2; the direction of the sweep is the
// caller's and is preserved, since it determines the winding of profiles
// built from the arc. Arc panics if radius is negative or segments is
// not positive.
func Arc(radius, a1, a2 float64, segments int, at r2.Vec) Profile {
	if radius < 0 {
		panic(&solid.ParamError{Fn: "Arc", Param: "radius", Reason: "negative"})
	}
	if segments < 1 {
		panic(&solid.ParamError{Fn: "Arc", Param: "segments", Reason: "not positive"})
	}
	p := make(Profile, segments+1)
	for i := range p {
		sin, cos := sincosd(a1 + (a2-a1)*float64(i)/float64(segments))
		p[i] = r2.Add(at, r2.Vec{X: radius * sin, Y: radius * cos})
	}
	return p
}

// sincosd is sine and cosine in degrees, exact at quadrant angles.
// Quadrant exactness is what lands arc endpoints precisely on the
// tangent lines of perpendicular walls.
func sincosd(a float64) (sin, cos float64) {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	switch a {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(solid.DtoR(a))
}
