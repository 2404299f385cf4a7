// Package measure builds measurement overlays: thin rods spanning two
// 3D points for visual dimension checks in rendered scenes. A rod
// reports its length and orientation and can be turned into a solid
// for rendering alongside the measured part.
package measure

import (
	"math"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/purefab/solid"
	"github.com/purefab/solid/form3"
	"github.com/purefab/solid/render"
)

// Log is the measure package logger. Building a rod solid logs the
// measured distance and orientation at info level.
var Log = zerolog.New(os.Stderr).With().
	Timestamp().Str("pkg", "measure").Logger()

// Rod is a measurement between two points in space.
type Rod struct {
	From, To r3.Vec
	// Diameter of the rendered rod. Zero means 1% of the measured
	// distance.
	Diameter float64
}

// Between returns a rod measuring from one point to another.
func Between(from, to r3.Vec) Rod {
	return Rod{From: from, To: to}
}

func (r Rod) delta() r3.Vec { return r3.Sub(r.To, r.From) }

// Distance returns the Euclidean distance between the rod endpoints.
func (r Rod) Distance() float64 {
	return r3.Norm(r.delta())
}

// Inclination returns the elevation of the rod over the XY plane in
// degrees, in [-90, 90]. A horizontal rod has inclination 0, a rod
// pointing straight up +90.
func (r Rod) Inclination() float64 {
	d := r.Distance()
	if d == 0 {
		return 0
	}
	return solid.RtoD(math.Asin(r.delta().Z / d))
}

// Azimuth returns the heading of the rod projected on the XY plane in
// degrees, measured clockwise from the +Y axis, in (-180, 180]. The
// convention matches the arc sampler's angle origin.
func (r Rod) Azimuth() float64 {
	d := r.delta()
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return solid.RtoD(math.Atan2(d.X, d.Y))
}

// SnappedTo returns a copy of the rod with both endpoints moved onto a
// rendered mesh, each to the centroid of its nearest triangle. Use it
// to measure between actual mesh surfaces rather than nominal model
// coordinates.
func (r Rod) SnappedTo(m render.KDMesh) Rod {
	r.From = m.Nearest(r.From).Centroid()
	r.To = m.Nearest(r.To).Centroid()
	return r
}

// Solid builds the rod as a thin cylinder spanning From to To and logs
// the measurement. Coincident endpoints are an error.
func (r Rod) Solid() (solid.Solid3, error) {
	dist := r.Distance()
	if dist == 0 {
		return nil, &solid.ParamError{Fn: "Rod.Solid", Param: "To", Reason: "coincident with From"}
	}
	diam := r.Diameter
	if diam == 0 {
		diam = dist / 100
	}
	if diam < 0 {
		return nil, &solid.ParamError{Fn: "Rod.Solid", Param: "Diameter", Reason: "negative"}
	}
	cyl, err := form3.Cylinder(dist, diam/2, 0)
	if err != nil {
		return nil, err
	}
	mid := r3.Add(r.From, r3.Scale(0.5, r.delta()))
	m := solid.Translate3(mid).Mul(solid.RotateToVec(r3.Vec{Z: 1}, r.delta()))
	Log.Info().
		Float64("distance", dist).
		Float64("inclinationDeg", r.Inclination()).
		Float64("azimuthDeg", r.Azimuth()).
		Msg("measured rod")
	return solid.Transform3(cyl, m), nil
}
