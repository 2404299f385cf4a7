// Package profile builds tessellated 2D cross-sections: arcs, fillet
// profiles and convex-hulled rounded rectangles. A Profile is a closed,
// ordered point sequence; insertion order defines the boundary traversal
// direction and is never silently reversed, since inverted winding flips
// normals on solids derived from the profile.
package profile

import (
	"math"
	"os"

	"github.com/purefab/solid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
)

// Log receives non-fatal geometry diagnostics from the builders in this
// package. Diagnostics are advisory; builders proceed with best-effort
// geometry after emitting one. Replace Log to reroute or silence them.
var Log = zerolog.New(os.Stderr).With().Timestamp().Str("pkg", "profile").Logger()

// Profile is a closed 2D cross-section described by its boundary points
// in traversal order.
type Profile []r2.Vec

// Translate returns a copy of the profile translated by v.
func (p Profile) Translate(v r2.Vec) Profile {
	q := make(Profile, len(p))
	for i := range p {
		q[i] = r2.Add(p[i], v)
	}
	return q
}

// Rotate returns a copy of the profile rotated about the origin by a radians.
func (p Profile) Rotate(a float64) Profile {
	sin, cos := math.Sincos(a)
	q := make(Profile, len(p))
	for i := range p {
		q[i] = r2.Vec{
			X: cos*p[i].X - sin*p[i].Y,
			Y: sin*p[i].X + cos*p[i].Y,
		}
	}
	return q
}

// Area returns the signed shoelace area of the profile. The area is
// positive for counter-clockwise traversal.
func (p Profile) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	a := 0.0
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a += p[j].X*p[i].Y - p[i].X*p[j].Y
	}
	return a / 2
}

// Bounds returns the bounding box of the profile points.
func (p Profile) Bounds() r2.Box {
	if len(p) == 0 {
		return r2.Box{}
	}
	min := p[0]
	max := p[0]
	for _, v := range p[1:] {
		min = r2.Vec{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y)}
		max = r2.Vec{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y)}
	}
	return r2.Box{Min: min, Max: max}
}

// Solid returns the profile interior as a 2D solid.
// Solid panics if the profile has fewer than 3 points.
func (p Profile) Solid() solid.Solid2 {
	return solid.Polygon2(p)
}
