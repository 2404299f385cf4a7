// Package must3 builds 3D solids from numeric parameters. Builders in
// this package panic with a *solid.ParamError on invalid parameters; the
// form3 package wraps each builder to return the error instead.
// Geometry diagnostics that do not invalidate the call are logged and
// construction proceeds with best-effort geometry.
package must3

import (
	"os"

	"github.com/purefab/solid/internal/d2"
	"github.com/purefab/solid/internal/d3"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Log receives non-fatal geometry diagnostics. Replace Log to reroute
// or silence them.
var Log = zerolog.New(os.Stderr).With().Timestamp().Str("pkg", "must3").Logger()

func sdfBox2d(p, s r2.Vec) float64 {
	p = d2.AbsElem(p)
	d := r2.Sub(p, s)
	k := s.Y - s.X
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if p.Y-p.X > k {
		return d.Y
	}
	return d.X
}

func sdfBox3d(p, s r3.Vec) float64 {
	d := r3.Sub(d3.AbsElem(p), s)
	if d.X > 0 && d.Y > 0 && d.Z > 0 {
		return r3.Norm(d)
	}
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(r2.Vec{X: d.X, Y: d.Y})
	}
	if d.X > 0 && d.Z > 0 {
		return r2.Norm(r2.Vec{X: d.X, Y: d.Z})
	}
	if d.Y > 0 && d.Z > 0 {
		return r2.Norm(r2.Vec{X: d.Y, Y: d.Z})
	}
	if d.X > 0 {
		return d.X
	}
	if d.Y > 0 {
		return d.Y
	}
	if d.Z > 0 {
		return d.Z
	}
	return d3.Max(d)
}
