// Package form3 mirrors must3 with builders that return errors instead
// of panicking. Each wrapper recovers the must3 panic and surfaces it,
// preserving structured parameter errors for errors.As, so a failed
// construction halts only itself and leaves sibling constructions in a
// composite scene unaffected.
package form3

import (
	"fmt"
	"runtime/debug"

	"github.com/purefab/solid"
	"github.com/purefab/solid/form3/must3"
	"github.com/purefab/solid/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap exposes structured parameter errors carried by the panic.
func (s *shapeErr) Unwrap() error {
	if err, ok := s.panicObj.(error); ok {
		return err
	}
	return nil
}

func recovered(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Box returns a 3d box centered on the origin, rounded with round > 0.
func Box(size r3.Vec, round float64) (s solid.Solid3, err error) {
	defer recovered(&err)
	return must3.Box(size, round), err
}

// Cylinder returns a z-axis cylinder centered on the origin, with
// rounded edges for round > 0.
func Cylinder(height, radius, round float64) (s solid.Solid3, err error) {
	defer recovered(&err)
	return must3.Cylinder(height, radius, round), err
}

// BoxWrap sweeps a 2D cross-section around a rectangular footprint.
// See must3.BoxWrap.
func BoxWrap(q must3.BoxWrapParams) (s solid.Solid3, err error) {
	defer recovered(&err)
	return must3.BoxWrap(q), err
}

// RoundedCylinder returns a cylinder with independent bottom and top
// edge fillets. See must3.RoundedCylinder.
func RoundedCylinder(radius, height, filletBottom, filletTop float64, center bool, tol profile.Tolerances) (s solid.Solid3, err error) {
	defer recovered(&err)
	return must3.RoundedCylinder(radius, height, filletBottom, filletTop, center, tol), err
}
