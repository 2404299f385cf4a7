package solid

import (
	"math"

	"github.com/purefab/solid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Mix does a linear interpolation from x to y, a = [0,1].
func Mix(x, y, a float64) float64 {
	return x + (a * (y - x))
}

// RoundMin returns a minimum function that uses a quarter-circle to join
// two solids smoothly.
func RoundMin(k float64) MinFunc {
	return func(a, b float64) float64 {
		u := d2.MaxElem(r2.Vec{X: k - a, Y: k - b}, r2.Vec{})
		return math.Max(k, math.Min(a, b)) - r2.Norm(u)
	}
}

// ChamferMin returns a minimum function that makes a 45-degree chamfered
// edge (the diagonal of a square of size k).
func ChamferMin(k float64) MinFunc {
	const sqrtHalf = 0.7071067811865476
	return func(a, b float64) float64 {
		return math.Min(math.Min(a, b), (a-k+b)*sqrtHalf)
	}
}

func poly(a, b, k float64) float64 {
	h := Clamp(0.5+0.5*(b-a)/k, 0.0, 1.0)
	return Mix(b, a, h) - k*h*(1.0-h)
}

// PolyMin returns a polynomial smooth minimum function.
// A bigger k gives a bigger fillet.
func PolyMin(k float64) MinFunc {
	return func(a, b float64) float64 {
		return poly(a, b, k)
	}
}

// PolyMax returns a polynomial smooth maximum function.
// A bigger k gives a bigger fillet.
func PolyMax(k float64) MaxFunc {
	return func(a, b float64) float64 {
		return -poly(-a, -b, k)
	}
}
