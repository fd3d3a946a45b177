// Package motion implements the parametric flight path used by the scene's ships.
//
// The path is evaluated from absolute time on every call, so positions never
// drift no matter how long the program runs.
package motion

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDomain reports coefficients that leave the real numbers for a given t,
// e.g. a negative cosine raised to a fractional j.
var ErrDomain = errors.New("motion: result is not a real number")

// Coeffs are the four shape coefficients of a path.
type Coeffs struct {
	A, B, J, K float64
}

// Offset returns the displacement of a path at time t with phase phi:
//
//	x = cos(a·t) − cos(b·t)^j
//	y = sin(a·t) − sin(b·t)^k
//	z = sin(t) − phi
//
// ok is false when any component is NaN or infinite.
func Offset(c Coeffs, t, phi float64) (x, y, z float64, ok bool) {
	x = math.Cos(c.A*t) - math.Pow(math.Cos(c.B*t), c.J)
	y = math.Sin(c.A*t) - math.Pow(math.Sin(c.B*t), c.K)
	z = math.Sin(t) - phi
	return x, y, z, finite(x) && finite(y) && finite(z)
}

// Position returns base displaced along the path at time t.
func Position(c Coeffs, base mgl32.Vec3, t, phi float64) (mgl32.Vec3, error) {
	x, y, z, ok := Offset(c, t, phi)
	if !ok {
		return base, ErrDomain
	}
	return base.Add(mgl32.Vec3{float32(x), float32(y), float32(z)}), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
