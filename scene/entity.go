package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"space/motion"
)

// Rotation is a fixed rotation of Angle radians about Axis.
type Rotation struct {
	Angle float32
	Axis  mgl32.Vec3
}

// Spin rotates about Axis by now/Divisor radians.
type Spin struct {
	Divisor float32
	Axis    mgl32.Vec3
}

// Path animates an entity along the motion model, evaluated at now/Divisor.
type Path struct {
	Coeffs  motion.Coeffs
	Divisor float64
	Phase   float64
}

// Entity is one drawable object of the scene. Entities are built once and
// never change.
type Entity struct {
	Name  string
	Model string // model key, see ModelPath

	Base      mgl32.Vec3
	Path      *Path // nil for static entities
	Scale     mgl32.Vec3
	Rotations []Rotation // applied in order after scaling
	Spin      *Spin      // applied last
}

// Position returns the entity's translation at time now.
func (e *Entity) Position(now float64) (mgl32.Vec3, error) {
	if e.Path == nil {
		return e.Base, nil
	}
	t := now
	if e.Path.Divisor != 0 {
		t = now / e.Path.Divisor
	}
	return motion.Position(e.Path.Coeffs, e.Base, t, e.Path.Phase)
}

// Transform returns translate(position) · scale · rotations… · spin.
func (e *Entity) Transform(now float64) (mgl32.Mat4, error) {
	p, err := e.Position(now)
	if err != nil {
		return mgl32.Ident4(), err
	}
	m := mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.Scale3D(e.Scale[0], e.Scale[1], e.Scale[2]))
	for _, r := range e.Rotations {
		m = m.Mul4(mgl32.HomogRotate3D(r.Angle, r.Axis))
	}
	if e.Spin != nil && e.Spin.Divisor != 0 {
		m = m.Mul4(mgl32.HomogRotate3D(float32(now)/e.Spin.Divisor, e.Spin.Axis))
	}
	return m, nil
}
