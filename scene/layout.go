package scene

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"space/assets"
	"space/motion"
)

// Model keys.
const (
	Mars       = "mars"
	HaloRing   = "haloring"
	Charon     = "charon"
	Pelican    = "pelican"
	Phantom    = "phantom"
	Precursors = "precursors"
)

// ModelPath returns the glTF file for a model key under root.
func ModelPath(root, key string) string {
	return filepath.Join(root, "model", key, "scene.gltf")
}

// placeholder shapes and colors by model key
var placeholders = map[string]struct {
	shape assets.Shape
	color mgl32.Vec4
}{
	Mars:       {assets.ShapeSphere, mgl32.Vec4{0.76, 0.35, 0.2, 1}},
	HaloRing:   {assets.ShapeTorus, mgl32.Vec4{0.6, 0.65, 0.7, 1}},
	Charon:     {assets.ShapeBox, mgl32.Vec4{0.5, 0.5, 0.55, 1}},
	Pelican:    {assets.ShapeBox, mgl32.Vec4{0.4, 0.55, 0.35, 1}},
	Phantom:    {assets.ShapeBox, mgl32.Vec4{0.55, 0.3, 0.6, 1}},
	Precursors: {assets.ShapeBox, mgl32.Vec4{0.8, 0.7, 0.3, 1}},
}

const halfPi = math.Pi / 2

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

func uniform(s float32) mgl32.Vec3 { return mgl32.Vec3{s, s, s} }

// Space returns the scene's entities in draw order: planet, ring, capital
// ship, one pelican/phantom pair per table row, then the precursor ship.
func Space(table *MotionTable) []Entity {
	n := table.Len()
	out := make([]Entity, 0, 4+2*n)

	out = append(out,
		Entity{
			Name:  "planet",
			Model: Mars,
			Base:  mgl32.Vec3{-12, 9.5, -9},
			Scale: uniform(11),
			Spin:  &Spin{Divisor: 100, Axis: axisY},
		},
		Entity{
			Name:  "ring",
			Model: HaloRing,
			Base:  mgl32.Vec3{0.2, 9.5, -7},
			Scale: uniform(1),
			Rotations: []Rotation{
				{Angle: -0.2, Axis: axisY},
				{Angle: 0.08, Axis: axisZ},
			},
			Spin: &Spin{Divisor: 100, Axis: axisX},
		},
		Entity{
			Name:      "capital",
			Model:     Charon,
			Base:      mgl32.Vec3{15, 9.5, -7.5},
			Path:      &Path{Coeffs: motion.Coeffs{A: 1, B: 2, J: 2, K: 1}, Divisor: 50},
			Scale:     mgl32.Vec3{-0.5, 0.5, 0.5},
			Rotations: []Rotation{{Angle: -halfPi, Axis: axisX}},
		},
	)

	for i := 0; i < n; i++ {
		row := table.Row(i)
		o := row.Offset
		out = append(out,
			Entity{
				Name:      fmt.Sprintf("pelican-%02d", i),
				Model:     Pelican,
				Base:      mgl32.Vec3{15 - o[0], 9.5 - o[1], -6.5 - o[2]},
				Path:      &Path{Coeffs: row.Coeffs, Divisor: 100, Phase: -halfPi},
				Scale:     uniform(0.0001),
				Rotations: []Rotation{{Angle: -halfPi, Axis: axisY}},
			},
			Entity{
				Name:      fmt.Sprintf("phantom-%02d", i),
				Model:     Phantom,
				Base:      mgl32.Vec3{2 + o[0], 9.5 - o[1], -5.5 - o[2]},
				Path:      &Path{Coeffs: row.Coeffs, Divisor: 100},
				Scale:     uniform(0.0005),
				Rotations: []Rotation{{Angle: halfPi, Axis: axisY}},
			},
		)
	}

	out = append(out, Entity{
		Name:      "precursors",
		Model:     Precursors,
		Base:      mgl32.Vec3{2, 9.5, -10},
		Path:      &Path{Coeffs: motion.Coeffs{A: 2, B: 1, J: 2, K: 1}, Divisor: 50, Phase: -halfPi},
		Scale:     uniform(0.2),
		Rotations: []Rotation{{Angle: -halfPi, Axis: axisX}},
	})
	return out
}
