package assets

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"space/gfx"
)

// Shape selects a procedural placeholder mesh.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeTorus
)

func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeTorus:
		return "torus"
	}
	return "box"
}

// Placeholder returns a unit-sized mesh for shape.
func Placeholder(s Shape) ([]gfx.Vertex, []uint32) {
	switch s {
	case ShapeSphere:
		return Sphere(1, 16, 24)
	case ShapeTorus:
		return Torus(1, 0.15, 32, 8)
	}
	return Box(1)
}

// Sphere is a UV sphere with the poles on Y.
func Sphere(radius float32, rings, segments int) ([]gfx.Vertex, []uint32) {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	verts := make([]gfx.Vertex, 0, (rings+1)*(segments+1))
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		theta := float64(v) * math.Pi
		st, ct := float32(math.Sin(theta)), float32(math.Cos(theta))
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			phi := float64(u) * 2 * math.Pi
			n := mgl32.Vec3{st * float32(math.Cos(phi)), ct, st * float32(math.Sin(phi))}
			verts = append(verts, gfx.Vertex{Pos: n.Mul(radius), Normal: n, UV: mgl32.Vec2{u, v}})
		}
	}
	stride := uint32(segments + 1)
	indices := make([]uint32, 0, rings*segments*6)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(segments); s++ {
			i0 := r*stride + s
			i1 := i0 + stride
			indices = append(indices, i0, i1, i0+1, i0+1, i1, i1+1)
		}
	}
	return verts, indices
}

// Torus lies in the XZ plane around the Y axis.
func Torus(major, minor float32, segU, segV int) ([]gfx.Vertex, []uint32) {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	verts := make([]gfx.Vertex, 0, segU*segV)
	twoPi := float32(2 * math.Pi)
	for u := 0; u < segU; u++ {
		theta := twoPi * float32(u) / float32(segU)
		ct := float32(math.Cos(float64(theta)))
		st := float32(math.Sin(float64(theta)))
		for v := 0; v < segV; v++ {
			phi := twoPi * float32(v) / float32(segV)
			cp := float32(math.Cos(float64(phi)))
			sp := float32(math.Sin(float64(phi)))

			r := major + minor*cp
			verts = append(verts, gfx.Vertex{
				Pos:    mgl32.Vec3{r * ct, minor * sp, r * st},
				Normal: mgl32.Vec3{cp * ct, sp, cp * st},
				UV:     mgl32.Vec2{float32(u) / float32(segU), float32(v) / float32(segV)},
			})
		}
	}

	idx := func(u, v int) uint32 {
		return uint32((u%segU)*segV + v%segV)
	}
	indices := make([]uint32, 0, segU*segV*6)
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)
			indices = append(indices, i0, i1, i2, i0, i2, i3)
		}
	}
	return verts, indices
}

// Box is an axis-aligned cube of the given half extent with per-face normals.
func Box(half float32) ([]gfx.Vertex, []uint32) {
	faces := [6]struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	verts := make([]gfx.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(verts))
		for _, c := range corners {
			p := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(half)
			verts = append(verts, gfx.Vertex{Pos: p, Normal: f.n, UV: mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2}})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}
