// Package shaders holds the two programs the space scene uses.
//
// Model program uniforms:
//
//	model, view, projection  mat4
//	texture_diffuse1         int   texture unit; unbound units fall back to baseColor
//	baseColor                vec4  rgba in [0,1]
//	lighting                 int   0 unlit, 1 ambient + directional
//	lightDir                 vec4  xyz direction towards the scene
//
// Skybox program uniforms:
//
//	view, projection  mat4  view should have its translation stripped
//	skybox            int   texture unit holding the cubemap
package shaders

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"space/gfx"
)

const (
	ModelName  = "model"
	SkyboxName = "skybox"
)

const (
	ambient   = 0.3
	dirAmount = 0.7
)

// DefaultLightDir points down and into the screen.
var DefaultLightDir = mgl32.Vec4{-0.3, -0.5, -0.8, 0}

// Model samples the diffuse texture and optionally applies a Lambert term.
func Model(u *gfx.Uniforms, units *gfx.TextureUnits) (gfx.VertexFunc, gfx.FragmentFunc) {
	model := u.Mat4("model")
	mvp := u.Mat4("projection").Mul4(u.Mat4("view")).Mul4(model)
	normalMat := model.Mat3().Inv().Transpose()
	if normalMat == (mgl32.Mat3{}) {
		normalMat = model.Mat3()
	}

	tex := units.Unit(u.Int("texture_diffuse1"))
	base := toRGBA(u.Vec4("baseColor"))
	lit := u.Int("lighting") != 0
	ld := u.Vec4("lightDir").Vec3()
	if ld.Len() > 0 {
		ld = ld.Normalize()
	} else {
		lit = false
	}

	vs := func(v gfx.Vertex) (mgl32.Vec4, gfx.Varyings) {
		clip := mvp.Mul4x1(v.Pos.Vec4(1))
		n := normalMat.Mul3x1(v.Normal)
		return clip, gfx.Varyings{v.UV[0], v.UV[1], n[0], n[1], n[2]}
	}
	fs := func(in gfx.Varyings) (color.RGBA, bool) {
		c := base
		if tex != nil {
			c = tex.Sample(in[0], in[1], 0)
		}
		if !lit {
			return c, true
		}
		n := mgl32.Vec3{in[2], in[3], in[4]}
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		return shade(c, intensity(n, ld)), true
	}
	return vs, fs
}

// Skybox samples a cubemap by the cube-local direction and pins depth to the
// far plane.
func Skybox(u *gfx.Uniforms, units *gfx.TextureUnits) (gfx.VertexFunc, gfx.FragmentFunc) {
	vp := u.Mat4("projection").Mul4(u.Mat4("view"))
	cube := units.Unit(u.Int("skybox"))

	vs := func(v gfx.Vertex) (mgl32.Vec4, gfx.Varyings) {
		p := vp.Mul4x1(v.Pos.Vec4(1))
		return mgl32.Vec4{p[0], p[1], p[3], p[3]}, gfx.Varyings{v.Pos[0], v.Pos[1], v.Pos[2]}
	}
	fs := func(in gfx.Varyings) (color.RGBA, bool) {
		if cube == nil {
			return color.RGBA{A: 255}, true
		}
		return cube.Sample(in[0], in[1], in[2]), true
	}
	return vs, fs
}

func intensity(n, lightDir mgl32.Vec3) float32 {
	d := n.Dot(lightDir.Mul(-1))
	if d < 0 {
		d = 0
	}
	v := float32(ambient) + d*dirAmount
	if v > 1 {
		v = 1
	}
	return v
}

func shade(c color.RGBA, k float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}

func toRGBA(v mgl32.Vec4) color.RGBA {
	return color.RGBA{R: unit8(v[0]), G: unit8(v[1]), B: unit8(v[2]), A: unit8(v[3])}
}

func unit8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
