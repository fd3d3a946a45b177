package gfx

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxVaryings is the number of floats a vertex stage can pass to the
// fragment stage.
const MaxVaryings = 8

// Varyings are per-vertex outputs interpolated across a triangle.
type Varyings [MaxVaryings]float32

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
}

// VertexFunc transforms one vertex to clip space.
type VertexFunc func(v Vertex) (clip mgl32.Vec4, out Varyings)

// FragmentFunc shades one fragment. Returning false discards it.
type FragmentFunc func(in Varyings) (color.RGBA, bool)

// Shader links a program's stages against the uniforms and texture units
// current at draw time. It runs once per draw call.
type Shader func(u *Uniforms, units *TextureUnits) (VertexFunc, FragmentFunc)

// Uniforms hold a program's named inputs.
type Uniforms struct {
	ints map[string]int32
	vecs map[string]mgl32.Vec4
	mats map[string]mgl32.Mat4
}

func newUniforms() *Uniforms {
	return &Uniforms{
		ints: make(map[string]int32),
		vecs: make(map[string]mgl32.Vec4),
		mats: make(map[string]mgl32.Mat4),
	}
}

// Int returns an int uniform, 0 if unset.
func (u *Uniforms) Int(name string) int32 { return u.ints[name] }

// Vec4 returns a vec4 uniform, zero if unset.
func (u *Uniforms) Vec4(name string) mgl32.Vec4 { return u.vecs[name] }

// Mat4 returns a mat4 uniform, identity if unset.
func (u *Uniforms) Mat4(name string) mgl32.Mat4 {
	m, ok := u.mats[name]
	if !ok {
		return mgl32.Ident4()
	}
	return m
}

// Program is a named shader with its uniform state.
type Program struct {
	name   string
	dev    *Device
	shader Shader
	u      *Uniforms
}

// Name returns the name the program was created with.
func (p *Program) Name() string { return p.name }

// Device returns the device the program belongs to.
func (p *Program) Device() *Device { return p.dev }

// Use makes p the device's current program.
func (p *Program) Use() { p.dev.UseProgram(p) }

func (p *Program) SetInt(name string, v int32)       { p.u.ints[name] = v }
func (p *Program) SetVec4(name string, v mgl32.Vec4) { p.u.vecs[name] = v }
func (p *Program) SetMat4(name string, m mgl32.Mat4) { p.u.mats[name] = m }
func (p *Program) Uniforms() *Uniforms               { return p.u }
