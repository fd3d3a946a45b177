package shaders

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"space/gfx"
)

func TestModelBaseColorWithoutTexture(t *testing.T) {
	d := gfx.NewDevice()
	p := d.CreateProgram(ModelName, Model)
	p.SetVec4("baseColor", mgl32.Vec4{1, 0.5, 0, 1})

	vs, fs := Model(p.Uniforms(), &gfx.TextureUnits{})
	clip, _ := vs(gfx.Vertex{Pos: mgl32.Vec3{0.25, -0.5, 0.1}})
	if !clip.ApproxEqual(mgl32.Vec4{0.25, -0.5, 0.1, 1}) {
		t.Fatalf("clip = %v; want identity transform", clip)
	}
	got, keep := fs(gfx.Varyings{})
	want := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	if !keep || got != want {
		t.Fatalf("fs = %v,%v; want %v,true", got, keep, want)
	}
}

func TestModelLighting(t *testing.T) {
	d := gfx.NewDevice()
	p := d.CreateProgram(ModelName, Model)
	p.SetVec4("baseColor", mgl32.Vec4{1, 1, 1, 1})
	p.SetInt("lighting", 1)
	p.SetVec4("lightDir", mgl32.Vec4{0, 0, -1, 0})

	_, fs := Model(p.Uniforms(), &gfx.TextureUnits{})
	facing, _ := fs(gfx.Varyings{0, 0, 0, 0, 1})
	away, _ := fs(gfx.Varyings{0, 0, 0, 0, -1})
	if facing.R != 255 {
		t.Fatalf("facing.R = %d; want 255", facing.R)
	}
	// 255 * 0.3 truncated
	if want := uint8(76); away.R != want {
		t.Fatalf("away.R = %d; want ambient %d", away.R, want)
	}
}

func TestModelSamplesBoundUnit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	units := gfx.TextureUnits{gfx.NewTexture2D(img)}

	d := gfx.NewDevice()
	p := d.CreateProgram(ModelName, Model)
	p.SetInt("texture_diffuse1", 0)
	_, fs := Model(p.Uniforms(), &units)
	if got, _ := fs(gfx.Varyings{0.5, 0.5}); got != img.RGBAAt(0, 0) {
		t.Fatalf("fs = %v; want texel %v", got, img.RGBAAt(0, 0))
	}
}

func TestSkyboxAtFarPlane(t *testing.T) {
	d := gfx.NewDevice()
	p := d.CreateProgram(SkyboxName, Skybox)
	p.SetMat4("projection", mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100))
	vs, _ := Skybox(p.Uniforms(), &gfx.TextureUnits{})
	for _, pos := range []mgl32.Vec3{{1, 1, -1}, {-1, 0.5, -1}, {0, 0, -1}} {
		clip, out := vs(gfx.Vertex{Pos: pos})
		if clip[2] != clip[3] {
			t.Fatalf("clip z = %v; want w %v", clip[2], clip[3])
		}
		if out[0] != pos[0] || out[1] != pos[1] || out[2] != pos[2] {
			t.Fatalf("direction = %v; want %v", out[:3], pos)
		}
	}
}

func TestSkyboxFillsOnlyEmptyPixels(t *testing.T) {
	sky := color.RGBA{B: 200, A: 255}
	cube := &gfx.Cubemap{Fallback: sky}
	d := gfx.NewDevice()
	tgt := gfx.NewRGBATarget(4, 4)
	d.Bind(tgt)
	d.Clear(color.RGBA{A: 255})

	model := d.CreateProgram(ModelName, Model)
	model.SetVec4("baseColor", mgl32.Vec4{1, 0, 0, 1})
	model.Use()
	// left half of the screen at mid depth
	obj := d.NewVertexArray([]gfx.Vertex{
		{Pos: mgl32.Vec3{-1, -1, 0}},
		{Pos: mgl32.Vec3{0, -1, 0}},
		{Pos: mgl32.Vec3{0, 1, 0}},
		{Pos: mgl32.Vec3{-1, 1, 0}},
	}, []uint32{0, 1, 2, 0, 2, 3})
	d.DrawElements(obj)

	skybox := d.CreateProgram(SkyboxName, Skybox)
	skybox.SetInt("skybox", 0)
	skybox.Use()
	d.BindTexture(0, cube)
	d.SetDepthFunc(gfx.DepthLEqual)
	d.SetDepthMask(false)
	// a screen-filling face of the cube in front of an identity camera
	face := d.NewVertexArray([]gfx.Vertex{
		{Pos: mgl32.Vec3{-1, -1, -1}},
		{Pos: mgl32.Vec3{1, -1, -1}},
		{Pos: mgl32.Vec3{1, 1, -1}},
		{Pos: mgl32.Vec3{-1, -1, -1}},
		{Pos: mgl32.Vec3{1, 1, -1}},
		{Pos: mgl32.Vec3{-1, 1, -1}},
	}, nil)
	d.DrawArrays(face, 0, 6)
	d.SetDepthMask(true)
	d.SetDepthFunc(gfx.DepthLess)
	if err := d.Err(); err != nil {
		t.Fatalf("Err() = %v; want nil", err)
	}

	if got := tgt.At(0, 2); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("At(0,2) = %v; want object", got)
	}
	if got := tgt.At(3, 2); got != sky {
		t.Fatalf("At(3,2) = %v; want sky %v", got, sky)
	}
}
