// Package gfx is a small software graphics device for the space scene.
//
// It mirrors the handful of GPU concepts the scene needs and nothing more:
// named programs with int, vec4 and mat4 uniforms, vertex arrays that must be
// released, texture units holding 2D textures or cubemaps, and a depth buffer
// with a selectable compare function and write mask.
//
// Pipeline (fixed):
//
//	Vertex stage → Clip (w > ε, −w ≤ z ≤ w) → Divide → Viewport → Rasterize →
//	Depth test → Fragment stage → Target.
//
// Varyings are interpolated perspective-correct. Depth is window depth in
// [0,1] and the buffer clears to 1, so a vertex stage that emits z = w lands
// exactly on the far plane.
//
// Math uses github.com/go-gl/mathgl/mgl32 (column-major, OpenGL conventions).
package gfx
