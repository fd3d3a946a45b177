package gfx

import (
	"errors"
	"image/color"
)

var (
	ErrNoTarget      = errors.New("gfx: no target bound")
	ErrNoProgram     = errors.New("gfx: no program in use")
	ErrDeletedArray  = errors.New("gfx: vertex array deleted")
	ErrForeignObject = errors.New("gfx: object belongs to another device")
	ErrRange         = errors.New("gfx: draw range out of bounds")
)

// VertexArray is uploaded geometry. Indices may be nil for DrawArrays.
type VertexArray struct {
	id       uint32
	dev      *Device
	vertices []Vertex
	indices  []uint32
}

// ID is the array's handle; zero once deleted.
func (va *VertexArray) ID() uint32 { return va.id }

// VertexCount returns the number of uploaded vertices.
func (va *VertexArray) VertexCount() int { return len(va.vertices) }

// IndexCount returns the number of indices, zero for DrawArrays geometry.
func (va *VertexArray) IndexCount() int { return len(va.indices) }

// Deleted reports whether the array has been deleted or released.
func (va *VertexArray) Deleted() bool { return va.id == 0 }

// Stats count the work done since the last ResetStats.
type Stats struct {
	DrawCalls int
	Triangles int
	Fragments int
}

// Device is a fixed-pipeline software renderer with GL-like state.
//
// Create it once and reuse it; the depth buffer is reallocated only when the
// bound target grows.
type Device struct {
	target Target
	w, h   int
	depth  []float32

	depthFunc DepthFunc
	depthMask bool

	program *Program
	units   TextureUnits

	arrays map[uint32]*VertexArray
	nextID uint32

	stats Stats
	err   error

	// scratch polygons reused across triangles
	poly, tmp []clipVertex
}

// NewDevice returns a device with depth test Less and depth writes enabled.
func NewDevice() *Device {
	return &Device{
		depthFunc: DepthLess,
		depthMask: true,
		arrays:    make(map[uint32]*VertexArray),
		poly:      make([]clipVertex, 0, 12),
		tmp:       make([]clipVertex, 0, 12),
	}
}

// Bind sets the render target. The viewport always covers the whole target.
func (d *Device) Bind(t Target) {
	d.target = t
	if t == nil {
		d.w, d.h = 0, 0
		return
	}
	w, h := t.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	d.w, d.h = w, h
	if cap(d.depth) < w*h {
		d.depth = make([]float32, w*h)
	} else {
		d.depth = d.depth[:w*h]
	}
}

// Viewport returns the bound target's size.
func (d *Device) Viewport() (w, h int) { return d.w, d.h }

// Clear fills the target with c and resets depth to the far plane.
func (d *Device) Clear(c color.RGBA) {
	if d.target == nil {
		d.setErr(ErrNoTarget)
		return
	}
	d.target.Clear(c)
	for i := range d.depth {
		d.depth[i] = 1
	}
}

func (d *Device) SetDepthFunc(f DepthFunc) { d.depthFunc = f }
func (d *Device) DepthFunc() DepthFunc     { return d.depthFunc }
func (d *Device) SetDepthMask(on bool)     { d.depthMask = on }
func (d *Device) DepthMask() bool          { return d.depthMask }

// Depth returns the stored depth at (x, y), or 1 outside the viewport.
func (d *Device) Depth(x, y int) float32 {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return 1
	}
	return d.depth[y*d.w+x]
}

// CreateProgram registers a named shader on the device.
func (d *Device) CreateProgram(name string, sh Shader) *Program {
	return &Program{name: name, dev: d, shader: sh, u: newUniforms()}
}

// UseProgram selects the program for subsequent draws. nil unbinds.
func (d *Device) UseProgram(p *Program) {
	if p != nil && p.dev != d {
		d.setErr(ErrForeignObject)
		return
	}
	d.program = p
}

// Program returns the current program.
func (d *Device) Program() *Program { return d.program }

// BindTexture attaches s to a texture unit. nil unbinds.
func (d *Device) BindTexture(unit int, s Sampler) {
	if unit < 0 || unit >= MaxTextureUnits {
		d.setErr(ErrRange)
		return
	}
	d.units[unit] = s
}

// NewVertexArray uploads geometry and returns a handle that stays valid until
// DeleteVertexArray or Release.
func (d *Device) NewVertexArray(vertices []Vertex, indices []uint32) *VertexArray {
	d.nextID++
	va := &VertexArray{
		id:       d.nextID,
		dev:      d,
		vertices: append([]Vertex(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
	}
	d.arrays[va.id] = va
	return va
}

// DeleteVertexArray releases va. Deleting twice is a no-op.
func (d *Device) DeleteVertexArray(va *VertexArray) {
	if va == nil || va.id == 0 {
		return
	}
	if va.dev != d {
		d.setErr(ErrForeignObject)
		return
	}
	delete(d.arrays, va.id)
	va.id = 0
	va.vertices = nil
	va.indices = nil
}

// Live returns the number of vertex arrays not yet deleted.
func (d *Device) Live() int { return len(d.arrays) }

// Release deletes every live vertex array and clears all bindings.
func (d *Device) Release() {
	for _, va := range d.arrays {
		va.id = 0
		va.vertices = nil
		va.indices = nil
	}
	d.arrays = make(map[uint32]*VertexArray)
	d.program = nil
	d.units = TextureUnits{}
	d.target = nil
	d.depth = nil
	d.w, d.h = 0, 0
}

// DrawElements draws va's indexed triangle list with the current program.
func (d *Device) DrawElements(va *VertexArray) {
	if !d.ready(va) {
		return
	}
	n := len(va.indices) - len(va.indices)%3
	d.stats.DrawCalls++
	vs, fs := d.program.shader(d.program.u, &d.units)
	for i := 0; i < n; i += 3 {
		i0, i1, i2 := va.indices[i], va.indices[i+1], va.indices[i+2]
		if int(i0) >= len(va.vertices) || int(i1) >= len(va.vertices) || int(i2) >= len(va.vertices) {
			continue
		}
		d.drawTriangle(vs, fs, va.vertices[i0], va.vertices[i1], va.vertices[i2])
	}
}

// DrawArrays draws count vertices starting at first as a triangle list.
func (d *Device) DrawArrays(va *VertexArray, first, count int) {
	if !d.ready(va) {
		return
	}
	if first < 0 || count < 0 || first+count > len(va.vertices) {
		d.setErr(ErrRange)
		return
	}
	d.stats.DrawCalls++
	vs, fs := d.program.shader(d.program.u, &d.units)
	end := first + count - count%3
	for i := first; i < end; i += 3 {
		d.drawTriangle(vs, fs, va.vertices[i], va.vertices[i+1], va.vertices[i+2])
	}
}

func (d *Device) ready(va *VertexArray) bool {
	switch {
	case d.target == nil:
		d.setErr(ErrNoTarget)
	case d.program == nil:
		d.setErr(ErrNoProgram)
	case va == nil || va.id == 0:
		d.setErr(ErrDeletedArray)
	case va.dev != d:
		d.setErr(ErrForeignObject)
	default:
		return true
	}
	return false
}

// Stats returns counters since the last ResetStats.
func (d *Device) Stats() Stats { return d.stats }

// ResetStats zeroes the counters.
func (d *Device) ResetStats() { d.stats = Stats{} }

// Err returns and clears the first error recorded since the previous call.
func (d *Device) Err() error {
	err := d.err
	d.err = nil
	return err
}

func (d *Device) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}
