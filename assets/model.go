package assets

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"space/gfx"
)

// DefaultColor is the base color of meshes without a material.
var DefaultColor = mgl32.Vec4{0.8, 0.8, 0.8, 1}

// Mesh is one drawable primitive with its diffuse texture.
type Mesh struct {
	Array   *gfx.VertexArray
	Texture gfx.Sampler // nil draws Color
	Color   mgl32.Vec4
}

// Model is a set of meshes uploaded to one device.
type Model struct {
	Name   string
	Meshes []Mesh

	// Placeholder is set when the meshes are procedural stand-ins.
	Placeholder bool
}

// Draw binds each mesh's diffuse texture to unit 0 and draws it with p.
// A nil or empty model draws nothing.
func (m *Model) Draw(d *gfx.Device, p *gfx.Program) {
	if m == nil {
		return
	}
	p.SetInt("texture_diffuse1", 0)
	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		d.BindTexture(0, mesh.Texture)
		p.SetVec4("baseColor", mesh.Color)
		d.DrawElements(mesh.Array)
	}
	d.BindTexture(0, nil)
}

// Triangles returns the number of indexed triangles in the model.
func (m *Model) Triangles() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, mesh := range m.Meshes {
		n += mesh.Array.IndexCount() / 3
	}
	return n
}

// Delete releases the model's vertex arrays.
func (m *Model) Delete(d *gfx.Device) {
	if m == nil {
		return
	}
	for _, mesh := range m.Meshes {
		d.DeleteVertexArray(mesh.Array)
	}
	m.Meshes = nil
}

// NewModel uploads a single untextured mesh.
func NewModel(d *gfx.Device, name string, verts []gfx.Vertex, indices []uint32, c mgl32.Vec4) *Model {
	return &Model{
		Name:   name,
		Meshes: []Mesh{{Array: d.NewVertexArray(verts, indices), Color: c}},
	}
}

// PlaceholderModel uploads a procedural stand-in for a model that failed to
// load.
func PlaceholderModel(d *gfx.Device, name string, s Shape, c mgl32.Vec4) *Model {
	verts, indices := Placeholder(s)
	m := NewModel(d, name, verts, indices, c)
	m.Placeholder = true
	return m
}

// LoadModel reads a glTF file and uploads every triangle primitive.
//
// Node transforms are not applied. On error the returned model holds whatever
// loaded before the failure and is never nil.
func LoadModel(d *gfx.Device, path string) (*Model, error) {
	m := &Model{Name: path}
	doc, err := gltf.Open(path)
	if err != nil {
		return m, fmt.Errorf("assets: open %s: %w", path, err)
	}
	if err := m.build(d, doc, filepath.Dir(path)); err != nil {
		return m, fmt.Errorf("assets: %s: %w", path, err)
	}
	return m, nil
}

func (m *Model) build(d *gfx.Device, doc *gltf.Document, dir string) error {
	textures := make(map[int]gfx.Sampler)
	var errs []error
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			verts, indices, err := readPrimitive(doc, prim)
			if err != nil {
				errs = append(errs, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err))
				continue
			}
			out := Mesh{Array: d.NewVertexArray(verts, indices), Color: DefaultColor}
			if prim.Material != nil && int(*prim.Material) < len(doc.Materials) {
				tex, c, err := material(doc, doc.Materials[*prim.Material], dir, textures)
				if err != nil {
					errs = append(errs, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err))
				}
				if tex != nil {
					out.Texture = tex
				}
				out.Color = c
			}
			m.Meshes = append(m.Meshes, out)
		}
	}
	return errors.Join(errs...)
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([]gfx.Vertex, []uint32, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil, errors.New("no POSITION attribute")
	}
	pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, nil, fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return nil, nil, fmt.Errorf("read normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return nil, nil, fmt.Errorf("read texcoords: %w", err)
		}
	}

	verts := make([]gfx.Vertex, len(pos))
	for i, p := range pos {
		verts[i].Pos = mgl32.Vec3(p)
		if i < len(normals) {
			verts[i].Normal = mgl32.Vec3(normals[i])
		}
		if i < len(uvs) {
			verts[i].UV = mgl32.Vec2(uvs[i])
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return nil, nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	return verts, indices, nil
}

// material resolves the base color texture and factor. The texture is nil
// when the material has none or it failed to load.
func material(doc *gltf.Document, mat *gltf.Material, dir string, cache map[int]gfx.Sampler) (gfx.Sampler, mgl32.Vec4, error) {
	c := DefaultColor
	pbr := mat.PBRMetallicRoughness
	if pbr == nil {
		return nil, c, nil
	}
	if f := pbr.BaseColorFactor; f != nil {
		c = mgl32.Vec4{float32(f[0]), float32(f[1]), float32(f[2]), float32(f[3])}
	}
	if pbr.BaseColorTexture == nil {
		return nil, c, nil
	}

	ti := int(pbr.BaseColorTexture.Index)
	if s, ok := cache[ti]; ok {
		return s, c, nil
	}
	tex, err := texture(doc, ti, dir)
	if err != nil {
		cache[ti] = nil
		return nil, c, err
	}
	cache[ti] = tex
	return tex, c, nil
}

func texture(doc *gltf.Document, ti int, dir string) (gfx.Sampler, error) {
	if ti < 0 || ti >= len(doc.Textures) || doc.Textures[ti].Source == nil {
		return nil, fmt.Errorf("texture %d: no image source", ti)
	}
	src := int(*doc.Textures[ti].Source)
	if src < 0 || src >= len(doc.Images) {
		return nil, fmt.Errorf("texture %d: image %d out of range", ti, src)
	}
	img := doc.Images[src]

	var (
		data []byte
		err  error
	)
	switch {
	case img.BufferView != nil:
		data, err = modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
	case img.IsEmbeddedResource():
		data, err = img.MarshalData()
	case img.URI != "":
		name, err := url.PathUnescape(img.URI)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", src, err)
		}
		tex, err := LoadTexture(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", src, err)
		}
		return tex, nil
	default:
		err = errors.New("empty image")
	}
	if err != nil {
		return nil, fmt.Errorf("image %d: %w", src, err)
	}

	rgba, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("image %d: decode: %w", src, err)
	}
	if tex := gfx.NewTexture2D(rgba); tex != nil {
		return tex, nil
	}
	return nil, fmt.Errorf("image %d: empty", src)
}
