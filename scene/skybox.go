package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"space/gfx"
)

// SkyboxVertices is the vertex count of the skybox cube.
const SkyboxVertices = 36

// ErrSkyboxData reports skybox positions that do not form whole triangles.
var ErrSkyboxData = errors.New("scene: skybox data is not a triangle list")

// Skybox is a cube drawn around the camera with a cubemap.
type Skybox struct {
	array *gfx.VertexArray
	cube  gfx.Sampler
}

// NewSkybox uploads xyz positions, three floats per vertex.
func NewSkybox(d *gfx.Device, positions []float32, cube gfx.Sampler) (*Skybox, error) {
	if len(positions) == 0 || len(positions)%9 != 0 {
		return nil, fmt.Errorf("%w: %d floats", ErrSkyboxData, len(positions))
	}
	verts := make([]gfx.Vertex, len(positions)/3)
	for i := range verts {
		verts[i].Pos = mgl32.Vec3{positions[3*i], positions[3*i+1], positions[3*i+2]}
	}
	return &Skybox{array: d.NewVertexArray(verts, nil), cube: cube}, nil
}

// Draw renders the skybox behind everything already drawn. view should have
// its translation stripped. Depth state is restored to Less with writes on.
func (s *Skybox) Draw(d *gfx.Device, p *gfx.Program, view, projection mgl32.Mat4) {
	d.SetDepthFunc(gfx.DepthLEqual)
	d.SetDepthMask(false)
	p.Use()
	p.SetMat4("view", view)
	p.SetMat4("projection", projection)
	p.SetInt("skybox", 0)
	d.BindTexture(0, s.cube)
	d.DrawArrays(s.array, 0, s.array.VertexCount())
	d.BindTexture(0, nil)
	d.SetDepthMask(true)
	d.SetDepthFunc(gfx.DepthLess)
}

// Delete releases the cube's vertex array.
func (s *Skybox) Delete(d *gfx.Device) { d.DeleteVertexArray(s.array) }
