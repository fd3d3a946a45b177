package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"space/assets"
	"space/camera"
	"space/gfx"
	"space/shaders"
)

// ClearColor is the background behind the skybox.
var ClearColor = color.RGBA{R: 25, G: 25, B: 25, A: 255}

// Renderer computes every entity's transform and draws the scene.
type Renderer struct {
	log zerolog.Logger
	dev *gfx.Device

	modelProg *gfx.Program
	skyProg   *gfx.Program

	entities []Entity
	models   map[string]*assets.Model
	skybox   *Skybox

	transforms []mgl32.Mat4
	valid      []bool // has a transform to draw
	frozen     []bool // last update failed

	lighting bool
	lightDir mgl32.Vec4
}

// NewRenderer wires entities to their models. Entities whose model key is
// missing from models draw nothing.
func NewRenderer(d *gfx.Device, entities []Entity, models map[string]*assets.Model, sky *Skybox, log zerolog.Logger) *Renderer {
	return &Renderer{
		log:        log,
		dev:        d,
		modelProg:  d.CreateProgram(shaders.ModelName, shaders.Model),
		skyProg:    d.CreateProgram(shaders.SkyboxName, shaders.Skybox),
		entities:   entities,
		models:     models,
		skybox:     sky,
		transforms: make([]mgl32.Mat4, len(entities)),
		valid:      make([]bool, len(entities)),
		frozen:     make([]bool, len(entities)),
		lightDir:   shaders.DefaultLightDir,
	}
}

// SetLighting toggles the directional light in the model program.
func (r *Renderer) SetLighting(on bool) { r.lighting = on }

// Len returns the number of entities.
func (r *Renderer) Len() int { return len(r.entities) }

// Entity returns entity i.
func (r *Renderer) Entity(i int) *Entity { return &r.entities[i] }

// Transform returns the last transform computed for entity i and whether it
// has one.
func (r *Renderer) Transform(i int) (mgl32.Mat4, bool) {
	return r.transforms[i], r.valid[i]
}

// Update recomputes every transform at time now. An entity whose path leaves
// the real numbers keeps its previous transform; one that never had a valid
// transform is skipped by Draw.
func (r *Renderer) Update(now float64) {
	for i := range r.entities {
		e := &r.entities[i]
		m, err := e.Transform(now)
		if err != nil {
			if !r.frozen[i] {
				r.log.Warn().Err(err).Str("entity", e.Name).Float64("t", now).Msg("transform frozen")
				r.frozen[i] = true
			}
			continue
		}
		if r.frozen[i] {
			r.log.Debug().Str("entity", e.Name).Float64("t", now).Msg("transform resumed")
			r.frozen[i] = false
		}
		r.transforms[i] = m
		r.valid[i] = true
	}
}

// Draw clears the bound target, draws every entity in order, then the skybox.
func (r *Renderer) Draw(view, projection mgl32.Mat4) {
	d := r.dev
	d.Clear(ClearColor)

	p := r.modelProg
	p.Use()
	p.SetMat4("view", view)
	p.SetMat4("projection", projection)
	if r.lighting {
		p.SetInt("lighting", 1)
	} else {
		p.SetInt("lighting", 0)
	}
	p.SetVec4("lightDir", r.lightDir)

	for i := range r.entities {
		if !r.valid[i] {
			continue
		}
		m := r.models[r.entities[i].Model]
		if m == nil {
			continue
		}
		p.SetMat4("model", r.transforms[i])
		m.Draw(d, p)
	}

	if r.skybox != nil {
		r.skybox.Draw(d, r.skyProg, camera.RotationOnly(view), projection)
	}
}

// Err returns the device error recorded during the last frame, if any.
func (r *Renderer) Err() error { return r.dev.Err() }

// Close deletes every model and the skybox. The device itself is released by
// its owner.
func (r *Renderer) Close() error {
	for _, m := range r.models {
		m.Delete(r.dev)
	}
	if r.skybox != nil {
		r.skybox.Delete(r.dev)
	}
	r.models = nil
	r.skybox = nil
	return r.dev.Err()
}
