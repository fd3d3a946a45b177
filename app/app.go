// Package app is the render context: it owns the camera, the simulation
// clock, the scene and the graphics device, and advances them one frame per
// Step.
package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"space/camera"
	"space/gfx"
	"space/hal"
	"space/hud"
	"space/scene"
)

// Boost multiplies camera speed while Left Ctrl is held.
const Boost = 4

// Clip planes of the scene projection.
const (
	Near float32 = 0.1
	Far  float32 = 100
)

// StartPosition is where the camera begins.
var StartPosition = mgl32.Vec3{0, 0, 3}

// Config selects assets, shading and the overlay.
type Config struct {
	Scene scene.Options
	HUD   bool
	Build string
}

// App implements hal.App for the space scene.
type App struct {
	h   hal.HAL
	log zerolog.Logger

	dev      *gfx.Device
	renderer *scene.Renderer
	cam      *camera.Camera
	mouse    *camera.MouseTracker
	clock    scene.Clock
	overlay  *hud.Overlay
	metrics  *metrics
	build    string

	target   gfx.RGBATarget
	panicked bool
}

var _ hal.App = (*App)(nil)

// NewFactory adapts New to the runner signature.
func NewFactory(cfg Config) hal.NewApp {
	return func(h hal.HAL) (hal.App, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

// New loads the scene and prepares the first frame. On error everything
// acquired so far is released.
func New(h hal.HAL, cfg Config) (*App, error) {
	log := zerolog.Nop()
	if l := h.Logger(); l != nil {
		log = *l
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("app: no framebuffer")
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	dev := gfx.NewDevice()
	r, err := scene.Load(dev, cfg.Scene, log)
	if err != nil {
		dev.Release()
		return nil, fmt.Errorf("app: load scene: %w", err)
	}

	a := &App{
		h:        h,
		log:      log,
		dev:      dev,
		renderer: r,
		cam:      camera.New(StartPosition),
		mouse:    camera.NewMouseTracker(float32(fb.Width())/2, float32(fb.Height())/2),
		overlay:  hud.New(cfg.HUD),
		metrics:  m,
		build:    cfg.Build,
	}
	log.Info().
		Int("width", fb.Width()).Int("height", fb.Height()).
		Bool("hud", cfg.HUD).Bool("lighting", cfg.Scene.Lighting).
		Msg("app ready")
	return a, nil
}

// Camera returns the camera driven by input.
func (a *App) Camera() *camera.Camera { return a.cam }

// Renderer returns the scene renderer.
func (a *App) Renderer() *scene.Renderer { return a.renderer }

// Overlay returns the HUD.
func (a *App) Overlay() *hud.Overlay { return a.overlay }

// Clock returns the simulation clock.
func (a *App) Clock() *scene.Clock { return &a.clock }

// Step runs one frame: input, transforms, draw, HUD, present. A panic while
// drawing is reported on screen and returned as an error.
func (a *App) Step() (err error) {
	if a.panicked {
		return ErrPanicked
	}
	defer a.recoverFrame(&err)

	now := a.h.Clock().Now()
	dt := a.clock.Advance(now)
	a.overlay.Frame(dt)

	if err := a.input(float32(dt)); err != nil {
		return err
	}

	fb := a.h.Display().Framebuffer()
	a.bind(fb)

	a.dev.ResetStats()
	a.renderer.Update(a.clock.Now())
	aspect := float32(1)
	if fb.Height() > 0 {
		aspect = float32(fb.Width()) / float32(fb.Height())
	}
	a.renderer.Draw(a.cam.View(), a.cam.Projection(aspect, Near, Far))
	if err := a.renderer.Err(); err != nil {
		a.log.Error().Err(err).Uint64("frame", a.clock.Frames()).Msg("draw failed")
	}

	st := a.dev.Stats()
	a.overlay.Draw(&a.target, hud.Stats{
		Build:     a.build,
		Position:  a.cam.Position,
		Zoom:      a.cam.Zoom,
		Entities:  a.renderer.Len(),
		DrawCalls: st.DrawCalls,
		Triangles: st.Triangles,
	})
	a.metrics.record(dt, st)

	return fb.Present()
}

func (a *App) input(dt float32) error {
	kbd := a.h.Input().Keyboard()
keys:
	for {
		select {
		case ev := <-kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				a.log.Info().Msg("quit requested")
				return hal.ErrQuit
			case hal.KeyF1:
				a.overlay.Toggle()
			}
		default:
			break keys
		}
	}

	if kbd.Pressed(hal.KeyControlLeft) {
		dt *= Boost
	}
	for _, k := range moveKeys {
		if kbd.Pressed(k.code) {
			a.cam.ProcessKeyboard(k.move, dt)
		}
	}

	ptr := a.h.Input().Pointer()
	for {
		select {
		case ev := <-ptr.Events():
			switch ev.Kind {
			case hal.PointerMove:
				dx, dy := a.mouse.Move(ev.X, ev.Y)
				if dx != 0 || dy != 0 {
					a.cam.ProcessMouseMovement(dx, dy)
				}
			case hal.PointerScroll:
				a.cam.ProcessMouseScroll(ev.DY)
			}
		default:
			return nil
		}
	}
}

var moveKeys = [...]struct {
	code hal.KeyCode
	move camera.Movement
}{
	{hal.KeyW, camera.Forward},
	{hal.KeyS, camera.Backward},
	{hal.KeyA, camera.Left},
	{hal.KeyD, camera.Right},
}

// bind points the render target at the framebuffer, which may have been
// resized since the last frame.
func (a *App) bind(fb hal.Framebuffer) {
	a.target = gfx.RGBATarget{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	a.dev.Bind(&a.target)
}

// Close deletes the scene's GPU objects and releases the device.
func (a *App) Close() error {
	if a.renderer == nil {
		return nil
	}
	err := a.renderer.Close()
	a.dev.Release()
	a.renderer = nil
	a.log.Debug().Uint64("frames", a.clock.Frames()).Msg("app closed")
	return err
}
