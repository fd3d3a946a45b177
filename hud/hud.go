// Package hud draws a small text overlay with frame statistics.
package hud

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"tinygo.org/x/tinyfont"

	"space/gfx"
)

// Stats are the values shown on the overlay.
type Stats struct {
	Build     string
	Position  mgl32.Vec3
	Zoom      float32
	Entities  int
	DrawCalls int
	Triangles int
}

var (
	fg = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	bg = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
)

const (
	margin     = 2
	lineHeight = 7
	fpsSmooth  = 0.1
)

// Overlay renders Stats in the top-left corner when enabled.
type Overlay struct {
	enabled bool
	font    tinyfont.Fonter
	fps     float64
	lines   []string
}

// New returns an overlay using tinyfont's TomThumb font.
func New(enabled bool) *Overlay {
	return &Overlay{enabled: enabled, font: &tinyfont.TomThumb}
}

func (o *Overlay) Enabled() bool { return o.enabled }
func (o *Overlay) Toggle()       { o.enabled = !o.enabled }

// FPS returns the smoothed frame rate.
func (o *Overlay) FPS() float64 { return o.fps }

// Frame records a frame time for the FPS estimate.
func (o *Overlay) Frame(dt float64) {
	if dt <= 0 {
		return
	}
	cur := 1 / dt
	if o.fps == 0 {
		o.fps = cur
		return
	}
	o.fps += (cur - o.fps) * fpsSmooth
}

// Lines formats s as the overlay text.
func (o *Overlay) Lines(s Stats) []string {
	o.lines = append(o.lines[:0],
		fmt.Sprintf("SPACE %s", s.Build),
		fmt.Sprintf("FPS %.1f", o.fps),
		fmt.Sprintf("POS %.2f %.2f %.2f", s.Position[0], s.Position[1], s.Position[2]),
		fmt.Sprintf("ZOOM %.1f", s.Zoom),
		fmt.Sprintf("ENT %d DRAW %d TRI %d", s.Entities, s.DrawCalls, s.Triangles),
	)
	return o.lines
}

// Draw writes the overlay into t. It does nothing while disabled.
func (o *Overlay) Draw(t gfx.Target, s Stats) {
	if !o.enabled || t == nil {
		return
	}
	d := &targetDisplay{t: t}
	lines := o.Lines(s)

	width := int16(0)
	for _, l := range lines {
		if w, _ := tinyfont.LineWidth(o.font, l); int16(w) > width {
			width = int16(w)
		}
	}
	_ = d.FillRectangle(0, 0, width+2*margin, int16(len(lines)*lineHeight+2*margin), bg)
	for i, l := range lines {
		tinyfont.WriteLine(d, o.font, margin, int16(margin+(i+1)*lineHeight-1), l, fg)
	}
}
