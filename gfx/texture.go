package gfx

import (
	"image"
	"image/color"
	"math"
)

// MaxTextureUnits is the number of sampler slots on a device.
const MaxTextureUnits = 4

// Sampler looks up a color by texture coordinate. 2D textures use (s, t);
// cubemaps use (s, t, r) as a direction.
type Sampler interface {
	Sample(s, t, r float32) color.RGBA
}

// TextureUnits are the samplers bound at draw time.
type TextureUnits [MaxTextureUnits]Sampler

// Unit returns the sampler bound to unit i, or nil.
func (u *TextureUnits) Unit(i int32) Sampler {
	if u == nil || i < 0 || int(i) >= len(u) {
		return nil
	}
	return u[i]
}

// Texture2D is an RGBA image sampled with repeat wrapping and nearest filtering.
type Texture2D struct {
	img *image.RGBA
}

// NewTexture2D wraps img. A nil image yields nil.
func NewTexture2D(img *image.RGBA) *Texture2D {
	if img == nil || img.Rect.Empty() {
		return nil
	}
	return &Texture2D{img: img}
}

// Size returns the texture dimensions.
func (t *Texture2D) Size() (w, h int) {
	b := t.img.Rect
	return b.Dx(), b.Dy()
}

func (t *Texture2D) Sample(s, tc, _ float32) color.RGBA {
	w, h := t.Size()
	x := wrapRepeat(s, w)
	y := wrapRepeat(tc, h)
	return t.img.RGBAAt(t.img.Rect.Min.X+x, t.img.Rect.Min.Y+y)
}

// texelClamp returns the clamped texel at normalized (s, t).
func (t *Texture2D) texelClamp(s, tc float32) color.RGBA {
	w, h := t.Size()
	x := wrapClamp(s, w)
	y := wrapClamp(tc, h)
	return t.img.RGBAAt(t.img.Rect.Min.X+x, t.img.Rect.Min.Y+y)
}

func wrapRepeat(v float32, n int) int {
	f := v - float32(math.Floor(float64(v)))
	i := int(f * float32(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func wrapClamp(v float32, n int) int {
	i := int(v * float32(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// CubeFace indexes the six cubemap faces in upload order.
type CubeFace uint8

const (
	FacePositiveX CubeFace = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

// Cubemap is six square textures sampled by direction, clamped to edge.
type Cubemap struct {
	Faces [6]*Texture2D

	// Fallback is returned for directions hitting a missing face.
	Fallback color.RGBA
}

// Sample picks the face on the direction's major axis and maps the other two
// components to face coordinates.
func (c *Cubemap) Sample(x, y, z float32) color.RGBA {
	face, s, t, ok := cubeCoords(x, y, z)
	if !ok {
		return c.Fallback
	}
	tex := c.Faces[face]
	if tex == nil {
		return c.Fallback
	}
	return tex.texelClamp(s, t)
}

func cubeCoords(x, y, z float32) (face CubeFace, s, t float32, ok bool) {
	ax, ay, az := abs32(x), abs32(y), abs32(z)
	var sc, tc, ma float32
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if x > 0 {
			face, sc, tc = FacePositiveX, -z, -y
		} else {
			face, sc, tc = FaceNegativeX, z, -y
		}
	case ay >= az:
		ma = ay
		if y > 0 {
			face, sc, tc = FacePositiveY, x, z
		} else {
			face, sc, tc = FaceNegativeY, x, -z
		}
	default:
		ma = az
		if z > 0 {
			face, sc, tc = FacePositiveZ, x, -y
		} else {
			face, sc, tc = FaceNegativeZ, -x, -y
		}
	}
	if ma == 0 {
		return 0, 0, 0, false
	}
	s = (sc/ma + 1) / 2
	t = (tc/ma + 1) / 2
	return face, s, t, true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
