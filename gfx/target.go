package gfx

import "image/color"

// Target is a pixel sink for rasterization.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}

// DepthFunc selects the depth comparison.
type DepthFunc uint8

const (
	// DepthLess passes fragments strictly nearer than the stored depth.
	DepthLess DepthFunc = iota
	// DepthLEqual also passes fragments equal to the stored depth. The skybox
	// uses it to fill pixels still at the cleared far value.
	DepthLEqual
	// DepthAlways disables the comparison.
	DepthAlways
)

func (f DepthFunc) String() string {
	switch f {
	case DepthLess:
		return "less"
	case DepthLEqual:
		return "lequal"
	case DepthAlways:
		return "always"
	}
	return "unknown"
}

func (f DepthFunc) pass(z, stored float32) bool {
	switch f {
	case DepthLEqual:
		return z <= stored
	case DepthAlways:
		return true
	default:
		return z < stored
	}
}
