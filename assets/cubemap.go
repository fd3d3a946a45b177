package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"space/gfx"
)

// SkyboxFaces are the cubemap face files in +X, −X, +Y, −Y, +Z, −Z order.
var SkyboxFaces = [6]string{
	"right.jpg",
	"left.jpg",
	"top.jpg",
	"bottom.jpg",
	"front.jpg",
	"back.jpg",
}

// PlaceholderFace is the flat color used for cubemap faces that fail to load.
var PlaceholderFace = color.RGBA{R: 8, G: 8, B: 20, A: 255}

// LoadCubemap loads six faces from dir. Faces that fail to load become flat
// placeholders; the returned error joins every failure. Faces are resampled
// to the size of the first face that loaded.
func LoadCubemap(dir string, faces [6]string) (*gfx.Cubemap, error) {
	var (
		imgs [6]*image.RGBA
		errs []error
		size int
	)
	for i, name := range faces {
		img, err := LoadImage(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("cubemap face %d: %w", i, err))
			continue
		}
		if size == 0 {
			b := img.Bounds()
			size = max(b.Dx(), b.Dy())
		}
		imgs[i] = img
	}
	if size == 0 {
		size = 1
	}

	cube := &gfx.Cubemap{Fallback: PlaceholderFace}
	for i, img := range imgs {
		if img == nil {
			img = solid(size, PlaceholderFace)
		}
		cube.Faces[i] = gfx.NewTexture2D(resize(img, size))
	}
	return cube, errors.Join(errs...)
}
