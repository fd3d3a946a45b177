//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var ebitenKeys = [keyCount]ebiten.Key{
	KeyW:           ebiten.KeyW,
	KeyA:           ebiten.KeyA,
	KeyS:           ebiten.KeyS,
	KeyD:           ebiten.KeyD,
	KeyControlLeft: ebiten.KeyControlLeft,
	KeyEscape:      ebiten.KeyEscape,
	KeyF1:          ebiten.KeyF1,
}

func (h *hostHAL) pollInput() {
	for code := KeyW; code < keyCount; code++ {
		h.kbd.set(code, ebiten.IsKeyPressed(ebitenKeys[code]))
	}

	x, y := ebiten.CursorPosition()
	h.ptr.move(float32(x), float32(y))
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		h.ptr.scroll(float32(dx), float32(dy))
	}
}
