package hal

import "sync"

type hostKeyboard struct {
	mu   sync.Mutex
	held [keyCount]bool
	ch   chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) Pressed(code KeyCode) bool {
	if code >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[code]
}

// set records a key state and emits an event on transitions. Events are
// dropped when the buffer is full.
func (k *hostKeyboard) set(code KeyCode, down bool) {
	if code == KeyUnknown || code >= keyCount {
		return
	}
	k.mu.Lock()
	changed := k.held[code] != down
	k.held[code] = down
	k.mu.Unlock()
	if !changed {
		return
	}
	select {
	case k.ch <- KeyEvent{Code: code, Press: down}:
	default:
	}
}

type hostPointer struct {
	ch      chan PointerEvent
	lastX   float32
	lastY   float32
	havePos bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 256)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// move emits a cursor event when the position changed since the last one.
func (p *hostPointer) move(x, y float32) {
	if p.havePos && x == p.lastX && y == p.lastY {
		return
	}
	p.lastX, p.lastY, p.havePos = x, y, true
	p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
}

func (p *hostPointer) scroll(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	p.emit(PointerEvent{Kind: PointerScroll, DX: dx, DY: dy})
}

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}
