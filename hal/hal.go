// Package hal is the host abstraction: window or headless runner, input,
// monotonic clock, framebuffer and logger.
package hal

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrQuit is returned from App.Step to end the run loop without error.
var ErrQuit = errors.New("hal: quit requested")

// ErrHalt is wrapped by App.Step errors after which the app cannot step
// again but its last presented frame is still worth showing. The window
// runner keeps that frame up until the window closes or Escape is pressed,
// then returns the error; the headless runner returns it at once.
var ErrHalt = errors.New("hal: app halted")

// Framebuffer is a tightly packed RGBA8888 pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyControlLeft
	KeyEscape
	KeyF1
	keyCount
)

func (k KeyCode) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyControlLeft:
		return "LeftCtrl"
	case KeyEscape:
		return "Escape"
	case KeyF1:
		return "F1"
	}
	return "Unknown"
}

// KeyEvent is a key transition.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard reports held keys and buffers transitions.
type Keyboard interface {
	Pressed(k KeyCode) bool
	Events() <-chan KeyEvent
}

// PointerKind tells cursor moves from scroll steps.
type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerScroll
)

// PointerEvent is a cursor position (X, Y in window pixels) or a scroll
// delta (DX, DY).
type PointerEvent struct {
	Kind   PointerKind
	X, Y   float32
	DX, DY float32
}

// Pointer buffers cursor and scroll events in arrival order.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Clock is the monotonic time source, in seconds since the HAL started.
type Clock interface {
	Now() float64
}

// HAL provides the only contact point between the program and the host.
type HAL interface {
	Logger() *zerolog.Logger
	Display() Display
	Input() Input
	Clock() Clock
}

// App is driven one frame at a time by a runner. Close is always called once
// the loop ends.
type App interface {
	Step() error
	Close() error
}

// NewApp builds an App against a HAL. A non-nil App returned with an error is
// closed by the runner.
type NewApp func(HAL) (App, error)
