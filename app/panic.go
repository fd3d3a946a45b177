package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"space/hal"
	"space/hud"
)

// ErrPanicked is returned by every Step after a frame panicked. It wraps
// hal.ErrHalt so the window keeps the panic page on screen.
var ErrPanicked = fmt.Errorf("app: frame panicked: %w", hal.ErrHalt)

// recoverFrame turns a panic in Step into a logged error and a panic page on
// the framebuffer. Later frames are not attempted.
func (a *App) recoverFrame(err *error) {
	v := recover()
	if v == nil {
		return
	}
	a.panicked = true
	stack := debug.Stack()
	a.log.Error().
		Interface("panic", v).
		Uint64("frame", a.clock.Frames()).
		Bytes("stack", stack).
		Msg("frame panicked")

	lines := []string{
		"SPACE PANIC",
		fmt.Sprintf("frame: %d", a.clock.Frames()),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if fb := a.h.Display().Framebuffer(); fb != nil {
		a.bind(fb)
		hud.DrawPanic(&a.target, lines)
		_ = fb.Present()
	}
	*err = fmt.Errorf("%w: %v", ErrPanicked, v)
}
