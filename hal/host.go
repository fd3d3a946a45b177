package hal

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

type hostHAL struct {
	logger *zerolog.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	clock  Clock
}

func newHost(log zerolog.Logger, w, h int, clock Clock) *hostHAL {
	return &hostHAL{
		logger: &log,
		fb:     newHostFramebuffer(w, h),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		clock:  clock,
	}
}

func (h *hostHAL) Logger() *zerolog.Logger { return h.logger }
func (h *hostHAL) Display() Display        { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input            { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Clock() Clock            { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock { return &wallClock{start: time.Now()} }

func (c *wallClock) Now() float64 { return time.Since(c.start).Seconds() }

// stepClock advances a fixed step per tick so headless runs are reproducible.
type stepClock struct {
	ticks uint64
	step  float64
}

func (c *stepClock) Now() float64 { return float64(c.ticks) * c.step }
func (c *stepClock) tick()        { c.ticks++ }

// stepper drives App.Step for the window runner and latches a halt.
type stepper struct {
	app    App
	log    *zerolog.Logger
	halted error
}

// step runs one App.Step unless halted. done ends the loop; err is non-nil
// for failures other than ErrQuit and ErrHalt.
func (s *stepper) step() (done bool, err error) {
	if s.halted != nil {
		return false, nil
	}
	err = s.app.Step()
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrQuit):
		return true, nil
	case errors.Is(err, ErrHalt):
		s.halted = err
		s.log.Error().Err(err).Msg("app halted, showing last frame")
		return false, nil
	}
	return true, err
}
