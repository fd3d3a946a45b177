package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"
)

// Headless is the result of a headless run.
type Headless struct {
	Ticks uint64
	Frame *image.RGBA // last presented frame
}

// RunHeadless runs the app without opening a window. The clock advances
// exactly 1/Hz seconds per tick.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, log zerolog.Logger, newApp NewApp) (res Headless, err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return res, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	clock := &stepClock{step: 1 / float64(cfg.Hz)}
	h := newHost(log, cfg.Width, cfg.Height, clock)
	app, err := newApp(h)
	if app != nil {
		defer func() {
			if cerr := app.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	if err != nil {
		return res, err
	}
	defer func() { res.Frame = h.fb.snapshot(nil) }()

	var tc <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(d)
		defer t.Stop()
		tc = t.C
	}

	for {
		if tc != nil {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-tc:
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}

		clock.tick()
		if err := app.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return res, nil
			}
			return res, err
		}
		res.Ticks++
		if cfg.Ticks > 0 && res.Ticks >= cfg.Ticks {
			return res, nil
		}
	}
}
