//go:build cgo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// RunWindow opens a desktop window that displays the framebuffer and forwards
// keyboard and pointer input. It blocks until the window closes or the app
// returns ErrQuit. After an ErrHalt the last frame stays up until the window
// closes or Escape is pressed, and the halt error is returned.
func RunWindow(cfg WindowConfig, log zerolog.Logger, newApp NewApp) (err error) {
	cfg = cfg.withDefaults()
	h := newHost(log, cfg.Width, cfg.Height, newWallClock())
	app, err := newApp(h)
	if app != nil {
		defer func() {
			if cerr := app.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	if err != nil {
		return err
	}

	g := &hostGame{h: h, st: stepper{app: app, log: h.logger}}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if cfg.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	log.Info().Int("width", cfg.Width).Int("height", cfg.Height).Int("tps", cfg.TPS).Msg("window open")
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.st.halted
}

type hostGame struct {
	h     *hostHAL
	st    stepper
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.pollInput()
	if g.st.halted != nil && g.h.kbd.Pressed(KeyEscape) {
		return ebiten.Termination
	}
	done, err := g.st.step()
	if err != nil {
		return err
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	g.img = fb.snapshot(g.img)
	w, h := g.img.Rect.Dx(), g.img.Rect.Dy()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout makes the framebuffer follow the window size. A halted app keeps
// its last frame at the old size.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.st.halted == nil && g.h.fb.resize(outsideWidth, outsideHeight) {
		g.h.logger.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("framebuffer resized")
	}
	return g.h.fb.Width(), g.h.fb.Height()
}
