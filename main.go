package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"space/app"
	"space/hal"
	"space/internal/buildinfo"
	"space/internal/config"
	"space/scene"
)

func main() {
	var (
		headless  bool
		hz        int
		ticks     uint64
		configDir string
		snapshot  string
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 0, "Tick rate in headless mode (0 = from config).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = from config).")
	flag.StringVar(&configDir, "config", ".", "Directory holding space.yaml.")
	flag.StringVar(&snapshot, "snapshot", "", "Headless: write the last frame to this PNG file.")
	flag.Parse()

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if hz > 0 {
		cfg.Headless.Hz = hz
	}
	if ticks > 0 {
		cfg.Headless.Ticks = ticks
	}

	log := hal.NewLogger(os.Stdout, cfg.LogLevel, false)
	build := buildinfo.Short()
	log.Info().Str("build", build).Bool("headless", headless).Msg("starting")

	newApp := app.NewFactory(app.Config{
		Scene: scene.Options{
			Root:         cfg.Assets.Root,
			Placeholders: cfg.Assets.Placeholders,
			Lighting:     cfg.Render.Lighting,
		},
		HUD:   cfg.HUD.Enabled,
		Build: build,
	})

	if headless {
		err = runHeadless(cfg, log, newApp, snapshot)
	} else {
		err = hal.RunWindow(hal.WindowConfig{
			Width:         cfg.Window.Width,
			Height:        cfg.Window.Height,
			Title:         "Space (" + build + ")",
			TPS:           cfg.Window.TPS,
			CaptureCursor: cfg.Window.CaptureCursor,
		}, log, newApp)
	}
	if err != nil {
		log.Error().Err(err).Msg("exit")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(cfg config.Config, log zerolog.Logger, newApp hal.NewApp, snapshot string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := hal.RunHeadless(ctx, hal.HeadlessConfig{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Hz:       cfg.Headless.Hz,
		Ticks:    cfg.Headless.Ticks,
		Realtime: cfg.Headless.Realtime,
	}, log, newApp)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}
	log.Info().Uint64("ticks", res.Ticks).Msg("headless run done")

	if snapshot == "" || res.Frame == nil {
		return nil
	}
	f, err := os.Create(snapshot)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, res.Frame); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	log.Info().Str("path", snapshot).Msg("snapshot written")
	return nil
}
