package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width         int
	Height        int
	Title         string
	TPS           int
	CaptureCursor bool
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Title == "" {
		c.Title = "Space"
	}
	return c
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64 // 0 runs until the context ends or the app quits

	// Realtime paces ticks with a wall-clock ticker; otherwise ticks run
	// back to back.
	Realtime bool
}
