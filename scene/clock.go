package scene

// Clock is the simulation clock: elapsed seconds since start, sampled once
// per frame. It never runs backwards.
type Clock struct {
	now    float64
	frames uint64
}

// Advance samples the host clock and returns the time since the previous
// sample. The first sample is measured from zero.
func (c *Clock) Advance(now float64) (dt float64) {
	if now < c.now {
		now = c.now
	}
	dt = now - c.now
	c.now = now
	c.frames++
	return dt
}

// Now returns the last sampled time.
func (c *Clock) Now() float64 { return c.now }

// Frames returns how many times Advance has run.
func (c *Clock) Frames() uint64 { return c.frames }
