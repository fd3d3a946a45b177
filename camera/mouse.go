package camera

// MouseTracker turns absolute cursor positions into deltas.
//
// The first sample only records the position, so capturing the cursor at
// start never makes the view jump.
type MouseTracker struct {
	lastX, lastY float32
	seen         bool
}

// NewMouseTracker starts tracking from (x, y), normally the window centre.
func NewMouseTracker(x, y float32) *MouseTracker {
	return &MouseTracker{lastX: x, lastY: y}
}

// Move records a cursor sample and returns the delta since the previous one.
// dy is positive when the cursor moves up the screen.
func (m *MouseTracker) Move(x, y float32) (dx, dy float32) {
	if !m.seen {
		m.lastX, m.lastY = x, y
		m.seen = true
	}
	dx = x - m.lastX
	dy = m.lastY - y
	m.lastX, m.lastY = x, y
	return dx, dy
}
