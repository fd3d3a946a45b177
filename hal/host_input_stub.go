//go:build !cgo

package hal

func (h *hostHAL) pollInput() {
	// No input without the window backend.
}
