package ui

import "github.com/charmbracelet/bubbles/viewport"

// ensureViewportSize resizes a pane viewport in place so its content and
// scroll position survive a window resize.
func ensureViewportSize(vp *viewport.Model, width, height int) {
	width, height = max(width, 0), max(height, 0)
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width, vp.Height = width, height
	vp.SetYOffset(vp.YOffset)
}
