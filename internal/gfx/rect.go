package gfx

// Rect is an axis-aligned rectangle in layout space: origin at the
// bottom-left corner of the window, Y grows upward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside r. Edges count as inside.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && r.X+r.Width >= x && r.Y <= y && r.Y+r.Height >= y
}

// FlipY converts a Y coordinate between window space (Y down) and layout
// space (Y up) for a window of the given height. It is its own inverse.
func FlipY(y, height float64) float64 {
	return height - y
}
