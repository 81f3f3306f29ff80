package screens

import "echoes/internal/gfx"

// Menu layout constants
const (
	logoYOffset   = 20  // distance from top
	logoScale     = 1.0 // native size
	buttonScale   = 0.2
	buttonSpacing = 30 // horizontal gap between buttons
	buttonYOffset = 40 // distance from bottom
)

type menuLayout struct {
	Logo  gfx.Rect
	Start gfx.Rect
	Exit  gfx.Rect
}

// layoutMenu places the logo at the top center and the start/exit pair
// centered near the bottom. Button size comes from the start texture.
func layoutMenu(screenW, screenH, buttonW, buttonH, logoW, logoH int) menuLayout {
	sw, sh := float64(screenW), float64(screenH)

	bw := float64(buttonW) * buttonScale
	bh := float64(buttonH) * buttonScale
	total := bw*2 + buttonSpacing
	startX := (sw - total) / 2

	lw := float64(logoW) * logoScale
	lh := float64(logoH) * logoScale

	return menuLayout{
		Logo: gfx.Rect{
			X:      (sw - lw) / 2,
			Y:      sh - lh - logoYOffset,
			Width:  lw,
			Height: lh,
		},
		Start: gfx.Rect{X: startX, Y: buttonYOffset, Width: bw, Height: bh},
		Exit:  gfx.Rect{X: startX + bw + buttonSpacing, Y: buttonYOffset, Width: bw, Height: bh},
	}
}
