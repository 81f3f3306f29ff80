package debug

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	colorText   = color.RGBA{220, 220, 220, 255}
	colorShadow = color.RGBA{0, 0, 0, 200}
)

// Stats is what the overlay shows for one frame.
type Stats struct {
	FPS      float64
	TPS      float64
	Screen   string
	Textures int
}

func (s Stats) String() string {
	return fmt.Sprintf("FPS: %0.1f\nTPS: %0.1f\nSCREEN: %s\nTEXTURES: %d", s.FPS, s.TPS, s.Screen, s.Textures)
}

// Overlay prints runtime stats in the top-left corner.
type Overlay struct {
	face *text.GoXFace
}

func NewOverlay() *Overlay {
	return &Overlay{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (o *Overlay) Draw(dst *ebiten.Image, s Stats) {
	msg := s.String()
	o.print(dst, msg, 5, 5, colorShadow)
	o.print(dst, msg, 4, 4, colorText)
}

func (o *Overlay) print(dst *ebiten.Image, msg string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = float64(basicfont.Face7x13.Height)
	text.Draw(dst, msg, o.face, op)
}
