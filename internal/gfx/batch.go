package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Target is where a batch draws; *ebiten.Image implements it.
type Target interface {
	Bounds() image.Rectangle
	Fill(c color.Color)
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Drawable is anything the batch can draw; assets.Texture implements it.
type Drawable interface {
	Image() *ebiten.Image
	Size() (int, int)
}

// Batch draws textured quads given in layout space onto a destination image
// between Begin and End. Ebitengine merges consecutive DrawImage calls itself,
// so the batch only tracks the target and converts coordinates.
type Batch struct {
	dst      Target
	height   float64
	drawing  bool
	disposed bool
	op       ebiten.DrawImageOptions
}

func NewBatch() *Batch {
	return &Batch{}
}

func (b *Batch) Begin(dst Target) {
	if b.disposed {
		panic("gfx: Begin on disposed batch")
	}
	if b.drawing {
		panic("gfx: Begin called twice without End")
	}
	b.dst = dst
	b.height = float64(dst.Bounds().Dy())
	b.drawing = true
}

// Draw draws d at native size with its bottom-left corner at (x, y).
func (b *Batch) Draw(d Drawable, x, y float64) {
	w, h := d.Size()
	b.DrawRect(d, Rect{X: x, Y: y, Width: float64(w), Height: float64(h)})
}

// DrawRect stretches d over r.
func (b *Batch) DrawRect(d Drawable, r Rect) {
	if !b.drawing {
		panic("gfx: Draw outside Begin/End")
	}
	img := d.Image()
	if img == nil {
		return
	}
	sw, sh := d.Size()
	if sw == 0 || sh == 0 {
		return
	}
	x, y := toScreen(r, b.height)
	b.op.GeoM.Reset()
	b.op.GeoM.Scale(r.Width/float64(sw), r.Height/float64(sh))
	b.op.GeoM.Translate(x, y)
	b.dst.DrawImage(img, &b.op)
}

func (b *Batch) End() {
	if !b.drawing {
		panic("gfx: End without Begin")
	}
	b.drawing = false
	b.dst = nil
}

func (b *Batch) Drawing() bool { return b.drawing }

func (b *Batch) Disposed() bool { return b.disposed }

func (b *Batch) Dispose() {
	b.disposed = true
	b.drawing = false
	b.dst = nil
}

// toScreen returns the top-left corner of r in window space.
func toScreen(r Rect, height float64) (float64, float64) {
	return r.X, FlipY(r.Y+r.Height, height)
}

// ColorF converts normalized RGBA components to a color.
func ColorF(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: unit(a)}
}

func unit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
