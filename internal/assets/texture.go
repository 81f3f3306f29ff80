package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a decoded image owned by exactly one screen. The GPU copy is
// created on the first call to Image.
type Texture struct {
	name     string
	src      image.Image
	img      *ebiten.Image
	owner    *Loader
	released bool
}

func (t *Texture) Name() string { return t.name }

// Size returns the source image size in pixels. It stays valid after Dispose.
func (t *Texture) Size() (int, int) {
	if t.src != nil {
		b := t.src.Bounds()
		return b.Dx(), b.Dy()
	}
	if t.img != nil {
		b := t.img.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}

// Image uploads the texture on first use. It returns nil once disposed.
func (t *Texture) Image() *ebiten.Image {
	if t.released {
		return nil
	}
	if t.img == nil {
		t.img = ebiten.NewImageFromImage(t.src)
	}
	return t.img
}

func (t *Texture) Released() bool { return t.released }

// Dispose frees the texture. Calling it again is a no-op.
func (t *Texture) Dispose() {
	if t.released {
		return
	}
	t.released = true
	if t.img != nil {
		t.img.Deallocate()
	}
	if t.owner != nil {
		t.owner.release(t)
	}
}
