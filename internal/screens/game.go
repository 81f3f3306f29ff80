package screens

import (
	"echoes/internal/assets"
	"echoes/internal/gfx"
	"echoes/internal/screen"

	"github.com/hajimehoshi/ebiten/v2"
)

const placeholderPath = "libgdx.png"

// Placeholder position, bottom-left corner in layout space.
const (
	placeholderX = 140
	placeholderY = 210
)

// Game is the gameplay screen. For now it only shows a placeholder image;
// Escape returns to the menu.
type Game struct {
	batch    *gfx.Batch
	image    *assets.Texture
	disposed bool
}

func NewGame() *Game {
	return &Game{}
}

func (g *Game) String() string { return "game" }

func (g *Game) Show(ctx *screen.Context) error {
	g.batch = gfx.NewBatch()
	tex, err := ctx.Assets.Load(placeholderPath)
	if err != nil {
		g.Dispose()
		return err
	}
	g.image = tex
	return nil
}

func (g *Game) Update(ctx *screen.Context, delta float64) error {
	if g.disposed {
		return nil
	}
	if ctx.Input.KeyDown(ebiten.KeyEscape) {
		if err := ctx.Host.SetScreen(NewMenu()); err != nil {
			return err
		}
		g.Dispose()
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.render(dst)
}

func (g *Game) render(dst gfx.Target) {
	dst.Fill(clearColor)
	if g.disposed || g.batch == nil {
		return
	}

	g.batch.Begin(dst)
	g.batch.Draw(g.image, placeholderX, placeholderY)
	g.batch.End()
}

func (g *Game) Resize(width, height int) {}
func (g *Game) Pause()                   {}
func (g *Game) Resume()                  {}
func (g *Game) Hide()                    {}

func (g *Game) Dispose() {
	g.disposed = true
	if g.batch != nil {
		g.batch.Dispose()
	}
	if g.image != nil {
		g.image.Dispose()
	}
}
