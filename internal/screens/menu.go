package screens

import (
	"echoes/internal/assets"
	"echoes/internal/gfx"
	"echoes/internal/screen"

	"github.com/hajimehoshi/ebiten/v2"
)

// Menu asset paths
const (
	menuBackgroundPath = "menu/echoes-menu-screen.png"
	menuLogoPath       = "menu/echoes-logo.png"
	menuStartPath      = "menu/start.png"
	menuExitPath       = "menu/exit.png"
)

var clearColor = gfx.ColorF(0.15, 0.15, 0.2, 1)

// Menu shows the logo with start and exit buttons.
type Menu struct {
	batch *gfx.Batch

	background *assets.Texture
	logo       *assets.Texture
	start      *assets.Texture
	exit       *assets.Texture

	layout        menuLayout
	width, height int
	disposed      bool
}

func NewMenu() *Menu {
	return &Menu{}
}

func (m *Menu) String() string { return "menu" }

func (m *Menu) Show(ctx *screen.Context) error {
	m.batch = gfx.NewBatch()

	for _, slot := range []struct {
		tex  **assets.Texture
		path string
	}{
		{&m.background, menuBackgroundPath},
		{&m.logo, menuLogoPath},
		{&m.start, menuStartPath},
		{&m.exit, menuExitPath},
	} {
		tex, err := ctx.Assets.Load(slot.path)
		if err != nil {
			m.Dispose()
			return err
		}
		*slot.tex = tex
	}

	m.Resize(ctx.Width, ctx.Height)
	return nil
}

func (m *Menu) Update(ctx *screen.Context, delta float64) error {
	if m.disposed {
		return nil
	}
	x, y, ok := ctx.Input.JustPressed()
	if !ok {
		return nil
	}
	px := float64(x)
	py := gfx.FlipY(float64(y), float64(ctx.Height))

	if m.layout.Start.Contains(px, py) {
		ctx.Logger.Debug("start pressed", "x", x, "y", y)
		if err := ctx.Host.SetScreen(NewGame()); err != nil {
			return err
		}
		m.Dispose()
		return nil
	}

	if m.layout.Exit.Contains(px, py) {
		ctx.Logger.Debug("exit pressed", "x", x, "y", y)
		ctx.Host.Exit()
	}
	return nil
}

func (m *Menu) Draw(dst *ebiten.Image) {
	m.render(dst)
}

// render draws background, logo, start and exit, back to front.
func (m *Menu) render(dst gfx.Target) {
	dst.Fill(clearColor)
	if m.disposed || m.batch == nil {
		return
	}

	m.batch.Begin(dst)
	m.batch.DrawRect(m.background, gfx.Rect{Width: float64(m.width), Height: float64(m.height)})
	m.batch.DrawRect(m.logo, m.layout.Logo)
	m.batch.DrawRect(m.start, m.layout.Start)
	m.batch.DrawRect(m.exit, m.layout.Exit)
	m.batch.End()
}

// Resize recomputes the button rectangles for the new window size.
func (m *Menu) Resize(width, height int) {
	m.width, m.height = width, height
	if m.start == nil || m.logo == nil {
		return
	}
	bw, bh := m.start.Size()
	lw, lh := m.logo.Size()
	m.layout = layoutMenu(width, height, bw, bh, lw, lh)
}

func (m *Menu) Pause()  {}
func (m *Menu) Resume() {}
func (m *Menu) Hide()   {}

func (m *Menu) Dispose() {
	m.disposed = true
	if m.batch != nil {
		m.batch.Dispose()
	}
	for _, tex := range []*assets.Texture{m.background, m.logo, m.start, m.exit} {
		if tex != nil {
			tex.Dispose()
		}
	}
}
