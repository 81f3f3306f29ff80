// Package screen defines the lifecycle contract between the application
// host and its full-window screens.
package screen

import (
	"log/slog"

	"echoes/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one full-window mode. The host owns exactly one active Screen
// and drives it through these hooks.
type Screen interface {
	// Show is called when the screen becomes current. Resources are loaded here.
	Show(ctx *Context) error
	// Update polls input once per tick. delta is the tick length in seconds.
	Update(ctx *Context, delta float64) error
	Draw(dst *ebiten.Image)
	Resize(width, height int)
	Pause()
	Resume()
	// Hide is called when the screen stops being current. It does not
	// release resources.
	Hide()
	// Dispose releases everything the screen owns. Safe to call more than
	// once and before Show.
	Dispose()
}

// Host switches screens and ends the application.
type Host interface {
	// SetScreen shows next and hides the current screen. The caller still
	// owns the outgoing screen and must dispose it.
	SetScreen(next Screen) error
	// Exit asks the host to stop after the current tick.
	Exit()
}

type Input interface {
	// JustPressed returns the window-space position of a pointer press that
	// began during this tick.
	JustPressed() (x, y int, ok bool)
	KeyDown(key ebiten.Key) bool
}

type TextureLoader interface {
	Load(name string) (*assets.Texture, error)
}

// Context carries the platform services a screen may use.
type Context struct {
	Host   Host
	Input  Input
	Assets TextureLoader
	Logger *slog.Logger
	Width  int
	Height int
}
