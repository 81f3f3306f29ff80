package app

import (
	"fmt"
	"log/slog"

	"echoes/internal/debug"
	"echoes/internal/screen"

	"github.com/hajimehoshi/ebiten/v2"
)

// Platform is the input and window state the host polls each tick.
type Platform interface {
	screen.Input
	Minimized() bool
}

// Loader loads screen textures and counts the ones still alive.
type Loader interface {
	screen.TextureLoader
	Live() int
}

// Options sizes the initial window and sets the tick rate.
type Options struct {
	Width  int
	Height int
	TPS    int
	Debug  bool
}

// Host implements ebiten.Game and owns the single active screen.
type Host struct {
	current screen.Screen
	initial func() screen.Screen
	ctx     screen.Context

	platform Platform
	loader   Loader
	logger   *slog.Logger
	overlay  *debug.Overlay

	delta   float64
	started bool
	paused  bool
	exiting bool
}

// New creates the host. initial builds the first screen, shown on the first
// tick.
func New(opts Options, p Platform, loader Loader, logger *slog.Logger, initial func() screen.Screen) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	h := &Host{
		initial:  initial,
		platform: p,
		loader:   loader,
		logger:   logger,
		delta:    1 / float64(tps),
	}
	h.ctx = screen.Context{
		Host:   h,
		Input:  p,
		Assets: loader,
		Logger: logger,
		Width:  opts.Width,
		Height: opts.Height,
	}
	if opts.Debug {
		h.overlay = debug.NewOverlay()
	}
	return h
}

// SetScreen shows next, then hides the outgoing screen. If next fails to
// show, it is disposed and the current screen stays active.
func (h *Host) SetScreen(next screen.Screen) error {
	if err := next.Show(&h.ctx); err != nil {
		next.Dispose()
		return fmt.Errorf("show %s: %w", screenName(next), err)
	}

	prev := h.current
	if prev != nil {
		prev.Hide()
	}
	h.current = next
	next.Resize(h.ctx.Width, h.ctx.Height)

	h.logger.Debug("screen changed", "from", screenName(prev), "to", screenName(next), "textures", h.loader.Live())
	return nil
}

// Current returns the active screen, or nil before the first tick and after
// Dispose.
func (h *Host) Current() screen.Screen {
	return h.current
}

// Exit stops the game loop after the current tick.
func (h *Host) Exit() {
	if !h.exiting {
		h.logger.Info("exit requested")
	}
	h.exiting = true
}

// Update: input and transitions (TPS)
func (h *Host) Update() error {
	if h.exiting {
		return ebiten.Termination
	}

	if !h.started {
		h.started = true
		if err := h.SetScreen(h.initial()); err != nil {
			return err
		}
	}

	// Minimizing the window pauses the screen; losing focus alone does not.
	switch minimized := h.platform.Minimized(); {
	case minimized && !h.paused:
		h.paused = true
		h.current.Pause()
		h.logger.Debug("paused", "screen", screenName(h.current))
	case !minimized && h.paused:
		h.paused = false
		h.current.Resume()
		h.logger.Debug("resumed", "screen", screenName(h.current))
	}
	if h.paused {
		return nil
	}

	if h.current != nil {
		if err := h.current.Update(&h.ctx, h.delta); err != nil {
			return err
		}
	}

	if h.exiting {
		return ebiten.Termination
	}
	return nil
}

// Draw: rendering (VSync)
func (h *Host) Draw(dst *ebiten.Image) {
	if h.current != nil {
		h.current.Draw(dst)
	}
	if h.overlay != nil {
		h.overlay.Draw(dst, debug.Stats{
			FPS:      ebiten.ActualFPS(),
			TPS:      ebiten.ActualTPS(),
			Screen:   screenName(h.current),
			Textures: h.loader.Live(),
		})
	}
}

// Layout keeps the logical screen equal to the window and forwards size
// changes to the current screen.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return h.ctx.Width, h.ctx.Height
	}
	if outsideWidth != h.ctx.Width || outsideHeight != h.ctx.Height {
		h.ctx.Width, h.ctx.Height = outsideWidth, outsideHeight
		if h.current != nil {
			h.current.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// Dispose hides and releases the current screen.
func (h *Host) Dispose() {
	if h.current == nil {
		return
	}
	h.current.Hide()
	h.current.Dispose()
	h.logger.Debug("disposed", "screen", screenName(h.current), "textures", h.loader.Live())
	h.current = nil
}

func screenName(s screen.Screen) string {
	switch v := s.(type) {
	case nil:
		return "none"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", s)
	}
}
