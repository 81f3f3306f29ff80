package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ebiten reads input and window state from the running game loop.
type Ebiten struct {
	touches []ebiten.TouchID
}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// JustPressed reports a left click or a new touch that began this tick.
func (e *Ebiten) JustPressed() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	e.touches = inpututil.AppendJustPressedTouchIDs(e.touches[:0])
	if len(e.touches) > 0 {
		x, y := ebiten.TouchPosition(e.touches[0])
		return x, y, true
	}
	return 0, 0, false
}

// KeyDown is level-triggered: true on every tick the key is held.
func (e *Ebiten) KeyDown(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (e *Ebiten) Minimized() bool {
	return ebiten.IsWindowMinimized()
}
