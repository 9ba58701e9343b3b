package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// ebitenWindow drives the single ebiten window. Closing only raises a flag,
// the game loop ends on its next Update.
type ebitenWindow struct {
	closed bool
}

func (w *ebitenWindow) ScreenSize() (int, int) {
	return ebiten.Monitor().Size()
}

func (w *ebitenWindow) Resize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (w *ebitenWindow) Move(x, y int) {
	log.WithFields(log.Fields{"x": x, "y": y}).Debug("window moved")
	ebiten.SetWindowPosition(x, y)
}

func (w *ebitenWindow) Close() {
	w.closed = true
}
