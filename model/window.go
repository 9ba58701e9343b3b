package model

const (
	StartupWidth  = 200
	StartupHeight = 200

	// TitleBarHeight is subtracted from the centered y so the decorated
	// window, not just its client area, looks centered.
	TitleBarHeight = 14
)

// Window is the native window the selector resizes, moves and closes.
type Window interface {
	ScreenSize() (int, int)
	Resize(width, height int)
	Move(x, y int)
	Close()
}

// Center returns the top-left position that centers a width x height window
// on a screenW x screenH display.
func Center(screenW, screenH, width, height int) (int, int) {
	x := screenW/2 - width/2
	y := screenH/2 - height/2
	return x, y - TitleBarHeight
}

// Configure resizes w and centers it on its display.
func Configure(w Window, width, height int) {
	sw, sh := w.ScreenSize()
	w.Resize(width, height)
	w.Move(Center(sw, sh, width, height))
}
