package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zucenko/nonogram/model"
)

// Nine draws a nine-slice image stretched over a rect: corners keep their
// size, edges stretch along one axis, the center along both.
type Nine struct {
	image     *ebiten.Image
	alpha     float32
	R, G, B   float32
	positions [4]int
}

// NewFrame builds a nine-slice of a solid one pixel border, the look of a Tk
// frame with relief "solid".
func NewFrame(border, fill color.Color) *Nine {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				src.Set(x, y, fill)
			} else {
				src.Set(x, y, border)
			}
		}
	}
	return &Nine{
		image:     ebiten.NewImageFromImage(src),
		alpha:     1,
		R:         1, G: 1, B: 1,
		positions: [4]int{0, 1, 2, 3},
	}
}

func (n *Nine) Draw(screen *ebiten.Image, r model.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	p := n.positions
	// target edges along each axis, corner slices keep source size
	xs := [4]float64{float64(r.X), float64(r.X + p[1] - p[0]), float64(r.X + r.W - (p[3] - p[2])), float64(r.X + r.W)}
	ys := [4]float64{float64(r.Y), float64(r.Y + p[1] - p[0]), float64(r.Y + r.H - (p[3] - p[2])), float64(r.Y + r.H)}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			srcW := float64(p[col+1] - p[col])
			srcH := float64(p[row+1] - p[row])
			dstW := xs[col+1] - xs[col]
			dstH := ys[row+1] - ys[row]
			if srcW == 0 || srcH == 0 || dstW <= 0 || dstH <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dstW/srcW, dstH/srcH)
			op.GeoM.Translate(xs[col], ys[row])
			op.ColorScale.Scale(n.R, n.G, n.B, 1)
			op.ColorScale.ScaleAlpha(n.alpha)
			slice := n.image.SubImage(image.Rect(p[col], p[row], p[col+1], p[row+1])).(*ebiten.Image)
			screen.DrawImage(slice, op)
		}
	}
}
