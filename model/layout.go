package model

const (
	ClueLength = 80
	FrameSize  = 30
	ButtonSize = 22
	IconSize   = 18
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset returns a w x h rect centered in r.
func (r Rect) Inset(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Layout places grid cells in window pixels. Columns and rows take the size
// of their largest cell and the whole grid is centered in the window.
type Layout struct {
	Rows, Cols int
	xs, ys     []int
	ws, hs     []int
}

func NewLayout(rows, cols, winW, winH int) Layout {
	l := Layout{Rows: rows, Cols: cols, ws: make([]int, cols), hs: make([]int, rows)}
	for j := range l.ws {
		l.ws[j] = FrameSize
	}
	for i := range l.hs {
		l.hs[i] = FrameSize
	}
	if cols > 0 {
		l.ws[0] = 0
		if rows > 1 {
			l.ws[0] = ClueLength
		}
	}
	if rows > 0 {
		l.hs[0] = 0
		if cols > 1 {
			l.hs[0] = ClueLength
		}
	}

	w, h := l.Size()
	l.xs = offsets(l.ws, (winW-w)/2)
	l.ys = offsets(l.hs, (winH-h)/2)
	return l
}

func offsets(sizes []int, start int) []int {
	out := make([]int, len(sizes))
	at := start
	for k, s := range sizes {
		out[k] = at
		at += s
	}
	return out
}

// Size is the pixel footprint of the grid alone.
func (l Layout) Size() (int, int) {
	return sum(l.ws), sum(l.hs)
}

func sum(v []int) int {
	t := 0
	for _, x := range v {
		t += x
	}
	return t
}

func (l Layout) Cell(row, col int) Rect {
	return Rect{X: l.xs[col], Y: l.ys[row], W: l.ws[col], H: l.hs[row]}
}

func (l Layout) Button(row, col int) Rect {
	return l.Cell(row, col).Inset(ButtonSize, ButtonSize)
}

func (l Layout) Icon(row, col int) Rect {
	return l.Cell(row, col).Inset(IconSize, IconSize)
}

// ButtonAt finds the toggle button under (x, y). Clue cells and the frame
// around a button do not count.
func (l Layout) ButtonAt(x, y int) (int, int, bool) {
	col := find(l.xs, l.ws, x)
	row := find(l.ys, l.hs, y)
	if row < 1 || col < 1 {
		return 0, 0, false
	}
	if !l.Button(row, col).Contains(x, y) {
		return 0, 0, false
	}
	return row, col, true
}

func find(starts, sizes []int, p int) int {
	for k := range starts {
		if p >= starts[k] && p < starts[k]+sizes[k] {
			return k
		}
	}
	return -1
}
