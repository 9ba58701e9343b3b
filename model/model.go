package model

import "fmt"

type Kind int

const (
	Placeholder Kind = iota
	ColumnClue
	RowClue
	Toggle
)

func (k Kind) Name() string {
	switch k {
	case Placeholder:
		return "PLACEHOLDER"
	case ColumnClue:
		return "COLUMN_CLUE"
	case RowClue:
		return "ROW_CLUE"
	case Toggle:
		return "TOGGLE"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Icon is what a toggle button currently shows.
type Icon int

const (
	Unchecked Icon = iota
	Checked
)

func (i Icon) Name() string {
	if i == Checked {
		return "checked"
	}
	return "unchecked"
}

func (i Icon) Flip() Icon {
	if i == Checked {
		return Unchecked
	}
	return Checked
}

type Cell struct {
	Row, Col int
	Kind     Kind
	Icon     Icon
	Clues    []int
}

func (c *Cell) Interactive() bool {
	return c.Kind == Toggle
}

// Grid is rebuilt from scratch on every difficulty change; nothing is reused.
type Grid struct {
	Rows, Cols int
	Cells      [][]*Cell
}

func (g *Grid) At(row, col int) (*Cell, bool) {
	if g == nil || row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil, false
	}
	return g.Cells[row][col], true
}

func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return g.Rows * g.Cols
}
