package model

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("cell out of range")
	ErrNotToggle  = errors.New("cell is not a toggle")
)

// ToggleMode selects how a click decides the next icon.
type ToggleMode int

const (
	// PerCell flips the clicked cell's own icon.
	PerCell ToggleMode = iota
	// SharedFlag reproduces the original script: one flag for the whole
	// grid decides the icon, whatever the clicked cell showed before.
	SharedFlag
)

func (m ToggleMode) Name() string {
	switch m {
	case PerCell:
		return "PER_CELL"
	case SharedFlag:
		return "SHARED_FLAG"
	default:
		return fmt.Sprintf("N/A(%d)", m)
	}
}

// Hider is anything the grid covers up once it is painted.
type Hider interface {
	Hide()
}

type GridView struct {
	Mode  ToggleMode
	Clues ClueProvider
	Menu  Hider

	flag Icon
	grid *Grid
}

func NewGridView(mode ToggleMode, clues ClueProvider) *GridView {
	if clues == nil {
		clues = PlaceholderClues{}
	}
	return &GridView{Mode: mode, Clues: clues}
}

// Build replaces the current grid with a fresh rows x cols one.
func (v *GridView) Build(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	cells := make([][]*Cell, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]*Cell, cols)
		for j := 0; j < cols; j++ {
			cell := &Cell{Row: i, Col: j}
			switch {
			case i == 0 && j == 0:
				cell.Kind = Placeholder
			case i == 0:
				cell.Kind = ColumnClue
				cell.Clues = v.Clues.Column(j)
			case j == 0:
				cell.Kind = RowClue
				cell.Clues = v.Clues.Row(i)
			default:
				cell.Kind = Toggle
				cell.Icon = Unchecked
				v.flag = Unchecked
			}
			cells[i][j] = cell
		}
	}
	v.grid = &Grid{Rows: rows, Cols: cols, Cells: cells}
	if v.Menu != nil {
		v.Menu.Hide()
	}
	return v.grid
}

func (v *GridView) Grid() *Grid {
	return v.grid
}

// Flag is the last icon assigned by a toggle, or by toggle construction.
func (v *GridView) Flag() Icon {
	return v.flag
}

// Toggle handles one click on the toggle at (row, col) and returns the icon
// it now shows.
func (v *GridView) Toggle(row, col int) (Icon, error) {
	cell, ok := v.grid.At(row, col)
	if !ok {
		return Unchecked, fmt.Errorf("toggle (%d,%d): %w", row, col, ErrOutOfRange)
	}
	if !cell.Interactive() {
		return cell.Icon, fmt.Errorf("toggle (%d,%d) %s: %w", row, col, cell.Kind.Name(), ErrNotToggle)
	}
	switch v.Mode {
	case SharedFlag:
		if v.flag == Checked {
			cell.Icon = Unchecked
		} else {
			cell.Icon = Checked
		}
	default:
		cell.Icon = cell.Icon.Flip()
	}
	v.flag = cell.Icon
	return cell.Icon, nil
}
