package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKinds(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		t.Run(d.Name(), func(t *testing.T) {
			level, ok := d.Level()
			require.True(t, ok)

			g := NewGridView(SharedFlag, nil).Build(level.Rows, level.Cols)
			require.Equal(t, level.Rows*level.Cols, g.Len())
			require.Len(t, g.Cells, level.Rows)

			for i, line := range g.Cells {
				require.Len(t, line, level.Cols)
				for j, c := range line {
					assert.Equal(t, i, c.Row)
					assert.Equal(t, j, c.Col)
					if i == 0 || j == 0 {
						assert.False(t, c.Interactive(), "(%d,%d)", i, j)
						continue
					}
					assert.Equal(t, Toggle, c.Kind)
					assert.Equal(t, Unchecked, c.Icon)
				}
			}
			assert.Equal(t, Placeholder, g.Cells[0][0].Kind)
			assert.Equal(t, ColumnClue, g.Cells[0][1].Kind)
			assert.Equal(t, RowClue, g.Cells[1][0].Kind)
		})
	}
}

func TestBuildClues(t *testing.T) {
	g := NewGridView(PerCell, nil).Build(3, 3)
	assert.Nil(t, g.Cells[0][0].Clues)
	assert.Equal(t, []int{0, 1, 2}, g.Cells[0][2].Clues)
	assert.Equal(t, []int{0, 1, 2}, g.Cells[2][0].Clues)
	assert.Equal(t, "0\n1\n2", ColumnText(g.Cells[0][1].Clues))
	assert.Equal(t, "0 1 2", RowText(g.Cells[1][0].Clues))
}

type hider struct{ hidden int }

func (h *hider) Hide() { h.hidden++ }

func TestBuildHidesMenu(t *testing.T) {
	h := &hider{}
	v := NewGridView(PerCell, nil)
	v.Menu = h
	v.Build(6, 6)
	v.Build(11, 11)
	assert.Equal(t, 2, h.hidden)
}

func TestBuildDegenerate(t *testing.T) {
	v := NewGridView(SharedFlag, nil)
	for _, size := range [][2]int{{0, 0}, {-1, 5}, {5, 0}} {
		g := v.Build(size[0], size[1])
		assert.Equal(t, 0, g.Len(), "%v", size)
		assert.Empty(t, g.Cells)
	}
	_, err := v.Toggle(0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSharedFlagToggle(t *testing.T) {
	v := NewGridView(SharedFlag, nil)
	g := v.Build(6, 6)
	require.Equal(t, Unchecked, v.Flag())

	icon, err := v.Toggle(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Checked, icon)
	assert.Equal(t, Checked, g.Cells[1][1].Icon)
	assert.Equal(t, Checked, v.Flag())

	// another, still unchecked, cell follows the flag
	icon, err = v.Toggle(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Unchecked, icon)
	assert.Equal(t, Unchecked, g.Cells[2][3].Icon)
	assert.Equal(t, Checked, g.Cells[1][1].Icon)
	assert.Equal(t, Unchecked, v.Flag())

	icon, err = v.Toggle(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Checked, icon)
	assert.Equal(t, Checked, v.Flag())
}

func TestPerCellToggle(t *testing.T) {
	v := NewGridView(PerCell, nil)
	g := v.Build(6, 6)

	for _, pos := range [][2]int{{1, 1}, {2, 3}, {5, 5}} {
		icon, err := v.Toggle(pos[0], pos[1])
		require.NoError(t, err)
		assert.Equal(t, Checked, icon)
	}
	assert.Equal(t, Checked, g.Cells[2][3].Icon)

	icon, err := v.Toggle(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Unchecked, icon)
	assert.Equal(t, Checked, g.Cells[1][1].Icon)
	assert.Equal(t, Checked, g.Cells[5][5].Icon)
	assert.Equal(t, Unchecked, v.Flag())
}

func TestToggleErrors(t *testing.T) {
	v := NewGridView(PerCell, nil)
	_, err := v.Toggle(1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange, "no grid yet")

	v.Build(6, 6)
	for _, pos := range [][2]int{{0, 0}, {0, 3}, {4, 0}} {
		_, err := v.Toggle(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrNotToggle, "%v", pos)
	}
	for _, pos := range [][2]int{{6, 1}, {1, 6}, {-1, 2}} {
		_, err := v.Toggle(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "%v", pos)
	}
	assert.Equal(t, Unchecked, v.Flag())
}

func TestRebuildDiscardsCells(t *testing.T) {
	v := NewGridView(SharedFlag, nil)
	old := v.Build(6, 6)
	_, err := v.Toggle(3, 3)
	require.NoError(t, err)
	require.Equal(t, Checked, v.Flag())

	fresh := v.Build(11, 11)
	assert.NotSame(t, old, fresh)
	assert.Same(t, fresh, v.Grid())
	assert.Equal(t, Unchecked, fresh.Cells[3][3].Icon)
	assert.Equal(t, Unchecked, v.Flag())
	assert.Equal(t, Checked, old.Cells[3][3].Icon, "old grid is left as it was")
}

func TestRebuildWithoutTogglesKeepsFlag(t *testing.T) {
	v := NewGridView(SharedFlag, nil)
	v.Build(2, 2)
	_, err := v.Toggle(1, 1)
	require.NoError(t, err)

	g := v.Build(1, 4)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, Checked, v.Flag())
}

func TestDifficultyParse(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.Name())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	for _, label := range []string{"Nightmare", "easy", "", " Easy"} {
		_, err := ParseDifficulty(label)
		assert.ErrorIs(t, err, ErrUnknownDifficulty, "%q", label)
	}
	assert.Equal(t, []string{"Easy", "Medium", "Hard", "Expert", "Exit"}, DifficultyNames())
	_, ok := Exit.Level()
	assert.False(t, ok)
}
