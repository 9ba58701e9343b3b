package model

import (
	"strconv"
	"strings"
)

// ClueProvider supplies the numbers shown in the clue row and clue column.
// Indexes are grid indexes, so the first real line is 1.
type ClueProvider interface {
	Column(col int) []int
	Row(row int) []int
}

// PlaceholderClues shows the same literal tuple on every line.
type PlaceholderClues struct{}

func (PlaceholderClues) Column(int) []int { return []int{0, 1, 2} }
func (PlaceholderClues) Row(int) []int    { return []int{0, 1, 2} }

// ColumnText stacks the numbers one per line, column clue cells are too
// narrow for more than one.
func ColumnText(clues []int) string {
	return join(clues, "\n")
}

func RowText(clues []int) string {
	return join(clues, " ")
}

func join(clues []int, sep string) string {
	parts := make([]string, len(clues))
	for i, c := range clues {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, sep)
}
