package model

import (
	"errors"
	"fmt"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
	Expert
	Exit
)

// Difficulties in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert, Exit}

type Level struct {
	Rows, Cols    int
	Width, Height int
}

var levels = map[Difficulty]Level{
	Easy:   {Rows: 6, Cols: 6, Width: 270, Height: 270},
	Medium: {Rows: 11, Cols: 11, Width: 420, Height: 420},
	Hard:   {Rows: 16, Cols: 16, Width: 570, Height: 570},
	Expert: {Rows: 21, Cols: 21, Width: 720, Height: 720},
}

func (d Difficulty) Name() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Level returns the grid and window size; false for Exit.
func (d Difficulty) Level() (Level, bool) {
	l, ok := levels[d]
	return l, ok
}

func ParseDifficulty(label string) (Difficulty, error) {
	for _, d := range Difficulties {
		if d.Name() == label {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", label, ErrUnknownDifficulty)
}

func DifficultyNames() []string {
	names := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		names[i] = d.Name()
	}
	return names
}
