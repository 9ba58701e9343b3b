package model

import (
	log "github.com/sirupsen/logrus"
)

type Selector struct {
	View   *GridView
	Window Window
	// Strict rejects labels outside the difficulty list. Without it any
	// unknown label closes the window like Exit does.
	Strict bool
}

func NewSelector(view *GridView, window Window, strict bool) *Selector {
	return &Selector{View: view, Window: window, Strict: strict}
}

func (s *Selector) Select(label string) error {
	d, err := ParseDifficulty(label)
	if err != nil {
		if s.Strict {
			log.WithField("label", label).Warn("selection rejected")
			return err
		}
		log.WithField("label", label).Warn("unknown selection, closing")
		d = Exit
	}

	level, ok := d.Level()
	if !ok {
		log.Info("exit selected")
		s.Window.Close()
		return nil
	}

	s.View.Build(level.Rows, level.Cols)
	Configure(s.Window, level.Width, level.Height)
	log.WithFields(log.Fields{
		"difficulty": d.Name(),
		"rows":       level.Rows,
		"cols":       level.Cols,
	}).Info("grid built")
	return nil
}
