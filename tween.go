package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/nonogram/model"
)

type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

type cellPos struct {
	row, col int
}

// fade blends the icon a toggle showed before its click into the new one.
type fade struct {
	from  model.Icon
	alpha float32
}

func (g *Game) startFade(row, col int, from model.Icon) {
	pos := cellPos{row, col}
	f := &fade{from: from}
	g.fades[pos] = f

	t := gween.New(0, 1, g.cfg.FadeSeconds, ease.OutQuad)
	a := Action{onChange: func(v float32) { f.alpha = v }}
	a.addOnFinish(func() {
		if g.fades[pos] == f {
			delete(g.fades, pos)
		}
	})
	g.Tweens[t] = a
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}
}

func (g *Game) clearTweens() {
	g.Tweens = make(map[*gween.Tween]Action)
	g.fades = make(map[cellPos]*fade)
}
