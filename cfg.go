package main

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/nonogram/assets"
	"github.com/zucenko/nonogram/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type Config struct {
	Title      string
	IconDir    string
	ToggleMode model.ToggleMode
	// StrictSelection rejects unknown difficulty labels instead of exiting.
	StrictSelection bool
	FontSize        float64
	FadeSeconds     float32
	LogLevel        log.Level
}

func DefaultConfig() Config {
	return Config{
		Title:           "Nonogram Solver",
		IconDir:         assets.IconDir,
		ToggleMode:      model.PerCell,
		StrictSelection: true,
		FontSize:        12,
		FadeSeconds:     0.15,
		LogLevel:        log.InfoLevel,
	}
}

type Icons struct {
	Checked, Unchecked *ebiten.Image
}

func (i Icons) For(icon model.Icon) *ebiten.Image {
	if icon == model.Checked {
		return i.Checked
	}
	return i.Unchecked
}

func LoadIcons(dir string) (Icons, error) {
	decoded, err := assets.LoadIcons(os.DirFS("."), dir)
	if err != nil {
		return Icons{}, err
	}
	return Icons{
		Checked:   ebiten.NewImageFromImage(decoded.Checked),
		Unchecked: ebiten.NewImageFromImage(decoded.Unchecked),
	}, nil
}

func LoadFont(size float64) (text.Face, error) {
	tt, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	return text.NewGoXFace(face), nil
}
