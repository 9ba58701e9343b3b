package main

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/nonogram/model"
)

var (
	COLOR_BACKGROUND = color.RGBA{0xd9, 0xd9, 0xd9, 0xff}
	COLOR_BORDER     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	COLOR_BUTTON     = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	COLOR_HOVER      = color.RGBA{0xc4, 0xc4, 0xc4, 0xff}
	COLOR_TEXT       = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

type GameState int

const (
	CHOOSING GameState = iota + 1
	PLAYING
	CLOSING
)

func (s GameState) Name() string {
	switch s {
	case CHOOSING:
		return "CHOOSING"
	case PLAYING:
		return "PLAYING"
	case CLOSING:
		return "CLOSING"
	default:
		return "N/A"
	}
}

type Game struct {
	cfg      Config
	State    GameState
	View     *model.GridView
	Menu     *model.Menu
	Selector *model.Selector
	Tweens   map[*gween.Tween]Action

	window *ebitenWindow
	icons  Icons
	face   text.Face
	frame  *Nine
	button *Nine
	fades  map[cellPos]*fade
	layout model.Layout
	built  *model.Grid
	width  int
	height int
	placed bool
}

func NewGame(cfg Config, icons Icons, face text.Face) *Game {
	g := &Game{
		cfg:    cfg,
		State:  CHOOSING,
		window: &ebitenWindow{},
		icons:  icons,
		face:   face,
		frame:  NewFrame(COLOR_BORDER, COLOR_BACKGROUND),
		button: NewFrame(COLOR_BORDER, COLOR_BUTTON),
		width:  model.StartupWidth,
		height: model.StartupHeight,
	}
	g.clearTweens()
	g.Menu = model.NewMenu(model.DifficultyNames())
	g.Menu.Place(g.width, g.height)
	g.View = model.NewGridView(cfg.ToggleMode, model.PlaceholderClues{})
	g.View.Menu = g.Menu
	g.Selector = model.NewSelector(g.View, g.window, cfg.StrictSelection)
	return g
}

func (g *Game) Update() error {
	if !g.placed {
		model.Configure(g.window, model.StartupWidth, model.StartupHeight)
		g.placed = true
	}
	if g.window.closed {
		g.State = CLOSING
		return ebiten.Termination
	}

	g.updateTweens(float32(1 / float64(ebiten.TPS())))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.Menu.Visible() {
		g.Menu.Show()
		g.State = CHOOSING
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	if g.window.closed {
		g.State = CLOSING
		return ebiten.Termination
	}
	return nil
}

func (g *Game) click(x, y int) {
	if g.Menu.Covers(x, y) {
		label, chosen := g.Menu.Click(x, y)
		if !chosen {
			return
		}
		if err := g.Selector.Select(label); err != nil {
			log.WithError(err).Warn("selection ignored")
		}
		return
	}
	if g.built == nil {
		return
	}
	row, col, ok := g.layout.ButtonAt(x, y)
	if !ok {
		return
	}
	cell, _ := g.built.At(row, col)
	from := cell.Icon
	icon, err := g.View.Toggle(row, col)
	if err != nil {
		if errors.Is(err, model.ErrNotToggle) {
			log.WithError(err).Debug("click on label")
			return
		}
		log.WithError(err).Warn("toggle failed")
		return
	}
	log.WithFields(log.Fields{
		"row":  row,
		"col":  col,
		"icon": icon.Name(),
		"flag": g.View.Flag().Name(),
	}).Debug("toggled")
	g.startFade(row, col, from)
}

// sync picks up a grid built since the last frame, or a new window size.
func (g *Game) sync(width, height int) {
	grid := g.View.Grid()
	if grid == g.built && width == g.width && height == g.height {
		return
	}
	if grid != g.built {
		g.clearTweens()
		g.built = grid
		g.State = PLAYING
	}
	g.width, g.height = width, height
	if g.built != nil {
		g.layout = model.NewLayout(g.built.Rows, g.built.Cols, width, height)
	}
	g.Menu.Place(width, height)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(COLOR_BACKGROUND)
	if g.built != nil {
		g.drawGrid(screen)
	}
	if g.Menu.Visible() {
		g.drawMenu(screen)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	for _, line := range g.built.Cells {
		for _, cell := range line {
			r := g.layout.Cell(cell.Row, cell.Col)
			switch cell.Kind {
			case model.ColumnClue:
				g.frame.Draw(screen, r)
				g.drawText(screen, model.ColumnText(cell.Clues), r)
			case model.RowClue:
				g.frame.Draw(screen, r)
				g.drawText(screen, model.RowText(cell.Clues), r)
			case model.Toggle:
				g.frame.Draw(screen, r)
				g.button.Draw(screen, g.layout.Button(cell.Row, cell.Col))
				g.drawToggleIcon(screen, cell)
			}
		}
	}
}

func (g *Game) drawToggleIcon(screen *ebiten.Image, cell *model.Cell) {
	r := g.layout.Icon(cell.Row, cell.Col)
	f, fading := g.fades[cellPos{cell.Row, cell.Col}]
	if fading {
		g.drawIcon(screen, g.icons.For(f.from), r, 1)
		g.drawIcon(screen, g.icons.For(cell.Icon), r, f.alpha)
		return
	}
	g.drawIcon(screen, g.icons.For(cell.Icon), r, 1)
}

func (g *Game) drawIcon(screen, img *ebiten.Image, r model.Rect, alpha float32) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}

func (g *Game) drawText(screen *ebiten.Image, s string, r model.Rect) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.X)+float64(r.W)/2, float64(r.Y)+float64(r.H)/2)
	op.ColorScale.ScaleWithColor(COLOR_TEXT)
	op.LineSpacing = g.cfg.FontSize + 2
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	b := g.Menu.Button()
	g.button.Draw(screen, b)
	g.drawText(screen, g.Menu.Current, b)
	if !g.Menu.Open {
		return
	}
	cx, cy := ebiten.CursorPosition()
	for k, o := range g.Menu.Options {
		r := g.Menu.Item(k)
		g.button.Draw(screen, r)
		if r.Contains(cx, cy) {
			in := r.Inset(r.W-2, r.H-2)
			screen.SubImage(image.Rect(in.X, in.Y, in.X+in.W, in.Y+in.H)).(*ebiten.Image).Fill(COLOR_HOVER)
		}
		g.drawText(screen, o, r)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.sync(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	cfg := DefaultConfig()
	log.SetLevel(cfg.LogLevel)

	icons, err := LoadIcons(cfg.IconDir)
	if err != nil {
		log.Fatal(err)
	}
	face, err := LoadFont(cfg.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(cfg, icons, face)
	ebiten.SetWindowSize(model.StartupWidth, model.StartupHeight)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Info("bye")
}
