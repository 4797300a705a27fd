// Package render turns game snapshots into draw calls on a Surface.
package render

import (
	"fmt"
	"image/color"

	"github.com/zucenko/snake/model"
)

var (
	COLOR_BACKGROUND = color.RGBA{0, 0, 0, 255}
	COLOR_FOOD       = color.RGBA{255, 0, 0, 255}
	COLOR_SNAKE      = color.RGBA{50, 205, 50, 255} // lime green
	COLOR_TEXT       = color.RGBA{255, 255, 255, 255}
)

type Anchor int

const (
	ANCHOR_CENTER Anchor = iota
	ANCHOR_NW
)

type Font struct {
	Name string
	Size float64
}

var (
	FontLarge = Font{Name: "Go Regular", Size: 20}
	FontSmall = Font{Name: "Go Regular", Size: 16}
)

// Surface is the drawing capability the presenter needs.
type Surface interface {
	Clear(c color.Color)
	DrawRect(x, y, width, height float64, c color.Color)
	DrawText(x, y int, text string, f Font, c color.Color, anchor Anchor)
}

type Overlay int

const (
	OVERLAY_START Overlay = iota + 1
	OVERLAY_SCORE
	OVERLAY_GAME_OVER
)

func (o Overlay) Name() string {
	switch o {
	case OVERLAY_START:
		return "START"
	case OVERLAY_SCORE:
		return "SCORE"
	case OVERLAY_GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

func SelectOverlay(s model.Snapshot) Overlay {
	switch {
	case s.GameOver:
		return OVERLAY_GAME_OVER
	case s.Direction == model.NONE:
		return OVERLAY_START
	default:
		return OVERLAY_SCORE
	}
}

const (
	StartText   = "Press a direction key to start"
	RestartText = "Press 'R' to restart"
)

type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) Render(s model.Snapshot, dst Surface) {
	dst.Clear(COLOR_BACKGROUND)

	p.cell(dst, s.Grid, s.Food, COLOR_FOOD)
	p.cell(dst, s.Grid, s.Head, COLOR_SNAKE)
	for _, c := range s.Body {
		p.cell(dst, s.Grid, c, COLOR_SNAKE)
	}

	centerX, centerY := s.Grid.Width()/2, s.Grid.Height()/2
	switch SelectOverlay(s) {
	case OVERLAY_START:
		dst.DrawText(centerX, centerY, StartText, FontSmall, COLOR_TEXT, ANCHOR_CENTER)
	case OVERLAY_SCORE:
		dst.DrawText(10, 10, fmt.Sprintf("Score: %d", s.Score), FontSmall, COLOR_TEXT, ANCHOR_NW)
	case OVERLAY_GAME_OVER:
		dst.DrawText(centerX, centerY, fmt.Sprintf("Game Over: %d", s.Score), FontLarge, COLOR_TEXT, ANCHOR_CENTER)
		dst.DrawText(centerX, centerY+40, RestartText, FontSmall, COLOR_TEXT, ANCHOR_CENTER)
	}
}

func (p *Presenter) cell(dst Surface, g model.Grid, c model.Cell, clr color.Color) {
	x, y := g.Pixels(c)
	dst.DrawRect(float64(x), float64(y), float64(g.TileSize), float64(g.TileSize), clr)
}
