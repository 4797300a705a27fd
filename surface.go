package main

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/snake/render"
)

const dpi = 72

// Surface draws onto an ebiten image. Faces are created on first use per size.
type Surface struct {
	dst   *ebiten.Image
	tt    *truetype.Font
	faces map[render.Font]font.Face
}

func NewSurface(dst *ebiten.Image) (*Surface, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Surface{
		dst:   dst,
		tt:    tt,
		faces: make(map[render.Font]font.Face),
	}, nil
}

func (s *Surface) face(f render.Font) font.Face {
	if face, found := s.faces[f]; found {
		return face
	}
	face := truetype.NewFace(s.tt, &truetype.Options{
		Size:    f.Size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	s.faces[f] = face
	return face
}

func (s *Surface) Clear(c color.Color) {
	if err := s.dst.Fill(c); err != nil {
		log.Printf("%v", err)
	}
}

func (s *Surface) DrawRect(x, y, width, height float64, c color.Color) {
	ebitenutil.DrawRect(s.dst, x, y, width, height, c)
}

// DrawText treats (x, y) as the anchor point; text.Draw itself wants the baseline.
func (s *Surface) DrawText(x, y int, str string, f render.Font, c color.Color, anchor render.Anchor) {
	face := s.face(f)
	m := face.Metrics()
	switch anchor {
	case render.ANCHOR_NW:
		y += m.Ascent.Ceil()
	case render.ANCHOR_CENTER:
		x -= font.MeasureString(face, str).Ceil() / 2
		y += (m.Ascent.Ceil() - m.Descent.Ceil()) / 2
	}
	text.Draw(s.dst, str, face, x, y, c)
}
