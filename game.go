package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snake/cfg"
	"github.com/zucenko/snake/model"
	"github.com/zucenko/snake/render"
	"github.com/zucenko/snake/session"
)

var errQuit = errors.New("quit")

type keyDirection struct {
	key       ebiten.Key
	direction model.Direction
}

var keyDirections = []keyDirection{
	{ebiten.KeyUp, model.UP},
	{ebiten.KeyDown, model.DOWN},
	{ebiten.KeyLeft, model.LEFT},
	{ebiten.KeyRight, model.RIGHT},
}

type Game struct {
	Config    cfg.Config
	Session   *session.GameSession
	Presenter *render.Presenter

	// canvas holds the frame drawn after the last tick
	canvas  *ebiten.Image
	surface *Surface
	last    time.Time
}

func NewGame(conf cfg.Config) (*Game, error) {
	canvas, err := ebiten.NewImage(conf.Grid.Width(), conf.Grid.Height(), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	surface, err := NewSurface(canvas)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(conf.Seed))
	g := &Game{
		Config:    conf,
		Presenter: render.NewPresenter(),
		canvas:    canvas,
		surface:   surface,
	}
	g.Session = session.NewGameSession(
		func() (*model.GameState, error) {
			return model.NewGameState(conf.Grid, conf.Start, rng)
		},
		conf.TickSeconds(),
		g.onFrame)
	return g, nil
}

func (g *Game) onFrame(res model.AdvanceResult) {
	g.Presenter.Render(res.Snapshot, g.surface)
}

func (g *Game) readKeys() error {
	for _, kd := range keyDirections {
		if inpututil.IsKeyJustPressed(kd.key) {
			g.Session.Push(session.SetDirection(kd.direction))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Session.Push(session.Restart())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	return nil
}

func (g *Game) update(screen *ebiten.Image) error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := float32(now.Sub(g.last).Seconds())
	g.last = now

	// started lazily so the first frame is drawn inside the run loop
	if g.Session.State == session.GS_NEW {
		if err := g.Session.Start(); err != nil {
			return err
		}
	}
	if err := g.readKeys(); err != nil {
		return err
	}
	if err := g.Session.Update(dt); err != nil {
		return err
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return screen.DrawImage(g.canvas, &ebiten.DrawImageOptions{})
}

func main() {
	conf := cfg.Load()
	conf.SetupLogging()

	game, err := NewGame(conf)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"cols": conf.Grid.Cols,
		"rows": conf.Grid.Rows,
		"tile": conf.Grid.TileSize,
		"tick": conf.Tick,
		"seed": conf.Seed,
	}).Info("starting snake")

	err = ebiten.Run(game.update, conf.Grid.Width(), conf.Grid.Height(), 1, conf.Title)
	if err != nil && err != errQuit {
		log.Fatal(err)
	}
	log.Info("bye")
}
