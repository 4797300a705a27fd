package session

import (
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snake/model"
)

const commandBuffer = 16

func NewGameSession(newState StateFactory, period float32, onFrame func(model.AdvanceResult)) *GameSession {
	return &GameSession{
		State:     GS_NEW,
		Commands:  make(chan Command, commandBuffer),
		OnFrame:   onFrame,
		Scheduler: NewScheduler(),
		Period:    period,
		newState:  newState,
	}
}

// Start builds a fresh GameState and runs the first tick right away.
func (gs *GameSession) Start() error {
	m, err := gs.newState()
	if err != nil {
		return err
	}
	gs.Model = m
	gs.State = GS_WAIT
	gs.ticks = 0
	log.WithFields(log.Fields{
		"head": m.Head(),
		"food": m.Food(),
	}).Info("GameSession.Start")
	gs.onTick()
	return nil
}

// Restart cancels the pending tick before the state is replaced, so only
// one tick chain is ever alive.
func (gs *GameSession) Restart() error {
	if gs.Scheduler.Cancel(gs.tick) {
		log.Debug("GameSession.Restart canceled pending tick")
	}
	gs.tick = nil
	log.WithField("score", gs.score()).Info("GameSession.Restart")
	return gs.Start()
}

// Push never blocks; when the buffer is full the command is dropped.
func (gs *GameSession) Push(cmd Command) bool {
	select {
	case gs.Commands <- cmd:
		return true
	default:
		log.Warnf("Dropping command %s, GameSession.Commands FULL", cmd.Kind.Name())
		return false
	}
}

// Update drains pending commands, then steps the scheduler by dt seconds.
// Everything that mutates the GameState runs here, on the caller goroutine.
func (gs *GameSession) Update(dt float32) error {
loop:
	for {
		select {
		case cmd := <-gs.Commands:
			if err := gs.Handle(cmd); err != nil {
				return err
			}
		default:
			break loop
		}
	}
	gs.Scheduler.Update(dt)
	return nil
}

func (gs *GameSession) Handle(cmd Command) error {
	switch cmd.Kind {
	case CMD_DIRECTION:
		if gs.Model == nil {
			return nil
		}
		gs.Model.SetDirection(cmd.Direction)
		if gs.State == GS_WAIT && gs.Model.Direction() != model.NONE {
			gs.State = GS_PLAY
		}
	case CMD_RESTART:
		return gs.Restart()
	default:
		log.Errorf("GameSession.Handle command not expected:%v", cmd.Kind)
	}
	return nil
}

func (gs *GameSession) onTick() {
	gs.tick = nil
	res := gs.Model.Advance()
	gs.ticks++

	if res.Moved {
		log.WithFields(log.Fields{
			"tick":  gs.ticks,
			"head":  res.Head,
			"score": res.Score,
		}).Debug("GameSession tick")
	}
	if res.Ate {
		log.WithField("score", res.Score).Info("GameSession food eaten")
	}
	if res.GameOver && gs.State != GS_OVER {
		gs.State = GS_OVER
		log.WithFields(log.Fields{
			"cause": res.Death.Name(),
			"score": res.Score,
			"head":  res.Head,
		}).Info("GameSession game over")
	}

	if gs.OnFrame != nil {
		gs.OnFrame(res)
	}

	if !res.GameOver {
		gs.tick = gs.Scheduler.After(gs.Period, gs.onTick)
	}
}

// Ticking reports whether a next tick is scheduled.
func (gs *GameSession) Ticking() bool {
	return gs.tick != nil
}

func (gs *GameSession) Ticks() int {
	return gs.ticks
}

func (gs *GameSession) score() int {
	if gs.Model == nil {
		return 0
	}
	return gs.Model.Score()
}
