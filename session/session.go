package session

import (
	"fmt"

	"github.com/zucenko/snake/model"
)

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_WAIT
	GS_PLAY
	GS_OVER
)

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_NEW:
		return "GS_NEW"
	case GS_WAIT:
		return "GS_WAIT"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

type CommandKind int

const (
	CMD_DIRECTION CommandKind = iota + 1
	CMD_RESTART
)

func (k CommandKind) Name() string {
	switch k {
	case CMD_DIRECTION:
		return "DIRECTION"
	case CMD_RESTART:
		return "RESTART"
	default:
		return "N/A"
	}
}

// Command is what input handlers send to the session. Direction is only
// meaningful for CMD_DIRECTION.
type Command struct {
	Kind      CommandKind
	Direction model.Direction
}

func SetDirection(d model.Direction) Command {
	return Command{Kind: CMD_DIRECTION, Direction: d}
}

func Restart() Command {
	return Command{Kind: CMD_RESTART}
}

// StateFactory builds the fresh GameState used on start and on every restart.
type StateFactory func() (*model.GameState, error)

type GameSession struct {
	State    GameSessionState
	Model    *model.GameState
	Commands chan Command

	// OnFrame receives a snapshot after every tick, including the idle one on start.
	OnFrame func(model.AdvanceResult)

	Scheduler *Scheduler
	Period    float32

	newState StateFactory
	tick     *Handle
	ticks    int
}
