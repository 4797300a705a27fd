package model

import (
	"errors"
	"fmt"
)

var (
	ErrGridTooSmall = errors.New("grid too small")
	ErrStartOutside = errors.New("start cell outside grid")
)

type Cell struct {
	Col, Row int
}

func (c Cell) Add(d Direction) Cell {
	dc, dr := d.Vector()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

type Direction int

const (
	NONE Direction = iota
	UP
	DOWN
	LEFT
	RIGHT
)

func (d Direction) Vector() (int, int) {
	switch d {
	case UP:
		return 0, -1
	case DOWN:
		return 0, 1
	case LEFT:
		return -1, 0
	case RIGHT:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	default:
		return NONE
	}
}

func (d Direction) Name() string {
	switch d {
	case NONE:
		return "NONE"
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

type DeathCause int

const (
	DEATH_NONE DeathCause = iota
	DEATH_WALL
	DEATH_SELF
)

func (dc DeathCause) Name() string {
	switch dc {
	case DEATH_NONE:
		return "none"
	case DEATH_WALL:
		return "wall-collision"
	case DEATH_SELF:
		return "self-collision"
	default:
		return fmt.Sprintf("n/a:%d", dc)
	}
}

// Grid is fixed for the lifetime of a GameState.
type Grid struct {
	Cols, Rows int
	TileSize   int
}

func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

func (g Grid) Width() int {
	return g.Cols * g.TileSize
}

func (g Grid) Height() int {
	return g.Rows * g.TileSize
}

// Pixels returns the top left corner of the cell.
func (g Grid) Pixels(c Cell) (x, y int) {
	return c.Col * g.TileSize, c.Row * g.TileSize
}

// Rand is satisfied by *rand.Rand.
type Rand interface {
	Intn(n int) int
}

type GameState struct {
	Grid      Grid
	head      Cell
	body      []Cell
	food      Cell
	direction Direction
	score     int
	gameOver  bool
	death     DeathCause
	rng       Rand
}
