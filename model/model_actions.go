package model

import "fmt"

func NewGameState(grid Grid, start Cell, rng Rand) (*GameState, error) {
	if grid.Cols <= 0 || grid.Rows <= 0 || grid.Cols*grid.Rows < 2 {
		return nil, fmt.Errorf("%dx%d: %w", grid.Cols, grid.Rows, ErrGridTooSmall)
	}
	if !grid.Contains(start) {
		return nil, fmt.Errorf("%v in %dx%d: %w", start, grid.Cols, grid.Rows, ErrStartOutside)
	}
	gs := &GameState{
		Grid:      grid,
		head:      start,
		body:      make([]Cell, 0),
		direction: NONE,
		rng:       rng,
	}
	gs.food = GenerateFood(gs.head, gs.body, grid, rng)
	return gs, nil
}

// GenerateFood samples cells uniformly until one is free of the snake.
// At least one free cell must exist.
func GenerateFood(head Cell, body []Cell, grid Grid, rng Rand) Cell {
	for {
		food := Cell{
			Col: rng.Intn(grid.Cols),
			Row: rng.Intn(grid.Rows),
		}
		if food == head || contains(body, food) {
			continue
		}
		return food
	}
}

func contains(cells []Cell, c Cell) bool {
	for _, b := range cells {
		if b == c {
			return true
		}
	}
	return false
}

// SetDirection silently drops a request that would reverse the snake onto itself.
func (gs *GameState) SetDirection(requested Direction) {
	if gs.gameOver || requested == NONE {
		return
	}
	if requested == gs.direction.Opposite() {
		return
	}
	gs.direction = requested
}

func (gs *GameState) Advance() AdvanceResult {
	if gs.gameOver {
		return AdvanceResult{Snapshot: gs.Snapshot()}
	}
	if gs.direction == NONE {
		return AdvanceResult{Snapshot: gs.Snapshot()}
	}

	newHead := gs.head.Add(gs.direction)

	// collisions are checked against the prospective head, nothing is moved yet
	if !gs.Grid.Contains(newHead) {
		return gs.die(DEATH_WALL)
	}
	if contains(gs.body, newHead) {
		return gs.die(DEATH_SELF)
	}

	ate := newHead == gs.food

	keep := len(gs.body)
	if !ate && keep > 0 {
		keep--
	}
	newBody := make([]Cell, 0, keep+1)
	newBody = append(newBody, gs.head)
	newBody = append(newBody, gs.body[:keep]...)

	gs.body = newBody
	gs.head = newHead

	if ate {
		gs.score++
		if gs.free() > 0 {
			gs.food = GenerateFood(gs.head, gs.body, gs.Grid, gs.rng)
		}
	}

	return AdvanceResult{Snapshot: gs.Snapshot(), Moved: true, Ate: ate}
}

func (gs *GameState) die(cause DeathCause) AdvanceResult {
	gs.gameOver = true
	gs.death = cause
	return AdvanceResult{Snapshot: gs.Snapshot()}
}

func (gs *GameState) free() int {
	return gs.Grid.Cols*gs.Grid.Rows - 1 - len(gs.body)
}

func (gs *GameState) Head() Cell {
	return gs.head
}

// Body returns a copy, index 0 is right behind the head.
func (gs *GameState) Body() []Cell {
	return append([]Cell(nil), gs.body...)
}

func (gs *GameState) Food() Cell {
	return gs.food
}

func (gs *GameState) Direction() Direction {
	return gs.direction
}

func (gs *GameState) Score() int {
	return gs.score
}

func (gs *GameState) GameOver() bool {
	return gs.gameOver
}

func (gs *GameState) Death() DeathCause {
	return gs.death
}

func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Grid:      gs.Grid,
		Head:      gs.head,
		Body:      gs.Body(),
		Food:      gs.food,
		Direction: gs.direction,
		Score:     gs.score,
		GameOver:  gs.gameOver,
		Death:     gs.death,
	}
}
