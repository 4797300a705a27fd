package model

// Snapshot is a detached copy of a GameState; renderers only ever see these.
type Snapshot struct {
	Grid      Grid
	Head      Cell
	Body      []Cell
	Food      Cell
	Direction Direction
	Score     int
	GameOver  bool
	Death     DeathCause
}

type AdvanceResult struct {
	Snapshot
	Moved bool
	Ate   bool
}
