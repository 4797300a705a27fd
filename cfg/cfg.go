package cfg

import (
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snake/model"
)

const (
	COLS      = 25
	ROWS      = 25
	TILE_SIZE = 25
	TICK      = 100 * time.Millisecond
	TITLE     = "Snake Game"
)

var START = model.Cell{Col: 5, Row: 5}

type Config struct {
	Grid     model.Grid
	Start    model.Cell
	Tick     time.Duration
	Seed     int64
	Title    string
	LogLevel log.Level
}

func Default() Config {
	return Config{
		Grid:     model.Grid{Cols: COLS, Rows: ROWS, TileSize: TILE_SIZE},
		Start:    START,
		Tick:     TICK,
		Seed:     time.Now().UnixNano(),
		Title:    TITLE,
		LogLevel: log.InfoLevel,
	}
}

// Load applies SNAKE_* environment overrides on top of Default.
// Unusable values are logged and ignored.
func Load() Config {
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) Config {
	c := Default()
	intVar(getenv, "SNAKE_COLS", &c.Grid.Cols)
	intVar(getenv, "SNAKE_ROWS", &c.Grid.Rows)
	intVar(getenv, "SNAKE_TILE", &c.Grid.TileSize)

	tickMs := int(c.Tick / time.Millisecond)
	if intVar(getenv, "SNAKE_TICK_MS", &tickMs) {
		c.Tick = time.Duration(tickMs) * time.Millisecond
	}

	if s := getenv("SNAKE_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Warnf("SNAKE_SEED %q ignored: %v", s, err)
		} else {
			c.Seed = seed
		}
	}

	if s := getenv("SNAKE_LOG_LEVEL"); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			log.Warnf("SNAKE_LOG_LEVEL %q ignored: %v", s, err)
		} else {
			c.LogLevel = level
		}
	}

	// the start cell has to stay on a shrunken grid
	if c.Start.Col >= c.Grid.Cols || c.Start.Row >= c.Grid.Rows {
		c.Start = model.Cell{Col: c.Grid.Cols / 2, Row: c.Grid.Rows / 2}
		log.Printf("Defaulting start cell to %v", c.Start)
	}
	return c
}

func intVar(getenv func(string) string, key string, dst *int) bool {
	s := getenv(key)
	if s == "" {
		return false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		log.Warnf("%s %q ignored, keeping %d", key, s, *dst)
		return false
	}
	*dst = v
	return true
}

// TickSeconds is the tick period in the unit the session scheduler uses.
func (c Config) TickSeconds() float32 {
	return float32(c.Tick.Seconds())
}

func (c Config) SetupLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(c.LogLevel)
}
