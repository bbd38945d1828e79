package config

import (
	"fmt"
	"time"
)

// Front ends selectable through Config.Mode.
const (
	ModeWindow = "window"
	ModeTUI    = "tui"
	ModeBench  = "bench"
)

// Config holds every tunable of a simulation run.
type Config struct {
	// GridSize is the edge length of the square board, in cells.
	GridSize int
	// CellSize is the rendered size of one cell in the window, in pixels.
	CellSize int
	// TickRate is the wall-time interval between generation advances.
	TickRate time.Duration
	// ClickRadius is the half-width of the square region a click toggles.
	ClickRadius int
	// SeedDensity is the probability that a cell starts alive.
	SeedDensity float64
	// Seed fixes the RNG; 0 derives a seed from the clock.
	Seed int64
	// Mode selects the front end: window, tui or bench.
	Mode string
	// Generations is how many steps bench mode runs.
	Generations int
	// Title is the window title.
	Title string

	LogFormat string
	LogLevel  string
}

// Default returns the reference configuration: a 50x50 board stepping every
// 100ms, 10px cells, click radius 2 and a 20% random seed.
func Default() Config {
	return Config{
		GridSize:    50,
		CellSize:    10,
		TickRate:    100 * time.Millisecond,
		ClickRadius: 2,
		SeedDensity: 0.2,
		Mode:        ModeWindow,
		Generations: 1000,
		Title:       "lifegridgo",
		LogFormat:   "text",
		LogLevel:    "info",
	}
}

// New validates cfg and returns it.
func New(cfg Config) (*Config, error) {
	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", cfg.GridSize)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cfg.CellSize)
	}
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %v", cfg.TickRate)
	}
	if cfg.ClickRadius < 0 {
		return nil, fmt.Errorf("click radius must not be negative, got %d", cfg.ClickRadius)
	}
	if cfg.SeedDensity < 0 || cfg.SeedDensity > 1 {
		return nil, fmt.Errorf("seed density must be within [0, 1], got %g", cfg.SeedDensity)
	}
	switch cfg.Mode {
	case ModeWindow, ModeTUI, ModeBench:
		// valid
	default:
		return nil, fmt.Errorf("unknown mode %q: must be %q, %q or %q", cfg.Mode, ModeWindow, ModeTUI, ModeBench)
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	return &cfg, nil
}
