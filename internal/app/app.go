package app

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vk/lifegridgo/internal/config"
	"github.com/vk/lifegridgo/internal/life"
	"github.com/vk/lifegridgo/internal/tick"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
	grid   *life.Grid
	ticker *tick.Ticker
	rng    *rand.Rand
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a freshly
// seeded board.
func NewApp(outW io.Writer, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	grid, err := life.New(cfg.GridSize)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}
	ticker, err := tick.New(cfg.TickRate)
	if err != nil {
		return nil, fmt.Errorf("creating ticker: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	grid.Randomize(rng, cfg.SeedDensity)
	logger.Debug("Board seeded.", "size", cfg.GridSize, "seed", seed, "population", grid.Population())

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		grid:   grid,
		ticker: ticker,
		rng:    rng,
	}, nil
}

// Grid returns the application's board. This is primarily for testing.
func (a *App) Grid() *life.Grid {
	return a.grid
}
