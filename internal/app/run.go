package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/lifegridgo/internal/config"
	"github.com/vk/lifegridgo/internal/ctxlog"
	"github.com/vk/lifegridgo/internal/tui"
	"github.com/vk/lifegridgo/internal/ui"
)

// Run starts the front end selected by the configuration and blocks until
// it finishes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode)

	var err error
	switch a.config.Mode {
	case config.ModeWindow:
		err = ui.New(a.grid, a.ticker, a.rng, a.config, a.logger).Run()
	case config.ModeTUI:
		err = tui.New(a.grid, a.ticker, a.rng, a.config).Run(ctx)
	case config.ModeBench:
		err = a.runBench(ctx)
	default:
		// Config validation guarantees the mode, so this is a programmer error.
		panic(fmt.Sprintf("unhandled mode %q", a.config.Mode))
	}
	if err != nil {
		return fmt.Errorf("%s front end failed: %w", a.config.Mode, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runBench advances the board for the configured number of generations
// without any rendering and reports throughput.
func (a *App) runBench(ctx context.Context) error {
	a.logger.Info("Benchmark starting.", "size", a.config.GridSize, "generations", a.config.Generations)

	start := time.Now()
	for i := 0; i < a.config.Generations; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("benchmark canceled at generation %d: %w", i, err)
		}
		a.grid.Step()
	}
	elapsed := time.Since(start)

	a.logger.Info("Benchmark finished.",
		"generations", a.config.Generations,
		"elapsed", elapsed.Round(time.Microsecond),
		"per_generation", (elapsed / time.Duration(a.config.Generations)).Round(time.Nanosecond),
		"steps_per_sec", fmt.Sprintf("%.0f", float64(a.config.Generations)/elapsed.Seconds()),
		"population", a.grid.Population(),
	)
	return nil
}
