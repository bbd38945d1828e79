package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/lifegridgo/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a validated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
// Settings resolve in three layers: built-in defaults, then an optional
// HCL profile, then any flag given explicitly on the command line.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := config.Default()

	flagSet := flag.NewFlagSet("lifegridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
LifeGridGo - An interactive Game of Life sandbox on a bounded grid.

Usage:
  lifegridgo [options]

Click the board to toggle a square of cells around the cursor. Space
pauses, R reseeds, C clears, Q quits.

Options:
`)
		flagSet.PrintDefaults()
	}

	sizeFlag := flagSet.Int("size", defaults.GridSize, "Edge length of the square board, in cells.")
	cellSizeFlag := flagSet.Int("cell-size", defaults.CellSize, "Rendered size of one cell in the window, in pixels.")
	tickFlag := flagSet.Duration("tick", defaults.TickRate, "Interval between generation advances.")
	radiusFlag := flagSet.Int("radius", defaults.ClickRadius, "Half-width of the square region toggled by a click.")
	densityFlag := flagSet.Float64("density", defaults.SeedDensity, "Probability that a cell starts alive.")
	seedFlag := flagSet.Int64("seed", defaults.Seed, "RNG seed. 0 derives one from the clock.")
	modeFlag := flagSet.String("mode", defaults.Mode, "Front end to run. Options: 'window', 'tui' or 'bench'.")
	generationsFlag := flagSet.Int("generations", defaults.Generations, "Generations to run in bench mode.")
	titleFlag := flagSet.String("title", defaults.Title, "Window title.")
	profileFlag := flagSet.String("profile", "", "Path to an .hcl profile file or a directory of them.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := defaults
	if *profileFlag != "" {
		loaded, err := config.LoadProfile(context.Background(), *profileFlag, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Profile loaded.", "path", *profileFlag)
	}

	// Flags given explicitly on the command line override the profile.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.GridSize = *sizeFlag
		case "cell-size":
			cfg.CellSize = *cellSizeFlag
		case "tick":
			cfg.TickRate = *tickFlag
		case "radius":
			cfg.ClickRadius = *radiusFlag
		case "density":
			cfg.SeedDensity = *densityFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mode":
			cfg.Mode = strings.ToLower(*modeFlag)
		case "generations":
			cfg.Generations = *generationsFlag
		case "title":
			cfg.Title = *titleFlag
		}
	})
	cfg.LogFormat = logFormat
	cfg.LogLevel = logLevel

	validated, err := config.New(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}
