package config

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/lifegridgo/internal/ctxlog"
	"github.com/vk/lifegridgo/internal/fsutil"
)

// fileRoot decodes the top-level blocks of a profile file. Unknown blocks
// land in Remain and are tolerated, so profiles can carry annotations for
// other tools.
type fileRoot struct {
	Simulation *simulationBlock `hcl:"simulation,block"`
	Window     *windowBlock     `hcl:"window,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

// simulationBlock mirrors the engine-facing settings. Pointer fields
// distinguish absent attributes from zero values.
type simulationBlock struct {
	GridSize    *int     `hcl:"grid_size,optional"`
	TickRate    *string  `hcl:"tick_rate,optional"`
	ClickRadius *int     `hcl:"click_radius,optional"`
	SeedDensity *float64 `hcl:"seed_density,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Generations *int     `hcl:"generations,optional"`
}

// windowBlock mirrors the presentation settings.
type windowBlock struct {
	CellSize *int    `hcl:"cell_size,optional"`
	Title    *string `hcl:"title,optional"`
}

// LoadProfile overlays cfg with every profile file found at path, which may
// be a single .hcl file or a directory searched recursively. Files apply in
// discovery order, later settings winning.
func LoadProfile(ctx context.Context, path string, cfg Config) (Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Profile loader started.", "path", path)

	files, err := fsutil.CollectFiles(".hcl", path)
	if err != nil {
		return cfg, fmt.Errorf("discovering profile files: %w", err)
	}
	if len(files) == 0 {
		return cfg, fmt.Errorf("no .hcl profile found at %s", path)
	}
	logger.Debug("Discovered profile files.", "count", len(files))

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return cfg, fmt.Errorf("failed to parse profile %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return cfg, fmt.Errorf("failed to decode profile %s: %w", file, diags)
		}

		if err := applyProfile(&cfg, &root); err != nil {
			return cfg, fmt.Errorf("invalid profile %s: %w", file, err)
		}
		logger.Debug("Profile applied.", "file", file)
	}

	return cfg, nil
}

// applyProfile copies every attribute a profile actually set onto cfg.
func applyProfile(cfg *Config, root *fileRoot) error {
	if sim := root.Simulation; sim != nil {
		if sim.GridSize != nil {
			cfg.GridSize = *sim.GridSize
		}
		if sim.TickRate != nil {
			d, err := time.ParseDuration(*sim.TickRate)
			if err != nil {
				return fmt.Errorf("tick_rate: %w", err)
			}
			cfg.TickRate = d
		}
		if sim.ClickRadius != nil {
			cfg.ClickRadius = *sim.ClickRadius
		}
		if sim.SeedDensity != nil {
			cfg.SeedDensity = *sim.SeedDensity
		}
		if sim.Seed != nil {
			cfg.Seed = *sim.Seed
		}
		if sim.Generations != nil {
			cfg.Generations = *sim.Generations
		}
	}
	if win := root.Window; win != nil {
		if win.CellSize != nil {
			cfg.CellSize = *win.CellSize
		}
		if win.Title != nil {
			cfg.Title = *win.Title
		}
	}
	return nil
}
