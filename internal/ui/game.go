// Package ui is the windowed front end. It owns the frame loop, translates
// mouse clicks into board mutations and paints each cell by its latest
// transition.
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vk/lifegridgo/internal/config"
	"github.com/vk/lifegridgo/internal/life"
	"github.com/vk/lifegridgo/internal/tick"
)

// Cell colors, one per transition state. Dead cells keep the background.
var (
	colorBackground = color.RGBA{A: 0xff}
	colorBorn       = color.RGBA{G: 0xff, A: 0xff}
	colorAlive      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDied       = color.RGBA{R: 0xff, A: 0xff}
)

// stateColor maps a transition state to its cell color.
func stateColor(s life.CellState) color.Color {
	switch s {
	case life.StateBorn:
		return colorBorn
	case life.StateAlive:
		return colorAlive
	case life.StateDied:
		return colorDied
	default:
		return colorBackground
	}
}

// Game drives one simulation inside an ebiten window. Each Update call
// handles input and at most one generation advance; Draw repaints the board
// onto a board-sized texture that is scaled up to the window.
type Game struct {
	grid   *life.Grid
	ticker *tick.Ticker
	logger *slog.Logger
	rng    *rand.Rand

	cellSize int
	radius   int
	density  float64
	title    string

	paused  bool
	last    time.Time
	texture *ebiten.Image
}

// New assembles the window front end around an existing board.
func New(grid *life.Grid, ticker *tick.Ticker, rng *rand.Rand, cfg *config.Config, logger *slog.Logger) *Game {
	return &Game{
		grid:     grid,
		ticker:   ticker,
		logger:   logger,
		rng:      rng,
		cellSize: cfg.CellSize,
		radius:   cfg.ClickRadius,
		density:  cfg.SeedDensity,
		title:    cfg.Title,
		texture:  ebiten.NewImage(grid.Size(), grid.Size()),
	}
}

// Update handles one frame of input and advances the board when the tick
// interval has elapsed. Pausing stops stepping but not timekeeping, so
// resuming never replays the paused span as a burst of generations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug("Pause toggled.", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Clear()
		g.grid.Randomize(g.rng, g.density)
		g.logger.Debug("Board reseeded.", "population", g.grid.Population())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
		g.logger.Debug("Board cleared.")
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		g.handleClick(px, py)
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last)
	g.last = now

	if !g.paused && g.ticker.Advance(dt) {
		g.grid.Step()
	}
	return nil
}

// handleClick translates a cursor position into a board cell and toggles
// the square region around it. The board rejects out-of-range centers, so
// clicks outside the grid are dropped here.
func (g *Game) handleClick(px, py int) {
	x, y := cellAt(px, py, g.cellSize)
	if size := g.grid.Size(); x < 0 || x >= size || y < 0 || y >= size {
		g.logger.Debug("Click outside the board ignored.", "px", px, "py", py)
		return
	}
	g.grid.ToggleAround(x, y, g.radius)
	g.logger.Debug("Toggled around cell.", "x", x, "y", y, "radius", g.radius)
}

// cellAt maps a pixel position in the logical layout to board coordinates.
// Integer division floors non-negative positions into their cell; negative
// positions are pushed firmly out of range instead of truncating into cell
// zero.
func cellAt(px, py, cellSize int) (int, int) {
	x := px / cellSize
	y := py / cellSize
	if px < 0 {
		x = -1
	}
	if py < 0 {
		y = -1
	}
	return x, y
}

// Draw repaints the whole board texture and overlays the status line. Dead
// cells keep the background color, so only transitions are painted.
func (g *Game) Draw(screen *ebiten.Image) {
	g.texture.Fill(colorBackground)
	size := g.grid.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if s := g.grid.Classify(x, y); s != life.StateDead {
				g.texture.Set(x, y, stateColor(s))
			}
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.texture, op)

	line := statusLine(ebiten.ActualFPS(), ebiten.ActualTPS(), g.grid.Generation(), g.grid.Population(), g.paused)
	text.Draw(screen, line, basicfont.Face7x13, 6, 16, color.White)
}

// statusLine renders the overlay shown in the top-left corner.
func statusLine(fps, tps float64, generation, alive int, paused bool) string {
	s := fmt.Sprintf("FPS: %.0f  TPS: %.0f  gen: %d  alive: %d", fps, tps, generation, alive)
	if paused {
		s += "  [paused]"
	}
	return s
}

// Layout fixes the logical resolution at board pixels regardless of the
// outer window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := g.grid.Size() * g.cellSize
	return px, px
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run() error {
	px := g.grid.Size() * g.cellSize
	ebiten.SetWindowSize(px, px)
	ebiten.SetWindowTitle(g.title)
	g.logger.Info("Opening window.", "size_px", px, "title", g.title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window loop failed: %w", err)
	}
	g.logger.Info("Window closed.")
	return nil
}
