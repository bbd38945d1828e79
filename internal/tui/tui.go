// Package tui is the terminal front end. It renders the board with tcell,
// two columns per cell so squares stay roughly square, and mirrors the
// window front end's controls.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vk/lifegridgo/internal/config"
	"github.com/vk/lifegridgo/internal/ctxlog"
	"github.com/vk/lifegridgo/internal/life"
	"github.com/vk/lifegridgo/internal/tick"
)

// cellColumns is how many terminal columns one board cell occupies.
// Terminal glyphs are roughly twice as tall as wide.
const cellColumns = 2

// frameInterval paces screen redraws; stepping stays governed by the
// simulation ticker.
const frameInterval = 33 * time.Millisecond

// Styles per transition state. Cells are painted as background color so
// they fill the whole character cell.
var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorn    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleAlive   = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleDied    = tcell.StyleDefault.Background(tcell.ColorRed)
)

// stateStyle maps a transition state to its cell style. Dead cells get the
// default style, which repaints them as empty background.
func stateStyle(s life.CellState) tcell.Style {
	switch s {
	case life.StateBorn:
		return styleBorn
	case life.StateAlive:
		return styleAlive
	case life.StateDied:
		return styleDied
	default:
		return styleDefault
	}
}

// cellForScreen maps a terminal position to board coordinates.
func cellForScreen(sx, sy int) (int, int) {
	return sx / cellColumns, sy
}

// UI runs the simulation inside a full terminal screen.
type UI struct {
	grid    *life.Grid
	ticker  *tick.Ticker
	rng     *rand.Rand
	radius  int
	density float64
}

// New assembles the terminal front end around an existing board.
func New(grid *life.Grid, ticker *tick.Ticker, rng *rand.Rand, cfg *config.Config) *UI {
	return &UI{
		grid:    grid,
		ticker:  ticker,
		rng:     rng,
		radius:  cfg.ClickRadius,
		density: cfg.SeedDensity,
	}
}

// Run takes over the terminal until the player quits or ctx is canceled.
func (u *UI) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(styleDefault)
	screen.EnableMouse()
	screen.Clear()
	logger.Debug("Terminal screen initialized.")

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil { // the screen was finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	paused := false
	var lastButtons tcell.ButtonMask
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q'):
					logger.Debug("Quit requested.")
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					paused = !paused
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					u.grid.Clear()
					u.grid.Randomize(u.rng, u.density)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
					u.grid.Clear()
				}

			case *tcell.EventMouse:
				// Toggle on the press transition only; drag events carry the
				// button bit on every report.
				pressed := ev.Buttons()&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0
				lastButtons = ev.Buttons()
				if pressed {
					sx, sy := ev.Position()
					u.click(logger, sx, sy)
				}

			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-frames.C:
			dt := now.Sub(last)
			last = now
			if !paused && u.ticker.Advance(dt) {
				u.grid.Step()
			}
			u.draw(screen, paused)
		}
	}
}

// click toggles the square region around the clicked cell, dropping clicks
// that land outside the board.
func (u *UI) click(logger *slog.Logger, sx, sy int) {
	x, y := cellForScreen(sx, sy)
	if size := u.grid.Size(); x < 0 || x >= size || y < 0 || y >= size {
		logger.Debug("Click outside the board ignored.", "sx", sx, "sy", sy)
		return
	}
	u.grid.ToggleAround(x, y, u.radius)
}

// draw repaints the board and the status line beneath it.
func (u *UI) draw(screen tcell.Screen, paused bool) {
	size := u.grid.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			style := stateStyle(u.grid.Classify(x, y))
			for c := 0; c < cellColumns; c++ {
				screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}

	status := fmt.Sprintf(" gen %d  alive %d", u.grid.Generation(), u.grid.Population())
	if paused {
		status += "  [paused]"
	}
	status += "  (space pause, r reseed, c clear, q quit)"

	// Blank the whole status row first so a shrinking line leaves no tail.
	width, _ := screen.Size()
	for i := 0; i < width; i++ {
		screen.SetContent(i, size, ' ', nil, styleDefault)
	}
	drawText(screen, 0, size, status, styleDefault)

	screen.Show()
}

// drawText writes a string one rune per column starting at (x, y).
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
