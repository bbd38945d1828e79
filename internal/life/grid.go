package life

import (
	"fmt"
	"math/rand/v2"
)

// Cell is a single board coordinate.
type Cell struct {
	X int
	Y int
}

// Grid is a bounded square Game of Life board. Cells live in flat row-major
// slices indexed y*size+x. Two buffers are kept, the current generation and
// the one before it, so every cell can be classified by its most recent
// transition.
type Grid struct {
	size       int
	cells      []bool
	prev       []bool
	generation int
}

// New creates an all-dead grid of size×size cells.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("life: grid size must be positive, got %d", size)
	}
	return &Grid{
		size:  size,
		cells: make([]bool, size*size),
		prev:  make([]bool, size*size),
	}, nil
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.size }

// Generation returns the number of completed steps.
func (g *Grid) Generation() int { return g.generation }

// index converts coordinates to a flat offset. Each axis is checked on its
// own: the flat slice would otherwise absorb (size, 0) as (0, 1).
func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", x, y, g.size, g.size))
	}
	return y*g.size + x
}

// Get reports whether the cell at (x, y) is alive. It panics when either
// coordinate is out of range.
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.index(x, y)]
}

// Set makes the cell at (x, y) alive or dead. It panics when either
// coordinate is out of range.
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[g.index(x, y)] = alive
}

// Toggle flips the cell at (x, y). Like Set it touches only the current
// generation; the previous one shifts on Step alone.
func (g *Grid) Toggle(x, y int) {
	i := g.index(x, y)
	g.cells[i] = !g.cells[i]
}

// Neighbors counts the live cells among the eight Moore neighbors of
// (x, y). Positions beyond the edge count as dead.
func (g *Grid) Neighbors(x, y int) int {
	g.index(x, y) // reject an out-of-range center before counting
	return g.neighbors(g.cells, x, y)
}

func (g *Grid) neighbors(cells []bool, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= g.size || ny < 0 || ny >= g.size {
				continue
			}
			if cells[ny*g.size+nx] {
				n++
			}
		}
	}
	return n
}

// Step advances the board by one generation. The whole next generation is
// computed from a snapshot of the current one, so scan order never leaks
// into the result. Afterwards the pre-step cells become the previous
// generation. The buffers rotate rather than reallocate, keeping a steady
// run free of garbage.
func (g *Grid) Step() {
	next := g.prev // the oldest buffer becomes scratch
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			n := g.neighbors(g.cells, x, y)
			alive := g.cells[y*g.size+x]
			next[y*g.size+x] = (alive && n == 2) || n == 3
		}
	}
	g.prev = g.cells
	g.cells = next
	g.generation++
}

// Classify reports the visual state of the cell at (x, y), derived from its
// liveness before and after the most recent step. It panics when either
// coordinate is out of range.
func (g *Grid) Classify(x, y int) CellState {
	i := g.index(x, y)
	switch {
	case g.cells[i] && !g.prev[i]:
		return StateBorn
	case g.cells[i] && g.prev[i]:
		return StateAlive
	case !g.cells[i] && g.prev[i]:
		return StateDied
	default:
		return StateDead
	}
}

// ToggleAround flips every cell of the square with side 2*radius+1 centered
// on (cx, cy). Offsets that fall outside the grid are skipped silently; the
// center itself must be in range, callers are expected to validate it first.
// Despite the parameter name, the region is a square rather than a disc.
func (g *Grid) ToggleAround(cx, cy, radius int) {
	g.index(cx, cy)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= g.size || y < 0 || y >= g.size {
				continue
			}
			g.cells[y*g.size+x] = !g.cells[y*g.size+x]
		}
	}
}

// Population returns how many cells are currently alive.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// AliveCells returns the coordinates of every live cell in row-major order.
func (g *Grid) AliveCells() []Cell {
	var out []Cell
	for i, alive := range g.cells {
		if alive {
			out = append(out, Cell{X: i % g.size, Y: i / g.size})
		}
	}
	return out
}

// Randomize fills the current generation with Bernoulli noise, making each
// cell alive with probability density. The previous generation stays put,
// exactly as with Toggle.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// Clear resets the grid to its freshly constructed state: both generations
// all dead and the step counter at zero.
func (g *Grid) Clear() {
	clear(g.cells)
	clear(g.prev)
	g.generation = 0
}
