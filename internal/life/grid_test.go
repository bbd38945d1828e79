package life

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, size int) *Grid {
	t.Helper()
	g, err := New(size)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("starts with every cell dead", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 7)

		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				assert.False(t, g.Get(x, y), "cell (%d,%d) should start dead", x, y)
				assert.Equal(t, StateDead, g.Classify(x, y))
			}
		}
		assert.Equal(t, 0, g.Population())
		assert.Equal(t, 0, g.Generation())
		assert.Empty(t, g.AliveCells())
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		t.Parallel()
		for _, size := range []int{0, -1, -50} {
			_, err := New(size)
			assert.Error(t, err, "size %d", size)
		}
	})
}

func TestBoundsChecking(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 5)

	cases := []struct {
		name string
		x, y int
	}{
		{"x negative", -1, 0},
		{"y negative", 0, -1},
		// (5,0) maps to the same flat offset as (0,1); it must not be
		// absorbed silently.
		{"x at size", 5, 0},
		{"y at size", 0, 5},
		{"both out of range", 9, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { g.Get(tc.x, tc.y) }, "Get")
			assert.Panics(t, func() { g.Set(tc.x, tc.y, true) }, "Set")
			assert.Panics(t, func() { g.Toggle(tc.x, tc.y) }, "Toggle")
			assert.Panics(t, func() { g.Neighbors(tc.x, tc.y) }, "Neighbors")
			assert.Panics(t, func() { g.ToggleAround(tc.x, tc.y, 2) }, "ToggleAround")
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	t.Run("is its own inverse", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 10)

		g.Toggle(3, 4)
		assert.True(t, g.Get(3, 4))
		g.Toggle(3, 4)
		assert.False(t, g.Get(3, 4))
		assert.Equal(t, 0, g.Population())
	})

	t.Run("never shifts the previous generation", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 10)

		// A block survives a step, giving the previous generation known
		// live cells to observe through Classify.
		g.Set(1, 1, true)
		g.Set(2, 1, true)
		g.Set(1, 2, true)
		g.Set(2, 2, true)
		g.Step()
		require.Equal(t, StateAlive, g.Classify(1, 1))

		g.Toggle(8, 8)
		assert.Equal(t, StateBorn, g.Classify(8, 8), "previous generation still dead here")
		g.Toggle(8, 8)
		assert.Equal(t, StateDead, g.Classify(8, 8))

		assert.Equal(t, StateAlive, g.Classify(1, 1), "previous generation untouched by toggles")
	})
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	t.Run("corner of an empty grid has zero", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 3)
		assert.Equal(t, 0, g.Neighbors(0, 0))
	})

	t.Run("counts the full Moore neighborhood", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				g.Set(x, y, true)
			}
		}
		assert.Equal(t, 8, g.Neighbors(1, 1), "interior cell sees all eight")
		assert.Equal(t, 3, g.Neighbors(0, 0), "corner sees only three")
		assert.Equal(t, 5, g.Neighbors(1, 0), "edge sees five")
	})

	t.Run("edges never wrap", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 5)
		g.Set(4, 2, true)
		assert.Equal(t, 0, g.Neighbors(0, 2), "far column is not adjacent to the near one")
		g.Set(2, 4, true)
		assert.Equal(t, 0, g.Neighbors(2, 0), "far row is not adjacent to the near one")
	})
}

func TestStep(t *testing.T) {
	t.Parallel()

	t.Run("a lone cell dies of isolation", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 5)
		g.Set(2, 2, true)

		g.Step()

		assert.False(t, g.Get(2, 2))
		assert.Equal(t, 0, g.Population())
		assert.Equal(t, StateDied, g.Classify(2, 2))
	})

	t.Run("a blinker oscillates with period two", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 5)
		row := []Cell{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
		column := []Cell{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
		for _, c := range row {
			g.Set(c.X, c.Y, true)
		}

		g.Step()
		assert.ElementsMatch(t, column, g.AliveCells(), "horizontal becomes vertical")

		g.Step()
		assert.ElementsMatch(t, row, g.AliveCells(), "and flips back")
	})

	t.Run("a block is a still life", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 4)
		block := []Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
		for _, c := range block {
			g.Set(c.X, c.Y, true)
		}

		for i := 0; i < 5; i++ {
			g.Step()
			assert.ElementsMatch(t, block, g.AliveCells(), "after %d steps", i+1)
		}
	})

	t.Run("consumes mutations made between steps", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 5)
		g.Set(1, 2, true)
		g.Set(2, 2, true)
		g.Set(3, 2, true)
		g.Step() // now a vertical blinker

		g.Toggle(2, 1) // decapitate it

		g.Step()
		assert.Equal(t, 0, g.Population(), "the remaining pair starves")
	})

	t.Run("increments the generation counter", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 3)
		g.Step()
		g.Step()
		g.Step()
		assert.Equal(t, 3, g.Generation())
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("matches the transition table after a step", func(t *testing.T) {
		t.Parallel()
		const size = 8
		g := mustGrid(t, size)
		rng := rand.New(rand.NewPCG(11, 11))
		g.Randomize(rng, 0.4)

		before := make([]bool, size*size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				before[y*size+x] = g.Get(x, y)
			}
		}

		g.Step()

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				was, is := before[y*size+x], g.Get(x, y)
				var want CellState
				switch {
				case is && !was:
					want = StateBorn
				case is && was:
					want = StateAlive
				case !is && was:
					want = StateDied
				default:
					want = StateDead
				}
				assert.Equal(t, want, g.Classify(x, y), "cell (%d,%d)", x, y)
			}
		}
	})

	t.Run("fresh toggles read as born", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 4)
		g.Toggle(1, 1)
		assert.Equal(t, StateBorn, g.Classify(1, 1))
	})
}

func TestToggleAround(t *testing.T) {
	t.Parallel()

	t.Run("radius 2 at the origin clips to the in-bounds quarter", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 50)

		g.ToggleAround(0, 0, 2)

		assert.Equal(t, 9, g.Population(), "only the 3x3 corner of the 5x5 square fits")
		for y := 0; y <= 2; y++ {
			for x := 0; x <= 2; x++ {
				assert.True(t, g.Get(x, y), "cell (%d,%d)", x, y)
			}
		}
	})

	t.Run("flips the full square in the interior", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 50)

		g.ToggleAround(25, 25, 2)

		assert.Equal(t, 25, g.Population())
		for y := 23; y <= 27; y++ {
			for x := 23; x <= 27; x++ {
				assert.True(t, g.Get(x, y), "cell (%d,%d)", x, y)
			}
		}
	})

	t.Run("radius zero touches only the center", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 10)
		g.ToggleAround(4, 4, 0)
		assert.ElementsMatch(t, []Cell{{X: 4, Y: 4}}, g.AliveCells())
	})

	t.Run("toggles rather than sets", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 50)
		g.Set(25, 25, true)

		g.ToggleAround(25, 25, 2)

		assert.False(t, g.Get(25, 25), "the pre-set center flips off")
		assert.Equal(t, 24, g.Population())
	})

	t.Run("re-applying restores the board", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 50)
		g.ToggleAround(10, 10, 2)
		g.ToggleAround(10, 10, 2)
		assert.Equal(t, 0, g.Population())
	})
}

func TestRandomize(t *testing.T) {
	t.Parallel()

	t.Run("density bounds are exact", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 20)
		rng := rand.New(rand.NewPCG(3, 3))

		g.Randomize(rng, 1)
		assert.Equal(t, 400, g.Population())

		g.Randomize(rng, 0)
		assert.Equal(t, 0, g.Population())
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		t.Parallel()
		a := mustGrid(t, 20)
		b := mustGrid(t, 20)
		a.Randomize(rand.New(rand.NewPCG(9, 9)), 0.3)
		b.Randomize(rand.New(rand.NewPCG(9, 9)), 0.3)
		assert.Equal(t, a.AliveCells(), b.AliveCells())
	})

	t.Run("leaves the previous generation alone", func(t *testing.T) {
		t.Parallel()
		g := mustGrid(t, 20)
		g.Randomize(rand.New(rand.NewPCG(5, 5)), 0.5)
		for _, c := range g.AliveCells() {
			require.Equal(t, StateBorn, g.Classify(c.X, c.Y))
		}
	})
}

func TestClear(t *testing.T) {
	t.Parallel()
	g := mustGrid(t, 10)
	g.Randomize(rand.New(rand.NewPCG(2, 2)), 0.5)
	g.Step()
	g.Step()

	g.Clear()

	assert.Equal(t, 0, g.Population())
	assert.Equal(t, 0, g.Generation())
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, StateDead, g.Classify(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// naiveStep advances a bool matrix with an independent textbook
// implementation, used as an oracle for the buffered one.
func naiveStep(cells [][]bool) [][]bool {
	size := len(cells)
	next := make([][]bool, size)
	for y := range next {
		next[y] = make([]bool, size)
		for x := range next[y] {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= size || ny >= size {
						continue
					}
					if cells[ny][nx] {
						n++
					}
				}
			}
			if cells[y][x] {
				next[y][x] = n == 2 || n == 3
			} else {
				next[y][x] = n == 3
			}
		}
	}
	return next
}

func TestStepMatchesReference(t *testing.T) {
	t.Parallel()
	const size = 32
	g := mustGrid(t, size)
	g.Randomize(rand.New(rand.NewPCG(42, 42)), 0.3)

	ref := make([][]bool, size)
	for y := range ref {
		ref[y] = make([]bool, size)
		for x := range ref[y] {
			ref[y][x] = g.Get(x, y)
		}
	}

	for turn := 1; turn <= 50; turn++ {
		g.Step()
		ref = naiveStep(ref)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				require.Equal(t, ref[y][x], g.Get(x, y),
					"cell (%d,%d) diverged at generation %d", x, y, turn)
			}
		}
	}
}
