package life

import "fmt"

// CellState is the render-facing classification of a cell, derived from its
// liveness in the previous and current generations.
type CellState uint8

const (
	// StateDead marks a cell that is dead now and was dead before.
	// Renderers usually skip these entirely.
	StateDead CellState = iota
	// StateBorn marks a cell that is alive now but was dead before.
	StateBorn
	// StateAlive marks a cell that is alive now and was alive before.
	StateAlive
	// StateDied marks a cell that is dead now but was alive before.
	StateDied
)

func (s CellState) String() string {
	switch s {
	case StateDead:
		return "dead"
	case StateBorn:
		return "born"
	case StateAlive:
		return "alive"
	case StateDied:
		return "died"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}
