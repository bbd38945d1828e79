// Package tick provides the fixed-interval gate deciding when the
// simulation advances a generation. Keeping the accumulator here, outside
// the board, lets every front end drive the same pacing from its own frame
// loop.
package tick

import (
	"fmt"
	"time"
)

// Ticker accumulates elapsed wall time and fires once the configured
// interval has been reached. It fires at most once per Advance call and
// keeps only the remainder modulo one interval afterwards, so a long stall
// never replays as a burst of catch-up generations.
type Ticker struct {
	interval time.Duration
	accum    time.Duration
}

// New creates a Ticker firing every interval.
func New(interval time.Duration) (*Ticker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("tick: interval must be positive, got %v", interval)
	}
	return &Ticker{interval: interval}, nil
}

// Advance adds dt to the accumulated time and reports whether the interval
// has elapsed. Negative elapsed time is ignored.
func (t *Ticker) Advance(dt time.Duration) bool {
	if dt > 0 {
		t.accum += dt
	}
	if t.accum < t.interval {
		return false
	}
	t.accum %= t.interval
	return true
}

// Interval returns the configured firing interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Reset discards any accumulated time.
func (t *Ticker) Reset() { t.accum = 0 }
