package employee

import (
	"sync"
	"time"
)

// Clock abstracts time so id assignment is deterministic in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator hands out ids for new records. Seed tells it the largest id
// already in use.
type IDGenerator interface {
	Next() int64
	Seed(max int64)
}

// ClockIDs issues creation timestamps in milliseconds, bumped past the
// previous id whenever two records land on the same tick.
type ClockIDs struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

func NewClockIDs(clock Clock) *ClockIDs {
	if clock == nil {
		clock = RealClock{}
	}
	return &ClockIDs{clock: clock}
}

func (g *ClockIDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.clock.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func (g *ClockIDs) Seed(max int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if max > g.last {
		g.last = max
	}
}
