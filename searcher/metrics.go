package searcher

import (
	"sync/atomic"
	"time"
)

// MoveMetrics describes one FindMove call.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Playouts  int64
}

// Collector receives instrumentation hooks around move and playout
// boundaries. Implementations must be safe for concurrent AddPlayout
// calls.
type Collector interface {
	Start()
	AddPlayout()
	Complete() MoveMetrics
}

type collector struct {
	startTime time.Time
	playouts  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.playouts.Store(0)
}

func (c *collector) AddPlayout() {
	c.playouts.Add(1)
}

func (c *collector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Playouts:  c.playouts.Load(),
	}
}

type noCollector struct{}

// NewNoCollector returns the default collector: every hook is a no-op.
func NewNoCollector() Collector {
	return &noCollector{}
}

func (noCollector) Start()                {}
func (noCollector) AddPlayout()           {}
func (noCollector) Complete() MoveMetrics { return MoveMetrics{} }
