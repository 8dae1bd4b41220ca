package service

import (
	"sync"
	"time"
)

// IDGenerator hands out transaction ids. Ids are the creation time in
// milliseconds, bumped when two transactions land in the same millisecond, so
// they are unique and increasing within a process.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe raises the floor so ids loaded from storage are never reissued.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	if id > g.last {
		g.last = id
	}
	g.mu.Unlock()
}
