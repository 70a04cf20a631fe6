package habitat

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out zone identifiers
type IDGenerator interface {
	NextID() string
}

// CounterIDs produces monotonic identifiers such as "zone-7"
type CounterIDs struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewCounterIDs creates a counter starting at 1
func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{prefix: prefix, next: 1}
}

// NextID returns the next identifier
func (c *CounterIDs) NextID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := fmt.Sprintf("%s%d", c.prefix, c.next)
	c.next++
	return id
}

// UUIDs produces random version 4 UUIDs
type UUIDs struct{}

// NextID returns a new UUID string
func (UUIDs) NextID() string {
	return uuid.NewString()
}
