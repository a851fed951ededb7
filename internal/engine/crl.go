package engine

import (
	"sync"

	"github.com/drand/kyber"
)

// CRL is the unordered set of revoked members' tracing trapdoors.
// Re-inserting an already-revoked trapdoor is a no-op.
type CRL struct {
	mu       sync.RWMutex
	trapdoor map[string]kyber.Point
}

// NewCRL returns an empty revocation list.
func NewCRL() *CRL {
	return &CRL{trapdoor: make(map[string]kyber.Point)}
}

// Add inserts trapdoor, doing nothing if already present.
func (c *CRL) Add(trapdoor kyber.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trapdoor[pointKey(trapdoor)] = trapdoor
}

// Contains reports whether trapdoor has been revoked.
func (c *CRL) Contains(trapdoor kyber.Point) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.trapdoor[pointKey(trapdoor)]
	return ok
}

// Entries returns a snapshot of every revoked trapdoor, in no particular
// order, for schemes whose trace() must check a signature against each one.
func (c *CRL) Entries() []kyber.Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]kyber.Point, 0, len(c.trapdoor))
	for _, p := range c.trapdoor {
		out = append(out, p)
	}
	return out
}
