package engine

import (
	"encoding/hex"
	"sync"

	"github.com/drand/kyber"
)

// GML is the append-only, order-preserving membership list: every
// successful join appends exactly one entry, indexed from zero.
type GML struct {
	mu      sync.RWMutex
	entries []GMLEntry
	byA     map[string]int // credential bytes -> index, for O(1) open on large groups
}

// NewGML returns an empty membership list.
func NewGML() *GML {
	return &GML{byA: make(map[string]int)}
}

// Append adds entry, assigning it the next index.
func (g *GML) Append(entry GMLEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	entry.Index = len(g.entries)
	g.entries = append(g.entries, entry)
	if entry.A != nil {
		g.byA[pointKey(entry.A)] = entry.Index
	}
}

// Len returns the number of entries.
func (g *GML) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}

// At returns the entry at index i.
func (g *GML) At(i int) (GMLEntry, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.entries) {
		return GMLEntry{}, false
	}
	return g.entries[i], true
}

// IndexOf returns the index of the entry whose credential equals a, using
// the maintained hash index rather than a linear scan.
func (g *GML) IndexOf(a kyber.Point) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.byA[pointKey(a)]
	return i, ok
}

func pointKey(p kyber.Point) string {
	b, _ := p.MarshalBinary()
	return hex.EncodeToString(b)
}
