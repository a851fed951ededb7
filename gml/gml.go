// Package gml implements the Group Membership List: an append-only,
// order-preserving list of membership records, required by every scheme
// whose open() operation resolves a signature to an enrollment index.
package gml

import (
	"encoding/binary"
	"fmt"

	"github.com/drand/kyber"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/wire"
)

// GML wraps the engine's membership list with scheme-tagged serialization.
type GML struct {
	Code   scheme.Code
	engine *engine.GML
}

// New returns an empty membership list for the given scheme.
func New(code scheme.Code) *GML {
	return &GML{Code: code, engine: engine.NewGML()}
}

// Len returns the number of entries.
func (g *GML) Len() int { return g.engine.Len() }

// Entry is the public view of one membership record.
type Entry struct {
	Index int
}

// At returns the entry at index i.
func (g *GML) At(i int) (Entry, bool) {
	e, ok := g.engine.At(i)
	if !ok {
		return Entry{}, false
	}
	return Entry{Index: e.Index}, true
}

// Internal exposes the underlying engine list for use by scheme backends
// within this module; it is not part of the package's serialization
// surface.
func (g *GML) Internal() *engine.GML { return g.engine }

// Export serializes the list to the module's bit-exact wire format: a
// scheme byte, an entry count, then each entry's credential and public
// commitment points.
func (g *GML) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(g.Code))
	n := g.engine.Len()
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(n))
	e.WriteField(countBuf[:])
	for i := 0; i < n; i++ {
		entry, _ := g.engine.At(i)
		if err := e.WritePoint(entry.A); err != nil {
			return nil, err
		}
		if err := e.WritePoint(entry.Px); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// Import parses the wire format Export produces into a fresh list whose
// points live in group g1, validating the leading scheme byte matches code.
func Import(code scheme.Code, g1 kyber.Group, data []byte) (*GML, error) {
	d := wire.NewDecoder(data)
	tag, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if scheme.Code(tag) != code {
		return nil, fmt.Errorf("gml: scheme tag mismatch: got %d, want %d", tag, code)
	}
	countField, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	if len(countField) != 4 {
		return nil, fmt.Errorf("gml: malformed entry count")
	}
	n := binary.BigEndian.Uint32(countField)

	out := New(code)
	for i := uint32(0); i < n; i++ {
		a, err := d.ReadPoint(g1)
		if err != nil {
			return nil, err
		}
		px, err := d.ReadPoint(g1)
		if err != nil {
			return nil, err
		}
		out.engine.Append(engine.GMLEntry{A: a, Px: px})
	}
	return out, nil
}
