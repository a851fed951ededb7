// Package crl implements the Certificate Revocation List: an unordered set
// of per-member tracing trapdoors, used only by schemes whose descriptor
// advertises CRL support.
package crl

import (
	"encoding/binary"
	"fmt"

	"github.com/drand/kyber"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/wire"
)

// CRL wraps the engine's revocation set with scheme-tagged serialization.
type CRL struct {
	Code   scheme.Code
	engine *engine.CRL
}

// New returns an empty revocation list for the given scheme.
func New(code scheme.Code) *CRL {
	return &CRL{Code: code, engine: engine.NewCRL()}
}

// Internal exposes the underlying engine set for use by scheme backends
// within this module.
func (c *CRL) Internal() *engine.CRL { return c.engine }

// Len returns the number of revoked trapdoors.
func (c *CRL) Len() int { return len(c.engine.Entries()) }

// Export serializes the list: a scheme byte, a count, then each trapdoor
// point.
func (c *CRL) Export() ([]byte, error) {
	entries := c.engine.Entries()
	e := wire.NewEncoder(byte(c.Code))
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(entries)))
	e.WriteField(countBuf[:])
	for _, p := range entries {
		if err := e.WritePoint(p); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// Import parses the wire format Export produces into a fresh list whose
// points live in group g1, validating the leading scheme byte matches code.
func Import(code scheme.Code, g1 kyber.Group, data []byte) (*CRL, error) {
	d := wire.NewDecoder(data)
	tag, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if scheme.Code(tag) != code {
		return nil, fmt.Errorf("crl: scheme tag mismatch: got %d, want %d", tag, code)
	}
	countField, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	if len(countField) != 4 {
		return nil, fmt.Errorf("crl: malformed entry count")
	}
	n := binary.BigEndian.Uint32(countField)

	out := New(code)
	for i := uint32(0); i < n; i++ {
		p, err := d.ReadPoint(g1)
		if err != nil {
			return nil, err
		}
		out.engine.Add(p)
	}
	return out, nil
}
