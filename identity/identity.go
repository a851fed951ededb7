// Package identity implements the value an open() operation produces:
// either a small non-negative integer indexing a GML entry, or a group
// element usable directly as an unlinkable pseudonym, depending on whether
// the selected scheme maintains a GML. A Go sum type stands in for what
// would otherwise be a scheme-tagged union.
package identity

import (
	"encoding/hex"
	"fmt"

	"github.com/drand/kyber"
)

// Identity is immutable once constructed; the two constructors are mutually
// exclusive.
type Identity struct {
	index     int
	hasIndex  bool
	pseudonym kyber.Point
}

// FromIndex wraps a GML index.
func FromIndex(i int) Identity { return Identity{index: i, hasIndex: true} }

// FromPseudonym wraps a decrypted credential element used directly as the
// identity, for has_gml=false schemes.
func FromPseudonym(p kyber.Point) Identity { return Identity{pseudonym: p} }

// IsIndex reports whether this identity is a GML index rather than a
// pseudonym.
func (id Identity) IsIndex() bool { return id.hasIndex }

// Index returns the GML index and true, or (0, false) for a pseudonym
// identity.
func (id Identity) Index() (int, bool) { return id.index, id.hasIndex }

// Pseudonym returns the pseudonym point and true, or (nil, false) for an
// index identity.
func (id Identity) Pseudonym() (kyber.Point, bool) {
	if id.hasIndex {
		return nil, false
	}
	return id.pseudonym, true
}

// Equal reports whether id and other identify the same member.
func (id Identity) Equal(other Identity) bool {
	if id.hasIndex != other.hasIndex {
		return false
	}
	if id.hasIndex {
		return id.index == other.index
	}
	if id.pseudonym == nil || other.pseudonym == nil {
		return id.pseudonym == other.pseudonym
	}
	return id.pseudonym.Equal(other.pseudonym)
}

// String renders the identity for logging and the text wire format: a
// decimal index, or a hex-encoded pseudonym.
func (id Identity) String() string {
	if id.hasIndex {
		return fmt.Sprintf("%d", id.index)
	}
	b, _ := id.pseudonym.MarshalBinary()
	return hex.EncodeToString(b)
}
