// Package bbs04 registers the baseline group signature scheme: a
// Boneh-Boyen credential signed with a linear Fiat-Shamir proof, GML-backed
// opening, no blinding and no linkability. It is the scheme every other
// scheme/* package is a variation of.
package bbs04

import (
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
)

var descriptor = scheme.Descriptor{
	Code:         scheme.BBS04,
	Name:         "bbs04",
	HasGML:       true,
	HasCRL:       true,
	HasOpenProof: false,
	UsesPairings: true,

	SupportsBlind:   false,
	SupportsLink:    false,
	SupportsSeqLink: false,
}

var capabilities = engine.Capabilities{
	Code:            byte(scheme.BBS04),
	Name:            descriptor.Name,
	HasGML:          descriptor.HasGML,
	HasCRL:          descriptor.HasCRL,
	NativeTrace:     false,
	HasOpenProof:    descriptor.HasOpenProof,
	SupportsBlind:   descriptor.SupportsBlind,
	SupportsLink:    descriptor.SupportsLink,
	SupportsSeqLink: descriptor.SupportsSeqLink,
}

// backend adapts engine.GenericBackend to scheme.Backend by supplying the
// one method the engine package cannot itself provide without importing
// scheme back (an import cycle).
type backend struct {
	*engine.GenericBackend
}

func (backend) Descriptor() scheme.Descriptor { return descriptor }

func init() {
	suite := engine.NewSuite()
	scheme.Register(backend{engine.NewGenericBackend(suite, capabilities)})
}
