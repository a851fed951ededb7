// Package ps16 registers the verifiable-opening variant: the same
// credential and signing engine as bbs04, plus an opener that emits a
// Schnorr proof tying the identity it reveals to its own public key, so a
// member contesting an opening can check it without trusting the opener.
package ps16

import (
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
)

var descriptor = scheme.Descriptor{
	Code:         scheme.PS16,
	Name:         "ps16",
	HasGML:       true,
	HasCRL:       true,
	HasOpenProof: true,
	UsesPairings: true,

	SupportsBlind:   false,
	SupportsLink:    false,
	SupportsSeqLink: false,
}

var capabilities = engine.Capabilities{
	Code:            byte(scheme.PS16),
	Name:            descriptor.Name,
	HasGML:          descriptor.HasGML,
	HasCRL:          descriptor.HasCRL,
	NativeTrace:     false,
	HasOpenProof:    descriptor.HasOpenProof,
	SupportsBlind:   descriptor.SupportsBlind,
	SupportsLink:    descriptor.SupportsLink,
	SupportsSeqLink: descriptor.SupportsSeqLink,
}

type backend struct {
	*engine.GenericBackend
}

func (backend) Descriptor() scheme.Descriptor { return descriptor }

func init() {
	suite := engine.NewSuite()
	scheme.Register(backend{engine.NewGenericBackend(suite, capabilities)})
}
