// Package dl21 registers the linkable variant: every signature carries a
// scope-bound pseudonym Nym = Hscope^x, letting a member prove that two
// signatures over the same scope came from the same secret without
// revealing which member, via prove_equality's shared-witness Schnorr proof.
package dl21

import (
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
)

var descriptor = scheme.Descriptor{
	Code:         scheme.DL21,
	Name:         "dl21",
	HasGML:       true,
	HasCRL:       true,
	HasOpenProof: false,
	UsesPairings: true,

	SupportsBlind:   false,
	SupportsLink:    true,
	SupportsSeqLink: false,
}

var capabilities = engine.Capabilities{
	Code:            byte(scheme.DL21),
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
