// Package gl19 registers the blind-signature variant: the same credential
// and signing engine as bbs04, plus the double-ElGamal blind/convert/unblind
// construction: an inspector holding the opener secret converts a batch of
// blind signatures without learning the plaintext pseudonyms, and only the
// receiver holding the blinding secret key recovers them with unblind.
package gl19

import (
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
)

var descriptor = scheme.Descriptor{
	Code:         scheme.GL19,
	Name:         "gl19",
	HasGML:       true,
	HasCRL:       true,
	HasOpenProof: false,
	UsesPairings: true,

	SupportsBlind:   true,
	SupportsLink:    false,
	SupportsSeqLink: false,
}

var capabilities = engine.Capabilities{
	Code:            byte(scheme.GL19),
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
