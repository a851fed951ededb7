// Package dl21seq registers the sequentially-linkable variant: dl21's
// scope-bound pseudonym chained across an explicit sequence position, so
// verify_seqlink can additionally check that a batch of signatures forms an
// unbroken, correctly-ordered chain from the same member.
package dl21seq

import (
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
)

var descriptor = scheme.Descriptor{
	Code:         scheme.DL21SEQ,
	Name:         "dl21seq",
	HasGML:       true,
	HasCRL:       true,
	HasOpenProof: false,
	UsesPairings: true,

	SupportsBlind:   false,
	SupportsLink:    true,
	SupportsSeqLink: true,
}

var capabilities = engine.Capabilities{
	Code:            byte(scheme.DL21SEQ),
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
