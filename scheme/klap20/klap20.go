// Package klap20 registers the GML-free variant: opening recovers a bare
// pseudonym point rather than a group-membership-list index, and tracing a
// revoked trapdoor needs only the group's public opener keys and the
// revocation list, never the opener secret or a membership list.
package klap20

import (
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
)

var descriptor = scheme.Descriptor{
	Code:         scheme.KLAP20,
	Name:         "klap20",
	HasGML:       false,
	HasCRL:       true,
	HasOpenProof: true,
	UsesPairings: true,

	SupportsBlind:   false,
	SupportsLink:    false,
	SupportsSeqLink: false,
}

var capabilities = engine.Capabilities{
	Code:            byte(scheme.KLAP20),
	Name:            descriptor.Name,
	HasGML:          descriptor.HasGML,
	HasCRL:          descriptor.HasCRL,
	NativeTrace:     true,
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
