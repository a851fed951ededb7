package engine

import (
	"errors"

	"github.com/drand/kyber"
)

// ErrUnsupported is returned by every error-returning operation a scheme's
// Capabilities do not advertise; the boolean verifiers (OpenVerify,
// ProveEqualityVerify, VerifySeqLink) return false instead. The root
// groupsig facade maps it onto gserr.Unsupported.
var ErrUnsupported = errors.New("engine: operation not supported by this scheme")

// GenericBackend implements scheme.Backend for any Capabilities value: it
// is the single shared implementation every concrete scheme package
// (bbs04, gl19, ps16, klap20, dl21, dl21seq) registers, differentiated only
// by which capability flags it was built with. See DESIGN.md "scheme
// polymorphism" for why one engine backs all six scheme codes.
type GenericBackend struct {
	Suite *Suite
	Caps  Capabilities
}

// NewGenericBackend builds a backend sharing suite across every scheme
// instance, since the pairing parameters are process-global.
func NewGenericBackend(suite *Suite, caps Capabilities) *GenericBackend {
	return &GenericBackend{Suite: suite, Caps: caps}
}

func (b *GenericBackend) Setup(env RandSource) (*GroupKey, *IssuerKey, *OpenerKey, error) {
	return Setup(b.Suite, env)
}

func (b *GenericBackend) JoinMemberStep(env RandSource, gk *GroupKey, mk *MemberKey, step int, in *JoinMsg) (*JoinMsg, error) {
	return JoinMember(b.Suite, env, gk, mk, step, in)
}

func (b *GenericBackend) JoinIssuerStep(isskey *IssuerKey, gml *GML, step int, in *JoinMsg) (*JoinMsg, error) {
	return JoinIssuer(b.Suite, isskey, gml, step, in)
}

func (b *GenericBackend) Sign(env RandSource, gk *GroupKey, mk *MemberKey, msg, scope []byte, seed *uint64) (*Signature, error) {
	if len(scope) > 0 && !b.Caps.SupportsLink {
		return nil, ErrUnsupported
	}
	return Sign(b.Suite, env, b.Caps, gk, mk, msg, scope, seed)
}

func (b *GenericBackend) Verify(gk *GroupKey, sig *Signature, msg, scope []byte) bool {
	return Verify(b.Suite, b.Caps, gk, sig, msg, scope)
}

func (b *GenericBackend) VerifyBatch(gk *GroupKey, sigs []*Signature, msgs, scopes [][]byte) bool {
	for i, sig := range sigs {
		var scope []byte
		if scopes != nil {
			scope = scopes[i]
		}
		if !Verify(b.Suite, b.Caps, gk, sig, msgs[i], scope) {
			return false
		}
	}
	return true
}

func (b *GenericBackend) Open(ok *OpenerKey, gml *GML, sig *Signature) (int, kyber.Point, error) {
	if b.Caps.HasGML {
		idx, err := Open(b.Suite, ok, gml, sig)
		return idx, nil, err
	}
	return 0, OpenPseudonym(b.Suite, ok, sig), nil
}

func (b *GenericBackend) OpenProof(env RandSource, gk *GroupKey, ok *OpenerKey, sig *Signature, identity kyber.Point) (*Proof, error) {
	if !b.Caps.HasOpenProof {
		return nil, ErrUnsupported
	}
	return OpenProof(b.Suite, env, gk, ok, sig, identity), nil
}

func (b *GenericBackend) OpenVerify(gk *GroupKey, sig *Signature, identity kyber.Point, proof *Proof) bool {
	if !b.Caps.HasOpenProof {
		return false
	}
	return OpenVerify(b.Suite, gk, sig, identity, proof)
}

func (b *GenericBackend) Reveal(gml *GML, idx int) (kyber.Point, error) {
	if !b.Caps.HasCRL {
		return nil, ErrUnsupported
	}
	return Reveal(gml, idx)
}

func (b *GenericBackend) Trace(gk *GroupKey, ok *OpenerKey, gml *GML, crl *CRL, sig *Signature) (bool, error) {
	if !b.Caps.HasCRL {
		return false, ErrUnsupported
	}
	return Trace(b.Suite, b.Caps, gk, ok, gml, crl, sig)
}

func (b *GenericBackend) Identify(mk *MemberKey, sig *Signature, msg []byte) bool {
	return Identify(b.Suite, mk, sig, msg)
}

func (b *GenericBackend) Claim(env RandSource, mk *MemberKey, sig *Signature, msg []byte) (*Proof, error) {
	return Claim(b.Suite, env, mk, sig, msg)
}

func (b *GenericBackend) ClaimVerify(sig *Signature, msg []byte, proof *Proof) bool {
	return ClaimVerify(b.Suite, sig, msg, proof)
}

func (b *GenericBackend) ProveEquality(env RandSource, mk *MemberKey, sigs []*Signature, scopes [][]byte) (*Proof, error) {
	if !b.Caps.SupportsLink {
		return nil, ErrUnsupported
	}
	return ProveEquality(b.Suite, env, b.Caps, mk, sigs, scopes)
}

func (b *GenericBackend) ProveEqualityVerify(sigs []*Signature, scopes [][]byte, proof *Proof) bool {
	if !b.Caps.SupportsLink {
		return false
	}
	return ProveEqualityVerify(b.Suite, b.Caps, sigs, scopes, proof)
}

func (b *GenericBackend) VerifySeqLink(sigs []*Signature, scope []byte, firstSeed uint64, proof *Proof) bool {
	if !b.Caps.SupportsSeqLink {
		return false
	}
	return VerifySeqLink(b.Suite, b.Caps, sigs, scope, firstSeed, proof)
}

func (b *GenericBackend) Blind(env RandSource, gk *GroupKey, sig *Signature, msg []byte, blindPub kyber.Point) (*BlindSignature, error) {
	if !b.Caps.SupportsBlind {
		return nil, ErrUnsupported
	}
	return Blind(b.Suite, env, gk, sig, msg, blindPub), nil
}

func (b *GenericBackend) Convert(env RandSource, ok *OpenerKey, batch []*BlindSignature) ([]*BlindSignature, error) {
	if !b.Caps.SupportsBlind {
		return nil, ErrUnsupported
	}
	return Convert(b.Suite, env, ok, batch), nil
}

func (b *GenericBackend) Unblind(bk *BlindKey, converted *BlindSignature) (kyber.Point, kyber.Point, error) {
	if !b.Caps.SupportsBlind {
		return nil, nil, ErrUnsupported
	}
	p, m := Unblind(b.Suite, bk, converted)
	return p, m, nil
}
