package engine

import (
	"github.com/drand/kyber"
)

// Identify reports whether mk's member could have produced sig: it
// recomputes the per-signature randomness r from (mk.X, msg, sig.Salt) and
// checks it reproduces sig.C1 - sound because only someone who knows X can
// hit the same discrete log of g1 that C1 already commits to, and it
// reveals nothing about X since the comparison is public-coin. Works for
// every scheme built on this engine regardless of link support.
func Identify(s *Suite, mk *MemberKey, sig *Signature, msg []byte) bool {
	r := deriveR(s, mk.X, msg, sig.Salt)
	return s.G1.Point().Mul(r, nil).Equal(sig.C1)
}

// Claim builds a Schnorr proof of knowledge of the discrete log of sig.C1
// (base g1) that the member computes via deriveR, a non-repudiable "I
// produced this signature" proof. It first requires Identify to hold.
func Claim(s *Suite, env RandSource, mk *MemberKey, sig *Signature, msg []byte) (*Proof, error) {
	r := deriveR(s, mk.X, msg, sig.Salt)
	if !s.G1.Point().Mul(r, nil).Equal(sig.C1) {
		return nil, ErrNoMatch
	}
	k := s.PickScalar(env.Stream())
	commit := s.G1.Point().Mul(k, nil)
	c := s.ScalarFromHash([]byte("groupsig/claim"), marshal(sig.C1), marshal(commit), msg).Scalar
	resp := s.NewScalar().Add(k, s.NewScalar().Mul(c, r))
	return &Proof{Commits: []kyber.Point{sig.C1}, Challenge: c, Response: resp}, nil
}

// ClaimVerify checks a Claim proof against the target signature.
func ClaimVerify(s *Suite, sig *Signature, msg []byte, proof *Proof) bool {
	if proof == nil || len(proof.Commits) != 1 || !proof.Commits[0].Equal(sig.C1) {
		return false
	}
	negC := s.NewScalar().Neg(proof.Challenge)
	commit := s.G1.Point().Add(s.G1.Point().Mul(proof.Response, nil), s.G1.Point().Mul(negC, sig.C1))
	expected := s.ScalarFromHash([]byte("groupsig/claim"), marshal(sig.C1), marshal(commit), msg).Scalar
	return expected.Equal(proof.Challenge)
}

// ProveEquality proves that a single member key underlies every signature
// in sigs, by building one Schnorr AND-proof across their Nym fields that
// shares a single witness (mk.X) and a single challenge. It fails fast if
// any signature's Nym does not actually match mk under its
// own scope - a different signer or a tampered Nym is rejected before any
// proof is built, matching link's "fail if a different member key produced
// either signature".
func ProveEquality(s *Suite, env RandSource, caps Capabilities, mk *MemberKey, sigs []*Signature, scopes [][]byte) (*Proof, error) {
	bases := make([]kyber.Point, len(sigs))
	for i, sig := range sigs {
		base := scopeBase(s, scopes[i], caps, &sig.Seed)
		if !s.G1.Point().Mul(mk.X, base).Equal(sig.Nym) {
			return nil, ErrNoMatch
		}
		bases[i] = base
	}

	k := s.PickScalar(env.Stream())
	commits := make([]kyber.Point, len(bases))
	parts := [][]byte{[]byte("groupsig/equality")}
	for i, base := range bases {
		commits[i] = s.G1.Point().Mul(k, base)
		parts = append(parts, marshal(sigs[i].Nym), marshal(commits[i]))
	}
	c := s.ScalarFromHash(parts...).Scalar
	resp := s.NewScalar().Add(k, s.NewScalar().Mul(c, mk.X))

	return &Proof{Commits: commits, Challenge: c, Response: resp}, nil
}

// ProveEqualityVerify checks a ProveEquality proof against the signatures
// and scopes it claims to link.
func ProveEqualityVerify(s *Suite, caps Capabilities, sigs []*Signature, scopes [][]byte, proof *Proof) bool {
	if proof == nil || len(proof.Commits) != len(sigs) {
		return false
	}
	negC := s.NewScalar().Neg(proof.Challenge)
	parts := [][]byte{[]byte("groupsig/equality")}
	for i, sig := range sigs {
		base := scopeBase(s, scopes[i], caps, &sig.Seed)
		recommit := s.G1.Point().Add(s.G1.Point().Mul(proof.Response, base), s.G1.Point().Mul(negC, sig.Nym))
		if !recommit.Equal(proof.Commits[i]) {
			return false
		}
		parts = append(parts, marshal(sig.Nym), marshal(proof.Commits[i]))
	}
	expected := s.ScalarFromHash(parts...).Scalar
	return expected.Equal(proof.Challenge)
}

// VerifySeqLink checks that sigs form a chain at consecutive positions
// starting at firstSeed, sharing one scope: each Nym must be reachable from
// the previous one via the public exponent ratio seed[i+1]/seed[i], which
// holds iff both were produced by the same x bound to the same scope. It
// also runs ProveEqualityVerify so the chain additionally proves a single
// common signer.
func VerifySeqLink(s *Suite, caps Capabilities, sigs []*Signature, scope []byte, firstSeed uint64, proof *Proof) bool {
	for i, sig := range sigs {
		if sig.Seed != firstSeed+uint64(i) {
			return false
		}
	}
	for i := 1; i < len(sigs); i++ {
		ratio := s.NewScalar().Div(seedScalar(s, sigs[i].Seed), seedScalar(s, sigs[i-1].Seed))
		if !s.G1.Point().Mul(ratio, sigs[i-1].Nym).Equal(sigs[i].Nym) {
			return false
		}
	}
	scopes := make([][]byte, len(sigs))
	for i := range sigs {
		scopes[i] = scope
	}
	return ProveEqualityVerify(s, caps, sigs, scopes, proof)
}
