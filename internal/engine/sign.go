package engine

import (
	"github.com/drand/kyber"
)

// Sign builds a scheme-agnostic group signature over msg: an ElGamal
// encryption (C1, C2) of the signer's credential under the group's opener
// key, plus a Fiat-Shamir Sigma-protocol transcript proving in zero
// knowledge that (C1, C2) decrypts to a validly-issued credential.
//
// The three witnesses are the member secret x, the per-signature
// randomness r, and the product δ = x*r introduced to keep every public
// equation linear in the witnesses.
// When seed is non-nil, its 8-byte big-endian form becomes the public salt
// from which r is derived, making C1, C2 and the salt reproducible; the
// Sigma-protocol nonces are always drawn from env, so the challenge and
// responses differ between runs. Otherwise a fresh salt is drawn from env
// and recorded in the clear. For link-capable
// schemes, a fourth equation binds the same x (times the seed, for
// seqlink-capable schemes) to a scope-derived pseudonym Nym.
func Sign(s *Suite, env RandSource, caps Capabilities, gk *GroupKey, mk *MemberKey, msg, scope []byte, seed *uint64) (*Signature, error) {
	salt := saltFor(env, seed)
	r := deriveR(s, mk.X, msg, salt)
	delta := s.NewScalar().Mul(mk.X, r)

	c1 := s.G1.Point().Mul(r, nil)
	c2 := s.G1.Point().Add(mk.A, s.G1.Point().Mul(r, gk.OpenerPubG1))

	kx := s.PickScalar(env.Stream())
	kr := s.PickScalar(env.Stream())
	kd := s.PickScalar(env.Stream())

	r1 := s.G1.Point().Mul(kr, nil)
	r2 := s.G1.Point().Sub(s.G1.Point().Mul(kx, c1), s.G1.Point().Mul(kd, nil))
	r3 := r3Commit(s, gk, c2, kx, kr, kd)

	var nym, base4 kyber.Point
	var seedVal uint64
	if caps.SupportsLink && len(scope) > 0 {
		if caps.SupportsSeqLink {
			if seed == nil {
				return nil, errSeqLinkNeedsSeed
			}
			seedVal = *seed
		}
		base4 = scopeBase(s, scope, caps, seed)
		nym = s.G1.Point().Mul(mk.X, base4)
	}
	var r4 kyber.Point
	if base4 != nil {
		r4 = s.G1.Point().Mul(kx, base4)
	}

	challenge := s.ScalarFromHash(
		transcriptParts(gk, c1, c2, r1, r2, r3, r4, nym, msg, salt)...,
	).Scalar

	sx := s.NewScalar().Add(kx, s.NewScalar().Mul(challenge, mk.X))
	sr := s.NewScalar().Add(kr, s.NewScalar().Mul(challenge, r))
	sd := s.NewScalar().Add(kd, s.NewScalar().Mul(challenge, delta))

	return &Signature{
		C1: c1, C2: c2, Salt: salt,
		Challenge: challenge, Sx: sx, Sr: sr, Sdelta: sd,
		Nym: nym, Seed: seedVal,
	}, nil
}

// Verify recomputes the prover's first-round commitments from the
// transcript's challenge and responses and accepts iff re-hashing them
// reproduces the same challenge.
func Verify(s *Suite, caps Capabilities, gk *GroupKey, sig *Signature, msg, scope []byte) bool {
	if sig == nil || sig.C1 == nil || sig.C2 == nil || sig.Challenge == nil {
		return false
	}
	c := sig.Challenge
	negC := s.NewScalar().Neg(c)

	r1 := s.G1.Point().Add(s.G1.Point().Mul(sig.Sr, nil), s.G1.Point().Mul(negC, sig.C1))
	r2 := s.G1.Point().Sub(s.G1.Point().Mul(sig.Sx, sig.C1), s.G1.Point().Mul(sig.Sdelta, nil))

	target := credentialTarget(s, gk, sig.C2)
	r3 := r3Commit(s, gk, sig.C2, sig.Sx, sig.Sr, sig.Sdelta)
	r3 = s.Pairing.GT().Point().Sub(r3, s.Pairing.GT().Point().Mul(c, target))

	var r4 kyber.Point
	if caps.SupportsLink && sig.Nym != nil && len(scope) > 0 {
		base4 := scopeBase(s, scope, caps, &sig.Seed)
		r4 = s.G1.Point().Sub(s.G1.Point().Mul(sig.Sx, base4), s.G1.Point().Mul(c, sig.Nym))
	}

	expected := s.ScalarFromHash(
		transcriptParts(gk, sig.C1, sig.C2, r1, r2, r3, r4, sig.Nym, msg, sig.Salt)...,
	)
	return expected.Scalar.Equal(c)
}

// r3Commit evaluates the third Sigma-protocol equation's GT-side at
// arbitrary (x,r,delta)-shaped scalars: it is the prover's commitment when
// given the per-round k's, and the verifier's recomputed commitment
// (before subtracting challenge*target) when given the responses.
func r3Commit(s *Suite, gk *GroupKey, c2 kyber.Point, x, r, delta kyber.Scalar) kyber.Point {
	openerWhat := s.Pairing.Pair(gk.OpenerPubG1, gk.What)
	openerG2 := s.Pairing.Pair(gk.OpenerPubG1, s.g2)
	c2g2 := s.Pairing.Pair(c2, s.g2)

	gt := s.Pairing.GT()
	term := gt.Point().Add(gt.Point().Mul(r, openerWhat), gt.Point().Mul(delta, openerG2))
	return gt.Point().Sub(term, gt.Point().Mul(x, c2g2))
}

// credentialTarget is the public GT value the third equation proves a
// representation of: e(C2,What)/e(g1,g2).
func credentialTarget(s *Suite, gk *GroupKey, c2 kyber.Point) kyber.Point {
	lhs := s.Pairing.Pair(c2, gk.What)
	rhs := s.Pairing.Pair(s.g1, s.g2)
	return s.Pairing.GT().Point().Sub(lhs, rhs)
}

// scopeBase derives the G1 base the scope-bound pseudonym equation uses:
// H(scope) for link-only schemes, or H(scope)^seed for seqlink-capable
// ones, so that Nym = scopeBase^x traces out the chain position.
func scopeBase(s *Suite, scope []byte, caps Capabilities, seed *uint64) kyber.Point {
	hscope := s.ScalarFromHash([]byte("groupsig/scope"), scope).deriveG1Point(s)
	if !caps.SupportsSeqLink || seed == nil {
		return hscope
	}
	return s.G1.Point().Mul(seedScalar(s, *seed), hscope)
}

func transcriptParts(gk *GroupKey, c1, c2, r1, r2, r3, r4 kyber.Point, nym kyber.Point, msg, salt []byte) [][]byte {
	parts := [][]byte{marshal(gk.What), marshal(gk.OpenerPubG1), marshal(c1), marshal(c2), marshal(r1), marshal(r2), marshal(r3), msg, salt}
	if r4 != nil {
		parts = append(parts, marshal(r4), marshal(nym))
	}
	return parts
}

func marshal(p kyber.Point) []byte {
	b, _ := p.MarshalBinary()
	return b
}

func seedScalar(s *Suite, seed uint64) kyber.Scalar {
	return s.NewScalar().SetInt64(int64(seed))
}
