package engine

import (
	"errors"

	"github.com/drand/kyber"
)

// ErrNoMatch is returned by Open when no GML entry's credential matches the
// signature's decrypted value, classified Fail by the caller.
var ErrNoMatch = errors.New("engine: no matching membership entry")

// decrypt recovers the signer's credential element from the ElGamal
// ciphertext embedded in sig, using the opener's secret.
func decrypt(s *Suite, ok *OpenerKey, sig *Signature) kyber.Point {
	return s.G1.Point().Sub(sig.C2, s.G1.Point().Mul(ok.Xi, sig.C1))
}

// Open decrypts sig's embedded credential and resolves it to a GML index.
// Only meaningful for HasGML schemes.
func Open(s *Suite, ok *OpenerKey, gml *GML, sig *Signature) (int, error) {
	a := decrypt(s, ok, sig)
	idx, found := gml.IndexOf(a)
	if !found {
		return 0, ErrNoMatch
	}
	return idx, nil
}

// OpenPseudonym decrypts sig's embedded credential and returns it directly
// as an opaque pseudonym, for has_gml=false schemes whose identity is the
// credential element itself rather than a registry index.
func OpenPseudonym(s *Suite, ok *OpenerKey, sig *Signature) kyber.Point {
	return decrypt(s, ok, sig)
}

// OpenProof builds a Schnorr proof of knowledge of the opener secret xi
// consistent with both its public commitments (g1^xi = OpenerPubG1) and the
// specific decryption it just performed (C1^xi = C2 - identity), so a third
// party can check the opening without trusting the opener.
func OpenProof(s *Suite, env RandSource, gk *GroupKey, ok *OpenerKey, sig *Signature, identity kyber.Point) *Proof {
	k := s.PickScalar(env.Stream())
	r1 := s.G1.Point().Mul(k, nil)
	r2 := s.G1.Point().Mul(k, sig.C1)

	target := s.G1.Point().Sub(sig.C2, identity)
	c := s.ScalarFromHash(marshal(gk.OpenerPubG1), marshal(sig.C1), marshal(target), marshal(r1), marshal(r2)).Scalar
	resp := s.NewScalar().Add(k, s.NewScalar().Mul(c, ok.Xi))

	return &Proof{Commits: []kyber.Point{target}, Challenge: c, Response: resp}
}

// OpenVerify checks an OpenProof against the public opener key and the
// claimed identity.
func OpenVerify(s *Suite, gk *GroupKey, sig *Signature, identity kyber.Point, proof *Proof) bool {
	if proof == nil || len(proof.Commits) != 1 {
		return false
	}
	target := proof.Commits[0]
	negC := s.NewScalar().Neg(proof.Challenge)

	r1 := s.G1.Point().Add(s.G1.Point().Mul(proof.Response, nil), s.G1.Point().Mul(negC, gk.OpenerPubG1))
	r2 := s.G1.Point().Add(s.G1.Point().Mul(proof.Response, sig.C1), s.G1.Point().Mul(negC, target))

	expected := s.ScalarFromHash(marshal(gk.OpenerPubG1), marshal(sig.C1), marshal(target), marshal(r1), marshal(r2)).Scalar
	if !expected.Equal(proof.Challenge) {
		return false
	}
	return s.G1.Point().Sub(sig.C2, identity).Equal(target)
}

// Reveal extracts the tracing trapdoor for the member at gml index idx -
// its credential element - for insertion into a CRL.
func Reveal(gml *GML, idx int) (kyber.Point, error) {
	entry, ok := gml.At(idx)
	if !ok {
		return nil, errors.New("engine: gml index out of range")
	}
	return entry.A, nil
}

// Trace reports whether sig was produced by a revoked member. For
// NativeTrace-capable schemes it needs only the group's public opener key
// (in G2) and the CRL, checking e(C2/A_i, g2) == e(C1, OpenerPubG2) for
// every revoked trapdoor A_i - no secret key involved. For other HasGML
// schemes it emulates tracing by opening the signature and
// testing the resulting index's credential for CRL membership.
func Trace(s *Suite, caps Capabilities, gk *GroupKey, ok *OpenerKey, gml *GML, crl *CRL, sig *Signature) (bool, error) {
	if !caps.HasCRL {
		return false, errors.New("engine: scheme has no revocation list")
	}
	if caps.NativeTrace {
		for _, a := range crl.Entries() {
			lhs := s.Pairing.Pair(s.G1.Point().Sub(sig.C2, a), s.g2)
			rhs := s.Pairing.Pair(sig.C1, gk.OpenerPubG2)
			if lhs.Equal(rhs) {
				return true, nil
			}
		}
		return false, nil
	}
	if ok == nil || gml == nil {
		return false, errors.New("engine: emulated trace requires the opener key and gml")
	}
	idx, err := Open(s, ok, gml, sig)
	if errors.Is(err, ErrNoMatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	entry, _ := gml.At(idx)
	return crl.Contains(entry.A), nil
}
