package engine

import (
	"github.com/drand/kyber"
)

// Blind rerandomizes the credential ciphertext embedded in sig and wraps it
// under a fresh blinding key, then separately encrypts the message digest
// under the same key. The receiver alone can later recover the pseudonym
// and message with Unblind; the inspector, holding only the opener secret,
// can advance a batch of these with Convert without ever learning the
// plaintext pseudonym.
//
// The construction shares one randomness r' across both the group-key
// rerandomization and the blinding-key layer (C1Opener = old C1 * g1^r',
// C1Blind = g1^r'), which is what lets Convert strip the opener's
// component from C2 while leaving a well-formed single-layer ElGamal
// ciphertext under the blinding key.
func Blind(s *Suite, env RandSource, gk *GroupKey, sig *Signature, msg []byte, blindPub kyber.Point) *BlindSignature {
	rprime := s.PickScalar(env.Stream())

	c1Opener := s.G1.Point().Add(sig.C1, s.G1.Point().Mul(rprime, nil))
	c1Blind := s.G1.Point().Mul(rprime, nil)
	c2 := s.G1.Point().Add(sig.C2, s.G1.Point().Add(
		s.G1.Point().Mul(rprime, gk.OpenerPubG1),
		s.G1.Point().Mul(rprime, blindPub),
	))

	digest := s.ScalarFromHash([]byte("groupsig/blind-digest"), msg).deriveG1Point(s)
	se := s.PickScalar(env.Stream())
	e1 := s.G1.Point().Mul(se, nil)
	e2 := s.G1.Point().Add(digest, s.G1.Point().Mul(se, blindPub))

	return &BlindSignature{
		BlindPub: blindPub,
		C1Opener: c1Opener,
		C1Blind:  c1Blind,
		C2:       c2,
		E1:       e1,
		E2:       e2,
	}
}

// Convert advances a batch of blind signatures: for each one it uses the
// opener secret to strip the group-key layer from C2, leaving a single
// ElGamal ciphertext of the pseudonym under the blinding key, then
// rerandomizes that remaining ciphertext. The digest ciphertext (E1, E2) is
// carried over unchanged. The batch is then shuffled, breaking positional
// linkage between a blind signature and its converted counterpart.
func Convert(s *Suite, env RandSource, ok *OpenerKey, batch []*BlindSignature) []*BlindSignature {
	out := make([]*BlindSignature, len(batch))
	for i, bs := range batch {
		c2stripped := s.G1.Point().Sub(bs.C2, s.G1.Point().Mul(ok.Xi, bs.C1Opener))

		r2 := s.PickScalar(env.Stream())
		c1BlindOut := s.G1.Point().Add(bs.C1Blind, s.G1.Point().Mul(r2, nil))
		c2Out := s.G1.Point().Add(c2stripped, s.G1.Point().Mul(r2, bs.BlindPub))

		out[i] = &BlindSignature{
			BlindPub: bs.BlindPub,
			C1Blind:  c1BlindOut,
			C2:       c2Out,
			E1:       bs.E1,
			E2:       bs.E2,
		}
	}
	shuffle(env, out)
	return out
}

// Unblind recovers the pseudonym identity and message digest from a
// converted signature, using the receiver's blinding secret.
func Unblind(s *Suite, bk *BlindKey, converted *BlindSignature) (pseudonym kyber.Point, digest kyber.Point) {
	pseudonym = s.G1.Point().Sub(converted.C2, s.G1.Point().Mul(bk.Priv, converted.C1Blind))
	digest = s.G1.Point().Sub(converted.E2, s.G1.Point().Mul(bk.Priv, converted.E1))
	return pseudonym, digest
}

// shuffle permutes out in place using env's Fisher-Yates helper surface.
func shuffle(env RandSource, out []*BlindSignature) {
	type shuffler interface {
		Shuffle(n int, swap func(i, j int))
	}
	if sh, ok := env.(shuffler); ok {
		sh.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
}
