package engine

import (
	"encoding/binary"
	"errors"

	"github.com/drand/kyber"
)

// errSeqLinkNeedsSeed is returned when a seqlink-capable scheme is asked to
// sign without a seed: the sequence position is not optional for that
// family, since it both derives the signature's randomness and fixes the
// signature's place in the chain.
var errSeqLinkNeedsSeed = errors.New("engine: seqlink-capable scheme requires an explicit seed")

// saltFor returns the public salt a signature records: seed's canonical
// 8-byte encoding when given, otherwise 16 fresh random bytes.
func saltFor(env RandSource, seed *uint64) []byte {
	if seed != nil {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], *seed)
		return buf[:]
	}
	buf := make([]byte, 16)
	env.Stream().XORKeyStream(buf, buf)
	return buf
}

// deriveR derives the per-signature ElGamal randomness deterministically
// from the member secret, the message and the salt, so that claim/identify
// (engine/claim.go) can recompute it from a member key alone, and so that
// signing twice with the same seed reproduces the same ciphertext (C1, C2).
func deriveR(s *Suite, x kyber.Scalar, msg, salt []byte) kyber.Scalar {
	xb, _ := x.MarshalBinary()
	return s.ScalarFromHash([]byte("groupsig/nonce"), xb, msg, salt).Scalar
}
