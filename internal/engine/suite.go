// Package engine implements the shared pairing-based credential machinery
// that every concrete scheme in package scheme/* builds on: a Boneh-Boyen
// style membership credential, an ElGamal encryption of that credential
// under the opener's public key, and a Schnorr/Fiat-Shamir Sigma-protocol
// transcript binding the two together. Each scheme package (bbs04, gl19,
// ps16, klap20, dl21, dl21seq) is a thin façade that wires a Capabilities
// flag set onto this engine; the six scheme codes differ only in which
// optional operations they advertise, so they share one audited
// implementation of the underlying algebra rather than six bespoke,
// harder-to-trust ones (see DESIGN.md "scheme polymorphism").
package engine

import (
	"crypto/cipher"

	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/pairing"
	"golang.org/x/crypto/blake2b"
)

// Suite bundles the bilinear group triple, the standard G1 and G2 base
// points, and a second G1 point h.
type Suite struct {
	Pairing pairing.Suite
	G1, G2  kyber.Group

	g1 kyber.Point // standard base point of G1
	g2 kyber.Point // standard base point of G2
	h  kyber.Point // g1 times a hash-derived scalar, so its discrete log to g1 is public
}

// domain-separation tags for hash-to-curve, matching the convention drand's
// crypto.Scheme uses for its BLS12-381 suite (see crypto/schemes.go).
const (
	dstG1 = "GROUPSIG_BLS12381G1_XMD:SHA-256_SSWU_RO_"
	dstG2 = "GROUPSIG_BLS12381G2_XMD:SHA-256_SSWU_RO_"
)

// NewSuite builds the BLS12-381 pairing suite shared by every scheme.
func NewSuite() *Suite {
	p := bls.NewBLS12381SuiteWithDST([]byte(dstG1), []byte(dstG2))
	g1 := p.G1()
	g2 := p.G2()
	s := &Suite{
		Pairing: p,
		G1:      g1,
		G2:      g2,
		g1:      g1.Point().Base(),
		g2:      g2.Point().Base(),
	}
	s.h = s.ScalarFromHash([]byte("groupsig/h-generator")).deriveG1Point(s)
	return s
}

// G1Base, G2Base, H return the suite's fixed public points: the G1 and G2
// base points used by the credential, ElGamal-encryption and pairing
// verification equations, and h. No equation in this package uses h.
func (s *Suite) G1Base() kyber.Point { return s.g1 }
func (s *Suite) G2Base() kyber.Point { return s.g2 }
func (s *Suite) H() kyber.Point      { return s.h }

// Fr returns the scalar field shared by G1, G2 and GT.
func (s *Suite) Fr() kyber.Group { return s.G1 }

// NewScalar allocates a fresh, zero-valued Fr scalar.
func (s *Suite) NewScalar() kyber.Scalar { return s.Fr().Scalar() }

// PickScalar draws a uniform Fr scalar from stream.
func (s *Suite) PickScalar(stream cipher.Stream) kyber.Scalar {
	return s.Fr().Scalar().Pick(stream)
}

// scalarWrapper lets ScalarFromHash hand back a value with a convenience
// method for the call sites (h derivation, the scope base in sign.go, the
// blind digest in blind.go) that turn a hash-derived scalar into a G1 point
// by multiplying the G1 base point, without exposing a public API for it.
type scalarWrapper struct {
	kyber.Scalar
}

func (sw scalarWrapper) deriveG1Point(s *Suite) kyber.Point {
	return s.G1.Point().Mul(sw.Scalar, nil)
}

// ScalarFromHash deterministically derives an Fr scalar from the
// concatenation of parts, each length-prefixed to avoid ambiguity, via
// BLAKE2b - used for every Fiat-Shamir challenge in this package.
func (s *Suite) ScalarFromHash(parts ...[]byte) scalarWrapper {
	return scalarWrapper{s.Fr().Scalar().SetBytes(hashParts(parts...))}
}

func hashParts(parts ...[]byte) []byte {
	h, _ := blake2b.New256(nil)
	for _, p := range parts {
		var lenBuf [8]byte
		n := uint64(len(p))
		for i := 0; i < 8; i++ {
			lenBuf[i] = byte(n >> (56 - 8*i))
		}
		_, _ = h.Write(lenBuf[:])
		_, _ = h.Write(p)
	}
	return h.Sum(nil)
}
