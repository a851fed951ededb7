package engine

import (
	"fmt"

	"github.com/drand/kyber"
)

// Setup generates a fresh group key, issuer key and opener key.
func Setup(s *Suite, env RandSource) (*GroupKey, *IssuerKey, *OpenerKey, error) {
	gamma := s.PickScalar(env.Stream())
	xi := s.PickScalar(env.Stream())

	gk := &GroupKey{
		What:        s.G2.Point().Mul(gamma, nil),
		OpenerPubG1: s.G1.Point().Mul(xi, nil),
		OpenerPubG2: s.G2.Point().Mul(xi, nil),
	}
	return gk, &IssuerKey{Gamma: gamma}, &OpenerKey{Xi: xi}, nil
}

// RandSource is the minimal surface the engine needs from sysenv.Environment,
// kept as an interface here so this package does not import sysenv.
type RandSource interface {
	Stream() interface {
		XORKeyStream(dst, src []byte)
	}
}

// verifyCredential checks e(A, What * g2^x) == e(g1, g2), the defining
// equation of a membership credential.
func verifyCredential(s *Suite, gk *GroupKey, a kyber.Point, x kyber.Scalar) bool {
	lhs := s.Pairing.Pair(a, s.G2.Point().Add(gk.What, s.G2.Point().Mul(x, nil)))
	rhs := s.Pairing.Pair(s.g1, s.g2)
	return lhs.Equal(rhs)
}

// issueCredential computes A = g1^(1/(gamma+x)), the issuer's half of join.
func issueCredential(s *Suite, isskey *IssuerKey, x kyber.Scalar) (kyber.Point, error) {
	denom := s.NewScalar().Add(isskey.Gamma, x)
	if denom.Equal(s.NewScalar().Zero()) {
		return nil, fmt.Errorf("engine: degenerate credential exponent")
	}
	inv := s.NewScalar().Inv(denom)
	return s.G1.Point().Mul(inv, s.g1), nil
}
