package engine

import (
	"fmt"

	"github.com/drand/kyber"
)

// JoinMsg is the single message shape exchanged across the two-step join
// sequence: step 0 carries the member's secret exponent from member to
// issuer, step 1 carries the issued credential back.
type JoinMsg struct {
	Step int
	X    kyber.Scalar
	A    kyber.Point
}

// JoinSeq and JoinStart are fixed for every scheme built on this engine:
// a two-message exchange, member-initiated.
const (
	JoinSeq         = 2
	JoinStartMember = true
)

// JoinMember advances the member's side of the join state machine. At step
// 0 (the member's turn) it draws a fresh secret and returns the opening
// message; at step 1 it accepts the issued credential and completes the
// key.
func JoinMember(s *Suite, env RandSource, gk *GroupKey, mk *MemberKey, step int, in *JoinMsg) (*JoinMsg, error) {
	switch step {
	case 0:
		mk.X = s.PickScalar(env.Stream())
		mk.Complete = false
		return &JoinMsg{Step: 0, X: mk.X}, nil
	case 1:
		if in == nil || in.A == nil {
			return nil, fmt.Errorf("engine: join step 1 missing issued credential")
		}
		if !verifyCredential(s, gk, in.A, mk.X) {
			return nil, fmt.Errorf("engine: issuer returned an invalid credential")
		}
		mk.A = in.A
		mk.Complete = true
		return nil, nil
	default:
		return nil, fmt.Errorf("engine: join step %d out of sequence", step)
	}
}

// JoinIssuer advances the issuer's side: at step 0 it consumes the member's
// secret exponent, mints a credential, appends a GML entry and returns the
// credential message.
func JoinIssuer(s *Suite, isskey *IssuerKey, gml *GML, step int, in *JoinMsg) (*JoinMsg, error) {
	if step != 0 {
		return nil, fmt.Errorf("engine: join step %d out of sequence", step)
	}
	if in == nil || in.X == nil {
		return nil, fmt.Errorf("engine: join step 0 missing member exponent")
	}
	a, err := issueCredential(s, isskey, in.X)
	if err != nil {
		return nil, err
	}
	gml.Append(GMLEntry{
		A:  a,
		Px: s.G1.Point().Mul(in.X, nil),
	})
	return &JoinMsg{Step: 1, A: a}, nil
}
