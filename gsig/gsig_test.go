package gsig

import (
	"testing"

	"github.com/drand/kyber"
	"github.com/stretchr/testify/require"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/sysenv"
)

func newTestEnv(t *testing.T) *sysenv.Environment {
	t.Helper()
	env, err := sysenv.New([]byte("gsig-test-seed"))
	require.NoError(t, err)
	return env
}

func TestSignatureExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)
	fr := s.Fr()

	sig := &engine.Signature{
		C1:        s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		C2:        s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		Salt:      []byte("salt-bytes"),
		Challenge: s.PickScalar(env.Stream()),
		Sx:        s.PickScalar(env.Stream()),
		Sr:        s.PickScalar(env.Stream()),
		Sdelta:    s.PickScalar(env.Stream()),
		Nym:       s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		Seed:      12345,
	}
	wrapped := &Signature{Code: scheme.BBS04, Engine: sig}

	data, err := wrapped.Export()
	require.NoError(t, err)

	back, err := ImportSignature(s.G1, fr, data)
	require.NoError(t, err)
	require.Equal(t, scheme.BBS04, back.Code)
	require.True(t, back.Engine.C1.Equal(sig.C1))
	require.True(t, back.Engine.C2.Equal(sig.C2))
	require.Equal(t, sig.Salt, back.Engine.Salt)
	require.True(t, back.Engine.Challenge.Equal(sig.Challenge))
	require.True(t, back.Engine.Sx.Equal(sig.Sx))
	require.True(t, back.Engine.Sr.Equal(sig.Sr))
	require.True(t, back.Engine.Sdelta.Equal(sig.Sdelta))
	require.True(t, back.Engine.Nym.Equal(sig.Nym))
	require.Equal(t, sig.Seed, back.Engine.Seed)
}

func TestBlindSignatureExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	bs := &engine.BlindSignature{
		BlindPub: s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		C1Opener: s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		C1Blind:  s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		C2:       s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		E1:       s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		E2:       s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
	}
	wrapped := &BlindSignature{Code: scheme.GL19, Engine: bs}

	data, err := wrapped.Export()
	require.NoError(t, err)

	back, err := ImportBlindSignature(s.G1, data)
	require.NoError(t, err)
	require.Equal(t, scheme.GL19, back.Code)
	require.True(t, back.Engine.BlindPub.Equal(bs.BlindPub))
	require.True(t, back.Engine.C1Opener.Equal(bs.C1Opener))
	require.True(t, back.Engine.C1Blind.Equal(bs.C1Blind))
	require.True(t, back.Engine.C2.Equal(bs.C2))
	require.True(t, back.Engine.E1.Equal(bs.E1))
	require.True(t, back.Engine.E2.Equal(bs.E2))
}

func TestProofExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)
	fr := s.Fr()

	proof := &engine.Proof{
		Commits: []kyber.Point{
			s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
			s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
			s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		},
		Challenge: s.PickScalar(env.Stream()),
		Response:  s.PickScalar(env.Stream()),
	}
	wrapped := &Proof{Code: scheme.PS16, Engine: proof}

	data, err := wrapped.Export()
	require.NoError(t, err)

	back, err := ImportProof(s.G1, fr, data)
	require.NoError(t, err)
	require.Equal(t, scheme.PS16, back.Code)
	require.Len(t, back.Engine.Commits, len(proof.Commits))
	for i := range proof.Commits {
		require.True(t, back.Engine.Commits[i].Equal(proof.Commits[i]))
	}
	require.True(t, back.Engine.Challenge.Equal(proof.Challenge))
	require.True(t, back.Engine.Response.Equal(proof.Response))
}
