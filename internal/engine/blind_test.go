package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlindConvertUnblindRecoversCredential(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true, SupportsBlind: true}
	gk, _, ok, mk := setupMember(t, s, env)

	blindPriv := s.PickScalar(env.Stream())
	blindPub := s.G1.Point().Mul(blindPriv, nil)
	bk := &BlindKey{Pub: blindPub, Priv: blindPriv}

	msg := []byte("blind me")
	sig, err := Sign(s, env, caps, gk, mk, msg, nil, nil)
	require.NoError(t, err)

	blinded := Blind(s, env, gk, sig, msg, blindPub)
	converted := Convert(s, env, ok, []*BlindSignature{blinded})
	require.Len(t, converted, 1)

	pseudonym, digest := Unblind(s, bk, converted[0])
	require.True(t, pseudonym.Equal(mk.A))

	expectedDigest := s.ScalarFromHash([]byte("groupsig/blind-digest"), msg).deriveG1Point(s)
	require.True(t, digest.Equal(expectedDigest))
}

func TestConvertBatchUnblindsToSingleSigner(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true, SupportsBlind: true}
	gk, _, ok, mk := setupMember(t, s, env)

	blindPriv := s.PickScalar(env.Stream())
	blindPub := s.G1.Point().Mul(blindPriv, nil)

	var batch []*BlindSignature
	credentials := make(map[string]bool)
	for i := 0; i < 8; i++ {
		sig, err := Sign(s, env, caps, gk, mk, []byte{byte(i)}, nil, nil)
		require.NoError(t, err)
		batch = append(batch, Blind(s, env, gk, sig, []byte{byte(i)}, blindPub))
	}

	converted := Convert(s, env, ok, batch)
	require.Len(t, converted, len(batch))
	for _, c := range converted {
		p, _ := Unblind(s, &BlindKey{Pub: blindPub, Priv: blindPriv}, c)
		credentials[pointKey(p)] = true
	}
	require.Len(t, credentials, 1) // same member signed every entry
}
