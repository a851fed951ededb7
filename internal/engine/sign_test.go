package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setupMember(t *testing.T, s *Suite, env RandSource) (*GroupKey, *IssuerKey, *OpenerKey, *MemberKey) {
	t.Helper()
	gk, isskey, ok, err := Setup(s, env)
	require.NoError(t, err)

	mk := &MemberKey{}
	out, err := JoinMember(s, env, gk, mk, 0, nil)
	require.NoError(t, err)

	issued, err := JoinIssuer(s, isskey, NewGML(), 0, out)
	require.NoError(t, err)

	_, err = JoinMember(s, env, gk, mk, 1, issued)
	require.NoError(t, err)
	require.True(t, mk.Complete)

	return gk, isskey, ok, mk
}

func TestSignVerifyBaseline(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true}
	gk, _, _, mk := setupMember(t, s, env)

	msg := []byte("hello group signature")
	sig, err := Sign(s, env, caps, gk, mk, msg, nil, nil)
	require.NoError(t, err)
	require.True(t, Verify(s, caps, gk, sig, msg, nil))

	require.False(t, Verify(s, caps, gk, sig, []byte("different message"), nil))
}

func TestSignReproducibleWithSeed(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true}
	gk, _, _, mk := setupMember(t, s, env)

	msg := []byte("reproducible")
	seed := uint64(42)

	sig1, err := Sign(s, env, caps, gk, mk, msg, nil, &seed)
	require.NoError(t, err)
	sig2, err := Sign(s, env, caps, gk, mk, msg, nil, &seed)
	require.NoError(t, err)

	require.True(t, sig1.C1.Equal(sig2.C1))
	require.True(t, sig1.C2.Equal(sig2.C2))
	require.Equal(t, sig1.Salt, sig2.Salt)
}

func TestSignTamperedSignatureFailsVerify(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true}
	gk, _, _, mk := setupMember(t, s, env)

	msg := []byte("tamper me")
	sig, err := Sign(s, env, caps, gk, mk, msg, nil, nil)
	require.NoError(t, err)

	tampered := *sig
	tampered.Sx = s.NewScalar().Add(sig.Sx, s.NewScalar().SetInt64(1))
	require.False(t, Verify(s, caps, gk, &tampered, msg, nil))
}

func TestSignLinkableScopeBindsNym(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true, SupportsLink: true}
	gk, _, _, mk := setupMember(t, s, env)

	scope := []byte("election-2026")
	sig, err := Sign(s, env, caps, gk, mk, []byte("ballot"), scope, nil)
	require.NoError(t, err)
	require.NotNil(t, sig.Nym)
	require.True(t, Verify(s, caps, gk, sig, []byte("ballot"), scope))
	require.False(t, Verify(s, caps, gk, sig, []byte("ballot"), []byte("other-scope")))
}

func TestSignSeqLinkRequiresSeed(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	caps := Capabilities{HasGML: true, HasCRL: true, SupportsLink: true, SupportsSeqLink: true}
	gk, _, _, mk := setupMember(t, s, env)

	_, err := Sign(s, env, caps, gk, mk, []byte("x"), []byte("scope"), nil)
	require.ErrorIs(t, err, errSeqLinkNeedsSeed)
}
