package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinTwoMessageSequence(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	gk, isskey, _, err := Setup(s, env)
	require.NoError(t, err)
	gmlList := NewGML()

	mk := &MemberKey{}
	step0, err := JoinMember(s, env, gk, mk, 0, nil)
	require.NoError(t, err)
	require.False(t, mk.Complete)
	require.NotNil(t, step0.X)

	step1, err := JoinIssuer(s, isskey, gmlList, 0, step0)
	require.NoError(t, err)
	require.Equal(t, 1, step1.Step)
	require.Equal(t, 1, gmlList.Len())

	_, err = JoinMember(s, env, gk, mk, 1, step1)
	require.NoError(t, err)
	require.True(t, mk.Complete)
	require.True(t, verifyCredential(s, gk, mk.A, mk.X))
}

func TestJoinIssuerRejectsOutOfSequenceStep(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	_, isskey, _, err := Setup(s, env)
	require.NoError(t, err)

	_, err = JoinIssuer(s, isskey, NewGML(), 1, &JoinMsg{Step: 1})
	require.Error(t, err)
}

func TestJoinMemberRejectsForgedCredential(t *testing.T) {
	s := NewSuite()
	env := newTestEnv(t)
	gk, _, _, err := Setup(s, env)
	require.NoError(t, err)

	mk := &MemberKey{}
	_, err = JoinMember(s, env, gk, mk, 0, nil)
	require.NoError(t, err)

	forged := &JoinMsg{Step: 1, A: s.G1.Point().Pick(env.Stream())}
	_, err = JoinMember(s, env, gk, mk, 1, forged)
	require.Error(t, err)
	require.False(t, mk.Complete)
}
