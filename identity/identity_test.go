package identity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/sysenv"
)

func newTestEnv(t *testing.T) *sysenv.Environment {
	t.Helper()
	env, err := sysenv.New([]byte("identity-test-seed"))
	require.NoError(t, err)
	return env
}

func TestFromIndexRoundTrip(t *testing.T) {
	id := FromIndex(7)
	require.True(t, id.IsIndex())
	idx, ok := id.Index()
	require.True(t, ok)
	require.Equal(t, 7, idx)
	_, ok = id.Pseudonym()
	require.False(t, ok)
	require.Equal(t, "7", id.String())
}

func TestFromPseudonymRoundTrip(t *testing.T) {
	suite := engine.NewSuite()
	env := newTestEnv(t)
	p := suite.G1.Point().Mul(suite.PickScalar(env.Stream()), nil)
	id := FromPseudonym(p)
	require.False(t, id.IsIndex())
	got, ok := id.Pseudonym()
	require.True(t, ok)
	require.True(t, got.Equal(p))
	require.NotEmpty(t, id.String())
}

func TestEqualDistinguishesIndexAndPseudonymKinds(t *testing.T) {
	a := FromIndex(1)
	b := FromIndex(1)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(FromIndex(2)))

	suite := engine.NewSuite()
	env := newTestEnv(t)
	p := suite.G1.Point().Mul(suite.PickScalar(env.Stream()), nil)
	c := FromPseudonym(p)
	require.False(t, a.Equal(c))
	require.True(t, c.Equal(FromPseudonym(p)))
}
