package crl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/sysenv"
)

func newTestEnv(t *testing.T) *sysenv.Environment {
	t.Helper()
	env, err := sysenv.New([]byte("crl-test-seed"))
	require.NoError(t, err)
	return env
}

func TestExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	list := New(scheme.KLAP20)
	p1 := s.G1.Point().Mul(s.PickScalar(env.Stream()), nil)
	p2 := s.G1.Point().Mul(s.PickScalar(env.Stream()), nil)
	list.Internal().Add(p1)
	list.Internal().Add(p2)
	require.Equal(t, 2, list.Len())

	data, err := list.Export()
	require.NoError(t, err)

	back, err := Import(scheme.KLAP20, s.G1, data)
	require.NoError(t, err)
	require.Equal(t, 2, back.Len())
	require.True(t, back.Internal().Contains(p1))
	require.True(t, back.Internal().Contains(p2))
}

func TestImportRejectsSchemeMismatch(t *testing.T) {
	s := engine.NewSuite()
	list := New(scheme.KLAP20)
	data, err := list.Export()
	require.NoError(t, err)

	_, err = Import(scheme.BBS04, s.G1, data)
	require.Error(t, err)
}
