package gml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/sysenv"
)

func newTestEnv(t *testing.T) *sysenv.Environment {
	t.Helper()
	env, err := sysenv.New([]byte("gml-test-seed"))
	require.NoError(t, err)
	return env
}

func TestExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	list := New(scheme.BBS04)
	for i := 0; i < 3; i++ {
		a := s.G1.Point().Mul(s.PickScalar(env.Stream()), nil)
		px := s.G1.Point().Mul(s.PickScalar(env.Stream()), nil)
		list.Internal().Append(engine.GMLEntry{A: a, Px: px})
	}
	require.Equal(t, 3, list.Len())

	data, err := list.Export()
	require.NoError(t, err)

	back, err := Import(scheme.BBS04, s.G1, data)
	require.NoError(t, err)
	require.Equal(t, 3, back.Len())
	for i := 0; i < 3; i++ {
		want, _ := list.Internal().At(i)
		got, _ := back.Internal().At(i)
		require.True(t, want.A.Equal(got.A))
		require.True(t, want.Px.Equal(got.Px))
	}
}

func TestImportRejectsSchemeMismatch(t *testing.T) {
	s := engine.NewSuite()
	list := New(scheme.BBS04)
	data, err := list.Export()
	require.NoError(t, err)

	_, err = Import(scheme.GL19, s.G1, data)
	require.Error(t, err)
}

func TestAtOutOfRange(t *testing.T) {
	list := New(scheme.BBS04)
	_, ok := list.At(0)
	require.False(t, ok)
}
