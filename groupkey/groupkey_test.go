package groupkey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/sysenv"
)

func newTestEnv(t *testing.T) *sysenv.Environment {
	t.Helper()
	env, err := sysenv.New([]byte("groupkey-test-seed"))
	require.NoError(t, err)
	return env
}

func TestGroupExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	gk := &Group{Code: scheme.BBS04, Engine: &engine.GroupKey{
		What:        s.G2.Point().Mul(s.PickScalar(env.Stream()), nil),
		OpenerPubG1: s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		OpenerPubG2: s.G2.Point().Mul(s.PickScalar(env.Stream()), nil),
	}}

	data, err := gk.Export()
	require.NoError(t, err)

	back, err := ImportGroup(s.G1, s.G2, data)
	require.NoError(t, err)
	require.Equal(t, scheme.BBS04, back.Code)
	require.True(t, back.Engine.What.Equal(gk.Engine.What))
	require.True(t, back.Engine.OpenerPubG1.Equal(gk.Engine.OpenerPubG1))
	require.True(t, back.Engine.OpenerPubG2.Equal(gk.Engine.OpenerPubG2))
}

func TestIssuerExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	ik := &Issuer{Code: scheme.GL19, Engine: &engine.IssuerKey{Gamma: s.PickScalar(env.Stream())}}

	data, err := ik.Export()
	require.NoError(t, err)

	back, err := ImportIssuer(s.Fr(), data)
	require.NoError(t, err)
	require.Equal(t, scheme.GL19, back.Code)
	require.True(t, back.Engine.Gamma.Equal(ik.Engine.Gamma))
}

func TestOpenerExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	ok := &Opener{Code: scheme.PS16, Engine: &engine.OpenerKey{Xi: s.PickScalar(env.Stream())}}

	data, err := ok.Export()
	require.NoError(t, err)

	back, err := ImportOpener(s.Fr(), data)
	require.NoError(t, err)
	require.Equal(t, scheme.PS16, back.Code)
	require.True(t, back.Engine.Xi.Equal(ok.Engine.Xi))
}

func TestMemberExportImportRoundTripComplete(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	mk := &Member{Code: scheme.KLAP20, Engine: &engine.MemberKey{
		X:        s.PickScalar(env.Stream()),
		A:        s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		Complete: true,
	}}

	data, err := mk.Export()
	require.NoError(t, err)

	back, err := ImportMember(s.Fr(), s.G1, data)
	require.NoError(t, err)
	require.Equal(t, scheme.KLAP20, back.Code)
	require.True(t, back.Engine.X.Equal(mk.Engine.X))
	require.True(t, back.Engine.A.Equal(mk.Engine.A))
	require.True(t, back.Engine.Complete)
}

func TestMemberExportImportRoundTripIncomplete(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	mk := &Member{Code: scheme.DL21, Engine: &engine.MemberKey{
		X:        s.PickScalar(env.Stream()),
		Complete: false,
	}}

	data, err := mk.Export()
	require.NoError(t, err)

	back, err := ImportMember(s.Fr(), s.G1, data)
	require.NoError(t, err)
	require.False(t, back.Engine.Complete)
	require.Nil(t, back.Engine.A)
}

func TestBlindingExportImportRoundTrip(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	bk := &Blinding{Code: scheme.GL19, Engine: &engine.BlindKey{
		Pub:  s.G1.Point().Mul(s.PickScalar(env.Stream()), nil),
		Priv: s.PickScalar(env.Stream()),
	}}

	data, err := bk.Export()
	require.NoError(t, err)

	back, err := ImportBlinding(s.G1, s.Fr(), data)
	require.NoError(t, err)
	require.True(t, back.Engine.Pub.Equal(bk.Engine.Pub))
	require.True(t, back.Engine.Priv.Equal(bk.Engine.Priv))
}

func TestImportRejectsKeyKindMismatch(t *testing.T) {
	s := engine.NewSuite()
	env := newTestEnv(t)

	ik := &Issuer{Code: scheme.BBS04, Engine: &engine.IssuerKey{Gamma: s.PickScalar(env.Stream())}}
	data, err := ik.Export()
	require.NoError(t, err)

	_, err = ImportOpener(s.Fr(), data)
	require.Error(t, err)
}
