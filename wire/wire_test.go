package wire

import (
	"testing"

	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
	"github.com/stretchr/testify/require"
)

func testGroup() kyber.Group {
	return bls.NewBLS12381SuiteWithDST([]byte("wire-test-g1"), []byte("wire-test-g2")).G1()
}

func TestFieldRoundTripAndAbsence(t *testing.T) {
	e := NewEncoder(7)
	e.WriteField([]byte("hello"))
	e.WriteField(nil)
	e.WriteField([]byte{})

	d := NewDecoder(e.Bytes())
	code, err := d.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(7), code)

	f1, err := d.ReadField()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), f1)

	f2, err := d.ReadField()
	require.NoError(t, err)
	require.Nil(t, f2)

	f3, err := d.ReadField()
	require.NoError(t, err)
	require.Nil(t, f3)
}

func TestPointAndScalarRoundTrip(t *testing.T) {
	g := testGroup()
	p := g.Point().Base()
	sc := g.Scalar().SetInt64(12345)

	e := NewEncoder(1)
	require.NoError(t, e.WritePoint(p))
	require.NoError(t, e.WriteScalar(sc))
	require.NoError(t, e.WritePoint(nil))

	d := NewDecoder(e.Bytes())
	_, err := d.ReadByte()
	require.NoError(t, err)

	gotP, err := d.ReadPoint(g)
	require.NoError(t, err)
	require.True(t, gotP.Equal(p))

	gotSc, err := d.ReadScalar(g)
	require.NoError(t, err)
	require.True(t, gotSc.Equal(sc))

	gotNil, err := d.ReadPoint(g)
	require.NoError(t, err)
	require.Nil(t, gotNil)
}

func TestDecoderRejectsTruncatedBuffer(t *testing.T) {
	e := NewEncoder(1)
	e.WriteField([]byte("abc"))
	full := e.Bytes()

	d := NewDecoder(full[:len(full)-1])
	_, err := d.ReadByte()
	require.NoError(t, err)
	_, err = d.ReadField()
	require.Error(t, err)
}

func TestTextEncodingWrapsAndRoundTrips(t *testing.T) {
	e := NewEncoder(3)
	e.WriteField([]byte("some reasonably long payload to wrap"))
	wrapped := e.Text(16)
	require.Contains(t, wrapped, "\n")

	back, err := DecodeText(wrapped)
	require.NoError(t, err)
	require.Equal(t, e.Bytes(), back)
}
