package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawBytesReturnsPayloadVerbatim(t *testing.T) {
	m := Raw([]byte("hello world"))
	b, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), b)
}

func TestScopedBytesProducesJSONEnvelope(t *testing.T) {
	m := Scoped([]byte("scope-a"), []byte("payload-a"))
	b, err := m.Bytes()
	require.NoError(t, err)
	require.JSONEq(t, `{"scope":"scope-a","message":"payload-a"}`, string(b))
}

func TestParseScopedRoundTrip(t *testing.T) {
	m := Scoped([]byte("scope-b"), []byte("payload-b"))
	b, err := m.Bytes()
	require.NoError(t, err)

	scope, payload, err := ParseScoped(b)
	require.NoError(t, err)
	require.Equal(t, []byte("scope-b"), scope)
	require.Equal(t, []byte("payload-b"), payload)
}

func TestUnknownFormatRejected(t *testing.T) {
	m := Message{Format: Format(99), Payload: []byte("x")}
	_, err := m.Bytes()
	require.Error(t, err)
}

func TestParseScopedRejectsInvalidJSON(t *testing.T) {
	_, _, err := ParseScoped([]byte("not json"))
	require.Error(t, err)
}
