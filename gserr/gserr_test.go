package gserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassificationViaErrorsIs(t *testing.T) {
	err := InvalidArg("test.Op", errors.New("bad input"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.False(t, errors.Is(err, ErrFail))
	require.Equal(t, InvalidArgument, CodeOf(err))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Internalf("test.Op", cause)
	require.ErrorIs(t, err, cause)
}

func TestCodeOfDefaultsToInternalForPlainErrors(t *testing.T) {
	require.Equal(t, Internal, CodeOf(errors.New("not classified")))
}

func TestShorthandConstructors(t *testing.T) {
	require.Equal(t, Unsupported, CodeOf(Unsupport("op")))
	require.Equal(t, Fail, CodeOf(Failf("op", nil)))
}
