package vrterr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessageWithoutCause(t *testing.T) {
	err := New(KindBufferTooShort, "UnpackHeaderFrom", nil)
	require.Equal(t, "vrt: UnpackHeaderFrom: buffer-too-short", err.Error())
}

func TestErrorMessageWithCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := New(KindASCIIDecode, "unpackGPSASCII", cause)
	require.Equal(t, "vrt: unpackGPSASCII: ascii-decode: unexpected EOF", err.Error())
	require.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorIsComparesByKind(t *testing.T) {
	err := New(KindBufferTooShort, "SomeOp", nil)
	require.True(t, errors.Is(err, ErrBufferTooShort))
	require.False(t, errors.Is(err, ErrPacketTypeMismatch))
}

func TestErrorIsRejectsNonVrtError(t *testing.T) {
	err := New(KindBufferTooShort, "SomeOp", nil)
	require.False(t, err.Is(errors.New("plain error")))
}
