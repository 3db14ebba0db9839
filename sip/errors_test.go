package sip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorIsUnwrappable(t *testing.T) {
	cause := errors.New("underlying cause")
	err := newErrWrap(InvalidUri, "sip:bad", cause)

	var pe *ParseError
	require := assert.New(t)
	require.True(errors.As(err, &pe))
	require.Equal(InvalidUri, pe.Kind)
	require.True(errors.Is(err, cause))
}

func TestParseErrorStringIncludesKindAndInput(t *testing.T) {
	err := newErr(InvalidMethod, "bad method")
	assert.Contains(t, err.Error(), "InvalidMethod")
	assert.Contains(t, err.Error(), "bad method")
}

func TestNewHeaderErrIncludesHeaderName(t *testing.T) {
	err := newHeaderErr("Via", "garbage", newErr(InvalidTokenString, "garbage"))
	assert.Contains(t, err.Error(), "Via")
}
