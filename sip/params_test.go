package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalHeaderParamsFlagVsEmptyValue(t *testing.T) {
	params, n, err := UnmarshalHeaderParams("lr;tag=", defaultParseParamsOptions())
	require.NoError(t, err)
	assert.Equal(t, len("lr;tag="), n)

	v, ok := params.Get("tag")
	require.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = params.Get("lr")
	require.True(t, ok)
	assert.False(t, params[0].HasValue)
	assert.True(t, params[1].HasValue)
}

func TestUnmarshalHeaderParamsQuotedValue(t *testing.T) {
	params, _, err := UnmarshalHeaderParams(`branch="z9hG4bK;weird"`, defaultParseParamsOptions())
	require.NoError(t, err)
	v, ok := params.Get("branch")
	require.True(t, ok)
	assert.Equal(t, "z9hG4bK;weird", v)
}

func TestUnmarshalHeaderParamsStopByte(t *testing.T) {
	params, n, err := UnmarshalHeaderParams("transport=tcp?subject=x", uriParamsOptions())
	require.NoError(t, err)
	v, _ := params.Get("transport")
	assert.Equal(t, "tcp", v)
	assert.Equal(t, len("transport=tcp"), n)
}

func TestHeaderParamsEqualIgnoresOrder(t *testing.T) {
	a := NewParams()
	a.Add("a", "1")
	a.Add("b", "2")

	b := NewParams()
	b.Add("b", "2")
	b.Add("a", "1")

	assert.True(t, a.Equal(b))
}

func TestHeaderParamsHashStableUnderPermutation(t *testing.T) {
	a := NewParams()
	a.Add("a", "1")
	a.Add("b", "2")

	b := NewParams()
	b.Add("b", "2")
	b.Add("a", "1")

	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHeaderParamsGetCaseInsensitiveKey(t *testing.T) {
	p := NewParams()
	p.Add("Transport", "TCP")
	v, ok := p.Get("transport")
	require.True(t, ok)
	assert.Equal(t, "TCP", v)
}
