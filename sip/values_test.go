package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSipVersion(t *testing.T) {
	v, err := ParseSipVersion("SIP/2.0")
	require.NoError(t, err)
	assert.Equal(t, SipVersion{Major: 2, Minor: 0}, v)
	assert.Equal(t, "SIP/2.0", v.String())
}

func TestParseSipVersionRejectsOtherVersions(t *testing.T) {
	_, err := ParseSipVersion("SIP/3.0")
	assert.Error(t, err)
	_, err = ParseSipVersion("SIP/1.0")
	assert.Error(t, err)
}

func TestParseSipVersionRejectsMalformed(t *testing.T) {
	_, err := ParseSipVersion("HTTP/1.1")
	require.Error(t, err)
}

func TestParseStatusCodeBounds(t *testing.T) {
	_, err := ParseStatusCode("099")
	require.Error(t, err)
	c, err := ParseStatusCode("999")
	require.NoError(t, err)
	assert.Equal(t, StatusCode(999), c)
}

func TestNewStatusCodeRejectsOutOfRange(t *testing.T) {
	_, err := NewStatusCode(1000)
	require.Error(t, err)
	_, err = NewStatusCode(99)
	require.Error(t, err)
}

func TestParseProductWithVersion(t *testing.T) {
	p, err := ParseProduct("Sip-Toolkit/1.0")
	require.NoError(t, err)
	assert.Equal(t, "Sip-Toolkit", p.Name)
	assert.True(t, p.HasVersion)
	assert.Equal(t, "1.0", p.Version)
	assert.Equal(t, "Sip-Toolkit/1.0", p.String())
}

func TestParseMediaRangeCaseInsensitiveEqual(t *testing.T) {
	a, err := ParseMediaRange("Application/SDP")
	require.NoError(t, err)
	b, err := ParseMediaRange("application/sdp")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestParseWrappedStringBareVsQuoted(t *testing.T) {
	bare, err := ParseWrappedString("true")
	require.NoError(t, err)
	assert.False(t, bare.Quoted)
	assert.Equal(t, "true", bare.String())

	quoted, err := ParseWrappedString(`"true"`)
	require.NoError(t, err)
	assert.True(t, quoted.Quoted)
	assert.Equal(t, `"true"`, quoted.String())
	assert.True(t, bare.Equal(quoted))
}

func TestParseCallIDAllowsAtSign(t *testing.T) {
	id, err := ParseCallID("a84b4c76e66710@pc33.atlanta.com")
	require.NoError(t, err)
	assert.Equal(t, CallID("a84b4c76e66710@pc33.atlanta.com"), id)
}

func TestParseCallIDRejectsEmpty(t *testing.T) {
	_, err := ParseCallID("")
	require.Error(t, err)
}

func TestParseTransportUppercases(t *testing.T) {
	tr, err := ParseTransport("tcp")
	require.NoError(t, err)
	assert.Equal(t, TransportTCP, tr)
}

func TestNameAddressEqualIgnoresParamOrder(t *testing.T) {
	uri, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)

	p1 := NewParams()
	p1.Add("tag", "123")
	p1.Add("foo", "bar")

	p2 := NewParams()
	p2.Add("foo", "bar")
	p2.Add("tag", "123")

	a := NameAddress{DisplayName: "Alice", HasDisplayName: true, URI: uri, Params: p1}
	b := NameAddress{DisplayName: "Alice", HasDisplayName: true, URI: uri, Params: p2}
	assert.True(t, a.Equal(b))
}
