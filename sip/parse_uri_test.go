package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURIBasic(t *testing.T) {
	u, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	su, ok := u.(*SipURI)
	require.True(t, ok)
	assert.Equal(t, "alice", su.User)
	assert.True(t, su.HasUser)
	assert.Equal(t, "atlanta.com", su.Host.Name)
	assert.False(t, su.HasPort)
	assert.False(t, su.Secure)
}

func TestParseURIWithPortAndParams(t *testing.T) {
	u, err := ParseURI("sip:alice@atlanta.com:5060;transport=tcp")
	require.NoError(t, err)
	su := u.(*SipURI)
	assert.Equal(t, 5060, su.Port)
	assert.True(t, su.HasPort)
	v, ok := su.UriParams.Get("transport")
	require.True(t, ok)
	assert.Equal(t, "tcp", v)
}

func TestParseURISips(t *testing.T) {
	u, err := ParseURI("sips:bob@biloxi.com")
	require.NoError(t, err)
	assert.True(t, u.(*SipURI).Secure)
}

func TestParseURIPasswordAndHeaders(t *testing.T) {
	u, err := ParseURI("sip:alice:secret@atlanta.com?subject=project")
	require.NoError(t, err)
	su := u.(*SipURI)
	assert.Equal(t, "secret", su.Password)
	assert.True(t, su.HasPassword)
	v, ok := su.Headers.Get("subject")
	require.True(t, ok)
	assert.Equal(t, "project", v)
}

func TestParseURIIPv6(t *testing.T) {
	u, err := ParseURI("sip:alice@[2001:db8::1]:5070")
	require.NoError(t, err)
	su := u.(*SipURI)
	assert.True(t, su.Host.IsIP)
	assert.Equal(t, 5070, su.Port)
	assert.Equal(t, "[2001:db8::1]", su.Host.String())
}

func TestParseURIWildcard(t *testing.T) {
	u, err := ParseURI("*")
	require.NoError(t, err)
	assert.True(t, u.(*SipURI).Wildcard)
}

func TestParseURINonSipScheme(t *testing.T) {
	u, err := ParseURI("tel:+1-212-555-0101")
	require.NoError(t, err)
	au, ok := u.(*AbsoluteURI)
	require.True(t, ok)
	assert.Equal(t, "tel", au.SchemeName)
	assert.Equal(t, "+1-212-555-0101", au.Opaque)
}

// Per spec: port defaulting is never implicitly applied for equality, so an
// explicit ":5060" and an omitted port are NOT equal even though they
// resolve to the same port.
func TestURINotEqualExplicitVsDefaultedPort(t *testing.T) {
	a, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	b, err := ParseURI("sip:alice@atlanta.com:5060")
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestURIEqualTransportCaseInsensitive(t *testing.T) {
	a, err := ParseURI("sip:alice@atlanta.com;transport=TCP")
	require.NoError(t, err)
	b, err := ParseURI("sip:alice@atlanta.com;transport=tcp")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestURINotEqualDifferentUser(t *testing.T) {
	a, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	b, err := ParseURI("sip:bob@atlanta.com")
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestURINotEqualUserParamAsymmetry(t *testing.T) {
	a, err := ParseURI("sip:alice@atlanta.com;user=phone")
	require.NoError(t, err)
	b, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestURIEqualExtraNonSharedParamIgnored(t *testing.T) {
	a, err := ParseURI("sip:alice@atlanta.com;newparam=5")
	require.NoError(t, err)
	b, err := ParseURI("sip:alice@atlanta.com;security=on")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestParseURIInvalidScheme(t *testing.T) {
	_, err := ParseURI("alice@atlanta.com")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

// Spec §8 scenario: transport/host case-insensitive equality at matching
// explicit ports, but not equal to a URI that omits the port.
func TestURIEqualCaseInsensitiveSchemeHostTransportAtExplicitPort(t *testing.T) {
	a, err := ParseURI("sip:alice@atlanta.com:5060;transport=tcp")
	require.NoError(t, err)
	b, err := ParseURI("SIP:alice@ATLANTA.com:5060;Transport=TCP")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := ParseURI("sip:alice@atlanta.com;transport=tcp")
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

// Spec §8 scenario: an IPv6-literal host is modeled without brackets.
func TestParseURIIPv6NoBracketsInModel(t *testing.T) {
	u, err := ParseURI("sip:bob@[2a01:e35:1387:1020:6233:4bff:fe0b:5663]:5060;transport=tcp")
	require.NoError(t, err)
	su := u.(*SipURI)
	assert.True(t, su.Host.IsIP)
	assert.NotContains(t, su.Host.IP.String(), "[")
}

func TestParseURIHostCaseInsensitive(t *testing.T) {
	a, err := ParseURI("sip:alice@ATLANTA.com")
	require.NoError(t, err)
	b, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
