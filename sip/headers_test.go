package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHeaderEqualityIgnoresDisplayName(t *testing.T) {
	uri, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	params := NewParams()
	params.Add("tag", "1928301774")

	a := NewToHeader(NameAddress{DisplayName: "Alice", HasDisplayName: true, URI: uri, Params: params})
	b := NewToHeader(NameAddress{URI: uri, Params: params})
	assert.True(t, a.Equal(b))
}

func TestToHeaderEqualityDiffersOnTag(t *testing.T) {
	uri, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	p1 := NewParams()
	p1.Add("tag", "1928301774")
	p2 := NewParams()
	p2.Add("tag", "other")

	a := NewToHeader(NameAddress{URI: uri, Params: p1})
	b := NewToHeader(NameAddress{URI: uri, Params: p2})
	assert.False(t, a.Equal(b))
}

func TestFromHeaderEqualityIgnoresDisplayNameAndExtraParams(t *testing.T) {
	uri, err := ParseURI("sip:alice@atlanta.com")
	require.NoError(t, err)
	p1 := NewParams()
	p1.Add("tag", "1928301774")
	p2 := NewParams()
	p2.Add("tag", "1928301774")
	p2.Add("foo", "bar")

	a := NewFromHeader(NameAddress{DisplayName: "Alice", HasDisplayName: true, URI: uri, Params: p1})
	b := NewFromHeader(NameAddress{URI: uri, Params: p2})
	// Spec: equality relies on URI equality plus the tag parameter, so an
	// unrelated extra param on one side does not break equality.
	assert.True(t, a.Equal(b))
}

func TestToHeaderTagAccessor(t *testing.T) {
	uri, _ := ParseURI("sip:alice@atlanta.com")
	params := NewParams()
	params.Add("tag", "abc")
	h := NewToHeader(NameAddress{URI: uri, Params: params})
	tag, ok := h.Tag()
	require.True(t, ok)
	assert.Equal(t, "abc", tag)
}

func TestViaHeaderNotEqualWithExtraParam(t *testing.T) {
	a, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds")
	require.NoError(t, err)
	b, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds;received=192.0.2.1")
	require.NoError(t, err)
	// differing parameter sets make these two Via values unequal: Via
	// equality requires the full parameter bag to match.
	assert.False(t, a.Equal(b))
}

func TestViaHeaderEqualTransportCaseInsensitive(t *testing.T) {
	a, err := ParseVia("SIP/2.0/udp pc33.atlanta.com")
	require.NoError(t, err)
	b, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestViaHeaderMaddrTTLAccessors(t *testing.T) {
	v, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com;maddr=239.255.255.1;ttl=16")
	require.NoError(t, err)
	maddr, ok := v.Maddr()
	require.True(t, ok)
	assert.Equal(t, "239.255.255.1", maddr)
	ttl, ok := v.TTL()
	require.True(t, ok)
	assert.Equal(t, 16, ttl)
}

func TestViaHeaderRportAsBareFlagThenFilledIn(t *testing.T) {
	req, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds;rport")
	require.NoError(t, err)
	port, ok := req.Rport()
	require.True(t, ok)
	assert.Equal(t, 0, port)

	resp, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds;rport=4261")
	require.NoError(t, err)
	port, ok = resp.Rport()
	require.True(t, ok)
	assert.Equal(t, 4261, port)
}

func TestViaHeaderMaddrTTLRportAbsent(t *testing.T) {
	v, err := ParseVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds")
	require.NoError(t, err)
	_, ok := v.Maddr()
	assert.False(t, ok)
	_, ok = v.TTL()
	assert.False(t, ok)
	_, ok = v.Rport()
	assert.False(t, ok)
}

func TestRouteHeaderStringRoundTrip(t *testing.T) {
	uri, _ := ParseURI("sip:ss1.atlanta.com;lr")
	h := NewRouteHeader(NameAddress{URI: uri})
	assert.Equal(t, "Route: <sip:ss1.atlanta.com;lr>", h.String())
}

func TestAllowHeaderEqualIsPermutationInvariant(t *testing.T) {
	a := NewAllowHeader([]string{"INVITE", "ACK", "BYE"})
	b := NewAllowHeader([]string{"BYE", "INVITE", "ACK"})
	assert.True(t, a.Equal(b))
}

func TestAuthorizationHeaderEqual(t *testing.T) {
	p1 := NewParams()
	p1.Add("realm", "atlanta.com")
	p1.Add("nonce", "abc")

	p2 := NewParams()
	p2.Add("nonce", "abc")
	p2.Add("realm", "atlanta.com")

	a := NewAuthorizationHeader("Digest", p1)
	b := NewAuthorizationHeader("Digest", p2)
	assert.True(t, a.Equal(b))
}

func TestContentEncodingHeaderStringWrite(t *testing.T) {
	h := NewContentEncodingHeader([]string{"gzip"})
	assert.Equal(t, "Content-Encoding: gzip", h.String())
}

func TestContactHeaderWildcardDistinctFromConcrete(t *testing.T) {
	wildcard := NewContactHeader(NameAddress{URI: &SipURI{Wildcard: true}})
	uri, _ := ParseURI("sip:alice@pc33.atlanta.com")
	concrete := NewContactHeader(NameAddress{URI: uri})
	assert.False(t, wildcard.Equal(concrete))
	assert.False(t, concrete.Equal(wildcard))
}

func TestContactHeaderWildcardEqualsWildcard(t *testing.T) {
	a := NewContactHeader(NameAddress{URI: &SipURI{Wildcard: true}})
	b := NewContactHeader(NameAddress{URI: &SipURI{Wildcard: true}})
	assert.True(t, a.Equal(b))
}

func TestHeaderSetGetCaseInsensitiveName(t *testing.T) {
	hs := NewHeaderSet()
	hs.Add(NewExpiresHeader(3600))
	h, ok := hs.Get("expires")
	require.True(t, ok)
	assert.Equal(t, uint32(3600), h.(*ExpiresHeader).Value)
}
