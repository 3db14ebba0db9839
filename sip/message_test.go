package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestStringWrite(t *testing.T) {
	uri, err := ParseURI("sip:bob@biloxi.com")
	require.NoError(t, err)
	req := NewRequest(OPTIONS, uri)
	req.AppendHeader(NewMaxForwardsHeader(70))

	s := req.String()
	assert.Contains(t, s, "OPTIONS sip:bob@biloxi.com SIP/2.0\r\n")
	assert.Contains(t, s, "Max-Forwards: 70\r\n")
	assert.True(t, len(s) >= len("OPTIONS sip:bob@biloxi.com SIP/2.0\r\n"))
}

func TestRequestIsInvite(t *testing.T) {
	uri, _ := ParseURI("sip:bob@biloxi.com")
	assert.True(t, NewRequest(INVITE, uri).IsInvite())
	assert.False(t, NewRequest(BYE, uri).IsInvite())
}

func TestNewResponseStatusLine(t *testing.T) {
	resp := NewResponse(200, "OK")
	assert.Contains(t, resp.String(), "SIP/2.0 200 OK\r\n")
}

func TestResponseProvisionalAndSuccess(t *testing.T) {
	assert.True(t, NewResponse(180, "Ringing").IsProvisional())
	assert.False(t, NewResponse(180, "Ringing").IsSuccess())
	assert.True(t, NewResponse(200, "OK").IsSuccess())
	assert.False(t, NewResponse(200, "OK").IsProvisional())
}

func TestResponseArbitraryStatusCode(t *testing.T) {
	// The spec's torture example: an out-of-registry-but-still-legal code.
	resp := NewResponse(999, "Unknown Upper Bound")
	assert.Contains(t, resp.String(), "SIP/2.0 999 Unknown Upper Bound\r\n")
}

func TestMessageGetHeaderAndAppend(t *testing.T) {
	uri, _ := ParseURI("sip:bob@biloxi.com")
	req := NewRequest(INVITE, uri)
	req.AppendHeader(NewCallIDHeader(CallID("abc123@host")))
	h, ok := req.GetHeader("Call-ID")
	require.True(t, ok)
	assert.Equal(t, "abc123@host", h.(*CallIDHeader).Value.String())

	_, ok = req.GetHeader("Via")
	assert.False(t, ok)
}

func TestMessageGetHeadersReturnsAllRepeats(t *testing.T) {
	uri, _ := ParseURI("sip:bob@biloxi.com")
	req := NewRequest(INVITE, uri)
	req.AppendHeader(NewRouteHeader(NameAddress{URI: uri}))
	req.AppendHeader(NewRouteHeader(NameAddress{URI: uri}))
	assert.Len(t, req.GetHeaders("Route"), 2)
}

func TestMessageSetBody(t *testing.T) {
	uri, _ := ParseURI("sip:bob@biloxi.com")
	req := NewRequest(INVITE, uri)
	req.SetBody([]byte("v=0\r\n"))
	assert.Equal(t, []byte("v=0\r\n"), req.Body())
	assert.True(t, len(req.String()) > 0)
}
