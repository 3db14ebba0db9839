package sip

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const optionsRequest = "OPTIONS sip:carol@chicago.com SIP/2.0\r\n" +
	"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bKhjhs8ass877\r\n" +
	"Max-Forwards: 70\r\n" +
	"To: <sip:carol@chicago.com>\r\n" +
	"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
	"Call-ID: a84b4c76e66710\r\n" +
	"CSeq: 63104 OPTIONS\r\n" +
	"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
	"Accept: application/sdp\r\n" +
	"Content-Length: 0\r\n" +
	"\r\n"

func TestParserParseRequestOptions(t *testing.T) {
	p := NewParser()
	req, err := p.ParseRequest([]byte(optionsRequest))
	require.NoError(t, err)

	assert.Equal(t, OPTIONS, req.Method)
	assert.Equal(t, "sip:carol@chicago.com", req.RequestURI.String())
	assert.Equal(t, 9, len(req.Headers()))

	h, ok := req.GetHeader("CSeq")
	require.True(t, ok)
	cseq := h.(*CSeqHeader)
	assert.Equal(t, uint32(63104), cseq.SeqNo)
	assert.Equal(t, OPTIONS, cseq.Method)
}

func TestParserParseMessageDispatchesRequest(t *testing.T) {
	p := NewParser()
	msg, err := p.ParseMessage([]byte(optionsRequest))
	require.NoError(t, err)
	_, ok := msg.(*Request)
	assert.True(t, ok)
}

func TestParserParseResponseStatusLine(t *testing.T) {
	raw := "SIP/2.0 200 OK\r\nCall-ID: a@b\r\nCSeq: 1 INVITE\r\nContent-Length: 0\r\n\r\n"
	p := NewParser()
	resp, err := p.ParseResponse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, StatusCode(200), resp.StatusCode)
	assert.Equal(t, ReasonPhrase("OK"), resp.ReasonPhrase)
}

// Spec §8 scenario: an out-of-registry but still-legal status code with a
// non-ASCII reason phrase round-trips.
func TestParserParseResponseTortureStatusCode(t *testing.T) {
	raw := "SIP/2.0 999 Mon Status \xF0\x9F\x98\x81\r\nContent-Length: 0\r\n\r\n"
	p := NewParser()
	resp, err := p.ParseResponse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, StatusCode(999), resp.StatusCode)
	assert.Equal(t, "Mon Status \xF0\x9F\x98\x81", string(resp.ReasonPhrase))
}

func TestParserParseMessageDispatchesResponse(t *testing.T) {
	raw := "SIP/2.0 180 Ringing\r\nContent-Length: 0\r\n\r\n"
	p := NewParser()
	msg, err := p.ParseMessage([]byte(raw))
	require.NoError(t, err)
	_, ok := msg.(*Response)
	assert.True(t, ok)
}

// Content-Length is parsed as-is and never reconciled against the actual
// body length: that is a transport-layer concern, not this parser's.
func TestParserDoesNotEnforceContentLengthAgainstBody(t *testing.T) {
	raw := "SIP/2.0 200 OK\r\nContent-Length: 5\r\n\r\nabc"
	p := NewParser()
	resp, err := p.ParseResponse([]byte(raw))
	require.NoError(t, err)
	h, ok := resp.GetHeader("Content-Length")
	require.True(t, ok)
	assert.Equal(t, 5, h.(*ContentLengthHeader).Value)
	assert.Equal(t, []byte("abc"), resp.Body())
}

func TestParserAcceptsMatchingContentLength(t *testing.T) {
	raw := "SIP/2.0 200 OK\r\nContent-Length: 3\r\n\r\nabc"
	p := NewParser()
	resp, err := p.ParseResponse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), resp.Body())
}

func TestParserFoldedHeaderLine(t *testing.T) {
	raw := "SIP/2.0 200 OK\r\n" +
		"Subject: I know\r\n you hear it\r\n" +
		"Content-Length: 0\r\n\r\n"
	p := NewParser()
	resp, err := p.ParseResponse([]byte(raw))
	require.NoError(t, err)
	h, ok := resp.GetHeader("Subject")
	require.True(t, ok)
	assert.Equal(t, "I know you hear it", h.(*SubjectHeader).Value)
}

func TestParserRejectsMissingBlankLine(t *testing.T) {
	raw := "SIP/2.0 200 OK\r\nContent-Length: 0\r\n"
	p := NewParser()
	_, err := p.ParseResponse([]byte(raw))
	require.Error(t, err)
}

func TestParserWithMetricsOptionDoesNotPanic(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewParser(WithMetrics(reg))
	_, err := p.ParseRequest([]byte(optionsRequest))
	require.NoError(t, err)

	metrics, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, metrics)
}
