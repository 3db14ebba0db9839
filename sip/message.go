package sip

import (
	"io"
)

// Message is satisfied by Request and Response: the shared envelope of a
// start line, a header set and an optional body (spec §4 message model).
type Message interface {
	StartLineWrite(w io.StringWriter)
	String() string
	StringWrite(w io.StringWriter)
	StringWriteCanonical(w io.StringWriter)
	Headers() []Header
	GetHeaders(name string) []Header
	GetHeader(name string) (Header, bool)
	AppendHeader(h Header)
	Body() []byte
	SetBody(b []byte)
}

// message carries the fields and behavior shared by Request and Response:
// the header set, the body and generic header lookups. The start line
// differs between the two and is left to each embedding type.
type message struct {
	version SipVersion
	headers *HeaderSet
	body    []byte
}

func newMessage() message {
	return message{version: DefaultSipVersion(), headers: NewHeaderSet()}
}

func (m *message) Version() SipVersion { return m.version }

func (m *message) Headers() []Header { return m.headers.All() }

func (m *message) GetHeaders(name string) []Header { return m.headers.GetAll(name) }

func (m *message) GetHeader(name string) (Header, bool) { return m.headers.Get(name) }

func (m *message) AppendHeader(h Header) { m.headers.Add(h) }

func (m *message) Body() []byte { return m.body }

func (m *message) SetBody(b []byte) { m.body = b }

func (m *message) writeHeadersAndBody(w io.StringWriter, canonical bool) {
	for _, h := range m.headers.All() {
		if canonical {
			h.StringWriteCanonical(w)
		} else {
			h.StringWrite(w)
		}
		w.WriteString("\r\n")
	}
	w.WriteString("\r\n")
	if len(m.body) > 0 {
		w.WriteString(string(m.body))
	}
}

// contentLength returns the message's Content-Length header value, or the
// actual body length when the header is absent (a message built
// programmatically rather than parsed).
func (m *message) contentLength() int {
	if h, ok := m.GetHeader("Content-Length"); ok {
		if cl, ok := h.(*ContentLengthHeader); ok {
			return cl.Value
		}
	}
	return len(m.body)
}
