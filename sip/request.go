package sip

import (
	"io"
	"strings"
)

// Request is a SIP request: a Request-Line followed by the shared message
// envelope (spec §4).
type Request struct {
	message
	Method     RequestMethod
	RequestURI URI
}

func NewRequest(method RequestMethod, uri URI) *Request {
	return &Request{message: newMessage(), Method: method, RequestURI: uri}
}

func (r *Request) StartLineWrite(w io.StringWriter) {
	w.WriteString(string(r.Method))
	w.WriteString(" ")
	r.RequestURI.StringWrite(w)
	w.WriteString(" ")
	w.WriteString(r.version.String())
}

func (r *Request) String() string {
	var b strings.Builder
	r.StringWrite(&b)
	return b.String()
}

func (r *Request) StringWrite(w io.StringWriter) {
	r.StartLineWrite(w)
	w.WriteString("\r\n")
	r.writeHeadersAndBody(w, false)
}

func (r *Request) StringWriteCanonical(w io.StringWriter) {
	w.WriteString(string(r.Method))
	w.WriteString(" ")
	r.RequestURI.StringWriteCanonical(w)
	w.WriteString(" ")
	w.WriteString(r.version.String())
	w.WriteString("\r\n")
	r.writeHeadersAndBody(w, true)
}

// IsInvite reports whether this request starts an INVITE transaction,
// which RFC 3261 treats specially (ACK/CANCEL semantics, 100 Trying, ...).
func (r *Request) IsInvite() bool { return r.Method == INVITE }
