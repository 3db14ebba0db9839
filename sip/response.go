package sip

import (
	"io"
	"strings"
)

// Response is a SIP response: a Status-Line followed by the shared message
// envelope (spec §4).
type Response struct {
	message
	StatusCode   StatusCode
	ReasonPhrase ReasonPhrase
}

func NewResponse(code StatusCode, reason ReasonPhrase) *Response {
	return &Response{message: newMessage(), StatusCode: code, ReasonPhrase: reason}
}

func (r *Response) StartLineWrite(w io.StringWriter) {
	w.WriteString(r.version.String())
	w.WriteString(" ")
	w.WriteString(r.StatusCode.String())
	w.WriteString(" ")
	w.WriteString(string(r.ReasonPhrase))
}

func (r *Response) String() string {
	var b strings.Builder
	r.StringWrite(&b)
	return b.String()
}

func (r *Response) StringWrite(w io.StringWriter) {
	r.StartLineWrite(w)
	w.WriteString("\r\n")
	r.writeHeadersAndBody(w, false)
}

func (r *Response) StringWriteCanonical(w io.StringWriter) {
	r.StartLineWrite(w)
	w.WriteString("\r\n")
	r.writeHeadersAndBody(w, true)
}

// IsProvisional reports whether the status code is in [100, 200), a
// non-final response (spec §4).
func (r *Response) IsProvisional() bool { return r.StatusCode >= 100 && r.StatusCode < 200 }

// IsSuccess reports whether the status code is in [200, 300).
func (r *Response) IsSuccess() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }
