package sip

import (
	"io"
	"strings"
)

// addressHeader is the shared shape of To, From, Contact, Route,
// Record-Route and Reply-To: a display-name/URI/params triple (spec §4).
type addressHeader struct {
	name    string
	compact string
	Addr    NameAddress
}

func (h *addressHeader) Name() string { return h.name }

func (h *addressHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *addressHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	h.Addr.StringWrite(w)
}

func (h *addressHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	h.Addr.StringWriteCanonical(w)
}

// ToHeader is the "To" header: a tag parameter (if present) identifies the
// remote dialog leg.
type ToHeader struct{ addressHeader }

func NewToHeader(addr NameAddress) *ToHeader {
	return &ToHeader{addressHeader{name: "To", Addr: addr}}
}

// Equal ignores the display-name and any parameter other than "tag": two To
// headers are equal iff their URI and tag parameter (both absent, or both
// present and equal) match.
func (h *ToHeader) Equal(other Header) bool {
	o, ok := other.(*ToHeader)
	return ok && equalURIAndTag(h.Addr, o.Addr)
}

func (h *ToHeader) Tag() (string, bool) { return h.Addr.Params.Get("tag") }

// FromHeader is the "From" header.
type FromHeader struct{ addressHeader }

func NewFromHeader(addr NameAddress) *FromHeader {
	return &FromHeader{addressHeader{name: "From", Addr: addr}}
}

// Equal has the same display-name-ignoring, tag-only semantics as ToHeader.
func (h *FromHeader) Equal(other Header) bool {
	o, ok := other.(*FromHeader)
	return ok && equalURIAndTag(h.Addr, o.Addr)
}

func (h *FromHeader) Tag() (string, bool) { return h.Addr.Params.Get("tag") }

// equalURIAndTag backs To/From equality (spec §4.3: "From/To equality
// ignores display-name; relies on URI equality plus tag parameter").
func equalURIAndTag(a, b NameAddress) bool {
	if !a.URI.Equal(b.URI) {
		return false
	}
	at, aok := a.Params.Get("tag")
	bt, bok := b.Params.Get("tag")
	return aok == bok && at == bt
}

// ContactHeader is one value of a (possibly repeated) "Contact" header, or
// the special wildcard "*" value.
type ContactHeader struct{ addressHeader }

func NewContactHeader(addr NameAddress) *ContactHeader {
	return &ContactHeader{addressHeader{name: "Contact", Addr: addr}}
}

func (h *ContactHeader) Equal(other Header) bool {
	o, ok := other.(*ContactHeader)
	if !ok {
		return false
	}
	if w1, w2 := isWildcardAddr(h.Addr), isWildcardAddr(o.Addr); w1 || w2 {
		return w1 == w2
	}
	return h.Addr.Equal(o.Addr)
}

func isWildcardAddr(n NameAddress) bool {
	su, ok := n.URI.(*SipURI)
	return ok && su.Wildcard
}

// RouteHeader is one value of a "Route" header.
type RouteHeader struct{ addressHeader }

func NewRouteHeader(addr NameAddress) *RouteHeader {
	return &RouteHeader{addressHeader{name: "Route", Addr: addr}}
}

func (h *RouteHeader) Equal(other Header) bool {
	o, ok := other.(*RouteHeader)
	return ok && h.Addr.Equal(o.Addr)
}

// RecordRouteHeader is one value of a "Record-Route" header.
type RecordRouteHeader struct{ addressHeader }

func NewRecordRouteHeader(addr NameAddress) *RecordRouteHeader {
	return &RecordRouteHeader{addressHeader{name: "Record-Route", Addr: addr}}
}

func (h *RecordRouteHeader) Equal(other Header) bool {
	o, ok := other.(*RecordRouteHeader)
	return ok && h.Addr.Equal(o.Addr)
}

// ReplyToHeader is the "Reply-To" header: same display-name/URI/params
// shape, but semantically never carries dialog state.
type ReplyToHeader struct{ addressHeader }

func NewReplyToHeader(addr NameAddress) *ReplyToHeader {
	return &ReplyToHeader{addressHeader{name: "Reply-To", Addr: addr}}
}

func (h *ReplyToHeader) Equal(other Header) bool {
	o, ok := other.(*ReplyToHeader)
	return ok && h.Addr.Equal(o.Addr)
}
