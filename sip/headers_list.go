package sip

import (
	"io"
	"strings"
)

// tokenListHeader backs every header whose value is a comma-separated list
// of plain tokens with set-style equality (spec testable property 5): Allow,
// Require, Supported, Unsupported, Proxy-Require, Content-Language.
type tokenListHeader struct {
	name   string
	Values ValueCollection[genericToken]
}

func (h *tokenListHeader) Name() string { return h.name }

func (h *tokenListHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *tokenListHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	h.Values.StringWrite(w)
}

func (h *tokenListHeader) StringWriteCanonical(w io.StringWriter) {
	h.StringWrite(w)
}

func newTokenListHeader(name string, tokens []string) tokenListHeader {
	items := make([]genericToken, len(tokens))
	for i, t := range tokens {
		items[i] = genericToken(t)
	}
	return tokenListHeader{name: name, Values: NewValueCollection(", ", items...)}
}

// AllowHeader lists the methods supported by the UA (spec §4).
type AllowHeader struct{ tokenListHeader }

func NewAllowHeader(methods []string) *AllowHeader {
	return &AllowHeader{newTokenListHeader("Allow", methods)}
}

func (h *AllowHeader) Equal(other Header) bool {
	o, ok := other.(*AllowHeader)
	return ok && h.Values.Equal(o.Values)
}

// RequireHeader lists option tags the UAS must support to process the
// request.
type RequireHeader struct{ tokenListHeader }

func NewRequireHeader(tags []string) *RequireHeader {
	return &RequireHeader{newTokenListHeader("Require", tags)}
}

func (h *RequireHeader) Equal(other Header) bool {
	o, ok := other.(*RequireHeader)
	return ok && h.Values.Equal(o.Values)
}

// SupportedHeader lists option tags the UA supports.
type SupportedHeader struct{ tokenListHeader }

func NewSupportedHeader(tags []string) *SupportedHeader {
	return &SupportedHeader{newTokenListHeader("Supported", tags)}
}

func (h *SupportedHeader) Equal(other Header) bool {
	o, ok := other.(*SupportedHeader)
	return ok && h.Values.Equal(o.Values)
}

// UnsupportedHeader lists option tags rejected by a 420 response.
type UnsupportedHeader struct{ tokenListHeader }

func NewUnsupportedHeader(tags []string) *UnsupportedHeader {
	return &UnsupportedHeader{newTokenListHeader("Unsupported", tags)}
}

func (h *UnsupportedHeader) Equal(other Header) bool {
	o, ok := other.(*UnsupportedHeader)
	return ok && h.Values.Equal(o.Values)
}

// ProxyRequireHeader lists option tags a proxy must support.
type ProxyRequireHeader struct{ tokenListHeader }

func NewProxyRequireHeader(tags []string) *ProxyRequireHeader {
	return &ProxyRequireHeader{newTokenListHeader("Proxy-Require", tags)}
}

func (h *ProxyRequireHeader) Equal(other Header) bool {
	o, ok := other.(*ProxyRequireHeader)
	return ok && h.Values.Equal(o.Values)
}

// ContentLanguageHeader lists RFC 1766/3066 language tags.
type ContentLanguageHeader struct{ tokenListHeader }

func NewContentLanguageHeader(tags []string) *ContentLanguageHeader {
	return &ContentLanguageHeader{newTokenListHeader("Content-Language", tags)}
}

func (h *ContentLanguageHeader) Equal(other Header) bool {
	o, ok := other.(*ContentLanguageHeader)
	return ok && h.Values.Equal(o.Values)
}
