package sip

import (
	"io"
	"strings"
)

// authHeader backs Authorization, Proxy-Authorization, WWW-Authenticate and
// Proxy-Authenticate: a scheme token (almost always "Digest") followed by a
// comma-separated list of auth-params, some of which (realm, nonce, opaque,
// qop, domain) are quoted-strings and some (algorithm, stale) are tokens.
type authHeader struct {
	name   string
	Scheme string
	Params HeaderParams
}

func (h *authHeader) Name() string { return h.name }

func (h *authHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *authHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	w.WriteString(h.Scheme)
	w.WriteString(" ")
	h.Params.StringWrite(',', w)
}

func (h *authHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	w.WriteString(h.Scheme)
	w.WriteString(" ")
	sorted := h.Params.Clone()
	sortParamsByKey(sorted)
	sorted.StringWrite(',', w)
}

func (h *authHeader) equalParams(o *authHeader) bool {
	return strings.EqualFold(h.Scheme, o.Scheme) && h.Params.Equal(o.Params)
}

// AuthorizationHeader is a request's "Authorization" header.
type AuthorizationHeader struct{ authHeader }

func NewAuthorizationHeader(scheme string, params HeaderParams) *AuthorizationHeader {
	return &AuthorizationHeader{authHeader{name: "Authorization", Scheme: scheme, Params: params}}
}

func (h *AuthorizationHeader) Equal(other Header) bool {
	o, ok := other.(*AuthorizationHeader)
	return ok && h.equalParams(&o.authHeader)
}

// ProxyAuthorizationHeader is a request's "Proxy-Authorization" header.
type ProxyAuthorizationHeader struct{ authHeader }

func NewProxyAuthorizationHeader(scheme string, params HeaderParams) *ProxyAuthorizationHeader {
	return &ProxyAuthorizationHeader{authHeader{name: "Proxy-Authorization", Scheme: scheme, Params: params}}
}

func (h *ProxyAuthorizationHeader) Equal(other Header) bool {
	o, ok := other.(*ProxyAuthorizationHeader)
	return ok && h.equalParams(&o.authHeader)
}

// WWWAuthenticateHeader is a 401 response's challenge header.
type WWWAuthenticateHeader struct{ authHeader }

func NewWWWAuthenticateHeader(scheme string, params HeaderParams) *WWWAuthenticateHeader {
	return &WWWAuthenticateHeader{authHeader{name: "WWW-Authenticate", Scheme: scheme, Params: params}}
}

func (h *WWWAuthenticateHeader) Equal(other Header) bool {
	o, ok := other.(*WWWAuthenticateHeader)
	return ok && h.equalParams(&o.authHeader)
}

// ProxyAuthenticateHeader is a 407 response's challenge header.
type ProxyAuthenticateHeader struct{ authHeader }

func NewProxyAuthenticateHeader(scheme string, params HeaderParams) *ProxyAuthenticateHeader {
	return &ProxyAuthenticateHeader{authHeader{name: "Proxy-Authenticate", Scheme: scheme, Params: params}}
}

func (h *ProxyAuthenticateHeader) Equal(other Header) bool {
	o, ok := other.(*ProxyAuthenticateHeader)
	return ok && h.equalParams(&o.authHeader)
}

// AuthenticationInfoHeader is a 2xx response's "Authentication-Info"
// header: unlike the others it has no leading scheme token, just a bare
// auth-param list.
type AuthenticationInfoHeader struct {
	Params HeaderParams
}

func (h *AuthenticationInfoHeader) Name() string { return "Authentication-Info" }

func (h *AuthenticationInfoHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *AuthenticationInfoHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Authentication-Info: ")
	h.Params.StringWrite(',', w)
}

func (h *AuthenticationInfoHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString("Authentication-Info: ")
	sorted := h.Params.Clone()
	sortParamsByKey(sorted)
	sorted.StringWrite(',', w)
}

func (h *AuthenticationInfoHeader) Equal(other Header) bool {
	o, ok := other.(*AuthenticationInfoHeader)
	return ok && h.Params.Equal(o.Params)
}
