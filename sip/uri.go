package sip

import (
	"io"
	"net/netip"
	"strconv"
	"strings"
)

// defaultSipPort and defaultSipsPort are the ports StringWriteCanonical
// writes for a SIP URI that has no explicit port. Equal never fills them in.
const (
	defaultSipPort  = 5060
	defaultSipsPort = 5061
)

// URI is satisfied by both SipURI (sip:/sips:) and AbsoluteURI (any other
// scheme, carried opaquely — e.g. tel:, mailto:, im:). The request parser
// accepts either kind as a Request-URI; AbsoluteURI also lets headers like
// Contact round-trip a non-SIP URI faithfully (spec §3).
type URI interface {
	String() string
	StringWrite(w io.StringWriter)
	StringWriteCanonical(w io.StringWriter)
	IsSIP() bool
	Equal(other URI) bool
}

// Host is the host component of a SIP URI: either a domain name (compared
// case-insensitively) or an IP literal (compared as an address, so that
// "[2001:db8::1]" and "[2001:DB8::1]" are equal).
type Host struct {
	Name string
	IP   netip.Addr
	IsIP bool
}

func HostFromString(s string) Host {
	lit := s
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		lit = s[1 : len(s)-1]
	}
	if addr, err := netip.ParseAddr(lit); err == nil {
		return Host{IP: addr, IsIP: true}
	}
	return Host{Name: s}
}

func (h Host) String() string {
	if h.IsIP {
		if h.IP.Is6() {
			return "[" + h.IP.String() + "]"
		}
		return h.IP.String()
	}
	return h.Name
}

func (h Host) Equal(other Host) bool {
	if h.IsIP != other.IsIP {
		return false
	}
	if h.IsIP {
		return h.IP == other.IP
	}
	return strings.EqualFold(h.Name, other.Name)
}

// SipURI is the "sip:" / "sips:" URI described by RFC 3261 §19.1 and spec §3.
//
//	sip:user:password@host:port;uri-parameters?headers
type SipURI struct {
	Secure   bool // true for sips:
	Wildcard bool // the special Contact value "*"

	User     string
	HasUser  bool
	Password string
	HasPassword bool

	Host Host
	Port int
	HasPort bool

	UriParams HeaderParams
	Headers   HeaderParams
}

func (u *SipURI) IsSIP() bool { return true }

func (u *SipURI) Scheme() string {
	if u.Secure {
		return "sips"
	}
	return "sip"
}

func (u *SipURI) String() string {
	var b strings.Builder
	u.StringWrite(&b)
	return b.String()
}

// StringWrite renders the URI faithfully: the exact user/password/host as
// stored, in insertion order for parameters and headers.
func (u *SipURI) StringWrite(w io.StringWriter) {
	if u.Wildcard {
		w.WriteString("*")
		return
	}
	w.WriteString(u.Scheme())
	w.WriteString(":")
	if u.HasUser {
		w.WriteString(percentEscape(u.User, isUserAllowed))
		if u.HasPassword {
			w.WriteString(":")
			w.WriteString(percentEscape(u.Password, isPasswordAllowed))
		}
		w.WriteString("@")
	}
	w.WriteString(u.Host.String())
	if u.HasPort {
		w.WriteString(":")
		w.WriteString(strconv.Itoa(u.Port))
	}
	if u.UriParams.Len() > 0 {
		w.WriteString(";")
		u.UriParams.StringWrite(';', w)
	}
	if u.Headers.Len() > 0 {
		w.WriteString("?")
		u.Headers.StringWrite('&', w)
	}
}

// StringWriteCanonical renders the normalized form: lowercased scheme and
// host, the default port made explicit, and uri-parameters/headers sorted
// by lowercased key so that byte-equal URIs under Equal render identically.
func (u *SipURI) StringWriteCanonical(w io.StringWriter) {
	if u.Wildcard {
		w.WriteString("*")
		return
	}
	w.WriteString(u.Scheme())
	w.WriteString(":")
	if u.HasUser {
		w.WriteString(percentEscape(u.User, isUserAllowed))
		if u.HasPassword {
			w.WriteString(":")
			w.WriteString(percentEscape(u.Password, isPasswordAllowed))
		}
		w.WriteString("@")
	}
	w.WriteString(strings.ToLower(u.Host.String()))
	w.WriteString(":")
	w.WriteString(strconv.Itoa(u.effectivePort()))

	sorted := u.UriParams.Clone()
	sortParamsByKey(sorted)
	if len(sorted) > 0 {
		w.WriteString(";")
		// param values are left as stored: most are case-insensitive in
		// practice, but "method" is uppercased by the parser and must not
		// be re-lowered here.
		sorted.StringWriteCanonicalKeysOnly(';', w)
	}
	sortedH := u.Headers.Clone()
	sortParamsByKey(sortedH)
	if len(sortedH) > 0 {
		w.WriteString("?")
		sortedH.StringWriteCanonicalKeysOnly('&', w)
	}
}

func (u *SipURI) effectivePort() int {
	if u.HasPort {
		return u.Port
	}
	if u.Secure {
		return defaultSipsPort
	}
	return defaultSipPort
}

func sortParamsByKey(hp HeaderParams) {
	for i := 1; i < len(hp); i++ {
		for j := i; j > 0 && strings.ToLower(hp[j-1].Key) > strings.ToLower(hp[j].Key); j-- {
			hp[j-1], hp[j] = hp[j], hp[j-1]
		}
	}
}

// matchIfEitherPresent lists the uri-parameters that, per RFC 3261 §19.1.4,
// must be present and equal on both sides if present on either side (spec
// §9 Open Question: implemented for all four, not just "transport").
var matchIfEitherPresent = []string{"user", "ttl", "method", "maddr", "transport"}

// Equal implements the RFC 3261 §19.1.4 SIP-URI comparison rule: scheme,
// user, password and host compared as described; ports compared as given,
// with no default port filled in; the matchIfEitherPresent parameters must agree if present on either side;
// every other uri-parameter must agree only where present on both sides;
// headers, if present on either side, must be identical component sets.
func (u *SipURI) Equal(other URI) bool {
	o, ok := other.(*SipURI)
	if !ok {
		return false
	}
	if u.Wildcard || o.Wildcard {
		return u.Wildcard == o.Wildcard
	}
	if u.Secure != o.Secure {
		return false
	}
	if u.HasUser != o.HasUser || u.User != o.User {
		return false
	}
	if u.HasPassword != o.HasPassword || u.Password != o.Password {
		return false
	}
	if !u.Host.Equal(o.Host) {
		return false
	}
	// Per RFC 3261 §19.1.4 as carried by this spec, the default port is a
	// display convenience only: it is never implicitly filled in for
	// equality, so a URI with an explicit ":5060" is not equal to one that
	// omits the port even though both resolve to the same port in practice.
	if u.HasPort != o.HasPort || u.Port != o.Port {
		return false
	}

	for _, key := range matchIfEitherPresent {
		av, aok := u.UriParams.Get(key)
		bv, bok := o.UriParams.Get(key)
		if aok != bok {
			return false
		}
		if aok && !strings.EqualFold(av, bv) {
			return false
		}
	}
	for _, kv := range u.UriParams {
		if isMatchIfEitherPresent(kv.Key) {
			continue
		}
		if bv, ok := o.UriParams.Get(kv.Key); ok && bv != kv.Val {
			return false
		}
	}
	if u.Headers.Len() > 0 || o.Headers.Len() > 0 {
		if !u.Headers.Equal(o.Headers) {
			return false
		}
	}
	return true
}

func isMatchIfEitherPresent(key string) bool {
	for _, k := range matchIfEitherPresent {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// Hash covers only the scheme, user, password, lowercased host and port,
// all of which Equal requires to match; uri-parameters and headers are left
// out, so two URIs that Equal accepts despite differing parameters still
// hash the same.
func (u *SipURI) Hash() uint64 {
	h := offset64
	h = fnv1a(h, u.Scheme())
	h = fnv1a(h, u.User)
	h = fnv1a(h, u.Password)
	h = fnv1a(h, strings.ToLower(u.Host.String()))
	if u.HasPort {
		h = fnv1a(h, strconv.Itoa(u.Port))
	}
	return h
}

// AbsoluteURI carries any non-SIP URI scheme opaquely (tel:, mailto:, ...),
// faithfully preserving the exact opaque part.
type AbsoluteURI struct {
	SchemeName string
	Opaque     string
}

func (u *AbsoluteURI) IsSIP() bool { return false }

func (u *AbsoluteURI) String() string {
	var b strings.Builder
	u.StringWrite(&b)
	return b.String()
}

func (u *AbsoluteURI) StringWrite(w io.StringWriter) {
	w.WriteString(u.SchemeName)
	w.WriteString(":")
	w.WriteString(u.Opaque)
}

func (u *AbsoluteURI) StringWriteCanonical(w io.StringWriter) {
	w.WriteString(strings.ToLower(u.SchemeName))
	w.WriteString(":")
	w.WriteString(u.Opaque)
}

func (u *AbsoluteURI) Equal(other URI) bool {
	o, ok := other.(*AbsoluteURI)
	if !ok {
		return false
	}
	return strings.EqualFold(u.SchemeName, o.SchemeName) && u.Opaque == o.Opaque
}

func isUserAllowed(c byte) bool {
	return isUnreserved(c) || isUserUnreserved(c)
}

func isPasswordAllowed(c byte) bool {
	return isUnreserved(c) || isPasswordSpecial(c)
}
