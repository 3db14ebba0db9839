package sip

import (
	"io"
	"strconv"
	"strings"
)

// RequestMethod is the SIP method token of a request line (spec §3).
type RequestMethod string

const (
	INVITE    RequestMethod = "INVITE"
	ACK       RequestMethod = "ACK"
	BYE       RequestMethod = "BYE"
	CANCEL    RequestMethod = "CANCEL"
	OPTIONS   RequestMethod = "OPTIONS"
	REGISTER  RequestMethod = "REGISTER"
	PRACK     RequestMethod = "PRACK"
	SUBSCRIBE RequestMethod = "SUBSCRIBE"
	NOTIFY    RequestMethod = "NOTIFY"
	PUBLISH   RequestMethod = "PUBLISH"
	INFO      RequestMethod = "INFO"
	REFER     RequestMethod = "REFER"
	MESSAGE   RequestMethod = "MESSAGE"
	UPDATE    RequestMethod = "UPDATE"
)

func (m RequestMethod) String() string { return string(m) }

// ParseMethod accepts any token as an extension method (spec §4: Method is
// an open set), validating only that it is a legal token.
func ParseMethod(s string) (RequestMethod, error) {
	if !isToken(s) {
		return "", newErr(InvalidMethod, s)
	}
	return RequestMethod(s), nil
}

// SipVersion is the "SIP/2.0" version token of a start line.
type SipVersion struct {
	Major, Minor int
}

func DefaultSipVersion() SipVersion { return SipVersion{Major: 2, Minor: 0} }

func (v SipVersion) String() string {
	return "SIP/" + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// ParseSipVersion accepts only the single "SIP/2.0" variant; any other
// major.minor pair fails parsing (spec §3: Version has no other variant).
func ParseSipVersion(s string) (SipVersion, error) {
	if s != "SIP/2.0" {
		return SipVersion{}, newErr(InvalidVersion, s)
	}
	return SipVersion{Major: 2, Minor: 0}, nil
}

// StatusCode is the 3-digit numeric status of a response start line. Any
// value in [100, 999] is accepted (spec §4: open set beyond the registered
// ranges, including the torture-test "SIP/2.0 999 ...").
type StatusCode int

func NewStatusCode(n int) (StatusCode, error) {
	if n < 100 || n > 999 {
		return 0, newErr(InvalidStatusCode, strconv.Itoa(n))
	}
	return StatusCode(n), nil
}

func ParseStatusCode(s string) (StatusCode, error) {
	if len(s) != 3 {
		return 0, newErr(InvalidStatusCode, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, newErrWrap(InvalidStatusCode, s, err)
	}
	return NewStatusCode(n)
}

func (c StatusCode) String() string { return strconv.Itoa(int(c)) }

// ReasonPhrase is the free-text phrase following a status code. It is
// carried verbatim; RFC 3261 places no constraints on its content beyond
// excluding CR/LF.
type ReasonPhrase string

func ParseReasonPhrase(s string) (ReasonPhrase, error) {
	if strings.ContainsAny(s, "\r\n") {
		return "", newErr(InvalidReason, s)
	}
	return ReasonPhrase(s), nil
}

func (r ReasonPhrase) String() string { return string(r) }

// CallID is the token@host or bare-token identifier of a Call-ID header and
// the "i=" compact form.
type CallID string

func ParseCallID(s string) (CallID, error) {
	if s == "" {
		return "", newErr(InvalidCallId, s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isTokenChar(c) || c == '@' {
			continue
		}
		return "", newErr(InvalidCallId, s)
	}
	return CallID(s), nil
}

func (c CallID) String() string { return string(c) }

func (c CallID) Equal(other CallID) bool { return c == other }

// NewCallID mints a random, RFC 3261-legal Call-ID using a UUID for the
// host-independent random part (see callid.go for the uuid-backed builder).

// Transport names the protocol used to deliver a SIP message, as carried by
// a Via header or a uri "transport" parameter.
type Transport string

const (
	TransportUDP Transport = "UDP"
	TransportTCP Transport = "TCP"
	TransportTLS Transport = "TLS"
	TransportSCTP Transport = "SCTP"
	TransportWS  Transport = "WS"
	TransportWSS Transport = "WSS"
)

func (t Transport) String() string { return string(t) }

func ParseTransport(s string) (Transport, error) {
	if !isToken(s) {
		return "", newErr(InvalidTokenString, s)
	}
	return Transport(strings.ToUpper(s)), nil
}

// OptionTag is one token of an Allow/Require/Supported/Unsupported/
// Proxy-Require option-tag list.
type OptionTag string

func ParseOptionTag(s string) (OptionTag, error) {
	if !isToken(s) {
		return "", newErr(InvalidOptionTag, s)
	}
	return OptionTag(s), nil
}

func (t OptionTag) String() string      { return string(t) }
func (t OptionTag) Equal(o OptionTag) bool { return strings.EqualFold(string(t), string(o)) }

// Product is one "name[/version]" token of a Server/User-Agent header.
type Product struct {
	Name    string
	Version string
	HasVersion bool
}

func (p Product) String() string {
	if p.HasVersion {
		return p.Name + "/" + p.Version
	}
	return p.Name
}

func (p Product) Equal(o Product) bool {
	return p.Name == o.Name && p.HasVersion == o.HasVersion && p.Version == o.Version
}

func ParseProduct(s string) (Product, error) {
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		name, ver := s[:slash], s[slash+1:]
		if !isToken(name) || !isToken(ver) {
			return Product{}, newErr(InvalidTokenString, s)
		}
		return Product{Name: name, Version: ver, HasVersion: true}, nil
	}
	if !isToken(s) {
		return Product{}, newErr(InvalidTokenString, s)
	}
	return Product{Name: s}, nil
}

// MediaRange is an Accept header value: type "/" subtype plus parameters.
type MediaRange struct {
	Type, SubType string
}

func (m MediaRange) String() string { return m.Type + "/" + m.SubType }

func (m MediaRange) Equal(o MediaRange) bool {
	return strings.EqualFold(m.Type, o.Type) && strings.EqualFold(m.SubType, o.SubType)
}

func ParseMediaRange(s string) (MediaRange, error) {
	slash := strings.IndexByte(s, '/')
	if slash < 0 || !isToken(s[:slash]) || !isToken(s[slash+1:]) {
		return MediaRange{}, newErr(InvalidTokenString, s)
	}
	return MediaRange{Type: s[:slash], SubType: s[slash+1:]}, nil
}

// Algorithm is the Authorization/WWW-Authenticate "algorithm" value.
type Algorithm string

// MessageQop is the "qop" value of an Authorization/WWW-Authenticate header.
type MessageQop string

// Priority is the value of a Priority header.
type Priority string

const (
	PriorityEmergency Priority = "emergency"
	PriorityUrgent    Priority = "urgent"
	PriorityNormal    Priority = "normal"
	PriorityNonUrgent Priority = "non-urgent"
)

// Handling is the Content-Disposition "handling" parameter value.
type Handling string

const (
	HandlingOptional  Handling = "optional"
	HandlingRequired  Handling = "required"
)

// DispositionType is the Content-Disposition header's primary value.
type DispositionType string

const (
	DispositionRender  DispositionType = "render"
	DispositionSession DispositionType = "session"
	DispositionIcon    DispositionType = "icon"
	DispositionAlert   DispositionType = "alert"
)

// Stale is the Authorization/WWW-Authenticate "stale" flag, a token that is
// conventionally "true"/"false" but, per RFC 3261, is really any token.
type Stale string

// WrappedString carries a token that was, in its original text, either a
// bare token or a DQUOTE-delimited quoted-string, so that faithful
// rendering can reproduce the original form while canonical rendering
// always prefers the bare form when legal (spec §5 Supplemented Features:
// grounded on imersio-sip's WrappedString, absent from the teacher).
type WrappedString struct {
	Value  string
	Quoted bool
}

func (w WrappedString) String() string {
	if w.Quoted {
		return quote(w.Value)
	}
	return w.Value
}

func (w WrappedString) StringCanonical() string {
	if needsQuoting(w.Value) {
		return quote(w.Value)
	}
	return w.Value
}

func (w WrappedString) Equal(o WrappedString) bool { return w.Value == o.Value }

func ParseWrappedString(s string) (WrappedString, error) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		v, ok := unquote(s)
		if !ok {
			return WrappedString{}, newErr(InvalidTokenString, s)
		}
		return WrappedString{Value: v, Quoted: true}, nil
	}
	if !isToken(s) {
		return WrappedString{}, newErr(InvalidTokenString, s)
	}
	return WrappedString{Value: s}, nil
}

// NameAddress is the "display-name" <uri> ; params shape shared by To,
// From, Contact, Route, Record-Route and Reply-To (spec §4).
type NameAddress struct {
	DisplayName    string
	HasDisplayName bool
	// DisplayQuoted remembers whether the original display-name was a
	// quoted-string, so faithful rendering can reproduce it exactly even
	// when the name happens to also be a legal bare token.
	DisplayQuoted bool
	URI           URI
	Params        HeaderParams
}

func (n NameAddress) String() string {
	var b strings.Builder
	n.StringWrite(&b)
	return b.String()
}

func (n NameAddress) StringWrite(w io.StringWriter) {
	if n.HasDisplayName {
		if n.DisplayQuoted || needsQuoting(n.DisplayName) {
			w.WriteString(quote(n.DisplayName))
		} else {
			w.WriteString(n.DisplayName)
		}
		w.WriteString(" ")
	}
	w.WriteString("<")
	n.URI.StringWrite(w)
	w.WriteString(">")
	if n.Params.Len() > 0 {
		w.WriteString(";")
		n.Params.StringWrite(';', w)
	}
}

func (n NameAddress) StringWriteCanonical(w io.StringWriter) {
	if n.HasDisplayName {
		w.WriteString(quote(n.DisplayName))
		w.WriteString(" ")
	}
	w.WriteString("<")
	n.URI.StringWriteCanonical(w)
	w.WriteString(">")
	sorted := n.Params.Clone()
	sortParamsByKey(sorted)
	if len(sorted) > 0 {
		w.WriteString(";")
		// tag/other generic params (e.g. Contact's "+sip.instance") carry
		// opaque case-sensitive tokens, so only lowercase the param names.
		sorted.StringWriteCanonicalKeysOnly(';', w)
	}
}

// Equal compares display name, URI and parameters; per RFC 3261 the tag
// parameter is semantically significant for dialog identity but headers
// built on NameAddress compare it the same as any other generic parameter.
func (n NameAddress) Equal(o NameAddress) bool {
	if n.HasDisplayName != o.HasDisplayName || n.DisplayName != o.DisplayName {
		return false
	}
	if !n.URI.Equal(o.URI) {
		return false
	}
	return n.Params.Equal(o.Params)
}
