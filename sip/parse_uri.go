package sip

import (
	"strconv"
	"strings"
)

// uriFSM is the function-pointer state machine style the teacher's own URI
// and header parsers use: each state consumes a prefix of s and returns the
// next state plus the unconsumed remainder.
type uriFSM func(b *sipURIBuilder, s string) (uriFSM, string, error)

type sipURIBuilder struct {
	uri SipURI
}

// ParseURI parses any RFC 3261 absoluteURI or SIP/SIPS URI, including the
// Contact-header wildcard "*". Non-sip/sips schemes produce an AbsoluteURI
// that preserves their content opaquely.
func ParseURI(s string) (URI, error) {
	if s == "*" {
		return &SipURI{Wildcard: true}, nil
	}
	if len(s) == 0 {
		return nil, newErr(InvalidUri, s)
	}

	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return nil, newErr(InvalidUriScheme, s)
	}
	scheme := s[:colon]
	if !isValidScheme(scheme) {
		return nil, newErr(InvalidUriScheme, scheme)
	}
	lower := strings.ToLower(scheme)
	if lower != "sip" && lower != "sips" {
		return &AbsoluteURI{SchemeName: scheme, Opaque: s[colon+1:]}, nil
	}

	b := &sipURIBuilder{uri: SipURI{Secure: lower == "sips"}}
	state := uriStateUser
	rest := s[colon+1:]
	var err error
	for state != nil {
		state, rest, err = state(b, rest)
		if err != nil {
			return nil, err
		}
	}
	return &b.uri, nil
}

func isValidScheme(s string) bool {
	if len(s) == 0 || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// uriStateUser scans up to the "@" marking end of userinfo, or falls
// through to host if there is none.
func uriStateUser(b *sipURIBuilder, s string) (uriFSM, string, error) {
	at := -1
	colon := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '@':
			at = i
		case ':':
			if at < 0 && colon < 0 {
				colon = i
			}
		}
		if at >= 0 {
			break
		}
	}
	if at < 0 {
		return uriStateHost, s, nil
	}

	userPart := s[:at]
	if colon >= 0 {
		userPart = s[:colon]
		pass, err := percentUnescape(s[colon+1 : at])
		if err != nil {
			return nil, "", newErrWrap(InvalidUriPassword, s[colon+1:at], err)
		}
		b.uri.Password = pass
		b.uri.HasPassword = true
	}
	user, err := percentUnescape(userPart)
	if err != nil {
		return nil, "", newErrWrap(InvalidUriUser, userPart, err)
	}
	b.uri.User = user
	b.uri.HasUser = true
	return uriStateHost, s[at+1:], nil
}

// uriStateHost scans the host, which is either a bracketed IPv6 literal or a
// run of characters up to ':', ';', '?' or end of string.
func uriStateHost(b *sipURIBuilder, s string) (uriFSM, string, error) {
	if len(s) > 0 && s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, "", newErr(InvalidUri, s)
		}
		b.uri.Host = HostFromString(s[:end+1])
		rest := s[end+1:]
		return hostTail(b, rest)
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':':
			b.uri.Host = HostFromString(s[:i])
			return uriStatePort, s[i+1:], nil
		case ';':
			b.uri.Host = HostFromString(s[:i])
			return uriStateParams, s[i+1:], nil
		case '?':
			b.uri.Host = HostFromString(s[:i])
			return uriStateHeaders, s[i+1:], nil
		}
	}
	b.uri.Host = HostFromString(s)
	return nil, "", nil
}

func hostTail(b *sipURIBuilder, s string) (uriFSM, string, error) {
	if len(s) == 0 {
		return nil, "", nil
	}
	switch s[0] {
	case ':':
		return uriStatePort, s[1:], nil
	case ';':
		return uriStateParams, s[1:], nil
	case '?':
		return uriStateHeaders, s[1:], nil
	}
	return nil, "", newErr(InvalidUri, s)
}

func uriStatePort(b *sipURIBuilder, s string) (uriFSM, string, error) {
	end := len(s)
	next := uriFSM(nil)
	rest := ""
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ';':
			end, next, rest = i, uriStateParams, s[i+1:]
		case '?':
			end, next, rest = i, uriStateHeaders, s[i+1:]
		}
		if next != nil {
			break
		}
	}
	portStr := s[:end]
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return nil, "", newErrWrap(InvalidUri, portStr, err)
	}
	b.uri.Port = port
	b.uri.HasPort = true
	return next, rest, nil
}

func uriStateParams(b *sipURIBuilder, s string) (uriFSM, string, error) {
	params, n, err := UnmarshalHeaderParams(s, uriParamsOptions())
	if err != nil {
		return nil, "", err
	}
	if m, ok := params.Get("method"); ok && m != "" {
		params.Add("method", strings.ToUpper(m))
	}
	b.uri.UriParams = params
	if n >= len(s) {
		return nil, "", nil
	}
	// n stopped at '?'
	return uriStateHeaders, s[n+1:], nil
}

// uriStateHeaders parses the uri-headers tail, which uses "&" rather than
// ";" as its separator and allows paramUnreserved characters unescaped.
func uriStateHeaders(b *sipURIBuilder, s string) (uriFSM, string, error) {
	params, _, err := UnmarshalHeaderParams(s, parseParamsOptions{sep: '&', valueUnreserved: true})
	if err != nil {
		return nil, "", err
	}
	b.uri.Headers = params
	return nil, "", nil
}
