package sip

import (
	"strconv"
	"strings"
)

// compactHeaderNames maps the RFC 3261 §7.3.3 one-letter compact forms this
// catalogue uses onto their canonical long names.
var compactHeaderNames = map[string]string{
	"v": "Via",
	"f": "From",
	"t": "To",
	"m": "Contact",
	"i": "Call-ID",
	"l": "Content-Length",
	"c": "Content-Type",
	"k": "Supported",
	"s": "Subject",
	"e": "Content-Encoding",
}

func canonicalHeaderName(name string) string {
	if long, ok := compactHeaderNames[strings.ToLower(name)]; ok {
		return long
	}
	return name
}

// ParseHeaderLine parses the name and value of one already-unfolded header
// line, split at its colon (with any leading/trailing LWS around the value
// already stripped), into its concrete Header value(s), dispatching on the
// header's canonical name.
// Most headers produce exactly one Header; Contact, Route, Record-Route,
// Via, To, From and Reply-To carry a COMMA-separated list grammar and so may
// produce more than one (e.g. two addresses on a single "Record-Route:"
// line become two RecordRouteHeader values, in order). Unrecognized header
// names produce a single GenericHeader rather than an error, since RFC 3261
// is an open set of extension headers.
func ParseHeaderLine(rawName, value string) ([]Header, error) {
	name := canonicalHeaderName(rawName)
	switch strings.ToLower(name) {
	case "to":
		return parseAddressList(name, value, func(na NameAddress) Header { return NewToHeader(na) })
	case "from":
		return parseAddressList(name, value, func(na NameAddress) Header { return NewFromHeader(na) })
	case "contact":
		return parseAddressList(name, value, func(na NameAddress) Header { return NewContactHeader(na) })
	case "route":
		return parseAddressList(name, value, func(na NameAddress) Header { return NewRouteHeader(na) })
	case "record-route":
		return parseAddressList(name, value, func(na NameAddress) Header { return NewRecordRouteHeader(na) })
	case "reply-to":
		return parseAddressList(name, value, func(na NameAddress) Header { return NewReplyToHeader(na) })

	case "via":
		var out []Header
		for _, part := range splitTopLevelComma(value) {
			v, err := ParseVia(part)
			if err != nil {
				return nil, newHeaderErr(name, value, err)
			}
			out = append(out, v)
		}
		return out, nil

	case "call-id":
		id, err := ParseCallID(strings.TrimSpace(value))
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewCallIDHeader(id)), nil

	case "cseq":
		fields := strings.Fields(value)
		if len(fields) != 2 {
			return nil, newHeaderErr(name, value, newErr(InvalidTokenString, value))
		}
		seq, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		method, err := ParseMethod(fields[1])
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewCSeqHeader(uint32(seq), method)), nil

	case "content-length":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewContentLengthHeader(n)), nil

	case "max-forwards":
		n := parseSaturatingUint(strings.TrimSpace(value), 8)
		return one(NewMaxForwardsHeader(uint32(n))), nil

	case "expires":
		n := parseSaturatingUint(strings.TrimSpace(value), 32)
		return one(NewExpiresHeader(uint32(n))), nil

	case "min-expires":
		n := parseSaturatingUint(strings.TrimSpace(value), 32)
		return one(NewMinExpiresHeader(uint32(n))), nil

	case "content-type":
		mt, params, err := parseMediaType(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewContentTypeHeader(mt, params)), nil

	case "allow":
		return one(NewAllowHeader(splitCommaTokens(value))), nil
	case "require":
		return one(NewRequireHeader(splitCommaTokens(value))), nil
	case "supported":
		return one(NewSupportedHeader(splitCommaTokens(value))), nil
	case "unsupported":
		return one(NewUnsupportedHeader(splitCommaTokens(value))), nil
	case "proxy-require":
		return one(NewProxyRequireHeader(splitCommaTokens(value))), nil
	case "content-language":
		return one(NewContentLanguageHeader(splitCommaTokens(value))), nil
	case "content-encoding":
		return one(NewContentEncodingHeader(splitCommaTokens(value))), nil

	case "organization":
		return one(NewOrganizationHeader(value)), nil
	case "subject":
		return one(NewSubjectHeader(value)), nil
	case "priority":
		return one(NewPriorityHeader(Priority(strings.ToLower(strings.TrimSpace(value))))), nil

	case "server":
		return one(NewServerHeader(parseProducts(value)...)), nil
	case "user-agent":
		return one(NewUserAgentHeader(parseProducts(value)...)), nil

	case "mime-version":
		major, minor, err := parseDotPair(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(&MimeVersionHeader{Major: major, Minor: minor}), nil

	case "date":
		return one(NewDateHeader(strings.TrimSpace(value))), nil

	case "in-reply-to":
		ids := splitCommaTokens(value)
		out := make([]CallID, len(ids))
		for i, id := range ids {
			out[i] = CallID(id)
		}
		return one(NewInReplyToHeader(out...)), nil

	case "authorization", "proxy-authorization", "www-authenticate", "proxy-authenticate":
		scheme, params, err := parseChallengeOrCredentials(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		switch strings.ToLower(name) {
		case "authorization":
			return one(NewAuthorizationHeader(scheme, params)), nil
		case "proxy-authorization":
			return one(NewProxyAuthorizationHeader(scheme, params)), nil
		case "www-authenticate":
			return one(NewWWWAuthenticateHeader(scheme, params)), nil
		default:
			return one(NewProxyAuthenticateHeader(scheme, params)), nil
		}

	case "authentication-info":
		params, _, err := UnmarshalHeaderParams(value, parseParamsOptions{sep: ','})
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(&AuthenticationInfoHeader{Params: params}), nil

	case "accept":
		items, err := parseAcceptItems(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewAcceptHeader(items...)), nil
	case "accept-encoding":
		items, err := parseTokenParamItems(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewAcceptEncodingHeader(items...)), nil
	case "accept-language":
		items, err := parseTokenParamItems(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewAcceptLanguageHeader(items...)), nil

	case "call-info":
		items, err := parseInfoItems(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewCallInfoHeader(items...)), nil
	case "error-info":
		items, err := parseInfoItems(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewErrorInfoHeader(items...)), nil
	case "alert-info":
		items, err := parseInfoItems(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewAlertInfoHeader(items...)), nil

	case "content-disposition":
		dt, params, err := parseContentDisposition(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewContentDispositionHeader(dt, params)), nil

	case "retry-after":
		h, err := parseRetryAfter(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(h), nil

	case "timestamp":
		return one(parseTimestamp(value)), nil

	case "warning":
		values, err := parseWarningValues(value)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		return one(NewWarningHeader(values...)), nil

	default:
		return one(&GenericHeader{HeaderName: rawName, Value: value}), nil
	}
}

func one(h Header) []Header { return []Header{h} }

// parseAddressList splits value on top-level commas (respecting quoted
// display-names and "<...>" URIs) and parses each segment as a
// NameAddress, wrapping each in a Header built by ctor. To, From and
// Reply-To are singular by the strict RFC 3261 grammar, but in practice
// some peers fold several addresses onto one line the same way Contact and
// Route do; splitting uniformly means none of them silently discard a
// trailing address instead of surfacing it.
func parseAddressList(name, value string, ctor func(NameAddress) Header) ([]Header, error) {
	parts := splitTopLevelComma(value)
	out := make([]Header, 0, len(parts))
	for _, part := range parts {
		na, err := ParseNameAddress(part)
		if err != nil {
			return nil, newHeaderErr(name, value, err)
		}
		out = append(out, ctor(na))
	}
	return out, nil
}

// parseSaturatingUint parses a decimal non-negative integer, saturating to
// the maximum value representable in bits (8 or 32) rather than failing on
// overflow or out-of-grammar input, matching imersio-sip's Max-Forwards/
// Expires behavior (spec §4.3: "saturating u8"/"saturating u32").
func parseSaturatingUint(s string, bits int) uint64 {
	max := uint64(1)<<uint(bits) - 1
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return max
		}
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func splitCommaTokens(value string) []string {
	fields := strings.Split(value, ",")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseDotPair(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0, 0, newErr(InvalidTokenString, s)
	}
	major, err := strconv.Atoi(s[:dot])
	if err != nil {
		return 0, 0, err
	}
	minor, err := strconv.Atoi(s[dot+1:])
	if err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

func parseProducts(value string) []Product {
	fields := strings.Fields(value)
	out := make([]Product, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "(") {
			continue
		}
		p, err := ParseProduct(f)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseMediaType(value string) (MediaRange, HeaderParams, error) {
	parts := strings.Split(value, ";")
	mt, err := ParseMediaRange(strings.TrimSpace(parts[0]))
	if err != nil {
		return MediaRange{}, nil, err
	}
	params := NewParams()
	if len(parts) > 1 {
		p, _, err := UnmarshalHeaderParams(strings.Join(parts[1:], ";"), defaultParseParamsOptions())
		if err != nil {
			return MediaRange{}, nil, err
		}
		params = p
	}
	return mt, params, nil
}

func parseChallengeOrCredentials(value string) (string, HeaderParams, error) {
	value = strings.TrimSpace(value)
	sp := strings.IndexByte(value, ' ')
	if sp < 0 {
		return "", nil, newErr(InvalidTokenString, value)
	}
	scheme := value[:sp]
	params, _, err := UnmarshalHeaderParams(strings.TrimLeft(value[sp+1:], " "), parseParamsOptions{sep: ','})
	if err != nil {
		return "", nil, err
	}
	return scheme, params, nil
}

func parseAcceptItems(value string) ([]AcceptItem, error) {
	var out []AcceptItem
	for _, part := range splitTopLevelComma(value) {
		parts := strings.Split(part, ";")
		mt, err := ParseMediaRange(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}
		params := NewParams()
		if len(parts) > 1 {
			p, _, err := UnmarshalHeaderParams(strings.Join(parts[1:], ";"), defaultParseParamsOptions())
			if err != nil {
				return nil, err
			}
			params = p
		}
		out = append(out, AcceptItem{Range: mt, Params: params})
	}
	return out, nil
}

func parseTokenParamItems(value string) ([]tokenParamItem, error) {
	var out []tokenParamItem
	for _, part := range splitTopLevelComma(value) {
		parts := strings.Split(part, ";")
		tok := strings.TrimSpace(parts[0])
		params := NewParams()
		if len(parts) > 1 {
			p, _, err := UnmarshalHeaderParams(strings.Join(parts[1:], ";"), defaultParseParamsOptions())
			if err != nil {
				return nil, err
			}
			params = p
		}
		out = append(out, tokenParamItem{Token: tok, Params: params})
	}
	return out, nil
}

func parseInfoItems(value string) ([]InfoItem, error) {
	var out []InfoItem
	for _, part := range splitTopLevelComma(value) {
		part = strings.TrimSpace(part)
		lt := strings.IndexByte(part, '<')
		gt := strings.IndexByte(part, '>')
		if lt < 0 || gt < 0 || gt < lt {
			return nil, newErr(InvalidUri, part)
		}
		uri, err := ParseURI(part[lt+1 : gt])
		if err != nil {
			return nil, err
		}
		params := NewParams()
		tail := strings.TrimLeft(part[gt+1:], " \t")
		if strings.HasPrefix(tail, ";") {
			p, _, err := UnmarshalHeaderParams(tail[1:], defaultParseParamsOptions())
			if err != nil {
				return nil, err
			}
			params = p
		}
		out = append(out, InfoItem{URI: uri, Params: params})
	}
	return out, nil
}

func parseContentDisposition(value string) (DispositionType, HeaderParams, error) {
	parts := strings.Split(value, ";")
	dt := DispositionType(strings.ToLower(strings.TrimSpace(parts[0])))
	params := NewParams()
	if len(parts) > 1 {
		p, _, err := UnmarshalHeaderParams(strings.Join(parts[1:], ";"), defaultParseParamsOptions())
		if err != nil {
			return "", nil, err
		}
		params = p
	}
	return dt, params, nil
}

func parseRetryAfter(value string) (*RetryAfterHeader, error) {
	value = strings.TrimSpace(value)
	i := 0
	for i < len(value) && isDigit(value[i]) {
		i++
	}
	if i == 0 {
		return nil, newErr(InvalidTokenString, value)
	}
	n, err := strconv.ParseUint(value[:i], 10, 32)
	if err != nil {
		return nil, err
	}
	h := &RetryAfterHeader{DeltaSeconds: uint32(n)}

	rest := strings.TrimLeft(value[i:], " \t")
	if strings.HasPrefix(rest, "(") {
		inner, n, err := splitComment(rest)
		if err != nil {
			return nil, err
		}
		h.Comment = inner
		h.HasComment = true
		rest = strings.TrimLeft(rest[n:], " \t")
	}
	if strings.HasPrefix(rest, ";") {
		params, _, err := UnmarshalHeaderParams(rest[1:], defaultParseParamsOptions())
		if err != nil {
			return nil, err
		}
		h.Params = params
	}
	return h, nil
}

func parseTimestamp(value string) *TimestampHeader {
	value = strings.TrimSpace(value)
	sp := strings.IndexAny(value, " \t")
	if sp < 0 {
		return &TimestampHeader{Value: value}
	}
	return &TimestampHeader{
		Value:    value[:sp],
		Delay:    strings.TrimSpace(value[sp+1:]),
		HasDelay: true,
	}
}

func parseWarningValues(value string) ([]WarningValue, error) {
	var out []WarningValue
	for _, part := range splitTopLevelComma(value) {
		part = strings.TrimSpace(part)
		fields := strings.SplitN(part, " ", 3)
		if len(fields) != 3 {
			return nil, newErr(InvalidWarnCode, part)
		}
		if len(fields[0]) != 3 {
			return nil, newErr(InvalidWarnCode, fields[0])
		}
		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, newErrWrap(InvalidWarnCode, fields[0], err)
		}
		if code < 100 {
			return nil, newErr(InvalidWarnCode, fields[0])
		}
		text, ok := unquote(strings.TrimSpace(fields[2]))
		if !ok {
			return nil, newErr(InvalidWarnAgent, fields[2])
		}
		out = append(out, WarningValue{Code: code, Agent: fields[1], Text: text})
	}
	return out, nil
}

// splitTopLevelComma splits on "," that are not inside a quoted-string or a
// "<...>" URI, since both Accept-style and info-list headers may embed a
// comma-bearing value inside those delimiters.
func splitTopLevelComma(s string) []string {
	var out []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case '<':
			if !inQuote {
				depth++
			}
		case '>':
			if !inQuote && depth > 0 {
				depth--
			}
		case ',':
			if !inQuote && depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
