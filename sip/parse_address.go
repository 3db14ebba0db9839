package sip

import "strings"

// ParseNameAddress parses the "[display-name] (name-addr / addr-spec)"
// production shared by To, From, Contact, Route, Record-Route and
// Reply-To.
func ParseNameAddress(s string) (NameAddress, error) {
	s = strings.TrimSpace(s)
	if s == "*" {
		return NameAddress{URI: &SipURI{Wildcard: true}}, nil
	}

	var na NameAddress
	rest := s

	if lt := strings.IndexByte(rest, '<'); lt >= 0 {
		display := strings.TrimSpace(rest[:lt])
		if display != "" {
			if unq, ok := unquote(display); ok {
				na.DisplayName = unq
				na.HasDisplayName = true
				na.DisplayQuoted = true
			} else {
				na.DisplayName = display
				na.HasDisplayName = true
			}
		}
		gt := strings.IndexByte(rest[lt:], '>')
		if gt < 0 {
			return NameAddress{}, newErr(InvalidUri, rest)
		}
		gt += lt
		uri, err := ParseURI(rest[lt+1 : gt])
		if err != nil {
			return NameAddress{}, err
		}
		na.URI = uri

		tail := strings.TrimLeft(rest[gt+1:], " \t")
		if strings.HasPrefix(tail, ";") {
			params, _, err := UnmarshalHeaderParams(tail[1:], defaultParseParamsOptions())
			if err != nil {
				return NameAddress{}, err
			}
			na.Params = params
		}
		return na, nil
	}

	// addr-spec form: bare URI, no display name; any ";params" after the
	// URI's own host[:port] belong to the URI's uri-parameters, already
	// consumed by ParseURI, so nothing remains to attach as header params.
	uri, err := ParseURI(rest)
	if err != nil {
		return NameAddress{}, err
	}
	na.URI = uri
	return na, nil
}
