package sip

// paramsParserState names one state of the hand-written ";key=value" FSM,
// which UnmarshalHeaderParams drives with a switch over these values.
type paramsParserState int

const (
	paramsStateKey paramsParserState = iota
	paramsStateEqual
	paramsStateValue
	paramsStateQuote
)

// parseParamsOptions configures UnmarshalHeaderParams for the handful of
// grammars that deviate from the plain ";key=value" shape: URI parameters
// allow paramUnreserved characters in a bare value and stop at "?" (the
// start of uri-headers); a header's own generic-params tail runs to end of
// string unless the caller has already sliced it off.
type parseParamsOptions struct {
	sep             byte
	stop            byte
	hasStop         bool
	valueUnreserved bool
}

func defaultParseParamsOptions() parseParamsOptions {
	return parseParamsOptions{sep: ';'}
}

func uriParamsOptions() parseParamsOptions {
	return parseParamsOptions{sep: ';', stop: '?', hasStop: true, valueUnreserved: true}
}

// UnmarshalHeaderParams parses a run of ";key" / ";key=value" productions.
// s[0] is expected to be the first byte of the first key (the leading
// separator, if any, must already be consumed by the caller). It returns the
// parsed params and the index of the first byte not consumed: either
// len(s), or the stop byte configured in opts.
func UnmarshalHeaderParams(s string, opts parseParamsOptions) (HeaderParams, int, error) {
	params := NewParams()
	state := paramsStateKey
	start, eq, quoteStart := 0, -1, -1

	i := 0
	for i < len(s) {
		c := s[i]
		if opts.hasStop && c == opts.stop && state != paramsStateQuote {
			break
		}

		switch state {
		case paramsStateKey:
			if i == start && (c == ' ' || c == '\t') {
				// optional whitespace after a separator (", " in auth-params)
				start++
				break
			}
			if !isParamKeyChar(c, opts) {
				return nil, 0, newErr(InvalidTokenString, s[start:])
			}
			if c == opts.sep {
				if i == start {
					return nil, 0, newErr(InvalidTokenString, s[start:])
				}
				if err := addParam(&params, s[start:i], "", false, false); err != nil {
					return nil, 0, err
				}
				start = i + 1
			} else if c == '=' {
				eq = i
				state = paramsStateValue
			}

		case paramsStateValue:
			switch {
			case c == '"' && i == eq+1:
				state = paramsStateQuote
				quoteStart = i
			case c == opts.sep:
				if err := addParam(&params, s[start:eq], s[eq+1:i], false, true); err != nil {
					return nil, 0, err
				}
				start = i + 1
				eq = -1
				state = paramsStateKey
			case !isParamValueChar(c, opts):
				return nil, 0, newErr(InvalidTokenString, s[eq+1:])
			}

		case paramsStateQuote:
			switch c {
			case '\\':
				i++ // skip the escaped octet; loop increment advances past it
			case '"':
				val, ok := unquote(s[quoteStart : i+1])
				if !ok {
					return nil, 0, newErr(InvalidTokenString, s[quoteStart:i+1])
				}
				if err := addParam(&params, s[start:eq], val, true, true); err != nil {
					return nil, 0, err
				}
				if i+1 < len(s) && s[i+1] == opts.sep {
					i++ // consume the separator that follows the closing quote
				}
				start = i + 1
				eq = -1
				state = paramsStateKey
			}
		}
		i++
	}

	switch state {
	case paramsStateKey:
		if i > start {
			if err := addParam(&params, s[start:i], "", false, false); err != nil {
				return nil, 0, err
			}
		} else if i != start {
			return nil, 0, newErr(InvalidTokenString, s[start:i])
		}
	case paramsStateValue:
		if err := addParam(&params, s[start:eq], s[eq+1:i], false, true); err != nil {
			return nil, 0, err
		}
	case paramsStateQuote:
		return nil, 0, newErr(InvalidTokenString, s[quoteStart:])
	}

	return params, i, nil
}

func isParamKeyChar(c byte, opts parseParamsOptions) bool {
	if c == opts.sep || c == '=' {
		return true
	}
	if isTokenChar(c) || c == '%' {
		return true
	}
	return opts.valueUnreserved && isParamUnreserved(c)
}

func isParamValueChar(c byte, opts parseParamsOptions) bool {
	if isTokenChar(c) || c == '%' {
		return true
	}
	return opts.valueUnreserved && isParamUnreserved(c)
}

// addParam adds key (always percent-unescaped) to params. When hasValue is
// false, key is a flag param (";lr") and val is ignored. When hasValue is
// true, val is added verbatim if preEscaped (it was already unquoted from a
// quoted-string), otherwise it is percent-unescaped first (a bare pvalue).
func addParam(params *HeaderParams, key, val string, preEscaped, hasValue bool) error {
	k, err := percentUnescape(key)
	if err != nil {
		return err
	}
	if !hasValue {
		params.AddFlag(k)
		return nil
	}
	if preEscaped {
		params.Add(k, val)
		return nil
	}
	v, err := percentUnescape(val)
	if err != nil {
		return err
	}
	params.Add(k, v)
	return nil
}
