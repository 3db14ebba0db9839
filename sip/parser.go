package sip

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Parser turns raw bytes into a Request or Response. It is configured with
// functional options (the teacher's own idiom) rather than a config struct,
// so that callers only pay for the behavior they opt into.
type Parser struct {
	logger  zerolog.Logger
	metrics *parserMetrics
}

type ParserOption func(*Parser)

// WithLogger overrides the package-default zerolog logger used for parse
// tracing.
func WithLogger(l zerolog.Logger) ParserOption {
	return func(p *Parser) { p.logger = l }
}

// WithMetrics enables optional Prometheus counters/histograms for parse
// outcomes and latency (spec ambient stack, opt-in so the core has no
// mandatory metrics dependency at runtime).
func WithMetrics(reg prometheusRegisterer) ParserOption {
	return func(p *Parser) { p.metrics = newParserMetrics(reg) }
}

func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{logger: log.Logger}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ParseMessage parses a complete SIP message (start line, headers, CRLF,
// body) from data. It dispatches to ParseRequest or ParseResponse based on
// whether the start line begins with "SIP/" (a status line) or a method
// token (a request line).
func (p *Parser) ParseMessage(data []byte) (Message, error) {
	p.logger.Debug().Int("bytes", len(data)).Msg("parsing sip message")
	if p.metrics != nil {
		defer p.metrics.observeParse()()
	}

	s := string(data)
	lineEnd := strings.Index(s, "\r\n")
	if lineEnd < 0 {
		if p.metrics != nil {
			p.metrics.incError()
		}
		return nil, newErr(InvalidRequest, s)
	}
	startLine := s[:lineEnd]

	if strings.HasPrefix(startLine, "SIP/") {
		resp, err := p.parseResponseFrom(startLine, s[lineEnd+2:])
		if err != nil && p.metrics != nil {
			p.metrics.incError()
		}
		return resp, err
	}
	req, err := p.parseRequestFrom(startLine, s[lineEnd+2:])
	if err != nil && p.metrics != nil {
		p.metrics.incError()
	}
	return req, err
}

// ParseRequest parses data as a request, returning InvalidRequest if the
// start line is not a well-formed Request-Line.
func (p *Parser) ParseRequest(data []byte) (*Request, error) {
	s := string(data)
	lineEnd := strings.Index(s, "\r\n")
	if lineEnd < 0 {
		return nil, newErr(InvalidRequest, s)
	}
	return p.parseRequestFrom(s[:lineEnd], s[lineEnd+2:])
}

// ParseResponse parses data as a response, returning InvalidResponse if the
// start line is not a well-formed Status-Line.
func (p *Parser) ParseResponse(data []byte) (*Response, error) {
	s := string(data)
	lineEnd := strings.Index(s, "\r\n")
	if lineEnd < 0 {
		return nil, newErr(InvalidResponse, s)
	}
	return p.parseResponseFrom(s[:lineEnd], s[lineEnd+2:])
}

func (p *Parser) parseRequestFrom(startLine, rest string) (*Request, error) {
	fields := strings.SplitN(startLine, " ", 3)
	if len(fields) != 3 {
		return nil, newErr(InvalidRequest, startLine)
	}
	method, err := ParseMethod(fields[0])
	if err != nil {
		return nil, newErrWrap(InvalidRequest, startLine, err)
	}
	uri, err := ParseURI(fields[1])
	if err != nil {
		return nil, newErrWrap(InvalidRequest, startLine, err)
	}
	version, err := ParseSipVersion(fields[2])
	if err != nil {
		return nil, newErrWrap(InvalidRequest, startLine, err)
	}

	req := NewRequest(method, uri)
	req.version = version
	body, err := p.parseHeadersInto(&req.message, rest)
	if err != nil {
		return nil, err
	}
	req.body = body
	return req, nil
}

func (p *Parser) parseResponseFrom(startLine, rest string) (*Response, error) {
	fields := strings.SplitN(startLine, " ", 3)
	if len(fields) < 2 {
		return nil, newErr(InvalidResponse, startLine)
	}
	version, err := ParseSipVersion(fields[0])
	if err != nil {
		return nil, newErrWrap(InvalidResponse, startLine, err)
	}
	code, err := ParseStatusCode(fields[1])
	if err != nil {
		return nil, newErrWrap(InvalidResponse, startLine, err)
	}
	var reasonText string
	if len(fields) == 3 {
		reasonText = fields[2]
	}
	reason, err := ParseReasonPhrase(reasonText)
	if err != nil {
		return nil, newErrWrap(InvalidResponse, startLine, err)
	}

	resp := NewResponse(code, reason)
	resp.version = version
	body, err := p.parseHeadersInto(&resp.message, rest)
	if err != nil {
		return nil, err
	}
	resp.body = body
	return resp, nil
}

// parseHeadersInto unfolds and parses every header line up to the blank
// line that ends the header section, then returns whatever bytes remain as
// the body. Content-Length, if present, is parsed and stored but never
// checked against the actual body length: that reconciliation is a
// transport-layer concern, not this parser's.
func (p *Parser) parseHeadersInto(m *message, rest string) ([]byte, error) {
	headerBlock, body, ok := strings.Cut(rest, "\r\n\r\n")
	if !ok {
		return nil, newErr(InvalidMessageHeader, rest)
	}

	for _, line := range unfoldHeaderLines(headerBlock) {
		if line == "" {
			continue
		}
		name, _, value, ok := splitHCOLON(line)
		if !ok {
			return nil, newErr(InvalidMessageHeader, line)
		}
		hs, err := ParseHeaderLine(name, value)
		if err != nil {
			return nil, err
		}
		for _, h := range hs {
			m.AppendHeader(h)
		}
	}

	return []byte(body), nil
}

// unfoldHeaderLines splits a header block into logical header lines,
// joining any continuation line (one starting with SP/HTAB, RFC 3261
// §7.3.1 line folding) onto the previous line with the fold collapsed to a
// single space.
func unfoldHeaderLines(block string) []string {
	rawLines := strings.Split(block, "\r\n")
	var out []string
	for _, line := range rawLines {
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') && len(out) > 0 {
			out[len(out)-1] += " " + strings.TrimLeft(line, " \t")
			continue
		}
		out = append(out, line)
	}
	return out
}

// maxCseq is the largest legal CSeq sequence number (2**31 - 1), per
// RFC 3261 §8.1.1.5.
const maxCseq = 2147483647
