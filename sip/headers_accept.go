package sip

import (
	"io"
	"strconv"
	"strings"
)

// AcceptItem is one comma-separated value of an Accept header: a media
// range plus parameters (commonly "q").
type AcceptItem struct {
	Range  MediaRange
	Params HeaderParams
}

func (a AcceptItem) String() string {
	var b strings.Builder
	b.WriteString(a.Range.String())
	if a.Params.Len() > 0 {
		b.WriteString(";")
		a.Params.StringWrite(';', &b)
	}
	return b.String()
}

func (a AcceptItem) Equal(o AcceptItem) bool {
	return a.Range.Equal(o.Range) && equalParamsQAware(a.Params, o.Params)
}

// AcceptHeader is the "Accept" header: acceptable media ranges for the
// message body of a response.
type AcceptHeader struct {
	Values ValueCollection[AcceptItem]
}

func NewAcceptHeader(items ...AcceptItem) *AcceptHeader {
	return &AcceptHeader{Values: NewValueCollection(", ", items...)}
}

func (h *AcceptHeader) Name() string { return "Accept" }

func (h *AcceptHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *AcceptHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Accept: ")
	h.Values.StringWrite(w)
}

func (h *AcceptHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *AcceptHeader) Equal(other Header) bool {
	o, ok := other.(*AcceptHeader)
	return ok && h.Values.Equal(o.Values)
}

// tokenParamItem is one comma-separated "token ; params" value shared by
// Accept-Encoding (content-coding) and Accept-Language (language-range).
type tokenParamItem struct {
	Token  string
	Params HeaderParams
}

func (t tokenParamItem) String() string {
	var b strings.Builder
	b.WriteString(t.Token)
	if t.Params.Len() > 0 {
		b.WriteString(";")
		t.Params.StringWrite(';', &b)
	}
	return b.String()
}

func (t tokenParamItem) Equal(o tokenParamItem) bool {
	return strings.EqualFold(t.Token, o.Token) && equalParamsQAware(t.Params, o.Params)
}

// equalParamsQAware compares two accept-param bags the way HeaderParams.Equal
// does, except the "q" value is compared as an IEEE-754 f32 rather than as a
// literal string, so "q=0.7" and "q=0.700" are equal.
func equalParamsQAware(a, b HeaderParams) bool {
	if len(a) != len(b) {
		return false
	}
	for _, kv := range a {
		bv, ok := b.Get(kv.Key)
		if !ok {
			return false
		}
		if strings.EqualFold(kv.Key, "q") {
			if !qValuesEqual(kv.Val, bv) {
				return false
			}
			continue
		}
		if bv != kv.Val {
			return false
		}
	}
	return true
}

func qValuesEqual(a, b string) bool {
	af, aerr := strconv.ParseFloat(a, 32)
	bf, berr := strconv.ParseFloat(b, 32)
	if aerr != nil || berr != nil {
		return a == b
	}
	return float32(af) == float32(bf)
}

// AcceptEncodingHeader is the "Accept-Encoding" header.
type AcceptEncodingHeader struct {
	Values ValueCollection[tokenParamItem]
}

func NewAcceptEncodingHeader(items ...tokenParamItem) *AcceptEncodingHeader {
	return &AcceptEncodingHeader{Values: NewValueCollection(", ", items...)}
}

func (h *AcceptEncodingHeader) Name() string { return "Accept-Encoding" }

func (h *AcceptEncodingHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *AcceptEncodingHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Accept-Encoding: ")
	h.Values.StringWrite(w)
}

func (h *AcceptEncodingHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *AcceptEncodingHeader) Equal(other Header) bool {
	o, ok := other.(*AcceptEncodingHeader)
	return ok && h.Values.Equal(o.Values)
}

// AcceptLanguageHeader is the "Accept-Language" header.
type AcceptLanguageHeader struct {
	Values ValueCollection[tokenParamItem]
}

func NewAcceptLanguageHeader(items ...tokenParamItem) *AcceptLanguageHeader {
	return &AcceptLanguageHeader{Values: NewValueCollection(", ", items...)}
}

func (h *AcceptLanguageHeader) Name() string { return "Accept-Language" }

func (h *AcceptLanguageHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *AcceptLanguageHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Accept-Language: ")
	h.Values.StringWrite(w)
}

func (h *AcceptLanguageHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *AcceptLanguageHeader) Equal(other Header) bool {
	o, ok := other.(*AcceptLanguageHeader)
	return ok && h.Values.Equal(o.Values)
}
