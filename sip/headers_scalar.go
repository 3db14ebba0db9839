package sip

import (
	"io"
	"strconv"
	"strings"
)

// CallIDHeader wraps the CallID value type as a message header.
type CallIDHeader struct {
	compact string
	Value   CallID
}

func NewCallIDHeader(v CallID) *CallIDHeader { return &CallIDHeader{Value: v} }

func (h *CallIDHeader) Name() string { return "Call-ID" }

func (h *CallIDHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *CallIDHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Call-ID: ")
	w.WriteString(string(h.Value))
}

func (h *CallIDHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *CallIDHeader) Equal(other Header) bool {
	o, ok := other.(*CallIDHeader)
	return ok && h.Value.Equal(o.Value)
}

// ContentLengthHeader is the "Content-Length" header; its value is always
// re-derived from the actual body when a message is serialized by a higher
// layer, but the parsed value is preserved here for faithful round-trip.
type ContentLengthHeader struct{ Value int }

func NewContentLengthHeader(n int) *ContentLengthHeader { return &ContentLengthHeader{Value: n} }

func (h *ContentLengthHeader) Name() string { return "Content-Length" }

func (h *ContentLengthHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *ContentLengthHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Content-Length: ")
	w.WriteString(strconv.Itoa(h.Value))
}

func (h *ContentLengthHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *ContentLengthHeader) Equal(other Header) bool {
	o, ok := other.(*ContentLengthHeader)
	return ok && h.Value == o.Value
}

// ContentTypeHeader is the "Content-Type" header: a media type plus params.
type ContentTypeHeader struct {
	MediaType MediaRange
	Params    HeaderParams
}

func NewContentTypeHeader(mt MediaRange, params HeaderParams) *ContentTypeHeader {
	return &ContentTypeHeader{MediaType: mt, Params: params}
}

func (h *ContentTypeHeader) Name() string { return "Content-Type" }

func (h *ContentTypeHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *ContentTypeHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Content-Type: ")
	w.WriteString(h.MediaType.String())
	if h.Params.Len() > 0 {
		w.WriteString(";")
		h.Params.StringWrite(';', w)
	}
}

func (h *ContentTypeHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString("Content-Type: ")
	w.WriteString(strings.ToLower(h.MediaType.String()))
	sorted := h.Params.Clone()
	sortParamsByKey(sorted)
	if len(sorted) > 0 {
		w.WriteString(";")
		sorted.StringWriteCanonical(';', w)
	}
}

func (h *ContentTypeHeader) Equal(other Header) bool {
	o, ok := other.(*ContentTypeHeader)
	return ok && h.MediaType.Equal(o.MediaType) && h.Params.Equal(o.Params)
}

// CSeqHeader is the "CSeq" header: a sequence number and the request method
// it is associated with. Equality requires both to match (spec §8 example).
type CSeqHeader struct {
	SeqNo  uint32
	Method RequestMethod
}

func NewCSeqHeader(seq uint32, method RequestMethod) *CSeqHeader {
	return &CSeqHeader{SeqNo: seq, Method: method}
}

func (h *CSeqHeader) Name() string { return "CSeq" }

func (h *CSeqHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *CSeqHeader) StringWrite(w io.StringWriter) {
	w.WriteString("CSeq: ")
	w.WriteString(strconv.FormatUint(uint64(h.SeqNo), 10))
	w.WriteString(" ")
	w.WriteString(string(h.Method))
}

func (h *CSeqHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *CSeqHeader) Equal(other Header) bool {
	o, ok := other.(*CSeqHeader)
	return ok && h.SeqNo == o.SeqNo && h.Method == o.Method
}

// simpleUintHeader backs Expires, Max-Forwards and Min-Expires: a single
// non-negative decimal integer.
type simpleUintHeader struct {
	name  string
	Value uint32
}

func (h *simpleUintHeader) Name() string { return h.name }

func (h *simpleUintHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *simpleUintHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	w.WriteString(strconv.FormatUint(uint64(h.Value), 10))
}

func (h *simpleUintHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

// ExpiresHeader is the "Expires" header.
type ExpiresHeader struct{ simpleUintHeader }

func NewExpiresHeader(v uint32) *ExpiresHeader {
	return &ExpiresHeader{simpleUintHeader{name: "Expires", Value: v}}
}

func (h *ExpiresHeader) Equal(other Header) bool {
	o, ok := other.(*ExpiresHeader)
	return ok && h.Value == o.Value
}

// MaxForwardsHeader is the "Max-Forwards" header.
type MaxForwardsHeader struct{ simpleUintHeader }

func NewMaxForwardsHeader(v uint32) *MaxForwardsHeader {
	return &MaxForwardsHeader{simpleUintHeader{name: "Max-Forwards", Value: v}}
}

func (h *MaxForwardsHeader) Equal(other Header) bool {
	o, ok := other.(*MaxForwardsHeader)
	return ok && h.Value == o.Value
}

// MinExpiresHeader is the "Min-Expires" header.
type MinExpiresHeader struct{ simpleUintHeader }

func NewMinExpiresHeader(v uint32) *MinExpiresHeader {
	return &MinExpiresHeader{simpleUintHeader{name: "Min-Expires", Value: v}}
}

func (h *MinExpiresHeader) Equal(other Header) bool {
	o, ok := other.(*MinExpiresHeader)
	return ok && h.Value == o.Value
}

// MimeVersionHeader is the "MIME-Version" header: a major.minor pair.
type MimeVersionHeader struct{ Major, Minor int }

func (h *MimeVersionHeader) Name() string { return "MIME-Version" }

func (h *MimeVersionHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *MimeVersionHeader) StringWrite(w io.StringWriter) {
	w.WriteString("MIME-Version: ")
	w.WriteString(strconv.Itoa(h.Major))
	w.WriteString(".")
	w.WriteString(strconv.Itoa(h.Minor))
}

func (h *MimeVersionHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *MimeVersionHeader) Equal(other Header) bool {
	o, ok := other.(*MimeVersionHeader)
	return ok && h.Major == o.Major && h.Minor == o.Minor
}

// simpleTextHeader backs free-text single-value headers: Organization,
// Subject and Priority.
type simpleTextHeader struct {
	name  string
	Value string
}

func (h *simpleTextHeader) Name() string { return h.name }

func (h *simpleTextHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *simpleTextHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	w.WriteString(h.Value)
}

func (h *simpleTextHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

// OrganizationHeader is the "Organization" header.
type OrganizationHeader struct{ simpleTextHeader }

func NewOrganizationHeader(v string) *OrganizationHeader {
	return &OrganizationHeader{simpleTextHeader{name: "Organization", Value: v}}
}

func (h *OrganizationHeader) Equal(other Header) bool {
	o, ok := other.(*OrganizationHeader)
	return ok && h.Value == o.Value
}

// SubjectHeader is the "Subject" header.
type SubjectHeader struct{ simpleTextHeader }

func NewSubjectHeader(v string) *SubjectHeader {
	return &SubjectHeader{simpleTextHeader{name: "Subject", Value: v}}
}

func (h *SubjectHeader) Equal(other Header) bool {
	o, ok := other.(*SubjectHeader)
	return ok && h.Value == o.Value
}

// PriorityHeader is the "Priority" header.
type PriorityHeader struct{ simpleTextHeader }

func NewPriorityHeader(v Priority) *PriorityHeader {
	return &PriorityHeader{simpleTextHeader{name: "Priority", Value: string(v)}}
}

func (h *PriorityHeader) Equal(other Header) bool {
	o, ok := other.(*PriorityHeader)
	return ok && strings.EqualFold(h.Value, o.Value)
}

// productListHeader backs Server and User-Agent: a space-separated list of
// product tokens. Comments ("(...)") and words that are not a valid product
// are skipped when parsing and are not kept.
type productListHeader struct {
	name     string
	Products ValueCollection[Product]
}

func (h *productListHeader) Name() string { return h.name }

func (h *productListHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *productListHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	h.Products.StringWrite(w)
}

func (h *productListHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

// ServerHeader is the "Server" header.
type ServerHeader struct{ productListHeader }

func NewServerHeader(products ...Product) *ServerHeader {
	return &ServerHeader{productListHeader{name: "Server", Products: NewValueCollection(" ", products...)}}
}

func (h *ServerHeader) Equal(other Header) bool {
	o, ok := other.(*ServerHeader)
	return ok && h.Products.Equal(o.Products)
}

// UserAgentHeader is the "User-Agent" header.
type UserAgentHeader struct{ productListHeader }

func NewUserAgentHeader(products ...Product) *UserAgentHeader {
	return &UserAgentHeader{productListHeader{name: "User-Agent", Products: NewValueCollection(" ", products...)}}
}

func (h *UserAgentHeader) Equal(other Header) bool {
	o, ok := other.(*UserAgentHeader)
	return ok && h.Products.Equal(o.Products)
}

// ContentEncodingHeader is the "Content-Encoding" header: a list of
// content-codings, most often a single value.
type ContentEncodingHeader struct{ tokenListHeader }

func NewContentEncodingHeader(codings []string) *ContentEncodingHeader {
	return &ContentEncodingHeader{newTokenListHeader("Content-Encoding", codings)}
}

func (h *ContentEncodingHeader) Equal(other Header) bool {
	o, ok := other.(*ContentEncodingHeader)
	return ok && h.Values.Equal(o.Values)
}
