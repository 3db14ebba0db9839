package sip

import (
	"io"
	"strconv"
	"strings"
	"time"
)

// InfoItem is one "<uri> ;params" value shared by Call-Info, Error-Info and
// Alert-Info.
type InfoItem struct {
	URI    URI
	Params HeaderParams
}

func (it InfoItem) String() string {
	var b strings.Builder
	b.WriteString("<")
	it.URI.StringWrite(&b)
	b.WriteString(">")
	if it.Params.Len() > 0 {
		b.WriteString(";")
		it.Params.StringWrite(';', &b)
	}
	return b.String()
}

func (it InfoItem) Equal(o InfoItem) bool {
	return it.URI.Equal(o.URI) && it.Params.Equal(o.Params)
}

// StringWriteCanonical renders the `<uri>;params` form with parameter names
// and (where legal) values lowercased, per §4.3's canonicalization rule.
func (it InfoItem) StringWriteCanonical(w io.StringWriter) {
	w.WriteString("<")
	it.URI.StringWriteCanonical(w)
	w.WriteString(">")
	if it.Params.Len() > 0 {
		sorted := it.Params.Clone()
		sortParamsByKey(sorted)
		w.WriteString(";")
		sorted.StringWriteCanonical(';', w)
	}
}

type infoListHeader struct {
	name  string
	Items ValueCollection[InfoItem]
}

func (h *infoListHeader) Name() string { return h.name }

func (h *infoListHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *infoListHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	h.Items.StringWrite(w)
}

func (h *infoListHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString(h.name)
	w.WriteString(": ")
	items := h.Items.Items()
	for i, it := range items {
		if i > 0 {
			w.WriteString(", ")
		}
		it.StringWriteCanonical(w)
	}
}

// CallInfoHeader is the "Call-Info" header.
type CallInfoHeader struct{ infoListHeader }

func NewCallInfoHeader(items ...InfoItem) *CallInfoHeader {
	return &CallInfoHeader{infoListHeader{name: "Call-Info", Items: NewValueCollection(", ", items...)}}
}

func (h *CallInfoHeader) Equal(other Header) bool {
	o, ok := other.(*CallInfoHeader)
	return ok && h.Items.Equal(o.Items)
}

// ErrorInfoHeader is the "Error-Info" header.
type ErrorInfoHeader struct{ infoListHeader }

func NewErrorInfoHeader(items ...InfoItem) *ErrorInfoHeader {
	return &ErrorInfoHeader{infoListHeader{name: "Error-Info", Items: NewValueCollection(", ", items...)}}
}

func (h *ErrorInfoHeader) Equal(other Header) bool {
	o, ok := other.(*ErrorInfoHeader)
	return ok && h.Items.Equal(o.Items)
}

// AlertInfoHeader is the "Alert-Info" header.
type AlertInfoHeader struct{ infoListHeader }

func NewAlertInfoHeader(items ...InfoItem) *AlertInfoHeader {
	return &AlertInfoHeader{infoListHeader{name: "Alert-Info", Items: NewValueCollection(", ", items...)}}
}

func (h *AlertInfoHeader) Equal(other Header) bool {
	o, ok := other.(*AlertInfoHeader)
	return ok && h.Items.Equal(o.Items)
}

// InReplyToHeader is the "In-Reply-To" header: a comma-separated list of
// Call-IDs.
type InReplyToHeader struct {
	Values ValueCollection[CallID]
}

func NewInReplyToHeader(ids ...CallID) *InReplyToHeader {
	return &InReplyToHeader{Values: NewValueCollection(", ", ids...)}
}

func (h *InReplyToHeader) Name() string { return "In-Reply-To" }

func (h *InReplyToHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *InReplyToHeader) StringWrite(w io.StringWriter) {
	w.WriteString("In-Reply-To: ")
	h.Values.StringWrite(w)
}

func (h *InReplyToHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *InReplyToHeader) Equal(other Header) bool {
	o, ok := other.(*InReplyToHeader)
	return ok && h.Values.Equal(o.Values)
}

// DateHeader is the "Date" header: an RFC 1123 (SIP-date) timestamp,
// always in GMT per RFC 3261 §20.17.
type DateHeader struct {
	Value string // stored as the exact RFC 1123 text; see ParsedTime for a time.Time view
}

func NewDateHeader(v string) *DateHeader { return &DateHeader{Value: v} }

func (h *DateHeader) Name() string { return "Date" }

func (h *DateHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *DateHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Date: ")
	w.WriteString(h.Value)
}

func (h *DateHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *DateHeader) Equal(other Header) bool {
	o, ok := other.(*DateHeader)
	return ok && h.Value == o.Value
}

// ParsedTime parses the Date header's RFC 1123 text with the GMT-only
// layout RFC 3261 §20.17 requires.
func (h *DateHeader) ParsedTime() (time.Time, error) {
	return time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", h.Value)
}

// TimestampHeader is the "Timestamp" header: a numeric timestamp plus an
// optional delay, both stored verbatim (spec §9 Open Question: no
// normalization is implemented beyond the literal grammar).
type TimestampHeader struct {
	Value    string
	Delay    string
	HasDelay bool
}

func (h *TimestampHeader) Name() string { return "Timestamp" }

func (h *TimestampHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *TimestampHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Timestamp: ")
	w.WriteString(h.Value)
	if h.HasDelay {
		w.WriteString(" ")
		w.WriteString(h.Delay)
	}
}

func (h *TimestampHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *TimestampHeader) Equal(other Header) bool {
	o, ok := other.(*TimestampHeader)
	return ok && h.Value == o.Value && h.HasDelay == o.HasDelay && h.Delay == o.Delay
}

// RetryAfterHeader is the "Retry-After" header: delta-seconds, an optional
// verbatim comment (spec §5.1 Supplemented Feature) and optional
// "duration"/"retry-after-params".
type RetryAfterHeader struct {
	DeltaSeconds uint32
	Comment      string
	HasComment   bool
	Params       HeaderParams
}

func (h *RetryAfterHeader) Name() string { return "Retry-After" }

func (h *RetryAfterHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *RetryAfterHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Retry-After: ")
	w.WriteString(strconv.FormatUint(uint64(h.DeltaSeconds), 10))
	if h.HasComment {
		w.WriteString(" (")
		w.WriteString(h.Comment)
		w.WriteString(")")
	}
	if h.Params.Len() > 0 {
		w.WriteString(";")
		h.Params.StringWrite(';', w)
	}
}

func (h *RetryAfterHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *RetryAfterHeader) Equal(other Header) bool {
	o, ok := other.(*RetryAfterHeader)
	if !ok {
		return false
	}
	return h.DeltaSeconds == o.DeltaSeconds && h.HasComment == o.HasComment &&
		h.Comment == o.Comment && h.Params.Equal(o.Params)
}

// WarningValue is one "warn-code warn-agent warn-text" value of a Warning
// header.
type WarningValue struct {
	Code  int
	Agent string
	Text  string
}

func (w WarningValue) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(w.Code))
	b.WriteString(" ")
	b.WriteString(w.Agent)
	b.WriteString(" ")
	b.WriteString(quote(w.Text))
	return b.String()
}

func (w WarningValue) Equal(o WarningValue) bool {
	return w.Code == o.Code && w.Agent == o.Agent && w.Text == o.Text
}

// WarningHeader is the "Warning" header.
type WarningHeader struct {
	Values ValueCollection[WarningValue]
}

func NewWarningHeader(values ...WarningValue) *WarningHeader {
	return &WarningHeader{Values: NewValueCollection(", ", values...)}
}

func (h *WarningHeader) Name() string { return "Warning" }

func (h *WarningHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *WarningHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Warning: ")
	h.Values.StringWrite(w)
}

func (h *WarningHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *WarningHeader) Equal(other Header) bool {
	o, ok := other.(*WarningHeader)
	return ok && h.Values.Equal(o.Values)
}

// ContentDispositionHeader is the "Content-Disposition" header.
type ContentDispositionHeader struct {
	Type   DispositionType
	Params HeaderParams
}

func NewContentDispositionHeader(t DispositionType, params HeaderParams) *ContentDispositionHeader {
	return &ContentDispositionHeader{Type: t, Params: params}
}

func (h *ContentDispositionHeader) Name() string { return "Content-Disposition" }

func (h *ContentDispositionHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *ContentDispositionHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Content-Disposition: ")
	w.WriteString(string(h.Type))
	if h.Params.Len() > 0 {
		w.WriteString(";")
		h.Params.StringWrite(';', w)
	}
}

func (h *ContentDispositionHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString("Content-Disposition: ")
	w.WriteString(strings.ToLower(string(h.Type)))
	sorted := h.Params.Clone()
	sortParamsByKey(sorted)
	if len(sorted) > 0 {
		w.WriteString(";")
		sorted.StringWriteCanonical(';', w)
	}
}

func (h *ContentDispositionHeader) Equal(other Header) bool {
	o, ok := other.(*ContentDispositionHeader)
	return ok && strings.EqualFold(string(h.Type), string(o.Type)) && h.Params.Equal(o.Params)
}

// GenericHeader is the fallback representation for any extension header
// name not in the closed catalogue: the raw header name plus its raw value,
// preserved byte-for-byte.
type GenericHeader struct {
	HeaderName string
	Value      string
}

func (h *GenericHeader) Name() string { return h.HeaderName }

func (h *GenericHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *GenericHeader) StringWrite(w io.StringWriter) {
	w.WriteString(h.HeaderName)
	w.WriteString(": ")
	w.WriteString(h.Value)
}

func (h *GenericHeader) StringWriteCanonical(w io.StringWriter) { h.StringWrite(w) }

func (h *GenericHeader) Equal(other Header) bool {
	o, ok := other.(*GenericHeader)
	return ok && strings.EqualFold(h.HeaderName, o.HeaderName) && h.Value == o.Value
}
