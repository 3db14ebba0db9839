package sip

import (
	"io"
	"strconv"
	"strings"
)

// ViaHeader is one "Via" value: protocol name/version, transport, sent-by
// host[:port], and generic parameters (branch, received, rport, ttl,
// maddr, ...). RFC 3261 §20.42 reserves several of these parameter names
// with specific semantics; they are still stored generically in Params so
// that an unrecognized parameter round-trips identically.
type ViaHeader struct {
	ProtocolName    string // "SIP"
	ProtocolVersion string // "2.0"
	Transport       Transport
	Host            Host
	Port            int
	HasPort         bool
	Params          HeaderParams
}

func (h *ViaHeader) Name() string { return "Via" }

func (h *ViaHeader) Branch() (string, bool)   { return h.Params.Get("branch") }
func (h *ViaHeader) Received() (string, bool) { return h.Params.Get("received") }
func (h *ViaHeader) Maddr() (string, bool)    { return h.Params.Get("maddr") }

// TTL returns the "ttl" parameter value, parsed as a decimal int (RFC 3261
// §20.42: "ttl" is a 1-3 digit multicast time-to-live). ok is false when the
// parameter is absent or not a valid integer.
func (h *ViaHeader) TTL() (int, bool) {
	v, ok := h.Params.Get("ttl")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Rport returns the "rport" parameter value. A request may carry it as a
// bare flag with no value (RFC 3581), in which case ok is true and the
// returned port is 0; once a server fills it in, it parses as a decimal
// port number like any other parameter.
func (h *ViaHeader) Rport() (int, bool) {
	v, ok := h.Params.Get("rport")
	if !ok {
		return 0, false
	}
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (h *ViaHeader) String() string {
	var b strings.Builder
	h.StringWrite(&b)
	return b.String()
}

func (h *ViaHeader) StringWrite(w io.StringWriter) {
	w.WriteString("Via: ")
	h.writeValue(w, h.Host.String())
}

func (h *ViaHeader) StringWriteCanonical(w io.StringWriter) {
	w.WriteString("Via: ")
	sorted := h.Params.Clone()
	sortParamsByKey(sorted)
	h.writeValueWithParams(w, strings.ToLower(h.Host.String()), sorted, true)
}

func (h *ViaHeader) writeValue(w io.StringWriter, host string) {
	h.writeValueWithParams(w, host, h.Params, false)
}

func (h *ViaHeader) writeValueWithParams(w io.StringWriter, host string, params HeaderParams, canonical bool) {
	w.WriteString(h.ProtocolName)
	w.WriteString("/")
	w.WriteString(h.ProtocolVersion)
	w.WriteString("/")
	w.WriteString(string(h.Transport))
	w.WriteString(" ")
	w.WriteString(host)
	if h.HasPort {
		w.WriteString(":")
		w.WriteString(strconv.Itoa(h.Port))
	}
	if params.Len() > 0 {
		w.WriteString(";")
		// branch/received/maddr carry opaque or host tokens whose case is
		// semantically significant, so only parameter names are lowered.
		if canonical {
			params.StringWriteCanonicalKeysOnly(';', w)
		} else {
			params.StringWrite(';', w)
		}
	}
}

// Equal compares every field including the sent-by port: two Via values
// differing only in the set of parameters they carry (beyond branch) are
// still required to match on host/port/transport/protocol to be equal.
func (h *ViaHeader) Equal(other Header) bool {
	o, ok := other.(*ViaHeader)
	if !ok {
		return false
	}
	if !strings.EqualFold(h.ProtocolName, o.ProtocolName) || h.ProtocolVersion != o.ProtocolVersion {
		return false
	}
	if !strings.EqualFold(string(h.Transport), string(o.Transport)) {
		return false
	}
	if !h.Host.Equal(o.Host) || h.HasPort != o.HasPort || h.Port != o.Port {
		return false
	}
	return h.Params.Equal(o.Params)
}
