package sip

import (
	"strconv"
	"strings"
)

// ParseVia parses one Via value: "SIP" "/" version "/" transport sent-by
// [ ";" via-params ].
func ParseVia(s string) (*ViaHeader, error) {
	s = strings.TrimSpace(s)

	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return nil, newErr(InvalidTokenString, s)
	}
	proto := strings.Split(parts[0], "/")
	if len(proto) != 3 {
		return nil, newErr(InvalidTokenString, parts[0])
	}
	transport, err := ParseTransport(proto[2])
	if err != nil {
		return nil, err
	}

	h := &ViaHeader{
		ProtocolName:    proto[0],
		ProtocolVersion: proto[1],
		Transport:       transport,
	}

	rest := strings.TrimLeft(parts[1], " \t")
	hostPort := rest
	var tail string
	if semi := strings.IndexByte(rest, ';'); semi >= 0 {
		hostPort, tail = rest[:semi], rest[semi+1:]
	}

	if strings.HasPrefix(hostPort, "[") {
		end := strings.IndexByte(hostPort, ']')
		if end < 0 {
			return nil, newErr(InvalidUri, hostPort)
		}
		h.Host = HostFromString(hostPort[:end+1])
		portPart := hostPort[end+1:]
		if strings.HasPrefix(portPart, ":") {
			port, err := strconv.Atoi(portPart[1:])
			if err != nil {
				return nil, newErrWrap(InvalidUri, portPart, err)
			}
			h.Port = port
			h.HasPort = true
		}
	} else if colon := strings.LastIndexByte(hostPort, ':'); colon >= 0 {
		h.Host = HostFromString(hostPort[:colon])
		port, err := strconv.Atoi(hostPort[colon+1:])
		if err != nil {
			return nil, newErrWrap(InvalidUri, hostPort[colon+1:], err)
		}
		h.Port = port
		h.HasPort = true
	} else {
		h.Host = HostFromString(hostPort)
	}

	params, _, err := UnmarshalHeaderParams(tail, defaultParseParamsOptions())
	if err != nil {
		return nil, err
	}
	h.Params = params
	return h, nil
}
