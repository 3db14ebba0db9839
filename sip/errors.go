package sip

import "fmt"

// ErrorKind identifies the production that failed to parse.
type ErrorKind int

const (
	InvalidUri ErrorKind = iota
	InvalidUriScheme
	InvalidUriUser
	InvalidUriPassword
	InvalidUriHeaderString
	InvalidMethod
	InvalidVersion
	InvalidStatusCode
	InvalidReason
	InvalidCallId
	InvalidContentEncoding
	InvalidContentLanguage
	InvalidOptionTag
	InvalidTokenString
	InvalidWarnCode
	InvalidWarnAgent
	InvalidMessageHeader
	InvalidRequest
	InvalidResponse
	RemainingUnparsedData
	FailedConvertingAInfoToAuthParam
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidUri:
		return "InvalidUri"
	case InvalidUriScheme:
		return "InvalidUriScheme"
	case InvalidUriUser:
		return "InvalidUriUser"
	case InvalidUriPassword:
		return "InvalidUriPassword"
	case InvalidUriHeaderString:
		return "InvalidUriHeaderString"
	case InvalidMethod:
		return "InvalidMethod"
	case InvalidVersion:
		return "InvalidVersion"
	case InvalidStatusCode:
		return "InvalidStatusCode"
	case InvalidReason:
		return "InvalidReason"
	case InvalidCallId:
		return "InvalidCallId"
	case InvalidContentEncoding:
		return "InvalidContentEncoding"
	case InvalidContentLanguage:
		return "InvalidContentLanguage"
	case InvalidOptionTag:
		return "InvalidOptionTag"
	case InvalidTokenString:
		return "InvalidTokenString"
	case InvalidWarnCode:
		return "InvalidWarnCode"
	case InvalidWarnAgent:
		return "InvalidWarnAgent"
	case InvalidMessageHeader:
		return "InvalidMessageHeader"
	case InvalidRequest:
		return "InvalidRequest"
	case InvalidResponse:
		return "InvalidResponse"
	case RemainingUnparsedData:
		return "RemainingUnparsedData"
	case FailedConvertingAInfoToAuthParam:
		return "FailedConvertingAInfoToAuthParam"
	default:
		return "Unknown"
	}
}

// ParseError is the structured error value returned by every parser in this
// package. It always carries the production that failed and the offending
// substring, so that a caller can report adversarial input precisely without
// the library ever panicking.
type ParseError struct {
	Kind ErrorKind
	// Header is the message-header name, set only for InvalidMessageHeader.
	Header string
	// Input is the offending substring (or, for RemainingUnparsedData, the
	// leftover tail).
	Input string
	// Cause is the lower-level error that triggered this one, if any.
	Cause error
}

func (e *ParseError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("%s: header %q: %q", e.Kind, e.Header, e.Input)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q: %v", e.Kind, e.Input, e.Cause)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func newErr(kind ErrorKind, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}

func newErrWrap(kind ErrorKind, input string, cause error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Cause: cause}
}

func newHeaderErr(name, input string, cause error) *ParseError {
	return &ParseError{Kind: InvalidMessageHeader, Header: name, Input: input, Cause: cause}
}
