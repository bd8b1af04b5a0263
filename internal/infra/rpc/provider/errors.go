package provider

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a failed call.
type ErrorKind int

const (
	// KindTransport: the request never produced an HTTP response.
	KindTransport ErrorKind = iota
	// KindHTTPStatus: the node answered with a non-2xx status.
	KindHTTPStatus
	// KindProtocol: the node answered with a JSON-RPC error object.
	KindProtocol
	// KindDecode: the response body was not a JSON-RPC envelope.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindProtocol:
		return "protocol"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by Call for every failure.
type Error struct {
	Kind    ErrorKind
	Method  string
	Status  int // HTTP status, set for KindHTTPStatus
	Code    int // JSON-RPC error code, set for KindProtocol
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("%s: http %d: %s", e.Method, e.Status, e.Message)
	case KindProtocol:
		return fmt.Sprintf("%s: rpc error %d: %s", e.Method, e.Code, e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %s: %v", e.Method, e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s: %s", e.Method, e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsTransport reports whether err is a network or HTTP-level failure.
func IsTransport(err error) bool {
	e, ok := AsError(err)
	return ok && (e.Kind == KindTransport || e.Kind == KindHTTPStatus)
}

// IsProtocol reports whether err is a JSON-RPC error reported by the node.
func IsProtocol(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindProtocol
}

// IsThrottled reports whether err came from the node rate limiting or
// blocking this client.
func IsThrottled(err error) bool {
	e, ok := AsError(err)
	if !ok {
		return false
	}
	return e.Status == 429 || e.Status == 403
}

// ErrorType returns a low-cardinality label for err, for metrics.
func ErrorType(err error) string {
	if e, ok := AsError(err); ok {
		return e.Kind.String()
	}
	return "other"
}
