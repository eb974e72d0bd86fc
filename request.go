package fetchkit

import (
	"net/http"
	"time"
)

// Request is the mutable value threaded through the request interceptor
// chain. Interceptors receive the current Request and return the value
// used for the next step.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Params Params

	// Body is the payload as passed to Execute: nil, []byte, string,
	// io.Reader, or any JSON-marshalable value.
	Body any
}

// RequestInterceptor transforms a Request before it is sent. The returned
// value replaces the request for the next interceptor.
type RequestInterceptor func(req *Request) *Request

// ResponseInterceptor observes a successful Response. It runs for side
// effects only; mutating the Response in place is allowed, replacing it is
// not.
type ResponseInterceptor func(resp *Response)

// ErrorInterceptor observes an ErrorResponse before it is returned to the
// caller. It runs for side effects only and cannot suppress the error.
type ErrorInterceptor func(errResp *ErrorResponse)

// RequestOptions are per-call options for Execute and the verb wrappers.
type RequestOptions struct {
	// Timeout overrides the client timeout for this call. Zero inherits
	// the client value; a negative value disables the timer.
	Timeout time.Duration

	// Header entries are copied onto the outgoing request. A multi-valued
	// entry produces one header line per element, in order.
	Header http.Header

	// ResponseType forces a specific body decoding instead of
	// Content-Type negotiation.
	ResponseType ResponseType
}
