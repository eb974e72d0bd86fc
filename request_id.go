package fetchkit

import "github.com/google/uuid"

// RequestIDHeader is the header stamped by the RequestID interceptor.
const RequestIDHeader = "X-Request-Id"

// RequestID returns a request interceptor that stamps each request with a
// random UUID unless the header is already set by the caller.
func RequestID() RequestInterceptor {
	return func(req *Request) *Request {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.New().String())
		}
		return req
	}
}
