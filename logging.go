package fetchkit

import "github.com/dvcrn/fetchkit/internal/logger"

// LogRequests returns a request interceptor that logs every outgoing
// request.
func LogRequests() RequestInterceptor {
	return func(req *Request) *Request {
		logger.Get().Info().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("Outgoing request")
		return req
	}
}

// LogResponses returns a response interceptor that logs every successful
// response.
func LogResponses() ResponseInterceptor {
	return func(resp *Response) {
		logger.Get().Info().
			Int("status", resp.Status).
			Msg("Finished request")
	}
}

// LogErrors returns an error interceptor that logs error responses.
func LogErrors() ErrorInterceptor {
	return func(errResp *ErrorResponse) {
		logger.Get().Warn().
			Int("status", errResp.Status).
			Msg("Request failed")
	}
}
