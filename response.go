package fetchkit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ResponseType selects how a response body is decoded. The zero value
// negotiates based on the Content-Type header.
type ResponseType int

const (
	// ResponseTypeAuto decodes as JSON when the Content-Type contains
	// "json" and as text otherwise.
	ResponseTypeAuto ResponseType = iota
	ResponseTypeJSON
	ResponseTypeFormData
	ResponseTypeText
	ResponseTypeBlob
	ResponseTypeArrayBuffer
)

// Response is the result of a call that completed with a 2xx status.
type Response struct {
	Status int
	Header http.Header

	// Data is the decoded body: any for JSON, url.Values for form data,
	// string for text, []byte for blob and array buffer.
	Data any

	// Body is the raw response body.
	Body []byte
}

// ErrorResponse is the result of a call that completed with a status
// outside [200,300). It carries the same shape as Response and implements
// error.
type ErrorResponse struct {
	Status int
	Header http.Header
	Data   any
	Body   []byte
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("fetchkit: http %d %s", e.Status, http.StatusText(e.Status))
}

// decodeBody decodes raw bytes according to the explicit response type,
// falling back to Content-Type negotiation when none is set.
func decodeBody(raw []byte, header http.Header, rt ResponseType) (any, error) {
	if rt == ResponseTypeAuto {
		if strings.Contains(header.Get("Content-Type"), "json") {
			rt = ResponseTypeJSON
		} else {
			rt = ResponseTypeText
		}
	}

	switch rt {
	case ResponseTypeJSON:
		if len(raw) == 0 {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("could not unmarshal response body: %w", err)
		}
		return v, nil
	case ResponseTypeFormData:
		return url.ParseQuery(string(raw))
	case ResponseTypeBlob, ResponseTypeArrayBuffer:
		return raw, nil
	default:
		return string(raw), nil
	}
}
