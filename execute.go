package fetchkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Execute runs the full request lifecycle for the given method and path
// and returns immediately with a cancellable Call. params, body and opts
// may all be nil.
func (c *Client) Execute(ctx context.Context, method, path string, params Params, body any, opts *RequestOptions) *Call {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts == nil {
		opts = &RequestOptions{}
	}

	callCtx, cancel := context.WithCancel(ctx)
	call := newCall(cancel)

	go c.run(callCtx, call, method, path, params, body, opts)
	return call
}

// run performs the lifecycle: header build, URL composition, query
// serialization, request interceptors, the transport exchange racing the
// timeout timer, body decoding, and outcome classification through the
// response or error chain.
func (c *Client) run(ctx context.Context, call *Call, method, path string, params Params, body any, opts *RequestOptions) {
	header := make(http.Header)
	for k, values := range opts.Header {
		for _, v := range values {
			header.Add(k, v)
		}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = c.timeout
	}

	u := c.joinURL(path)
	if qs := c.serialize(params); qs != "" {
		u += "?" + qs
	}

	req := &Request{
		Method: strings.ToUpper(method),
		URL:    u,
		Header: header,
		Params: params,
		Body:   body,
	}
	for _, interceptor := range c.requestInterceptors {
		req = interceptor(req)
	}

	if ctx.Err() != nil {
		call.settle(nil, call.classifyAbort(ctx.Err()))
		return
	}

	if timeout > 0 {
		timer := time.AfterFunc(timeout, func() {
			call.timedOut.Store(true)
			call.cancel()
		})
		defer timer.Stop()
	}

	reader, err := bodyReader(req.Body, req.Header)
	if err != nil {
		call.settle(nil, err)
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, reader)
	if err != nil {
		call.settle(nil, err)
		return
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.transport.Do(httpReq)
	if err != nil {
		call.settle(nil, call.classifyAbort(err))
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		call.settle(nil, call.classifyAbort(err))
		return
	}

	data, err := decodeBody(raw, resp.Header, opts.ResponseType)
	if err != nil {
		// Decode failures do not pass through the error interceptor chain.
		call.settle(nil, err)
		return
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		response := &Response{Status: resp.StatusCode, Header: resp.Header, Data: data, Body: raw}
		for _, interceptor := range c.responseInterceptors {
			interceptor(response)
		}
		call.settle(response, nil)
		return
	}

	errResp := &ErrorResponse{Status: resp.StatusCode, Header: resp.Header, Data: data, Body: raw}
	for _, interceptor := range c.errorInterceptors {
		interceptor(errResp)
	}
	call.settle(nil, errResp)
}

// bodyReader turns the request body into an io.Reader. Raw byte, string
// and reader payloads pass through; anything else is JSON-marshaled, and
// Content-Type defaults to application/json when unset.
func bodyReader(body any, header http.Header) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	case io.Reader:
		return b, nil
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
		return bytes.NewReader(buf), nil
	}
}
