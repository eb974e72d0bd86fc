package fetchkit

import (
	"context"
	"net/http"
)

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, params Params, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodGet, path, params, nil, opts)
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, path string, params Params, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodHead, path, params, nil, opts)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, params Params, body any, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodPost, path, params, body, opts)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, params Params, body any, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodPut, path, params, body, opts)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, params Params, body any, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodPatch, path, params, body, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params Params, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodDelete, path, params, nil, opts)
}

// Options issues an OPTIONS request.
func (c *Client) Options(ctx context.Context, path string, params Params, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodOptions, path, params, nil, opts)
}

// Trace issues a TRACE request.
func (c *Client) Trace(ctx context.Context, path string, params Params, opts *RequestOptions) *Call {
	return c.Execute(ctx, http.MethodTrace, path, params, nil, opts)
}
