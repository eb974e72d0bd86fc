package fetchkit

import (
	"strings"
	"time"

	"github.com/dvcrn/fetchkit/transport"
)

// DefaultTimeout is applied when neither the client config nor the call
// options specify a timeout.
const DefaultTimeout = 30 * time.Second

// Config configures a Client. The zero value is usable: DefaultTimeout,
// DefaultParamsSerializer and the platform transport.
type Config struct {
	// Timeout bounds each call. Zero means DefaultTimeout; a negative
	// value disables the timer entirely.
	Timeout time.Duration

	// ParamsSerializer turns the params mapping into a query string.
	ParamsSerializer ParamsSerializer

	// Transport performs the actual HTTP exchange.
	Transport transport.Transport

	// Initial interceptor chains, invoked in order.
	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
	ErrorInterceptors    []ErrorInterceptor
}

// Client is a thin wrapper around a Transport adding base-URL composition,
// query serialization, timeout-based cancellation and interceptor chains.
type Client struct {
	baseURL   string
	timeout   time.Duration
	serialize ParamsSerializer
	transport transport.Transport

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
	errorInterceptors    []ErrorInterceptor
}

// New creates a Client. baseURL may be empty, in which case the request
// path is used on its own (with a leading slash).
func New(baseURL string, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	serialize := cfg.ParamsSerializer
	if serialize == nil {
		serialize = DefaultParamsSerializer
	}
	tr := cfg.Transport
	if tr == nil {
		tr = transport.New()
	}
	return &Client{
		baseURL:              baseURL,
		timeout:              timeout,
		serialize:            serialize,
		transport:            tr,
		requestInterceptors:  append([]RequestInterceptor(nil), cfg.RequestInterceptors...),
		responseInterceptors: append([]ResponseInterceptor(nil), cfg.ResponseInterceptors...),
		errorInterceptors:    append([]ErrorInterceptor(nil), cfg.ErrorInterceptors...),
	}
}

// AddRequestInterceptor appends an interceptor to the request chain.
func (c *Client) AddRequestInterceptor(i RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, i)
}

// AddResponseInterceptor appends an interceptor to the response chain.
func (c *Client) AddResponseInterceptor(i ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, i)
}

// AddErrorInterceptor appends an interceptor to the error chain.
func (c *Client) AddErrorInterceptor(i ErrorInterceptor) {
	c.errorInterceptors = append(c.errorInterceptors, i)
}

// joinURL composes the absolute URL: one trailing slash stripped from the
// base, one leading slash stripped from the path, exactly one slash at the
// join point. An empty base yields "/" + path.
func (c *Client) joinURL(path string) string {
	base := strings.TrimSuffix(c.baseURL, "/")
	return base + "/" + strings.TrimPrefix(path, "/")
}
