// Package transport provides the network primitive used by fetchkit.
// The default implementation is a tuned net/http client; on js/wasm the
// Cloudflare Workers fetch API is used instead.
package transport

import "net/http"

// Transport abstracts the underlying HTTP primitive so it can be swapped
// per platform or mocked in tests.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}
