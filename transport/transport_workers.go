//go:build js && wasm

package transport

import (
	"net/http"

	"github.com/syumai/workers/cloudflare/fetch"
)

// workersTransport implements Transport on top of Cloudflare Workers fetch.
type workersTransport struct {
	client *fetch.Client
}

// New creates a Transport for the Workers environment.
func New() Transport {
	return &workersTransport{
		client: fetch.NewClient(),
	}
}

// Do performs an HTTP request using the Workers fetch API. The request
// context is wired through, so cancellation aborts the fetch.
func (t *workersTransport) Do(req *http.Request) (*http.Response, error) {
	fetchReq, err := fetch.NewRequest(req.Context(), req.Method, req.URL.String(), req.Body)
	if err != nil {
		return nil, err
	}

	for key, values := range req.Header {
		for _, value := range values {
			fetchReq.Header.Add(key, value)
		}
	}

	return t.client.Do(fetchReq, nil)
}
