// Package network provides the outbound HTTP transport used by the source adapters.
//
// Adapters never talk to net/http directly: they depend on the Getter
// collaborator, which performs a single blocking GET and returns the raw body
// text. Timeouts and connection pooling live here; adapters implement no
// retry or backoff of their own.
package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/anisan-cli/anisan-sources/constant"
	"github.com/go-resty/resty/v2"
)

// Getter performs a single synchronous GET request and returns the response body text.
// headers and params may be nil.
type Getter interface {
	Get(url string, headers map[string]string, params map[string]string) (string, error)
}

const requestTimeout = time.Minute

// client is the resty-backed default Getter implementation.
type client struct {
	resty *resty.Client
}

// New returns a Getter backed by a tuned shared transport.
func New() Getter {
	return &client{resty: newResty(newTransport())}
}

func newResty(transport http.RoundTripper) *resty.Client {
	return resty.New().
		SetTransport(transport).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", constant.UserAgent)
}

func (c *client) Get(url string, headers map[string]string, params map[string]string) (string, error) {
	req := c.resty.R()
	if headers != nil {
		req.SetHeaders(headers)
	}
	if params != nil {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(url)
	if err != nil {
		return "", err
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("%s returned status %d", url, resp.StatusCode())
	}

	return resp.String(), nil
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
