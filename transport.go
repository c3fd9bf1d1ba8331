package newsapi

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Transport is the capability of performing one HTTP GET: given a URL and
// headers it returns the status code and the raw body. Connection and
// timeout failures are ErrTransport errors.
type Transport interface {
	Get(ctx context.Context, url string, header http.Header) (int, []byte, error)
}

// HTTPTransport implements Transport over a net/http client
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultTimeout = 30 * time.Second
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewHTTPTransport returns a transport with tuned connection defaults. The
// timeout bounds each attempt end to end; zero uses the default.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &HTTPTransport{
		client: &http.Client{
			Timeout:   timeout,
			Transport: defaultRoundTripper(),
		},
	}
}

// NewHTTPTransportWithClient returns a transport over an existing client
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t *HTTPTransport) Get(ctx context.Context, url string, header http.Header) (int, []byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, ErrInvalidRequest.Withf("%v", err)
	}
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}

	response, err := t.client.Do(request)
	if err != nil {
		return 0, nil, ErrTransport.Withf("%v", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, ErrTransport.Withf("%v", err)
	}
	return response.StatusCode, body, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// defaultRoundTripper clones the stdlib default transport with tighter
// dial and handshake timeouts and per-host connection caps.
func defaultRoundTripper() *http.Transport {
	base, _ := http.DefaultTransport.(*http.Transport)
	if base == nil {
		return &http.Transport{}
	}
	transport := base.Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = 5 * time.Second
	transport.ResponseHeaderTimeout = 15 * time.Second
	transport.IdleConnTimeout = 90 * time.Second
	transport.MaxIdleConnsPerHost = 10
	transport.ForceAttemptHTTP2 = true
	return transport
}
