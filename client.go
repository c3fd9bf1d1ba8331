package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	// Packages
	version "github.com/mutablelogic/go-newsapi/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls the news API. Credentials and endpoint are immutable after
// construction, so a single client is safe for any number of concurrent calls.
type Client struct {
	transport  Transport
	key        string
	endpoint   *url.URL
	strategy   RetryStrategy
	maxRetries int
	retryable  func(error) bool
	logger     *slog.Logger
	agent      string
}

// ClientOpt is a client construction option
type ClientOpt func(*Client) error

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint  = "https://newsapi.org/"
	envApiKey = "NEWS_API_KEY"

	pathTopHeadlines = "/v2/top-headlines"
	pathEverything   = "/v2/everything"
	pathSources      = "/v2/sources"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the given API key
func New(apiKey string, opts ...ClientOpt) (*Client, error) {
	// Check for missing or malformed API key
	if apiKey == "" {
		return nil, ErrInvalidRequest.With("missing API key")
	}
	if !validHeaderValue(apiKey) {
		return nil, ErrInvalidHeader.With("malformed API key")
	}

	endpoint, err := url.Parse(endPoint)
	if err != nil {
		return nil, err
	}

	client := &Client{
		transport: NewHTTPTransport(defaultTimeout),
		key:       apiKey,
		endpoint:  endpoint,
		strategy:  RetryNone(),
		retryable: defaultRetryable,
		logger:    slog.New(slog.DiscardHandler),
		agent:     version.UserAgent(),
	}
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	// Return the client
	return client, nil
}

// NewFromEnv creates a client from the NEWS_API_KEY environment variable
func NewFromEnv(opts ...ClientOpt) (*Client, error) {
	apiKey := os.Getenv(envApiKey)
	if apiKey == "" {
		return nil, ErrInvalidRequest.Withf("%s is not set", envApiKey)
	}
	return New(apiKey, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptEndpoint sets the base URL of the service
func OptEndpoint(v string) ClientOpt {
	return func(c *Client) error {
		endpoint, err := url.Parse(v)
		if err != nil {
			return ErrInvalidRequest.Withf("%v", err)
		}
		c.endpoint = endpoint
		return nil
	}
}

// OptRetry sets the retry strategy and the number of retries beyond the
// first attempt
func OptRetry(strategy RetryStrategy, maxRetries int) ClientOpt {
	return func(c *Client) error {
		if maxRetries < 0 {
			return ErrInvalidRequest.With("maxRetries must not be negative")
		}
		c.strategy = strategy
		c.maxRetries = maxRetries
		return nil
	}
}

// OptRetryIf classifies failures as retryable. The default retries transport
// and API errors but not response decode failures.
func OptRetryIf(fn func(error) bool) ClientOpt {
	return func(c *Client) error {
		c.retryable = fn
		return nil
	}
}

// OptTransport replaces the HTTP transport
func OptTransport(t Transport) ClientOpt {
	return func(c *Client) error {
		if t == nil {
			return ErrInvalidRequest.With("missing transport")
		}
		c.transport = t
		return nil
	}
}

// OptTimeout sets the per-attempt timeout on the default transport
func OptTimeout(d time.Duration) ClientOpt {
	return func(c *Client) error {
		c.transport = NewHTTPTransport(d)
		return nil
	}
}

// OptUserAgent sets the User-Agent header
func OptUserAgent(v string) ClientOpt {
	return func(c *Client) error {
		if !validHeaderValue(v) {
			return ErrInvalidHeader.With("malformed user agent")
		}
		c.agent = v
		return nil
	}
}

// OptLogger sets a logger for per-attempt debug output
func OptLogger(logger *slog.Logger) ClientOpt {
	return func(c *Client) error {
		if logger == nil {
			return ErrInvalidRequest.With("missing logger")
		}
		c.logger = logger
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetTopHeadlines returns breaking headlines for the request filters
func (c *Client) GetTopHeadlines(ctx context.Context, request *TopHeadlinesRequest) (*TopHeadlinesResponse, error) {
	if request == nil {
		return nil, ErrInvalidRequest.With("missing request")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return do[TopHeadlinesResponse](ctx, c, pathTopHeadlines, request.Params())
}

// GetEverything searches the article archive
func (c *Client) GetEverything(ctx context.Context, request *EverythingRequest) (*EverythingResponse, error) {
	if request == nil {
		return nil, ErrInvalidRequest.With("missing request")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return do[EverythingResponse](ctx, c, pathEverything, request.Params())
}

// GetSources lists available publishers
func (c *Client) GetSources(ctx context.Context, request *SourcesRequest) (*SourcesResponse, error) {
	if request == nil {
		return nil, ErrInvalidRequest.With("missing request")
	}
	return do[SourcesResponse](ctx, c, pathSources, request.Params())
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do runs the shared pipeline for one endpoint: build the URL and headers,
// invoke the transport inside the retry policy, then decode a success body
// or classify a failure.
func do[T any](ctx context.Context, c *Client, path string, params []Param) (*T, error) {
	url := c.requestURL(path, params)
	header := c.header()

	return retryDo(ctx, c.strategy, c.maxRetries, c.retryable, func() (*T, error) {
		c.logger.Debug("request", "url", url)

		status, body, err := c.transport.Get(ctx, url, header)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("response", "status", status)

		if status < 200 || status > 299 {
			return nil, classifyResponse(status, body)
		}

		var response T
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, ErrInvalidRequest.Withf("failed to parse response: %v", err)
		}
		return &response, nil
	})
}

func (c *Client) requestURL(path string, params []Param) string {
	endpoint := *c.endpoint
	endpoint.Path = path
	endpoint.RawQuery = encodeParams(params)
	return endpoint.String()
}

func (c *Client) header() http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.key)
	header.Set("User-Agent", c.agent)
	return header
}

// defaultRetryable retries transport and classified API failures. Decode
// failures after a successful status are terminal.
func defaultRetryable(err error) bool {
	return !errors.Is(err, ErrInvalidRequest)
}

// validHeaderValue reports whether v can be sent as an HTTP header value
func validHeaderValue(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 && v[i] != '\t' {
			return false
		}
		if v[i] == 0x7f {
			return false
		}
	}
	return true
}
