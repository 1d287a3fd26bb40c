package bgg

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the root of the XML API v2.
const DefaultBaseURL = "https://boardgamegeek.com/xmlapi2"

const (
	defaultTimeout          = 30 * time.Second
	defaultUserAgent        = "bggxml"
	defaultBatchConcurrency = 4
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL          string
	timeout          time.Duration
	retryDelay       time.Duration
	userAgent        string
	clock            Clock
	httpClient       *resty.Client
	batchConcurrency int
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:          DefaultBaseURL,
		timeout:          defaultTimeout,
		retryDelay:       DefaultRetryDelay,
		userAgent:        defaultUserAgent,
		clock:            realClock{},
		batchConcurrency: defaultBatchConcurrency,
	}
}

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the timeout of a single HTTP request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryDelay sets the delay between attempts while the service answers 202.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay > 0 {
			o.retryDelay = delay
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithClock replaces the time source of the retry loop.
func WithClock(clock Clock) Option {
	return func(o *clientOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithHTTPClient uses the given resty client for transport. Base URL, timeout
// and user agent options are still applied to it.
func WithHTTPClient(client *resty.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithBatchConcurrency limits the number of concurrent requests made by
// FetchGamesByIDBatched.
func WithBatchConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.batchConcurrency = n
		}
	}
}
