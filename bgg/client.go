package bgg

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client represents a BoardGameGeek XML API client
type Client struct {
	http             *resty.Client
	clock            Clock
	retryDelay       time.Duration
	batchConcurrency int
	logger           zerolog.Logger
}

// NewClient creates a new BGG client
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = resty.New()
	}
	httpClient.
		SetBaseURL(strings.TrimSuffix(o.baseURL, "/")).
		SetTimeout(o.timeout).
		SetHeader("User-Agent", o.userAgent).
		SetHeader("Accept", "text/xml, application/xml")

	return &Client{
		http:             httpClient,
		clock:            o.clock,
		retryDelay:       o.retryDelay,
		batchConcurrency: o.batchConcurrency,
		logger:           logger,
	}
}

// requestOnce performs a single GET of endpoint and returns the body of a
// 200 response. A 202 response yields ErrServerNotReady.
func (c *Client) requestOnce(ctx context.Context, endpoint string, params map[string]string, attempt int) (io.Reader, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("endpoint", endpoint).
			Int("attempt", attempt).
			Msg("BGG request failed")
		return nil, connectionError(err)
	}

	status := res.StatusCode()
	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", status).
		Int("attempt", attempt).
		Dur("elapsed", res.Time()).
		Msg("BGG request completed")

	if status != http.StatusOK && status != http.StatusAccepted {
		return nil, &ServerError{StatusCode: status}
	}

	if contentType := res.Header().Get("Content-Type"); !isXMLContentType(contentType) {
		return nil, connectionError(&unexpectedContentTypeError{contentType: contentType})
	}

	if status == http.StatusAccepted {
		return nil, ErrServerNotReady
	}

	return bytes.NewReader(res.Body()), nil
}

func isXMLContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch {
	case mediaType == "text/xml", mediaType == "application/xml":
		return true
	case strings.HasSuffix(mediaType, "+xml"):
		return true
	}
	return false
}

type unexpectedContentTypeError struct {
	contentType string
}

func (e *unexpectedContentTypeError) Error() string {
	if e.contentType == "" {
		return "response has no content type"
	}
	return "unexpected content type " + e.contentType
}
