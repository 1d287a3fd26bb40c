package bgg

import (
	"context"
	"errors"
	"time"
)

// DefaultRetryDelay is the wait between attempts while the service answers
// 202 Accepted.
const DefaultRetryDelay = time.Second

// Clock is the time source of the retry loop.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// fetch requests endpoint until it yields a terminal outcome and decodes the
// result with s. A 202 response is retried after the retry delay for as long
// as the clock is before deadline; a zero deadline makes the call single-shot.
func fetch[T any](ctx context.Context, c *Client, endpoint string, params map[string]string, s shape[T], deadline time.Time) ([]T, error) {
	for attempt := 1; ; attempt++ {
		body, err := c.requestOnce(ctx, endpoint, params, attempt)
		if err == nil {
			return decodeDocument(body, s)
		}
		if !errors.Is(err, ErrServerNotReady) {
			return nil, err
		}

		if !c.clock.Now().Before(deadline) {
			c.logger.Debug().
				Str("endpoint", endpoint).
				Int("attempts", attempt).
				Msg("Gave up waiting for BGG to prepare the response")
			return nil, err
		}

		c.logger.Info().
			Str("endpoint", endpoint).
			Int("attempt", attempt).
			Dur("delay", c.retryDelay).
			Msg("BGG is still preparing the response, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(c.retryDelay):
		}
	}
}
