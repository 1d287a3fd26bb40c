package bgg

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxIDsPerRequest is the number of ids the thing endpoint accepts per request.
const MaxIDsPerRequest = 20

// FetchGamesByIDBatched fetches any number of games by splitting ids into
// chunks of MaxIDsPerRequest and requesting them concurrently. Results keep
// the chunk order; any failed chunk fails the call.
func (c *Client) FetchGamesByIDBatched(ctx context.Context, ids []int, withStats bool) ([]Game, error) {
	if len(ids) == 0 {
		return []Game{}, nil
	}

	chunks := chunkIDs(ids, MaxIDsPerRequest)
	results := make([][]Game, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchConcurrency)

	for i, chunk := range chunks {
		g.Go(func() error {
			games, err := c.FetchGamesByID(ctx, chunk, withStats)
			if err != nil {
				return fmt.Errorf("batch %d/%d: %w", i+1, len(chunks), err)
			}
			results[i] = games
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("ids", len(ids)).
		Int("batches", len(chunks)).
		Msg("Fetched games in batches")

	games := []Game{}
	for _, r := range results {
		games = append(games, r...)
	}
	return games, nil
}

func chunkIDs(ids []int, size int) [][]int {
	var chunks [][]int
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
