package bgg

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Endpoints of the XML API v2, relative to the base URL.
const (
	endpointThing      = "/thing"
	endpointCollection = "/collection"
	endpointSearch     = "/search"
)

// DefaultCollectionTimeout bounds how long FetchUserCollection keeps retrying
// while the service prepares the collection.
const DefaultCollectionTimeout = 90 * time.Second

// CollectionOptions controls a collection request.
type CollectionOptions struct {
	// Brief asks for an abbreviated result. It does not change which fields
	// are required when decoding.
	Brief bool
	// Stats asks for the <stats> block of every entry.
	Stats bool
	// Timeout is how long to keep retrying while the service answers 202.
	// Zero means DefaultCollectionTimeout.
	Timeout time.Duration
}

// SearchOptions controls a search request.
type SearchOptions struct {
	// Type restricts results to a thing type such as "boardgame" or
	// "boardgameexpansion". Several types may be comma separated.
	Type string
	// Exact only returns items whose name matches the query exactly.
	Exact bool
}

// FetchGameByID returns the game with the given id.
func (c *Client) FetchGameByID(ctx context.Context, id int, withStats bool) (Game, error) {
	games, err := c.FetchGamesByID(ctx, []int{id}, withStats)
	if err != nil {
		return Game{}, err
	}
	if len(games) != 1 {
		return Game{}, &APIError{Message: fmt.Sprintf("Invalid Number of Items Returned: %d", len(games))}
	}
	return games[0], nil
}

// FetchGamesByID returns the games with the given ids in the order the service
// lists them. Unknown ids are silently omitted by the service.
func (c *Client) FetchGamesByID(ctx context.Context, ids []int, withStats bool) ([]Game, error) {
	params := map[string]string{
		"id":    joinIDs(ids),
		"stats": flag(withStats),
	}
	return fetch(ctx, c, endpointThing, params, gameShape, time.Time{})
}

// FetchUserCollection returns the collection of username. The service builds
// collections in the background and answers 202 until ready, so the request
// is retried until opts.Timeout elapses.
func (c *Client) FetchUserCollection(ctx context.Context, username string, opts CollectionOptions) ([]CollectionEntry, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultCollectionTimeout
	}

	params := map[string]string{
		"username": username,
		"brief":    flag(opts.Brief),
		"stats":    flag(opts.Stats),
	}
	return fetch(ctx, c, endpointCollection, params, collectionShape, c.clock.Now().Add(timeout))
}

// Search looks up things by name.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	params := map[string]string{
		"query": query,
		"exact": flag(opts.Exact),
	}
	if opts.Type != "" {
		params["type"] = opts.Type
	}
	return fetch(ctx, c, endpointSearch, params, searchShape, time.Time{})
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
