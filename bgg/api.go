package bgg

import (
	"context"
)

// API defines the interface for BoardGameGeek operations
type API interface {
	// FetchGameByID retrieves a single game
	FetchGameByID(ctx context.Context, id int, withStats bool) (Game, error)

	// FetchGamesByID retrieves several games in one request
	FetchGamesByID(ctx context.Context, ids []int, withStats bool) ([]Game, error)

	// FetchUserCollection retrieves a user's collection, waiting for the service to build it
	FetchUserCollection(ctx context.Context, username string, opts CollectionOptions) ([]CollectionEntry, error)

	// Search looks up things by name
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// BatchFetcher fetches more games than a single request allows
type BatchFetcher interface {
	FetchGamesByIDBatched(ctx context.Context, ids []int, withStats bool) ([]Game, error)
}

var (
	_ API          = (*Client)(nil)
	_ BatchFetcher = (*Client)(nil)
)
