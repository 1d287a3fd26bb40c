// Package bgg provides a client for the BoardGameGeek XML API v2.
//
// BoardGameGeek answers with XML documents that are heavy on optional fields.
// This package fetches them and decodes them into typed records: games from
// the thing endpoint, user collections and search results.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := bgg.NewClient(logger, bgg.WithTimeout(30*time.Second))
//
//	game, err := client.FetchGameByID(ctx, 161936, true)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	entries, err := client.FetchUserCollection(ctx, "username", bgg.CollectionOptions{
//		Stats:   true,
//		Timeout: 2 * time.Minute,
//	})
//
// # Collections
//
// The collection endpoint queues the request and answers 202 Accepted until
// the collection is ready. FetchUserCollection retries once per second (see
// WithRetryDelay) until CollectionOptions.Timeout elapses, then fails with
// ErrServerNotReady. Other endpoints never retry.
//
// # Error Handling
//
// Every call ends in exactly one outcome, and never returns partial results:
//
//   - ErrConnection: transport failure or a response that is not XML
//   - ErrServerNotReady: the service was still busy when the deadline passed
//   - ServerError: any HTTP status other than 200 and 202
//   - APIError: an error message reported in the document, e.g. an unknown username
//   - XMLError: a malformed document or an entity that could not be decoded
//
// Use errors.Is for the sentinels and errors.As for the typed errors:
//
//	var apiErr *bgg.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Println(apiErr.Message)
//	}
package bgg
