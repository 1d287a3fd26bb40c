package bgg

import "context"

// Result carries the outcome of an asynchronous call.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn in its own goroutine and delivers exactly one Result on the
// returned channel. Cancelling ctx stops pending retries; the Result then
// carries the context error.
//
//	ch := bgg.Async(ctx, func(ctx context.Context) ([]bgg.CollectionEntry, error) {
//		return client.FetchUserCollection(ctx, "user", bgg.CollectionOptions{})
//	})
//	res := <-ch
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}
