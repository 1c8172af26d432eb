package async

import "context"

// Future is the pending result of an operation dispatched by the async
// client. It resolves exactly once.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Await blocks until the future resolves or ctx is done, whichever comes
// first. Awaiting a resolved future returns immediately; a future may be
// awaited any number of times.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future has resolved.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// dispatch runs fn on its own goroutine and returns the future that will
// carry its result. The network round trip is the only suspension point;
// nothing else is scheduled in the background.
func dispatch[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.val, f.err = fn()
		close(f.done)
	}()
	return f
}
