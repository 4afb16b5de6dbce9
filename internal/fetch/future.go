package fetch

import (
	"context"
	"sync"
)

// Future is the pending result of one fetch running in its own goroutine.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error

	mu        sync.Mutex
	callbacks []func(T, error)
}

// Go starts fn in a new goroutine. Cancelling ctx cancels the fetch itself.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		val, err := fn(ctx)
		f.complete(val, err)
	}()
	return f
}

func (f *Future[T]) complete(val T, err error) {
	f.mu.Lock()
	f.val, f.err = val, err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(val, err)
	}
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the fetch completes or ctx is done. Abandoning the wait
// does not stop the fetch; cancel the context passed to Go for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete registers cb to run once with the result. If the fetch already
// finished, cb runs immediately on the calling goroutine.
func (f *Future[T]) OnComplete(cb func(T, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		cb(f.val, f.err)
		return
	default:
	}
	f.callbacks = append(f.callbacks, cb)
	f.mu.Unlock()
}
