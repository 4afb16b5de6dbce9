package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureAwait(t *testing.T) {
	f := Go(context.Background(), func(ctx context.Context) (string, error) {
		return "5.00 ₳", nil
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5.00 ₳", v)

	// a second await returns the same result
	v, err = f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5.00 ₳", v)
}

func TestFutureError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, boom
	})

	<-f.Done()
	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFutureAwaitAbandoned(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFutureCancelPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := Go(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFutureOnComplete(t *testing.T) {
	release := make(chan struct{})
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 42, nil
	})

	var calls atomic.Int32
	got := make(chan int, 2)
	f.OnComplete(func(v int, err error) {
		calls.Add(1)
		got <- v
	})
	close(release)
	assert.Equal(t, 42, <-got)

	// registered after completion: runs immediately
	f.OnComplete(func(v int, err error) {
		calls.Add(1)
		got <- v
	})
	assert.Equal(t, 42, <-got)
	assert.Equal(t, int32(2), calls.Load())
}
