package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingBuild(calls *int32) BuildFunc {
	return func(ctx context.Context) (*References, error) {
		atomic.AddInt32(calls, 1)
		return &References{Demo: inv("a")}, nil
	}
}

func TestCache_GetOrBuild(t *testing.T) {
	t.Run("ReusesFreshEntry", func(t *testing.T) {
		var calls int32
		c := NewCache(time.Minute)

		first, err := c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		require.NoError(t, err)
		second, err := c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("ZeroTTLAlwaysBuilds", func(t *testing.T) {
		var calls int32
		c := NewCache(0)

		for i := 0; i < 3; i++ {
			_, err := c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("Expires", func(t *testing.T) {
		var calls int32
		now := time.Unix(1000, 0)
		c := NewCache(time.Minute)
		c.now = func() time.Time { return now }

		_, err := c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		c := NewCache(time.Minute)
		fail := func(ctx context.Context) (*References, error) {
			return nil, errors.New("demo pak missing")
		}

		_, err := c.GetOrBuild(context.Background(), "refs", fail)
		assert.ErrorContains(t, err, "demo pak missing")

		var calls int32
		_, err = c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		assert.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Invalidate", func(t *testing.T) {
		var calls int32
		c := NewCache(time.Minute)

		_, _ = c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		c.Invalidate("refs")
		_, _ = c.GetOrBuild(context.Background(), "refs", countingBuild(&calls))
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("ConcurrentCallersShareBuild", func(t *testing.T) {
		var calls int32
		c := NewCache(time.Minute)
		release := make(chan struct{})
		slow := func(ctx context.Context) (*References, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return &References{}, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := c.GetOrBuild(context.Background(), "refs", slow)
				assert.NoError(t, err)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
