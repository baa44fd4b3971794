package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCacheServesCachedValue(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	calls := 0
	compute := func() (any, error) {
		calls++
		return "fresh", nil
	}

	first, err := cache.Get("stats", compute)
	assert.NoError(t, err)
	assert.Equal(t, "fresh", first)

	second, err := cache.Get("stats", compute)
	assert.NoError(t, err)
	assert.Equal(t, "fresh", second)
	assert.Equal(t, 1, calls)
}

func TestSnapshotCacheExpiry(t *testing.T) {
	cache := NewSnapshotCache(10 * time.Millisecond)
	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	v, _ := cache.Get("stats", compute)
	assert.Equal(t, 1, v)

	time.Sleep(20 * time.Millisecond)

	v, _ = cache.Get("stats", compute)
	assert.Equal(t, 2, v)
}

func TestSnapshotCacheKeysAreIndependent(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)

	a, _ := cache.Get("store-a:stats", func() (any, error) { return "a", nil })
	b, _ := cache.Get("store-b:stats", func() (any, error) { return "b", nil })

	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)

	a, _ = cache.Get("store-a:stats", func() (any, error) { return "changed", nil })
	assert.Equal(t, "a", a)
}

func TestSnapshotCacheConcurrentCallersShareOneComputation(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	var calls int32
	release := make(chan struct{})
	compute := func() (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	}

	const callers = 10
	var wg sync.WaitGroup
	results := make([]any, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cache.Get("snapshot", compute)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let every caller reach the flight before it completes.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestSnapshotCacheComputeErrorNotCached(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)
	calls := 0

	_, err := cache.Get("stats", func() (any, error) {
		calls++
		return nil, errors.New("database down")
	})
	assert.Error(t, err)

	v, err := cache.Get("stats", func() (any, error) {
		calls++
		return "recovered", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, calls)
}

func TestSnapshotCacheInvalidate(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)

	v, _ := cache.Get("stats", func() (any, error) { return 1, nil })
	assert.Equal(t, 1, v)

	cache.Invalidate("stats")

	v, _ = cache.Get("stats", func() (any, error) { return 2, nil })
	assert.Equal(t, 2, v)
}

func TestSnapshotCacheInvalidatePrefix(t *testing.T) {
	cache := NewSnapshotCache(time.Minute)

	cache.Get("store-a:stats", func() (any, error) { return 1, nil })
	cache.Get("store-a:weekly", func() (any, error) { return 2, nil })
	cache.Get("store-b:stats", func() (any, error) { return 3, nil })

	cache.InvalidatePrefix("store-a:")

	v, _ := cache.Get("store-a:stats", func() (any, error) { return 10, nil })
	assert.Equal(t, 10, v)
	v, _ = cache.Get("store-a:weekly", func() (any, error) { return 20, nil })
	assert.Equal(t, 20, v)
	v, _ = cache.Get("store-b:stats", func() (any, error) { return 30, nil })
	assert.Equal(t, 3, v)
}
