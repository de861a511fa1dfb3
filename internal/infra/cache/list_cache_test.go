package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"pocketratings/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// store is a mutable source of truth for the cache under test.
type store struct {
	mu    sync.Mutex
	rows  []int
	err   error
	calls atomic.Int32
}

func (s *store) load(_ context.Context) ([]int, error) {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	return append([]int(nil), s.rows...), nil
}

func (s *store) write(rows ...int) {
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

func even(v int) bool { return v%2 == 0 }

func TestListCache_ServesFromCacheUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	src := &store{rows: []int{1, 2, 3, 4}}
	c := NewListCache("numbers", src.load, true)

	got, err := c.List(ctx, even)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)

	got, err = c.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.EqualValues(t, 1, src.calls.Load())

	src.write(5, 6)
	c.Invalidate()

	got, err = c.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, got)
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestListCache_MatchesUncachedReadsAfterEveryWrite(t *testing.T) {
	ctx := context.Background()
	src := &store{}
	cached := NewListCache("numbers", src.load, true)
	direct := NewListCache("numbers", src.load, false)

	writes := [][]int{{1}, {1, 2}, {}, {7, 8, 10}, {8}}
	for _, rows := range writes {
		// populate with the previous state first so the write would otherwise be stale
		_, err := cached.List(ctx, nil)
		require.NoError(t, err)

		src.write(rows...)
		cached.Invalidate()

		want, err := direct.List(ctx, even)
		require.NoError(t, err)
		got, err := cached.List(ctx, even)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestListCache_Disabled(t *testing.T) {
	ctx := context.Background()
	src := &store{rows: []int{1, 2}}
	c := NewListCache("numbers", src.load, false)
	assert.False(t, c.Enabled())

	for range 3 {
		_, err := c.List(ctx, nil)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, src.calls.Load())

	src.write(9)
	got, err := c.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got)
}

func TestListCache_RefillErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("database is locked")
	src := &store{err: boom}
	c := NewListCache("numbers", src.load, true)

	got, err := c.List(ctx, nil)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, boom))

	// the failure is not cached as an empty listing
	src.mu.Lock()
	src.err = nil
	src.rows = []int{3}
	src.mu.Unlock()

	got, err = c.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)
}

func TestListCache_EmptyListingIsCached(t *testing.T) {
	ctx := context.Background()
	src := &store{}
	c := NewListCache("numbers", src.load, true)

	for range 2 {
		got, err := c.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.EqualValues(t, 1, src.calls.Load())
}

func TestListCache_StaleRefillIsNotPublished(t *testing.T) {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	c := NewListCache("numbers", func(context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []int{1}, nil
		}
		return []int{2}, nil
	}, true)

	done := make(chan []int)
	go func() {
		rows, _ := c.List(ctx, nil)
		done <- rows
	}()

	<-started
	c.Invalidate()
	close(release)
	assert.Equal(t, []int{1}, <-done)

	got, err := c.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)
	assert.EqualValues(t, 2, calls.Load())
}

func TestListCache_ConcurrentMissesShareOneRefill(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	var calls atomic.Int32

	c := NewListCache("numbers", func(context.Context) ([]int, error) {
		calls.Add(1)
		<-release
		return []int{1, 2, 3}, nil
	}, true)

	const readers = 16
	var wg sync.WaitGroup
	var entered sync.WaitGroup
	entered.Add(readers)
	results := make([][]int, readers)
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entered.Done()
			rows, err := c.List(ctx, nil)
			assert.NoError(t, err)
			results[i] = rows
		}()
	}

	entered.Wait()
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(readers))
	for _, rows := range results {
		assert.Equal(t, []int{1, 2, 3}, rows)
	}

	before := calls.Load()
	_, err := c.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, before, calls.Load(), "populated cache must not hit the source")
}

func TestListCache_CancelledReaderDoesNotFailSharedRefill(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var loadErr atomic.Value
	var calls atomic.Int32

	c := NewListCache("numbers", func(ctx context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			loadErr.Store(err)
			return nil, err
		}
		return []int{1, 2}, nil
	}, true)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderDone := make(chan error, 1)
	go func() {
		_, err := c.List(leaderCtx, nil)
		leaderDone <- err
	}()

	<-started
	followerDone := make(chan []int, 1)
	go func() {
		rows, err := c.List(context.Background(), nil)
		assert.NoError(t, err)
		followerDone <- rows
	}()

	cancel()
	assert.ErrorIs(t, <-leaderDone, context.Canceled)

	close(release)
	assert.Equal(t, []int{1, 2}, <-followerDone)
	assert.Nil(t, loadErr.Load(), "shared refill must not see the first reader's cancellation")

	got, err := c.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}
