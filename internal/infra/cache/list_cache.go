// Package cache holds read-through, invalidate-on-write caches of denormalized listings.
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"pocketratings/internal/domain/service"
	"pocketratings/internal/errors"

	"golang.org/x/sync/singleflight"
)

// refillTimeout bounds a shared refill, which no single reader can cancel.
const refillTimeout = 30 * time.Second

// Source loads the full listing from the store.
type Source[T any] func(ctx context.Context) ([]T, error)

// ListCache keeps one full listing in memory and filters it per request.
// A disabled cache reads through to the source on every call.
type ListCache[T any] struct {
	name    string
	source  Source[T]
	enabled bool

	mu         sync.RWMutex
	rows       []T // nil while empty
	generation uint64

	refills singleflight.Group
}

var _ service.ListCache[struct{}] = (*ListCache[struct{}])(nil)

// NewListCache returns an empty cache over source. name only shows up in error messages.
func NewListCache[T any](name string, source Source[T], enabled bool) *ListCache[T] {
	return &ListCache[T]{
		name:    name,
		source:  source,
		enabled: enabled,
	}
}

// Enabled reports whether listings are kept between calls.
func (c *ListCache[T]) Enabled() bool {
	return c.enabled
}

// List returns the rows for which match reports true. A nil match keeps every row.
// Refill failures are returned as-is and leave the cache empty.
func (c *ListCache[T]) List(ctx context.Context, match func(T) bool) ([]T, error) {
	if !c.enabled {
		rows, err := c.source(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s listing", c.name)
		}

		return filter(rows, match), nil
	}

	c.mu.RLock()
	if c.rows != nil {
		out := filter(c.rows, match)
		c.mu.RUnlock()

		return out, nil
	}
	generation := c.generation
	c.mu.RUnlock()

	rows, err := c.refill(ctx, generation)
	if err != nil {
		return nil, err
	}

	return filter(rows, match), nil
}

// refill loads the listing once per generation, however many readers miss at the same time.
// The load runs detached from the caller that started it; each caller stops waiting when its own ctx ends.
// The result is published only if no invalidation happened while it was loading.
func (c *ListCache[T]) refill(ctx context.Context, generation uint64) ([]T, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.refills.DoChan(strconv.FormatUint(generation, 10), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(detached, refillTimeout)
		defer cancel()

		rows, err := c.source(loadCtx)
		if err != nil {
			return nil, errors.Wrapf(err, "refill %s listing", c.name)
		}
		if rows == nil {
			rows = []T{}
		}

		c.mu.Lock()
		if c.generation == generation {
			c.rows = rows
		}
		c.mu.Unlock()

		return rows, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "wait for %s listing", c.name)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.([]T), nil
	}
}

// Invalidate clears the cached listing. Callers invoke it after every successful write to the backing rows.
func (c *ListCache[T]) Invalidate() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	c.rows = nil
	c.generation++
	c.mu.Unlock()
}

func filter[T any](rows []T, match func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if match == nil || match(row) {
			out = append(out, row)
		}
	}

	return out
}
