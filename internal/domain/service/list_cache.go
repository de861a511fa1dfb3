package service

import "context"

// ListCache serves a full listing filtered in memory and forgets it on every write.
type ListCache[T any] interface {
	// List returns the rows for which match reports true, refilling the cache first when it is empty.
	List(ctx context.Context, match func(T) bool) ([]T, error)
	// Invalidate drops the cached listing; the next List refills it.
	Invalidate()
}
