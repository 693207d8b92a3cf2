package store

import "time"

// DefaultCacheTTL bounds how stale a derived view may get between explicit
// invalidations.
const DefaultCacheTTL = 5 * time.Second

// cell caches one derived view with a fixed TTL. The populated flag is the
// staleness signal, so an empty result caches like any other; mutations call
// invalidate, which always wins over a still-live TTL.
type cell[T any] struct {
	ttl        time.Duration
	now        func() time.Time
	value      T
	computedAt time.Time
	populated  bool
}

func newCell[T any](ttl time.Duration, now func() time.Time) *cell[T] {
	return &cell[T]{ttl: ttl, now: now}
}

// get returns the cached value while fresh, recomputing otherwise.
func (c *cell[T]) get(compute func() T) T {
	if c.populated && c.now().Sub(c.computedAt) <= c.ttl {
		return c.value
	}
	c.value = compute()
	c.computedAt = c.now()
	c.populated = true
	return c.value
}

// invalidate forces the next get to recompute regardless of TTL.
func (c *cell[T]) invalidate() {
	c.populated = false
	var zero T
	c.value = zero
}
