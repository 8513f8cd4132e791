package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultTTL bounds how long a snapshot is served before the sheet is
// refetched.
const DefaultTTL = 30 * time.Second

// Fetcher is the catalog source adapter: it returns raw sheet cells where
// row 0 is the header. The sheets client implements it in production; tests
// supply fakes.
type Fetcher interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// Snapshot is one immutable, fully parsed copy of the catalog. The cache
// replaces it wholesale on refresh; individual rows are never invalidated.
type Snapshot struct {
	Rows       []Row
	CapturedAt time.Time
}

// Cache serves parsed catalog rows, refetching from the adapter when the
// current snapshot is older than ttl or a caller forces a refresh.
//
// The fetch runs outside the lock, so concurrent lookups racing an expired
// snapshot may each fetch redundantly. That is accepted: fetches are
// idempotent and the last writer wins with an equivalent snapshot. What the
// lock does guarantee is that readers always see a complete snapshot, never
// a half-replaced one.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	snapshot *Snapshot
}

// NewCache wraps fetcher with a ttl-bounded snapshot cache. A zero or
// negative ttl falls back to DefaultTTL.
func NewCache(fetcher Fetcher, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetRows returns the current snapshot's rows, fetching a fresh copy first
// when the snapshot is missing, expired, or forceRefresh is set. A failed
// fetch propagates to the caller; the cache never papers over it with stale
// data.
func (c *Cache) GetRows(ctx context.Context, forceRefresh bool) ([]Row, error) {
	if !forceRefresh {
		c.mu.Lock()
		snap := c.snapshot
		fresh := snap != nil && c.now().Sub(snap.CapturedAt) < c.ttl
		c.mu.Unlock()
		if fresh {
			return snap.Rows, nil
		}
	}

	raw, err := c.fetcher.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}

	snap := &Snapshot{Rows: ParseRows(raw), CapturedAt: c.now()}
	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()
	return snap.Rows, nil
}

// Age reports how old the current snapshot is, or false when nothing has
// been fetched yet. Used by the lookup handler's debug fields.
func (c *Cache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		return 0, false
	}
	return c.now().Sub(c.snapshot.CapturedAt), true
}

// Ready primes the cache so the readiness probe fails until the sheet is
// reachable.
func (c *Cache) Ready(ctx context.Context) error {
	_, err := c.GetRows(ctx, false)
	return err
}
