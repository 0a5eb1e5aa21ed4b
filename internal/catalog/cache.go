package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const snapshotKey = "catalog"

var ErrNoCatalog = errors.New("catalog build returned nothing")

// BuildFunc computes a fresh catalog. It reports failure through Catalog.Err.
type BuildFunc func(ctx context.Context) *Catalog

// SnapshotCache memoizes one catalog for the life of the process. There is
// no expiry: the stored snapshot is served until Invalidate or a successful
// Refresh replaces it.
type SnapshotCache struct {
	mu      sync.RWMutex
	current *Catalog
	group   singleflight.Group

	now         func() time.Time
	cacheErrors bool
}

type Option func(*SnapshotCache)

// WithClock sets the clock used to stamp BuiltAt.
func WithClock(now func() time.Time) Option {
	return func(c *SnapshotCache) {
		c.now = now
	}
}

// WithCacheErrors controls whether a failed catalog may occupy the slot.
// When false (the default) a failed build is returned to its callers but
// never stored, and never replaces a good snapshot.
func WithCacheErrors(v bool) Option {
	return func(c *SnapshotCache) {
		c.cacheErrors = v
	}
}

func NewSnapshotCache(opts ...Option) *SnapshotCache {
	c := &SnapshotCache{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Current returns the stored snapshot or nil.
func (c *SnapshotCache) Current() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// GetOrBuild returns the stored snapshot, building it on first use.
// Concurrent first callers share a single build.
func (c *SnapshotCache) GetOrBuild(ctx context.Context, build BuildFunc) *Catalog {
	if cur := c.Current(); cur != nil {
		return cur
	}

	return c.do(ctx, build, true)
}

// Refresh forces a new build. A failed refresh leaves a previously stored
// good snapshot in place.
func (c *SnapshotCache) Refresh(ctx context.Context, build BuildFunc) *Catalog {
	return c.do(ctx, build, false)
}

// Invalidate empties the slot; the next GetOrBuild rebuilds.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

func (c *SnapshotCache) do(ctx context.Context, build BuildFunc, reuse bool) *Catalog {
	v, _, _ := c.group.Do(snapshotKey, func() (any, error) {
		if reuse {
			if cur := c.Current(); cur != nil {
				return cur, nil
			}
		}

		// callers may go away; the build still completes for the others
		cat := build(context.WithoutCancel(ctx))
		if cat == nil {
			cat = Failed(ErrNoCatalog)
		}
		cat.BuildID = uuid.NewString()
		cat.BuiltAt = c.now()

		c.store(cat)

		return cat, nil
	})

	return v.(*Catalog)
}

func (c *SnapshotCache) store(cat *Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cat.Failed() && !c.cacheErrors {
		return
	}
	if cat.Failed() && c.current != nil && !c.current.Failed() {
		return
	}

	c.current = cat
}
