package drafter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/medpipe/draftgate/internal/cache"
)

// CachedDrafter wraps another drafter with a response cache keyed by the
// full prompt, so re-reviewing an unchanged bundle skips the API call.
type CachedDrafter struct {
	inner Drafter
	cache cache.Cache
	model string
	ttl   time.Duration
}

// NewCachedDrafter wraps inner with the given cache.
func NewCachedDrafter(inner Drafter, c cache.Cache, model string, ttl time.Duration) *CachedDrafter {
	return &CachedDrafter{inner: inner, cache: c, model: model, ttl: ttl}
}

// Name returns the wrapped provider's name
func (d *CachedDrafter) Name() string { return d.inner.Name() }

// IsAvailable defers to the wrapped provider
func (d *CachedDrafter) IsAvailable(ctx context.Context) bool {
	return d.inner.IsAvailable(ctx)
}

// Draft serves from cache when possible, otherwise generates and stores.
// Cache failures are not fatal: a broken cache degrades to direct calls.
func (d *CachedDrafter) Draft(ctx context.Context, req Request) (*Response, error) {
	key := cache.Key(d.inner.Name(), d.model, BuildPrompt(req))

	if data, ok := d.cache.Get(key); ok {
		var resp Response
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		_ = d.cache.Delete(key)
	}

	resp, err := d.inner.Draft(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = d.cache.Set(key, data, d.ttl)
	}
	return resp, nil
}
