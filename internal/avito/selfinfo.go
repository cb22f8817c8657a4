package avito

import (
	"context"
	"fmt"
	"sync"
)

// SelfInfoCache stores the authenticated account's self info keyed by
// client id. Implementations must be safe for concurrent use.
type SelfInfoCache interface {
	Get(ctx context.Context, clientID string) (*UserInfoSelf, bool, error)
	Set(ctx context.Context, clientID string, info *UserInfoSelf) error
}

// MemoryCache is an in-process SelfInfoCache. Sharing one MemoryCache
// between clients shares self info between clients with the same id.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]UserInfoSelf
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]UserInfoSelf)}
}

// Get implements SelfInfoCache.
func (m *MemoryCache) Get(_ context.Context, clientID string) (*UserInfoSelf, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.items[clientID]
	if !ok {
		return nil, false, nil
	}
	return &info, true, nil
}

// Set implements SelfInfoCache.
func (m *MemoryCache) Set(_ context.Context, clientID string, info *UserInfoSelf) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[clientID] = *info
	return nil
}

// SelfInfo returns the authenticated account's profile. The first result is
// memoized on the client and stored in the self-info cache under the client
// id; later calls, and other clients sharing the cache, reuse it. Clients
// without a client id only memoize.
func (c *Client) SelfInfo(ctx context.Context) (*UserInfoSelf, error) {
	if me := c.memoizedSelf(); me != nil {
		c.log.Debug("using memoized self info", "client_id", c.clientID, "id", me.ID)
		return me, nil
	}

	if c.clientID != "" {
		cached, ok, err := c.cache.Get(ctx, c.clientID)
		switch {
		case err != nil:
			c.log.Warn("self info cache lookup failed", "client_id", c.clientID, "error", err)
		case ok:
			c.log.Debug("using cached self info", "client_id", c.clientID, "id", cached.ID)
			cached.Bind(c)
			return c.memoizeSelf(cached), nil
		}
	}

	me, err := Call(ctx, c, GetUserInfoSelf{})
	if err != nil {
		return nil, fmt.Errorf("getting self info: %w", err)
	}

	stored := c.memoizeSelf(&me)
	if c.clientID != "" {
		if err := c.cache.Set(ctx, c.clientID, stored); err != nil {
			c.log.Warn("self info cache store failed", "client_id", c.clientID, "error", err)
		}
	}
	return stored, nil
}

func (c *Client) memoizedSelf() *UserInfoSelf {
	c.selfMu.Lock()
	defer c.selfMu.Unlock()
	return c.self
}

// memoizeSelf keeps the first memoized value when two lookups race.
func (c *Client) memoizeSelf(me *UserInfoSelf) *UserInfoSelf {
	c.selfMu.Lock()
	defer c.selfMu.Unlock()
	if c.self == nil {
		c.self = me
	}
	return c.self
}

func (c *Client) cachedSelfID() (int64, bool) {
	me := c.memoizedSelf()
	if me == nil {
		return 0, false
	}
	return me.ID, true
}
