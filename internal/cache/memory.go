// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry pairs cached HTML with its expiry instant.
type memoryEntry struct {
	html    []byte
	expires time.Time
}

// MemoryCache is an in-process render cache. Expiry happens on read:
// stale entries are never returned and get overwritten on the next
// miss-then-render. Unbounded growth across distinct slugs is an accepted
// tradeoff at this scale.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewMemoryCache creates an empty in-process render cache.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached HTML for a slug if present and unexpired.
func (c *MemoryCache) Get(_ context.Context, slug string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[slug]
	if !ok || !entry.expires.After(c.now()) {
		return nil, false
	}
	return entry.html, true
}

// Set stores rendered HTML with expiry now+TTL. Concurrent writers for
// the same slug race harmlessly — last write wins and both carry
// equivalent content barring a concurrent edit.
func (c *MemoryCache) Set(_ context.Context, slug string, html []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[slug] = memoryEntry{html: html, expires: c.now().Add(c.ttl)}
}
