// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// renderKeyPrefix namespaces render cache keys in Valkey.
const renderKeyPrefix = "render:"

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// ValkeyCache is a render cache shared across instances, backed by
// Valkey's native key expiry. Cache errors degrade to misses.
type ValkeyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValkeyCache creates a Valkey-backed render cache.
func NewValkeyCache(client *redis.Client, ttl time.Duration) *ValkeyCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ValkeyCache{client: client, ttl: ttl}
}

// Get returns the cached HTML for a slug. Any cache error is a miss.
func (c *ValkeyCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := c.client.Get(ctx, renderKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("render cache get error", "slug", slug, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores rendered HTML with the configured TTL.
func (c *ValkeyCache) Set(ctx context.Context, slug string, html []byte) {
	if err := c.client.Set(ctx, renderKeyPrefix+slug, html, c.ttl).Err(); err != nil {
		slog.Warn("render cache set error", "slug", slug, "error", err)
	}
}
