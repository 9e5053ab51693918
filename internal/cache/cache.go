// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache provides the slug-keyed render cache that fronts the
// public rendering path, plus Valkey (Redis-compatible) client
// initialization. Only successful renders are cached; there is no
// invalidation hook tied to page edits — an edited page may serve stale
// HTML for up to one TTL window, an accepted staleness bound.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a rendered page stays cached. It matches the
// public Cache-Control max-age.
const DefaultTTL = 60 * time.Second

// RenderCache is a best-effort accelerator in front of the renderer.
// Implementations must treat every failure as a miss — the cache is never
// allowed to break the render path.
type RenderCache interface {
	// Get returns the cached HTML for a slug, if present and unexpired.
	Get(ctx context.Context, slug string) ([]byte, bool)
	// Set stores rendered HTML for a slug with the configured TTL.
	Set(ctx context.Context, slug string, html []byte)
}
