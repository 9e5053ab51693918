// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pagecraft/internal/cache"
	"pagecraft/internal/engine"
)

// Public serves rendered pages at their public slug URLs. It checks the
// render cache before invoking the engine and stores successful renders
// on miss; not-found and unpublished responses are never cached. This is
// an unauthenticated surface: every response is a complete HTML document
// and no error detail ever leaks.
type Public struct {
	engine      *engine.Engine
	renderCache cache.RenderCache
	maxAge      int // Cache-Control max-age in seconds, matches the cache TTL
}

// NewPublic creates the public handler group. ttl drives both the cache
// and the Cache-Control header so browser and server caching agree.
func NewPublic(eng *engine.Engine, renderCache cache.RenderCache, ttl time.Duration) *Public {
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}
	return &Public{
		engine:      eng,
		renderCache: renderCache,
		maxAge:      int(ttl.Seconds()),
	}
}

// Render handles GET /p/{slug}: cache lookup, render, cache fill.
func (p *Public) Render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.renderCache.Get(ctx, slugParam); ok {
		p.writeHTML(w, http.StatusOK, "HIT", cached)
		return
	}

	rendered, found, err := p.engine.RenderBySlug(slugParam)
	if err != nil {
		slog.Error("render page failed", "slug", slugParam, "error", err)
		p.writeHTML(w, http.StatusInternalServerError, "MISS", p.engine.ErrorPage())
		return
	}
	if !found {
		// Unpublished and nonexistent pages are indistinguishable here.
		p.writeHTML(w, http.StatusNotFound, "MISS", p.engine.NotFoundPage())
		return
	}

	p.renderCache.Set(ctx, slugParam, rendered)
	p.writeHTML(w, http.StatusOK, "MISS", rendered)
}

// writeHTML writes an HTML response with the cache diagnostics headers.
func (p *Public) writeHTML(w http.ResponseWriter, status int, cacheState string, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", cacheState)
	if status == http.StatusOK {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", p.maxAge))
	}
	w.WriteHeader(status)
	w.Write(body)
}
