// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"pagecraft/internal/models"
	"pagecraft/internal/pages"
	"pagecraft/internal/placeholder"
	"pagecraft/internal/store"
)

// Templates groups the JSON API handlers for template management.
type Templates struct {
	store   *store.TemplateStore
	service *pages.Service
}

// NewTemplates creates the templates handler group. Deletion goes through
// the pages service so the dependent-pages rule is enforced in one place.
func NewTemplates(templateStore *store.TemplateStore, service *pages.Service) *Templates {
	return &Templates{store: templateStore, service: service}
}

type templateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	HTMLContent string  `json:"html_content"`
	CSSContent  string  `json:"css_content"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// List handles GET /api/templates.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.store.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, templates)
}

// Get handles GET /api/templates/{id}.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.store.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if t == nil {
		writeServiceError(w, pages.ErrTemplateNotFound)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Variables handles GET /api/templates/{id}/variables: the placeholder
// names a page created from this template would receive, without
// creating anything.
func (h *Templates) Variables(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.store.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if t == nil {
		writeServiceError(w, pages.ErrTemplateNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"variables": placeholder.Extract(t.HTMLContent),
	})
}

// Create handles POST /api/templates.
func (h *Templates) Create(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeServiceError(w, pages.ErrNameRequired)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	t, err := h.store.Create(&models.Template{
		Name:        req.Name,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		HTMLContent: req.HTMLContent,
		CSSContent:  req.CSSContent,
		IsActive:    active,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// Update handles PUT /api/templates/{id}. Pages already materialized keep
// their element set; only future renders pick up the new markup.
func (h *Templates) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req templateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeServiceError(w, pages.ErrNameRequired)
		return
	}

	t, err := h.store.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if t == nil {
		writeServiceError(w, pages.ErrTemplateNotFound)
		return
	}

	t.Name = req.Name
	t.Description = req.Description
	t.Thumbnail = req.Thumbnail
	t.HTMLContent = req.HTMLContent
	t.CSSContent = req.CSSContent
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := h.store.Update(t); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/templates/{id}. Fails with a conflict while
// pages still reference the template.
func (h *Templates) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTemplate(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
