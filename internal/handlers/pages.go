// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pagecraft/internal/models"
	"pagecraft/internal/pages"
)

// Pages groups the JSON API handlers for page lifecycle management.
type Pages struct {
	service *pages.Service
}

// NewPages creates the pages handler group.
func NewPages(service *pages.Service) *Pages {
	return &Pages{service: service}
}

type createPageRequest struct {
	TemplateID uuid.UUID `json:"template_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CustomCSS  *string   `json:"custom_css,omitempty"`
}

type updatePageRequest struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	CustomCSS   *string `json:"custom_css,omitempty"`
	Theme       *string `json:"theme,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type upsertElementRequest struct {
	Content string `json:"content"`
}

// Create handles POST /api/pages: materialize a page from a template.
func (h *Pages) Create(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	page, err := h.service.CreateFromTemplate(pages.CreatePageRequest{
		TemplateID: req.TemplateID,
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Slug:       req.Slug,
		CustomCSS:  req.CustomCSS,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

// List handles GET /api/pages with an optional customer_id filter.
func (h *Pages) List(w http.ResponseWriter, r *http.Request) {
	var customerID *uuid.UUID
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid customer_id")
			return
		}
		customerID = &id
	}

	list, err := h.service.List(customerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []models.Page{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/pages/{id}.
func (h *Pages) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	page, err := h.service.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Update handles PUT /api/pages/{id} with partial fields.
func (h *Pages) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req updatePageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	page, err := h.service.Update(id, pages.UpdatePageRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		CustomCSS:   req.CustomCSS,
		Theme:       req.Theme,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Publish handles POST /api/pages/{id}/publish.
func (h *Pages) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

// Unpublish handles POST /api/pages/{id}/unpublish.
func (h *Pages) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *Pages) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var (
		page any
		err  error
	)
	if published {
		page, err = h.service.Publish(id)
	} else {
		page, err = h.service.Unpublish(id)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Delete handles DELETE /api/pages/{id}. Elements cascade.
func (h *Pages) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListElements handles GET /api/pages/{id}/elements.
func (h *Pages) ListElements(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	elements, err := h.service.Elements(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if elements == nil {
		elements = []models.PageElement{}
	}
	writeJSON(w, http.StatusOK, elements)
}

// UpsertElement handles PUT /api/pages/{id}/elements/{key}: update an
// element's content, or create a TEXT element for an out-of-band key.
func (h *Pages) UpsertElement(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")

	var req upsertElementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	el, err := h.service.UpsertElement(id, key, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, el)
}

// DeleteElement handles DELETE /api/pages/{id}/elements/{key}.
func (h *Pages) DeleteElement(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")

	if err := h.service.DeleteElement(id, key); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
