// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP layer: the public render surface
// and the JSON admin API for templates, pages, and customers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pagecraft/internal/pages"
)

// errorResponse is the JSON error body shape: a stable machine-readable
// code plus a human message.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body with the given status and code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeServiceError maps page service sentinels onto HTTP statuses. Slug
// conflicts are never retried server-side — they need new user input.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pages.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "template not found")
	case errors.Is(err, pages.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "customer not found")
	case errors.Is(err, pages.ErrPageNotFound):
		writeError(w, http.StatusNotFound, "PAGE_NOT_FOUND", "page not found")
	case errors.Is(err, pages.ErrElementNotFound):
		writeError(w, http.StatusNotFound, "ELEMENT_NOT_FOUND", "page element not found")
	case errors.Is(err, pages.ErrSlugExists):
		writeError(w, http.StatusConflict, "SLUG_ALREADY_EXISTS", "slug already in use by another page")
	case errors.Is(err, pages.ErrSlugInvalid):
		writeError(w, http.StatusBadRequest, "SLUG_INVALID", "slug may contain lowercase letters, digits, and hyphens only")
	case errors.Is(err, pages.ErrNameRequired):
		writeError(w, http.StatusBadRequest, "NAME_REQUIRED", "name is required")
	case errors.Is(err, pages.ErrTemplateHasPages):
		writeError(w, http.StatusConflict, "TEMPLATE_HAS_PAGES", "template still has dependent pages")
	default:
		slog.Error("unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// decodeJSON decodes a request body into dst, replying 400 on failure.
// Returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		return false
	}
	return true
}

// urlUUID parses a UUID path parameter, replying 400 on failure.
func urlUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
