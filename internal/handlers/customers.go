// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"pagecraft/internal/models"
	"pagecraft/internal/pages"
	"pagecraft/internal/store"
)

// Customers groups the JSON API handlers for customer management.
type Customers struct {
	store *store.CustomerStore
}

// NewCustomers creates the customers handler group.
func NewCustomers(customerStore *store.CustomerStore) *Customers {
	return &Customers{store: customerStore}
}

type customerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company,omitempty"`
}

// List handles GET /api/customers.
func (h *Customers) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// Get handles GET /api/customers/{id}.
func (h *Customers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.store.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if c == nil {
		writeServiceError(w, pages.ErrCustomerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create handles POST /api/customers.
func (h *Customers) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeServiceError(w, pages.ErrNameRequired)
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "email is required")
		return
	}

	c, err := h.store.Create(&models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			writeError(w, http.StatusConflict, "EMAIL_EXISTS", "a customer with this email already exists")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Delete handles DELETE /api/customers/{id}. Owned pages cascade.
func (h *Customers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
