// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the tenant a page belongs to. The page pipeline only needs
// existence checks and the summary fields; the full record is managed by
// the admin CRUD surface.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerSummary is the reduced customer shape attached to pages
// (id, name, and email only — never the full record).
type CustomerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Summary returns the reduced shape of a customer.
func (c *Customer) Summary() *CustomerSummary {
	return &CustomerSummary{ID: c.ID, Name: c.Name, Email: c.Email}
}
