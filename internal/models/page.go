// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ElementType classifies what kind of value a page element holds. The
// content column is always a string regardless of type (a hex color, a URL).
type ElementType string

const (
	ElementTypeText  ElementType = "TEXT"
	ElementTypeImage ElementType = "IMAGE"
	ElementTypeColor ElementType = "COLOR"
	ElementTypeLink  ElementType = "LINK"
)

// Page is a customer-facing instantiation of a template. Its element set
// is a point-in-time copy of the template's placeholder contract — it does
// not follow later template edits. The slug is globally unique and is the
// public address of the page once published.
type Page struct {
	ID          uuid.UUID `json:"id"`
	TemplateID  uuid.UUID `json:"template_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	CustomCSS   *string   `json:"custom_css,omitempty"`
	Theme       *string   `json:"theme,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Eagerly loaded relations. Nil / empty unless the store method says
	// otherwise.
	Template *Template        `json:"template,omitempty"`
	Customer *CustomerSummary `json:"customer,omitempty"`
	Elements []PageElement    `json:"elements,omitempty"`
}

// PageElement is one editable value on a page, bound to a template
// placeholder by its key. (page_id, element_key) is unique.
type PageElement struct {
	ID         uuid.UUID   `json:"id"`
	PageID     uuid.UUID   `json:"page_id"`
	ElementKey string      `json:"element_key"`
	Type       ElementType `json:"type"`
	Content    string      `json:"content"`
	Label      *string     `json:"label,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
