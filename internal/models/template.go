// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Template represents a reusable HTML/CSS page design stored in the
// database. The HTML may be a full document or a body fragment and can
// contain {{variableName}} placeholders; the placeholder set is the
// contract a page instantiated from this template must fill.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	HTMLContent string    `json:"html_content"`
	CSSContent  string    `json:"css_content"`
	IsActive    bool      `json:"is_active"`
	PageCount   int       `json:"page_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
