// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import "errors"

// Sentinel errors returned by the page service. Handlers translate these
// into HTTP statuses; they are never retried automatically — a slug
// conflict needs new user input.
var (
	ErrTemplateNotFound = errors.New("pages: template not found")
	ErrCustomerNotFound = errors.New("pages: customer not found")
	ErrPageNotFound     = errors.New("pages: page not found")
	ErrElementNotFound  = errors.New("pages: page element not found")
	ErrSlugExists       = errors.New("pages: slug already exists")
	ErrSlugInvalid      = errors.New("pages: slug contains invalid characters")
	ErrNameRequired     = errors.New("pages: name is required")
	ErrTemplateHasPages = errors.New("pages: template has dependent pages")
)
