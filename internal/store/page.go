// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pagecraft/internal/models"
)

// PageStore handles all page-related database operations. Pages are the
// unit served publicly by slug, so the lookup methods eagerly load the
// relations the renderer and the API need.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, template_id, customer_id, name, slug, custom_css, theme, is_published, created_at, updated_at`

func scanPage(row *sql.Row) (*models.Page, error) {
	p := &models.Page{}
	err := row.Scan(
		&p.ID, &p.TemplateID, &p.CustomerID, &p.Name, &p.Slug,
		&p.CustomCSS, &p.Theme, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindByID retrieves a page with its template, customer summary, and
// elements attached. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	if err := s.attachRelations(p, true); err != nil {
		return nil, err
	}
	return p, nil
}

// FindBySlug retrieves a page by slug with its template and elements
// attached, published or not — the render path decides how to treat
// unpublished pages. Returns nil if not found.
func (s *PageStore) FindBySlug(slug string) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	if err := s.attachRelations(p, false); err != nil {
		return nil, err
	}
	return p, nil
}

// SlugExists reports whether any page other than exclude uses the slug.
// Pass uuid.Nil to check against all pages.
func (s *PageStore) SlugExists(slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM pages WHERE slug = $1 AND id <> $2)
	`, slug, exclude).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return exists, nil
}

// List returns pages, optionally filtered by customer, newest first.
// Each page carries its customer summary and element count but not the
// full template or element set.
func (s *PageStore) List(customerID *uuid.UUID) ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.template_id, p.customer_id, p.name, p.slug,
		       p.custom_css, p.theme, p.is_published, p.created_at, p.updated_at,
		       c.name, c.email
		FROM pages p
		JOIN customers c ON c.id = p.customer_id
		WHERE $1::uuid IS NULL OR p.customer_id = $1
		ORDER BY p.created_at DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var p models.Page
		var custName, custEmail string
		if err := rows.Scan(
			&p.ID, &p.TemplateID, &p.CustomerID, &p.Name, &p.Slug,
			&p.CustomCSS, &p.Theme, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
			&custName, &custEmail,
		); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		p.Customer = &models.CustomerSummary{ID: p.CustomerID, Name: custName, Email: custEmail}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// CreateWithElements inserts a page and its full element set in a single
// transaction — either all rows exist afterward or none do. The returned
// page has template, customer summary, and elements attached.
func (s *PageStore) CreateWithElements(p *models.Page, elements []models.PageElement) (*models.Page, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	created := &models.Page{}
	err = tx.QueryRow(`
		INSERT INTO pages (template_id, customer_id, name, slug, custom_css, theme, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING `+pageColumns+`
	`, p.TemplateID, p.CustomerID, p.Name, p.Slug, p.CustomCSS, p.Theme).Scan(
		&created.ID, &created.TemplateID, &created.CustomerID, &created.Name,
		&created.Slug, &created.CustomCSS, &created.Theme, &created.IsPublished,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	for _, el := range elements {
		_, err := tx.Exec(`
			INSERT INTO page_elements (page_id, element_key, type, content, label)
			VALUES ($1, $2, $3, $4, $5)
		`, created.ID, el.ElementKey, el.Type, el.Content, el.Label)
		if err != nil {
			return nil, fmt.Errorf("create page element %q: %w", el.ElementKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit page create: %w", err)
	}

	if err := s.attachRelations(created, true); err != nil {
		return nil, err
	}
	return created, nil
}

// Update modifies a page's mutable fields.
func (s *PageStore) Update(p *models.Page) error {
	_, err := s.db.Exec(`
		UPDATE pages SET
			name = $1, slug = $2, custom_css = $3, theme = $4,
			is_published = $5, updated_at = NOW()
		WHERE id = $6
	`, p.Name, p.Slug, p.CustomCSS, p.Theme, p.IsPublished, p.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// Delete removes a page by ID. Elements cascade at the database level.
func (s *PageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// attachRelations loads the template and element set for a page, plus the
// customer summary when withCustomer is set.
func (s *PageStore) attachRelations(p *models.Page, withCustomer bool) error {
	t := &models.Template{}
	err := s.db.QueryRow(`
		SELECT id, name, description, thumbnail, html_content, css_content,
		       is_active, created_at, updated_at
		FROM templates WHERE id = $1
	`, p.TemplateID).Scan(
		&t.ID, &t.Name, &t.Description, &t.Thumbnail, &t.HTMLContent,
		&t.CSSContent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("load page template: %w", err)
	}
	p.Template = t

	if withCustomer {
		c := &models.CustomerSummary{}
		err := s.db.QueryRow(`
			SELECT id, name, email FROM customers WHERE id = $1
		`, p.CustomerID).Scan(&c.ID, &c.Name, &c.Email)
		if err != nil {
			return fmt.Errorf("load page customer: %w", err)
		}
		p.Customer = c
	}

	elements, err := s.loadElements(p.ID)
	if err != nil {
		return err
	}
	p.Elements = elements
	return nil
}

// loadElements returns a page's elements ordered by key for deterministic
// output.
func (s *PageStore) loadElements(pageID uuid.UUID) ([]models.PageElement, error) {
	rows, err := s.db.Query(`
		SELECT id, page_id, element_key, type, content, label, created_at, updated_at
		FROM page_elements
		WHERE page_id = $1
		ORDER BY element_key
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("load page elements: %w", err)
	}
	defer rows.Close()

	var elements []models.PageElement
	for rows.Next() {
		var el models.PageElement
		if err := rows.Scan(
			&el.ID, &el.PageID, &el.ElementKey, &el.Type, &el.Content,
			&el.Label, &el.CreatedAt, &el.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan page element: %w", err)
		}
		elements = append(elements, el)
	}
	return elements, rows.Err()
}
