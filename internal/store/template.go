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

// TemplateStore handles all template-related database operations.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// List returns all templates with their dependent page counts, newest first.
func (s *TemplateStore) List() ([]models.Template, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.description, t.thumbnail, t.html_content,
		       t.css_content, t.is_active, t.created_at, t.updated_at,
		       COUNT(p.id) AS page_count
		FROM templates t
		LEFT JOIN pages p ON p.template_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Thumbnail, &t.HTMLContent,
			&t.CSSContent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt, &t.PageCount,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// FindByID retrieves a template by its UUID. Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	t := &models.Template{}
	err := s.db.QueryRow(`
		SELECT id, name, description, thumbnail, html_content, css_content,
		       is_active, created_at, updated_at
		FROM templates WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Thumbnail, &t.HTMLContent,
		&t.CSSContent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// Create inserts a new template and returns it with the generated ID.
func (s *TemplateStore) Create(t *models.Template) (*models.Template, error) {
	result := &models.Template{}
	err := s.db.QueryRow(`
		INSERT INTO templates (name, description, thumbnail, html_content, css_content, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, thumbnail, html_content, css_content,
		          is_active, created_at, updated_at
	`, t.Name, t.Description, t.Thumbnail, t.HTMLContent, t.CSSContent, t.IsActive).Scan(
		&result.ID, &result.Name, &result.Description, &result.Thumbnail,
		&result.HTMLContent, &result.CSSContent, &result.IsActive,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return result, nil
}

// Update modifies a template's editable fields. Existing pages keep the
// element set they were materialized with; only future renders see the
// new markup.
func (s *TemplateStore) Update(t *models.Template) error {
	_, err := s.db.Exec(`
		UPDATE templates SET
			name = $1, description = $2, thumbnail = $3,
			html_content = $4, css_content = $5, is_active = $6,
			updated_at = NOW()
		WHERE id = $7
	`, t.Name, t.Description, t.Thumbnail, t.HTMLContent, t.CSSContent, t.IsActive, t.ID)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// CountPages returns the number of pages instantiated from a template.
func (s *TemplateStore) CountPages(id uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pages WHERE template_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count template pages: %w", err)
	}
	return count, nil
}

// Delete removes a template by ID. The RESTRICT foreign key on pages makes
// this fail while dependent pages exist; the service maps that to a
// domain error.
func (s *TemplateStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
