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

// ElementStore handles page element database operations outside the bulk
// materialization path (which lives in PageStore.CreateWithElements).
type ElementStore struct {
	db *sql.DB
}

// NewElementStore creates a new ElementStore with the given database connection.
func NewElementStore(db *sql.DB) *ElementStore {
	return &ElementStore{db: db}
}

// ListByPage returns a page's elements ordered by key.
func (s *ElementStore) ListByPage(pageID uuid.UUID) ([]models.PageElement, error) {
	rows, err := s.db.Query(`
		SELECT id, page_id, element_key, type, content, label, created_at, updated_at
		FROM page_elements
		WHERE page_id = $1
		ORDER BY element_key
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list page elements: %w", err)
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

// Upsert updates an element's content, or creates a TEXT-typed element
// with no label when the (page, key) pair does not exist yet. This is the
// one path where an element can appear without template materialization.
func (s *ElementStore) Upsert(pageID uuid.UUID, elementKey, content string) (*models.PageElement, error) {
	el := &models.PageElement{}
	err := s.db.QueryRow(`
		INSERT INTO page_elements (page_id, element_key, type, content)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (page_id, element_key)
		DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING id, page_id, element_key, type, content, label, created_at, updated_at
	`, pageID, elementKey, models.ElementTypeText, content).Scan(
		&el.ID, &el.PageID, &el.ElementKey, &el.Type, &el.Content,
		&el.Label, &el.CreatedAt, &el.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert page element: %w", err)
	}
	return el, nil
}

// DeleteByKey removes one element from a page. Reports whether a row was
// actually deleted.
func (s *ElementStore) DeleteByKey(pageID uuid.UUID, elementKey string) (bool, error) {
	result, err := s.db.Exec(`
		DELETE FROM page_elements WHERE page_id = $1 AND element_key = $2
	`, pageID, elementKey)
	if err != nil {
		return false, fmt.Errorf("delete page element: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete page element rows: %w", err)
	}
	return rows > 0, nil
}
