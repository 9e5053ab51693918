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

// CustomerStore handles all customer-related database operations.
type CustomerStore struct {
	db *sql.DB
}

// NewCustomerStore creates a new CustomerStore with the given database connection.
func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// List returns all customers ordered by creation date descending.
func (s *CustomerStore) List() ([]models.Customer, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, company, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// FindByID retrieves a customer by its UUID. Returns nil if not found.
func (s *CustomerStore) FindByID(id uuid.UUID) (*models.Customer, error) {
	c := &models.Customer{}
	err := s.db.QueryRow(`
		SELECT id, name, email, company, created_at, updated_at
		FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return c, nil
}

// Exists reports whether a customer with the given ID exists.
func (s *CustomerStore) Exists(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customer exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new customer and returns it with the generated ID.
func (s *CustomerStore) Create(c *models.Customer) (*models.Customer, error) {
	result := &models.Customer{}
	err := s.db.QueryRow(`
		INSERT INTO customers (name, email, company)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, company, created_at, updated_at
	`, c.Name, c.Email, c.Company).Scan(
		&result.ID, &result.Name, &result.Email, &result.Company,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return result, nil
}

// Delete removes a customer by ID.
func (s *CustomerStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
