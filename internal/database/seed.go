package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"pagecraft/internal/models"
)

// demoTemplateHTML is a body fragment exercising both placeholder
// mechanisms: mustache tokens and data-element bound tags.
const demoTemplateHTML = `<section class="hero" style="background: var(--primary, {{bgColor}})">
  <img src="{{logoImage}}" alt="logo" class="logo">
  <h1>{{heroTitle}}</h1>
  <p data-element="heroSubtitle">placeholder subtitle</p>
  <a href="{{ctaLink}}" class="cta">{{ctaText}}</a>
</section>`

const demoTemplateCSS = `.hero { text-align: center; padding: 4rem 1rem; }
.hero .logo { max-width: 180px; }
.hero .cta { display: inline-block; padding: 0.75rem 1.5rem; border-radius: 6px; }`

// Seed populates the database with initial development data: a default
// admin user, a demo customer, and a starter template. No-op when users
// already exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	admin := models.User{
		Email:        "admin@pagecraft.local",
		PasswordHash: string(hash),
		DisplayName:  "Admin",
		Role:         models.UserRoleAdmin,
	}
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
	`, admin.Email, admin.PasswordHash, admin.DisplayName, string(admin.Role))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	var customerID string
	err = db.QueryRow(`
		INSERT INTO customers (name, email, company)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Demo Customer", "demo@pagecraft.local", "Demo Co").Scan(&customerID)
	if err != nil {
		return fmt.Errorf("seed insert customer: %w", err)
	}

	var templateID string
	err = db.QueryRow(`
		INSERT INTO templates (name, description, html_content, css_content)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "Starter Landing", "Hero section with logo, headline and call to action",
		demoTemplateHTML, demoTemplateCSS).Scan(&templateID)
	if err != nil {
		return fmt.Errorf("seed insert template: %w", err)
	}

	// A published demo page with one element per template placeholder, so
	// a fresh install serves something at /p/demo immediately.
	var pageID string
	err = db.QueryRow(`
		INSERT INTO pages (template_id, customer_id, name, slug, is_published)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id
	`, templateID, customerID, "Demo Landing", "demo").Scan(&pageID)
	if err != nil {
		return fmt.Errorf("seed insert page: %w", err)
	}

	demoElements := []struct {
		key, typ, content, label string
	}{
		{"bgColor", "COLOR", "#3B82F6", "Bg Color"},
		{"logoImage", "IMAGE", "https://placehold.co/600x400", "Logo Image"},
		{"heroTitle", "TEXT", "Welcome to PageCraft", "Hero Title"},
		{"heroSubtitle", "TEXT", "Publish customer pages in minutes", "Hero Subtitle"},
		{"ctaLink", "LINK", "#", "Cta Link"},
		{"ctaText", "TEXT", "Get started", "Cta Text"},
	}
	for _, el := range demoElements {
		_, err := db.Exec(`
			INSERT INTO page_elements (page_id, element_key, type, content, label)
			VALUES ($1, $2, $3, $4, $5)
		`, pageID, el.key, el.typ, el.content, el.label)
		if err != nil {
			return fmt.Errorf("seed insert element %q: %w", el.key, err)
		}
	}

	slog.Info("database seeded with default admin user and demo data",
		"email", "admin@pagecraft.local",
		"password", "admin",
	)

	return nil
}
