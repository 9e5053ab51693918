// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pagecraft/internal/database"
	"pagecraft/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pagecraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pagecraft")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanCustomers removes test customers by email. Call in t.Cleanup().
func cleanCustomers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec("DELETE FROM customers WHERE email = $1", email)
	}
}

// cleanTemplates removes test templates by name. Call in t.Cleanup().
func cleanTemplates(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM templates WHERE name = $1", name)
	}
}

// cleanPages removes test pages by slug. Elements cascade. Call in
// t.Cleanup().
func cleanPages(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM pages WHERE slug = $1", slug)
	}
}

// seedCustomer creates a throwaway customer with a unique email and
// registers its cleanup.
func seedCustomer(t *testing.T, db *sql.DB) *models.Customer {
	t.Helper()
	email := "store-test-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanCustomers(t, db, email) })

	c, err := NewCustomerStore(db).Create(&models.Customer{
		Name:  "Store Test Customer",
		Email: email,
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

// seedTemplate creates a throwaway template and registers its cleanup.
// Dependent pages must be removed first by the caller's cleanups, which
// run in reverse registration order.
func seedTemplate(t *testing.T, db *sql.DB, html string) *models.Template {
	t.Helper()
	name := "Store Test Template " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	tmpl, err := NewTemplateStore(db).Create(&models.Template{
		Name:        name,
		HTMLContent: html,
		CSSContent:  "h1 { color: red; }",
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return tmpl
}
