// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pagecraft/internal/cache"
	"pagecraft/internal/database"
	"pagecraft/internal/engine"
	"pagecraft/internal/models"
	"pagecraft/internal/pages"
	"pagecraft/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pagecraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pagecraft")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. The
// render cache is the in-process implementation so tests need no Valkey.
type testEnv struct {
	DB            *sql.DB
	TemplateStore *store.TemplateStore
	CustomerStore *store.CustomerStore
	PageStore     *store.PageStore
	Service       *pages.Service
	Engine        *engine.Engine
	RenderCache   *cache.MemoryCache
	Templates     *Templates
	Pages         *Pages
	Customers     *Customers
	Public        *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	templateStore := store.NewTemplateStore(db)
	customerStore := store.NewCustomerStore(db)
	pageStore := store.NewPageStore(db)
	elementStore := store.NewElementStore(db)

	service := pages.NewService(pageStore, templateStore, customerStore, elementStore)
	eng := engine.New(pageStore)
	renderCache := cache.NewMemoryCache(time.Minute)

	return &testEnv{
		DB:            db,
		TemplateStore: templateStore,
		CustomerStore: customerStore,
		PageStore:     pageStore,
		Service:       service,
		Engine:        eng,
		RenderCache:   renderCache,
		Templates:     NewTemplates(templateStore, service),
		Pages:         NewPages(service),
		Customers:     NewCustomers(customerStore),
		Public:        NewPublic(eng, renderCache, time.Minute),
	}
}

// seedFixture creates a template and customer for one test and registers
// cleanup for them and for any page slugs the test will create.
func (env *testEnv) seedFixture(t *testing.T, html string, slugs ...string) (*models.Template, *models.Customer) {
	t.Helper()

	name := "Handler Test " + uuid.NewString()[:8]
	email := "handler-test-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() {
		for _, slug := range slugs {
			env.DB.Exec("DELETE FROM pages WHERE slug = $1", slug)
		}
		env.DB.Exec("DELETE FROM templates WHERE name = $1", name)
		env.DB.Exec("DELETE FROM customers WHERE email = $1", email)
	})

	tmpl, err := env.TemplateStore.Create(&models.Template{
		Name: name, HTMLContent: html, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	customer, err := env.CustomerStore.Create(&models.Customer{
		Name: "Handler Test Customer", Email: email,
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return tmpl, customer
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParams adds multiple chi URL parameters to a request.
func withChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
