// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"pagecraft/internal/models"
	"pagecraft/internal/pages"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

func createPageJSON(t *testing.T, env *testEnv, tmplID, custID uuid.UUID, name, slug string) *httptest.ResponseRecorder {
	t.Helper()
	payload := fmt.Sprintf(
		`{"template_id":%q,"customer_id":%q,"name":%q,"slug":%q}`,
		tmplID, custID, name, slug,
	)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/pages", bytes.NewBufferString(payload))
	env.Pages.Create(w, r)
	return w
}

func TestPagesCreate(t *testing.T) {
	env := newTestEnv(t)

	slug := "api-create-" + uuid.NewString()[:8]
	tmpl, customer := env.seedFixture(t, `<h1>{{headline}}</h1><img src="{{logo}}">`, slug)

	w := createPageJSON(t, env, tmpl.ID, customer.ID, "API Create", slug)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201 (%s)", w.Code, w.Body.String())
	}

	var page models.Page
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Slug != slug {
		t.Errorf("slug: got %q, want %q", page.Slug, slug)
	}
	if page.IsPublished {
		t.Error("new page must start unpublished")
	}
	if len(page.Elements) != 2 {
		t.Errorf("elements: got %d, want 2", len(page.Elements))
	}
}

func TestPagesCreateErrors(t *testing.T) {
	env := newTestEnv(t)

	slug := "api-err-" + uuid.NewString()[:8]
	tmpl, customer := env.seedFixture(t, `<h1>{{headline}}</h1>`, slug)

	// Unknown template.
	w := createPageJSON(t, env, uuid.New(), customer.ID, "X", slug)
	if w.Code != http.StatusNotFound || decodeError(t, w) != "TEMPLATE_NOT_FOUND" {
		t.Errorf("unknown template: got %d", w.Code)
	}

	// Invalid slug.
	w = createPageJSON(t, env, tmpl.ID, customer.ID, "X", "Bad Slug!")
	if w.Code != http.StatusBadRequest || decodeError(t, w) != "SLUG_INVALID" {
		t.Errorf("invalid slug: got %d", w.Code)
	}

	// Duplicate slug.
	if w = createPageJSON(t, env, tmpl.ID, customer.ID, "First", slug); w.Code != http.StatusCreated {
		t.Fatalf("first create: got %d", w.Code)
	}
	w = createPageJSON(t, env, tmpl.ID, customer.ID, "Second", slug)
	if w.Code != http.StatusConflict || decodeError(t, w) != "SLUG_ALREADY_EXISTS" {
		t.Errorf("duplicate slug: got %d", w.Code)
	}

	// Malformed body.
	w = httptest.NewRecorder()
	env.Pages.Create(w, httptest.NewRequest("POST", "/api/pages", bytes.NewBufferString("{not json")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: got %d, want 400", w.Code)
	}
}

func TestPagesListFilter(t *testing.T) {
	env := newTestEnv(t)

	slug := "api-list-" + uuid.NewString()[:8]
	tmpl, customer := env.seedFixture(t, `<p>x</p>`, slug)

	if w := createPageJSON(t, env, tmpl.ID, customer.ID, "Listed", slug); w.Code != http.StatusCreated {
		t.Fatalf("create: got %d", w.Code)
	}

	w := httptest.NewRecorder()
	env.Pages.List(w, httptest.NewRequest("GET", "/api/pages?customer_id="+customer.ID.String(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}

	var list []models.Page
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Slug != slug {
		t.Errorf("filtered list: got %d pages", len(list))
	}

	// Bad filter value.
	w = httptest.NewRecorder()
	env.Pages.List(w, httptest.NewRequest("GET", "/api/pages?customer_id=nope", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad filter: got %d, want 400", w.Code)
	}
}

func TestPagesPublishRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	slug := "api-pub-" + uuid.NewString()[:8]
	tmpl, customer := env.seedFixture(t, `<p>x</p>`, slug)

	page, err := env.Service.CreateFromTemplate(pages.CreatePageRequest{
		TemplateID: tmpl.ID, CustomerID: customer.ID, Name: "Pub", Slug: slug,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/pages/"+page.ID.String()+"/publish", nil)
	env.Pages.Publish(w, withChiURLParam(r, "id", page.ID.String()))
	if w.Code != http.StatusOK {
		t.Fatalf("publish: got %d", w.Code)
	}

	var published models.Page
	if err := json.NewDecoder(w.Body).Decode(&published); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !published.IsPublished {
		t.Error("expected is_published true")
	}

	w = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/api/pages/"+page.ID.String()+"/unpublish", nil)
	env.Pages.Unpublish(w, withChiURLParam(r, "id", page.ID.String()))
	if w.Code != http.StatusOK {
		t.Fatalf("unpublish: got %d", w.Code)
	}
}

func TestPagesElementRoutes(t *testing.T) {
	env := newTestEnv(t)

	slug := "api-el-" + uuid.NewString()[:8]
	tmpl, customer := env.seedFixture(t, `<h1>{{title}}</h1>`, slug)

	page, err := env.Service.CreateFromTemplate(pages.CreatePageRequest{
		TemplateID: tmpl.ID, CustomerID: customer.ID, Name: "El", Slug: slug,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	params := map[string]string{"id": page.ID.String(), "key": "title"}

	// Update the materialized element's content.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/api/pages/x/elements/title",
		bytes.NewBufferString(`{"content":"Fresh headline"}`))
	env.Pages.UpsertElement(w, withChiURLParams(r, params))
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: got %d (%s)", w.Code, w.Body.String())
	}
	var el models.PageElement
	if err := json.NewDecoder(w.Body).Decode(&el); err != nil {
		t.Fatalf("decode element: %v", err)
	}
	if el.Content != "Fresh headline" {
		t.Errorf("content: got %q", el.Content)
	}

	// List shows the page's elements.
	w = httptest.NewRecorder()
	r = httptest.NewRequest("GET", "/api/pages/x/elements", nil)
	env.Pages.ListElements(w, withChiURLParam(r, "id", page.ID.String()))
	if w.Code != http.StatusOK {
		t.Fatalf("list elements: got %d", w.Code)
	}

	// Delete, then a second delete is a 404.
	w = httptest.NewRecorder()
	r = httptest.NewRequest("DELETE", "/api/pages/x/elements/title", nil)
	env.Pages.DeleteElement(w, withChiURLParams(r, params))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete element: got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r = httptest.NewRequest("DELETE", "/api/pages/x/elements/title", nil)
	env.Pages.DeleteElement(w, withChiURLParams(r, params))
	if w.Code != http.StatusNotFound || decodeError(t, w) != "ELEMENT_NOT_FOUND" {
		t.Errorf("second delete: got %d", w.Code)
	}
}

func TestPagesGetInvalidID(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/pages/not-a-uuid", nil)
	env.Pages.Get(w, withChiURLParam(r, "id", "not-a-uuid"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid id: got %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	id := uuid.NewString()
	r = httptest.NewRequest("GET", "/api/pages/"+id, nil)
	env.Pages.Get(w, withChiURLParam(r, "id", id))
	if w.Code != http.StatusNotFound || decodeError(t, w) != "PAGE_NOT_FOUND" {
		t.Errorf("missing page: got %d", w.Code)
	}
}
