// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pages implements the page lifecycle: materializing a page's
// element set from a template's placeholder contract, slug-guarded
// updates, publish state, and element editing. Rendering lives in the
// engine package; this service owns every write path.
package pages

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"pagecraft/internal/models"
	"pagecraft/internal/placeholder"
	"pagecraft/internal/slug"
	"pagecraft/internal/store"
)

// Service coordinates the store layer for page operations.
type Service struct {
	pageStore     *store.PageStore
	templateStore *store.TemplateStore
	customerStore *store.CustomerStore
	elementStore  *store.ElementStore
}

// NewService creates a page service over the given stores.
func NewService(pageStore *store.PageStore, templateStore *store.TemplateStore, customerStore *store.CustomerStore, elementStore *store.ElementStore) *Service {
	return &Service{
		pageStore:     pageStore,
		templateStore: templateStore,
		customerStore: customerStore,
		elementStore:  elementStore,
	}
}

// CreatePageRequest carries the inputs for materializing a page from a
// template. An empty Slug is derived from Name.
type CreatePageRequest struct {
	TemplateID uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Slug       string
	CustomCSS  *string
}

// UpdatePageRequest carries partial page updates; nil fields are left
// untouched.
type UpdatePageRequest struct {
	Name        *string
	Slug        *string
	CustomCSS   *string
	Theme       *string
	IsPublished *bool
}

// CreateFromTemplate materializes a page: it verifies the template and
// customer exist and the slug is free, extracts the template's variables,
// synthesizes a default element per variable, and inserts the page plus
// its full element set atomically. A template with no placeholders yields
// a page with zero elements.
func (s *Service) CreateFromTemplate(req CreatePageRequest) (*models.Page, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}
	if !slug.Valid(req.Slug) {
		return nil, ErrSlugInvalid
	}

	tmpl, err := s.templateStore.FindByID(req.TemplateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, ErrTemplateNotFound
	}

	exists, err := s.customerStore.Exists(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	// Friendly precheck; the unique index on pages.slug is the real
	// enforcement against concurrent creates.
	taken, err := s.pageStore.SlugExists(req.Slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugExists
	}

	variables := placeholder.Extract(tmpl.HTMLContent)
	elements := make([]models.PageElement, 0, len(variables))
	for _, name := range variables {
		synth := placeholder.Synthesize(name)
		label := synth.Label
		elements = append(elements, models.PageElement{
			ElementKey: name,
			Type:       synth.Type,
			Content:    synth.Content,
			Label:      &label,
		})
	}

	page := &models.Page{
		TemplateID: req.TemplateID,
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Slug:       req.Slug,
		CustomCSS:  req.CustomCSS,
	}

	created, err := s.pageStore.CreateWithElements(page, elements)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("materialize page: %w", err)
	}

	slog.Info("page materialized",
		"page_id", created.ID,
		"slug", created.Slug,
		"template_id", req.TemplateID,
		"elements", len(created.Elements),
	)
	return created, nil
}

// Get returns a page with its relations attached.
func (s *Service) Get(id uuid.UUID) (*models.Page, error) {
	page, err := s.pageStore.FindByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// List returns pages, optionally filtered by customer.
func (s *Service) List(customerID *uuid.UUID) ([]models.Page, error) {
	return s.pageStore.List(customerID)
}

// Update applies a partial update. A slug change is validated and checked
// for uniqueness against every other page before the write.
func (s *Service) Update(id uuid.UUID, req UpdatePageRequest) (*models.Page, error) {
	page, err := s.pageStore.FindByID(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	if req.Slug != nil && *req.Slug != page.Slug {
		if !slug.Valid(*req.Slug) {
			return nil, ErrSlugInvalid
		}
		taken, err := s.pageStore.SlugExists(*req.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugExists
		}
		page.Slug = *req.Slug
	}
	if req.Name != nil {
		page.Name = *req.Name
	}
	if req.CustomCSS != nil {
		page.CustomCSS = req.CustomCSS
	}
	if req.Theme != nil {
		page.Theme = req.Theme
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}

	if err := s.pageStore.Update(page); err != nil {
		if store.IsUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}
	return s.pageStore.FindByID(id)
}

// Publish marks a page as publicly servable.
func (s *Service) Publish(id uuid.UUID) (*models.Page, error) {
	published := true
	return s.Update(id, UpdatePageRequest{IsPublished: &published})
}

// Unpublish hides a page from the public surface. Already-cached renders
// may be served until the cache TTL runs out; that staleness bound is
// accepted.
func (s *Service) Unpublish(id uuid.UUID) (*models.Page, error) {
	published := false
	return s.Update(id, UpdatePageRequest{IsPublished: &published})
}

// Delete removes a page unconditionally; elements cascade.
func (s *Service) Delete(id uuid.UUID) error {
	page, err := s.pageStore.FindByID(id)
	if err != nil {
		return err
	}
	if page == nil {
		return ErrPageNotFound
	}
	return s.pageStore.Delete(id)
}

// Elements lists a page's elements.
func (s *Service) Elements(pageID uuid.UUID) ([]models.PageElement, error) {
	if _, err := s.Get(pageID); err != nil {
		return nil, err
	}
	return s.elementStore.ListByPage(pageID)
}

// UpsertElement sets an element's content, creating a TEXT element with
// no label when the key was never materialized for this page.
func (s *Service) UpsertElement(pageID uuid.UUID, elementKey, content string) (*models.PageElement, error) {
	el, err := s.elementStore.Upsert(pageID, elementKey, content)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return el, nil
}

// DeleteElement removes one element from a page by key.
func (s *Service) DeleteElement(pageID uuid.UUID, elementKey string) error {
	deleted, err := s.elementStore.DeleteByKey(pageID, elementKey)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrElementNotFound
	}
	return nil
}

// DeleteTemplate removes a template, refusing while pages still reference
// it. The RESTRICT foreign key backs the precheck against races.
func (s *Service) DeleteTemplate(id uuid.UUID) error {
	tmpl, err := s.templateStore.FindByID(id)
	if err != nil {
		return err
	}
	if tmpl == nil {
		return ErrTemplateNotFound
	}

	count, err := s.templateStore.CountPages(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTemplateHasPages
	}

	if err := s.templateStore.Delete(id); err != nil {
		if store.IsForeignKeyViolation(err) {
			return ErrTemplateHasPages
		}
		return err
	}
	return nil
}
