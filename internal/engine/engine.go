// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine resolves a page to its final servable HTML document:
// placeholder substitution, the theme override layer, and document
// wrapping when the template is a body fragment. Rendering is stateless
// and side-effect-free; unpublished and nonexistent pages are
// indistinguishable to callers so drafts never leak.
package engine

import (
	"fmt"
	"html"
	"strings"

	"pagecraft/internal/models"
	"pagecraft/internal/store"
)

// Engine renders pages looked up through the page store.
type Engine struct {
	pageStore *store.PageStore
}

// New creates a rendering engine over the given page store.
func New(pageStore *store.PageStore) *Engine {
	return &Engine{pageStore: pageStore}
}

// RenderBySlug resolves a slug to servable HTML. found is false when no
// published page answers to the slug — the caller serves the not-found
// document in that case. A non-nil error means the render itself failed
// and the caller should degrade to a generic error page; no error detail
// ever reaches the public surface.
func (e *Engine) RenderBySlug(slug string) (rendered []byte, found bool, err error) {
	page, err := e.pageStore.FindBySlug(slug)
	if err != nil {
		return nil, false, err
	}
	if page == nil || !page.IsPublished {
		return nil, false, nil
	}

	rendered, err = e.Render(page)
	if err != nil {
		return nil, true, err
	}
	return rendered, true, nil
}

// Render produces the final HTML document for a page. The page must have
// its template and elements loaded. Given fixed inputs the output is
// byte-identical across calls.
func (e *Engine) Render(page *models.Page) ([]byte, error) {
	if page.Template == nil {
		return nil, fmt.Errorf("render page %s: template not loaded", page.ID)
	}

	body := applyElements(page.Template.HTMLContent, page.Elements)

	theme := ParseTheme(page.Theme)
	bodyClass := theme.BodyClass()

	templateCSS := page.Template.CSSContent
	customCSS := ""
	if page.CustomCSS != nil {
		customCSS = *page.CustomCSS
	}
	themeCSS := theme.PaletteCSS()

	// Three independent style blocks in cascade order: template defaults
	// first, customer override second, theme override last.
	styles := "<style>" + templateCSS + "</style><style>" + customCSS + "</style><style>" + themeCSS + "</style>"

	if !strings.Contains(body, "</head>") {
		// Body fragment: wrap in a full document shell.
		doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
%s
</head>
<body class="%s">%s</body>
</html>`, html.EscapeString(page.Name), styles, bodyClass, body)
		return []byte(doc), nil
	}

	// Full document: inject the style blocks before </head> and set the
	// body class. The class is set, not merged — templates are expected
	// to leave the body tag bare.
	doc := strings.Replace(body, "</head>", styles+"</head>", 1)
	doc = strings.Replace(doc, "<body", `<body class="`+bodyClass+`"`, 1)
	return []byte(doc), nil
}

// NotFoundPage is the standalone document served for nonexistent and
// unpublished slugs alike.
func (e *Engine) NotFoundPage() []byte {
	return []byte(`<!DOCTYPE html>
<html>
<head><title>Page not found</title></head>
<body style="font-family: sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0;">
<div style="text-align: center;">
<h1>404</h1>
<p>This page is not available</p>
</div>
</body>
</html>`)
}

// ErrorPage is the standalone document served when rendering fails for
// any reason other than a missing page.
func (e *Engine) ErrorPage() []byte {
	return []byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body style="font-family: sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0;">
<div style="text-align: center;">
<h1>Error</h1>
<p>Something went wrong loading this page</p>
</div>
</body>
</html>`)
}
