// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package placeholder handles the variable contract of a template: it
// extracts {{variableName}} tokens from template HTML and synthesizes a
// typed, labelled default element for each variable. Both functions are
// pure — they touch no storage and never fail.
package placeholder

import (
	"regexp"
	"strings"
	"unicode"

	"pagecraft/internal/models"
)

// variableRe matches a mustache-style placeholder with a word-character
// identifier: {{heroTitle}}, {{contact_email}}, {{img2}}.
var variableRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Defaults for synthesized element content, by inferred type.
const (
	DefaultImageURL = "https://placehold.co/600x400"
	DefaultColor    = "#3B82F6"
	DefaultLink     = "#"
)

// Element is a synthesized default for one template variable.
type Element struct {
	Type    models.ElementType
	Content string
	Label   string
}

// Extract returns the distinct variable names referenced in the template
// HTML, in order of first occurrence. Duplicate references contribute one
// entry. Empty or token-free input yields an empty slice.
func Extract(html string) []string {
	matches := variableRe.FindAllStringSubmatch(html, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Synthesize builds the default element for a variable name: an inferred
// type, a type-appropriate default content value, and a human label.
func Synthesize(name string) Element {
	label := Label(name)
	elemType := InferType(name)

	var content string
	switch elemType {
	case models.ElementTypeImage:
		content = DefaultImageURL
	case models.ElementTypeColor:
		content = DefaultColor
	case models.ElementTypeLink:
		content = DefaultLink
	default:
		content = label
	}

	return Element{Type: elemType, Content: content, Label: label}
}

// InferType guesses the semantic type of a variable from keywords in its
// name. Checks run in a fixed priority order (image, color, link, text);
// the order is a compatibility contract — a name containing both
// "background" and "link" resolves to COLOR.
func InferType(name string) models.ElementType {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "image", "img", "logo", "photo"):
		return models.ElementTypeImage
	case containsAny(lower, "color", "bg", "background"):
		return models.ElementTypeColor
	case containsAny(lower, "link", "url", "href"):
		return models.ElementTypeLink
	default:
		return models.ElementTypeText
	}
}

// Label turns a variable name into a human-readable label: camelCase gets
// spaced, underscores become spaces, and each word is title-cased.
// "heroTitle" → "Hero Title", "contact_email" → "Contact Email".
func Label(name string) string {
	var spaced strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			spaced.WriteByte(' ')
		}
		if r == '_' {
			spaced.WriteByte(' ')
			continue
		}
		spaced.WriteRune(r)
	}

	words := strings.Fields(spaced.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
