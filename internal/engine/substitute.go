// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// substitute.go implements the placeholder substitution rules. Each rule
// binds one element key's value into template HTML; rules are independent
// and applied in a fixed order per key, so adding a third placeholder
// mechanism is a one-line change to the rule list.
package engine

import (
	"regexp"
	"strings"

	"pagecraft/internal/models"
)

// substitution rewrites html so that every placeholder bound to key
// carries value.
type substitution func(html, key, value string) string

// substitutions is the rule list applied, in order, for every element.
var substitutions = []substitution{
	substituteMustache,
	substituteDataElement,
}

// applyElements runs every substitution rule for every element against
// the template HTML.
func applyElements(html string, elements []models.PageElement) string {
	for _, el := range elements {
		for _, sub := range substitutions {
			html = sub(html, el.ElementKey, el.Content)
		}
	}
	return html
}

// substituteMustache replaces every {{key}} token with value.
func substituteMustache(html, key, value string) string {
	return strings.ReplaceAll(html, "{{"+key+"}}", value)
}

// substituteDataElement replaces the text content of any tag carrying a
// data-element="key" attribute, keeping the tag and its attributes intact.
func substituteDataElement(html, key, value string) string {
	re := regexp.MustCompile(`(<[^>]*data-element="` + regexp.QuoteMeta(key) + `"[^>]*>)[^<]*(</[^>]+>)`)
	// Escape $ so element content can't be misread as a replacement
	// reference.
	escaped := strings.ReplaceAll(value, "$", "$$")
	return re.ReplaceAllString(html, "${1}"+escaped+"${2}")
}
