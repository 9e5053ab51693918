// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"encoding/json"
	"sort"
	"strings"
)

// Theme is the page-level override layer applied on top of template and
// custom CSS: a light/dark mode flag and a CSS custom-property palette.
// It is stored as an opaque JSON string on the page; all JSON fragility
// is isolated behind ParseTheme.
type Theme struct {
	Mode    string            `json:"mode"`
	Palette map[string]string `json:"palette"`
}

// DefaultTheme is what every page renders with absent a valid theme field.
func DefaultTheme() Theme {
	return Theme{Mode: "light", Palette: map[string]string{}}
}

// ParseTheme decodes a page's serialized theme. It is total: nil, empty,
// or malformed input yields the light default — a broken theme must never
// fail a render.
func ParseTheme(raw *string) Theme {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return DefaultTheme()
	}
	var t Theme
	if err := json.Unmarshal([]byte(*raw), &t); err != nil {
		return DefaultTheme()
	}
	if t.Mode == "" {
		t.Mode = "light"
	}
	if t.Palette == nil {
		t.Palette = map[string]string{}
	}
	return t
}

// BodyClass returns the CSS class the document body carries for this
// theme: "dark" in dark mode, otherwise empty.
func (t Theme) BodyClass() string {
	if t.Mode == "dark" {
		return "dark"
	}
	return ""
}

// PaletteCSS builds a :root ruleset assigning each palette entry, with
// keys in sorted order so repeated renders are byte-identical. Returns an
// empty string when the palette is empty.
func (t Theme) PaletteCSS() string {
	if len(t.Palette) == 0 {
		return ""
	}

	keys := make([]string, 0, len(t.Palette))
	for k := range t.Palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root { ")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(t.Palette[k])
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}
