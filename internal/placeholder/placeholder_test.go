// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package placeholder

import (
	"strings"
	"testing"

	"pagecraft/internal/models"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "two variables",
			html: "<h1>{{title}}</h1><p>{{description}}</p>",
			want: []string{"title", "description"},
		},
		{
			name: "duplicates collapse to one entry",
			html: "{{title}} and again {{title}} and {{title}}",
			want: []string{"title"},
		},
		{
			name: "first-occurrence order",
			html: "{{b}}{{a}}{{c}}{{a}}",
			want: []string{"b", "a", "c"},
		},
		{
			name: "underscores and digits in names",
			html: `<a href="{{cta_url}}">{{cta_text2}}</a>`,
			want: []string{"cta_url", "cta_text2"},
		},
		{
			name: "empty input",
			html: "",
			want: []string{},
		},
		{
			name: "no placeholders",
			html: "<div>static content</div>",
			want: []string{},
		},
		{
			name: "malformed tokens are ignored",
			html: "{{unclosed }} {{ spaced}} {{valid}} {{hy-phen}}",
			want: []string{"valid"},
		},
		{
			name: "single braces are not tokens",
			html: "{title} {{title}}",
			want: []string{"title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.html)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q): got %v, want %v", tt.html, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Extract(%q)[%d]: got %q, want %q", tt.html, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractWhitespaceIndependent(t *testing.T) {
	// Reformatting around tokens must not change the extracted set.
	compact := "<h1>{{title}}</h1><p>{{body}}</p>"
	spaced := "<h1>\n  {{title}}\n</h1>\n<p>\n  {{body}}\n</p>"

	a := Extract(compact)
	b := Extract(spaced)
	if len(a) != len(b) {
		t.Fatalf("variable count differs: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("variable %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		variable string
		want     models.ElementType
	}{
		{"heroImage", models.ElementTypeImage},
		{"logoImage", models.ElementTypeImage},
		{"img1", models.ElementTypeImage},
		{"profilePhoto", models.ElementTypeImage},
		{"companyLogo", models.ElementTypeImage},
		{"primaryColor", models.ElementTypeColor},
		{"bgHeader", models.ElementTypeColor},
		{"backgroundMain", models.ElementTypeColor},
		{"ctaLink", models.ElementTypeLink},
		{"siteUrl", models.ElementTypeLink},
		{"buttonHref", models.ElementTypeLink},
		{"heroTitle", models.ElementTypeText},
		{"description", models.ElementTypeText},
		// Priority order is a compatibility contract: image beats color,
		// color beats link.
		{"imageLink", models.ElementTypeImage},
		{"backgroundLink", models.ElementTypeColor},
		// Case-insensitive matching.
		{"HeroIMAGE", models.ElementTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.variable, func(t *testing.T) {
			if got := InferType(tt.variable); got != tt.want {
				t.Errorf("InferType(%q): got %s, want %s", tt.variable, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		variable string
		want     string
	}{
		{"heroTitle", "Hero Title"},
		{"contact_email", "Contact Email"},
		{"title", "Title"},
		{"Title", "Title"},
		{"footerCopyrightText", "Footer Copyright Text"},
		{"cta_url", "Cta Url"},
	}

	for _, tt := range tests {
		t.Run(tt.variable, func(t *testing.T) {
			if got := Label(tt.variable); got != tt.want {
				t.Errorf("Label(%q): got %q, want %q", tt.variable, got, tt.want)
			}
		})
	}
}

func TestLabelNeverStartsWithWhitespace(t *testing.T) {
	for _, v := range []string{"Title", "ABC", "_leading", "camelCaseName", "x"} {
		label := Label(v)
		if label != strings.TrimSpace(label) {
			t.Errorf("Label(%q) = %q has surrounding whitespace", v, label)
		}
	}
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		variable    string
		wantType    models.ElementType
		wantContent string
		wantLabel   string
	}{
		{"title", models.ElementTypeText, "Title", "Title"},
		{"heroTitle", models.ElementTypeText, "Hero Title", "Hero Title"},
		{"logoImage", models.ElementTypeImage, DefaultImageURL, "Logo Image"},
		{"primaryColor", models.ElementTypeColor, DefaultColor, "Primary Color"},
		{"ctaLink", models.ElementTypeLink, DefaultLink, "Cta Link"},
	}

	for _, tt := range tests {
		t.Run(tt.variable, func(t *testing.T) {
			got := Synthesize(tt.variable)
			if got.Type != tt.wantType {
				t.Errorf("type: got %s, want %s", got.Type, tt.wantType)
			}
			if got.Content != tt.wantContent {
				t.Errorf("content: got %q, want %q", got.Content, tt.wantContent)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label: got %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}
