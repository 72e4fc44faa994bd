package token

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok := Generate()
		if len(tok) != 32 {
			t.Fatalf("Generate() returned %q, want 32 hex chars", tok)
		}
		if strings.Contains(tok, "-") {
			t.Fatalf("Generate() returned %q, want no dashes", tok)
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("Generate() returned duplicate token %q", tok)
		}
		seen[tok] = struct{}{}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		base string
	}{
		{"Acme", "acme-"},
		{"Acme Corp", "acme-corp-"},
		{"Acme & Co!", "acme-co-"},
		{"a---b", "a-b-"},
	}
	for _, c := range cases {
		slug := Slugify(c.name)
		if !strings.HasPrefix(slug, c.base) {
			t.Errorf("Slugify(%q) = %q, want prefix %q", c.name, slug, c.base)
		}
		suffix := strings.TrimPrefix(slug, c.base)
		if len(suffix) != 6 {
			t.Errorf("Slugify(%q) = %q, want 6-char suffix, got %q", c.name, slug, suffix)
		}
	}
}

func TestSlugifySymbolsOnly(t *testing.T) {
	slug := Slugify("!!!")
	if len(slug) != 6 {
		t.Errorf("Slugify(\"!!!\") = %q, want bare 6-char suffix", slug)
	}
}

func TestSlugifyDistinctForSameName(t *testing.T) {
	if Slugify("Acme") == Slugify("Acme") {
		t.Error("Slugify produced identical slugs for the same name")
	}
}
