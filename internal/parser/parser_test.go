package parser

import (
	"strings"
	"testing"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Foo\nlink: https://github.com/acme/foo\ntags:\n  - AI\n  - utilities\n---\n# Foo\nBody text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Meta.Title != "Foo" {
		t.Errorf("title = %q, want %q", r.Meta.Title, "Foo")
	}
	if r.Meta.Link != "https://github.com/acme/foo" {
		t.Errorf("link = %q", r.Meta.Link)
	}
	if len(r.Meta.Tags) != 2 || r.Meta.Tags[0] != "ai" || r.Meta.Tags[1] != "utilities" {
		t.Errorf("tags = %v, want [ai utilities]", r.Meta.Tags)
	}
	if r.Body != "# Foo\nBody text.\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Meta.Title != "" {
		t.Errorf("expected zero meta, got title %q", r.Meta.Title)
	}
	if r.Body != string(input) {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_EmptyBody(t *testing.T) {
	input := []byte("---\ntitle: Bare\n---\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Body != "" {
		t.Errorf("body = %q, want empty", r.Body)
	}
}

func TestParse_InvalidYAMLFails(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	if _, err := Parse(input); err == nil {
		t.Fatal("malformed frontmatter must fail loudly")
	}
}

func TestParse_UnterminatedFrontmatterFails(t *testing.T) {
	input := []byte("---\ntitle: Foo\nBody without closing delimiter\n")
	_, err := Parse(input)
	if err == nil {
		t.Fatal("unterminated frontmatter must fail")
	}
	if !strings.Contains(err.Error(), "closing") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_TagsNormalized(t *testing.T) {
	input := []byte("---\ntitle: X\ntags:\n  - ' Security '\n  - ''\n---\ntext\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Meta.Tags) != 1 || r.Meta.Tags[0] != "security" {
		t.Errorf("tags = %v, want [security]", r.Meta.Tags)
	}
}
