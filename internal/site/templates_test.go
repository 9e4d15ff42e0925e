package site

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sablekunal/all-we-need/internal/models"
	"github.com/sablekunal/all-we-need/internal/output"
)

// TestProductionTemplatesRender parses the real templates shipped with the
// repository and renders every page, so a template/context mismatch fails
// here instead of in a deploy.
func TestProductionTemplatesRender(t *testing.T) {
	tmpl, err := LoadTemplates("../../templates")
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}

	outDir := t.TempDir()
	out, err := output.NewFS(outDir)
	if err != nil {
		t.Fatal(err)
	}

	s := Site{
		BaseURL:    "https://example.test",
		Title:      "All We Need",
		Tagline:    "curated tools",
		SourceRepo: "acme/site",
		Categories: map[string]string{"ai": "AI & Models"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRenderer(s, tmpl, out, "2025-06-01", logger)

	// Enough tags that the explore rail is populated too.
	var projects []models.Project
	tags := []string{"ai", "utilities", "security", "education", "media-tools", "design", "cli"}
	for i, tag := range tags {
		p := sampleProject()
		p.Title = "Tool " + tag
		p.Slug = "tool-" + tag
		p.FullPath = "projects/tool-" + tag
		p.Tags = []string{tag}
		if i%2 == 0 {
			p.Screenshot = "shot.png"
		}
		projects = append(projects, p)
	}

	ds := NewDataset(projects, []models.ContributorStat{
		{Login: "alice", AvatarURL: "https://a/1", HTMLURL: "https://github.com/alice",
			Count: 2, MergedDates: []string{"2025-05-01T00:00:00Z"}},
	})

	steps := map[string]func() error{
		"home":     func() error { return r.WriteHome(ds) },
		"projects": func() error { return r.WriteProjectPages(ds.Projects) },
		"index":    func() error { return r.WriteProjectsIndex(ds) },
		"board":    func() error { return r.WriteLeaderboard(ds) },
		"about":    func() error { return r.WriteAbout(ds) },
	}
	for name, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}

	home := readOutput(t, outDir, "index.html")
	if !strings.Contains(home, `id="searchInput"`) {
		t.Error("search input missing from homepage")
	}
	if !strings.Contains(home, "Explore More Categories") {
		t.Error("explore rail missing despite >5 tags")
	}
	if got := strings.Count(home, `class="tag-card"`); got != 2*exploreLoopCount {
		t.Errorf("explore cards = %d, want %d", got, 2*exploreLoopCount)
	}

	detail := readOutput(t, outDir, "projects/tool-ai.html")
	if !strings.Contains(detail, `href="../styles.css"`) {
		t.Error("detail page stylesheet not prefixed with ../")
	}
	if !strings.Contains(detail, "application/ld+json") {
		t.Error("structured data script missing")
	}
}

func TestAssetSrc(t *testing.T) {
	tests := []struct {
		ref, prefix, want string
	}{
		{"https://a/logo.png", "../", "https://a/logo.png"},
		{"//cdn/logo.png", "../", "//cdn/logo.png"},
		{"logo.png", "../", "../logo.png"},
		{"logo.png", "", "logo.png"},
	}
	for _, tt := range tests {
		if got := assetSrc(tt.ref, tt.prefix); got != tt.want {
			t.Errorf("assetSrc(%q, %q) = %q, want %q", tt.ref, tt.prefix, got, tt.want)
		}
	}
}
