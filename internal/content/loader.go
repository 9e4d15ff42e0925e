// Package content loads project records from a directory of Markdown files
// with frontmatter metadata.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/sablekunal/all-we-need/internal/apperr"
	"github.com/sablekunal/all-we-need/internal/models"
	"github.com/sablekunal/all-we-need/internal/parser"
)

// DefaultDate is assumed when a content file carries no date; old enough to
// sort behind anything real.
const DefaultDate = "2020-01-01"

// Loader turns content files into Project records.
type Loader struct {
	md goldmark.Markdown
}

// NewLoader creates a Loader with the site's Markdown configuration.
// Raw HTML in bodies is allowed; content files are maintainer-reviewed.
func NewLoader() *Loader {
	return &Loader{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(highlighting.WithStyle("dracula")),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Load reads every .md file under dir (sorted by filename for deterministic
// output) and returns one Project per file. Any malformed metadata block or
// slug collision aborts the load.
func (l *Loader) Load(dir string) ([]models.Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("content: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	projects := make([]models.Project, 0, len(names))
	seen := make(map[string]string, len(names)) // slug -> filename

	for _, name := range names {
		p, err := l.loadFile(filepath.Join(dir, name), name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("content: %w: %q produced by both %s and %s",
				apperr.ErrDuplicateSlug, p.Slug, prev, name)
		}
		seen[p.Slug] = name
		projects = append(projects, p)
	}

	return projects, nil
}

func (l *Loader) loadFile(path, name string) (models.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Project{}, fmt.Errorf("content: read %s: %w", name, err)
	}

	res, err := parser.Parse(raw)
	if err != nil {
		return models.Project{}, fmt.Errorf("content: %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := l.md.Convert([]byte(res.Body), &buf); err != nil {
		return models.Project{}, fmt.Errorf("content: render %s: %w", name, err)
	}

	meta := res.Meta
	s := slugSource(meta.Title, name)

	date := meta.Date
	if date == "" {
		date = DefaultDate
	}

	// Tags and Contributors serialize as JSON arrays, so they must never
	// be nil: the browser-side renderer indexes into them directly.
	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Project{
		Title:        meta.Title,
		Slug:         s,
		Link:         meta.Link,
		Description:  meta.Description,
		Tags:         tags,
		Contributors: []models.Contributor{},
		Logo:         meta.Logo,
		Screenshot:   meta.Screenshot,
		Content:      buf.String(),
		FullPath:     "projects/" + s,
		Date:         date,
		Filename:     name,
		SEOTitle:     seoTitle(meta.Title, tags),
	}, nil
}

// slugSource derives the URL-safe slug from the title, or from the filename
// when the title is absent.
func slugSource(title, filename string) string {
	src := title
	if src == "" {
		src = strings.TrimSuffix(filename, ".md")
	}
	return slug.Make(src)
}

// seoTitle builds the search-engine page title from the project title and its
// first tag.
func seoTitle(title string, tags []string) string {
	kind := "Developer"
	if len(tags) > 0 && tags[0] != "" {
		kind = strings.ToUpper(tags[0][:1]) + tags[0][1:]
	}
	return fmt.Sprintf("%s - Free %s Tool | All We Need", title, kind)
}
