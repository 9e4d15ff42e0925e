package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// pageTemplates are the template files every build requires, beyond the
// shared layout.
var pageTemplates = []string{
	"index.html",
	"project.html",
	"projects_index.html",
	"leaderboard.html",
	"about.html",
}

// Templates holds the parsed page templates. Each page is parsed together
// with layout.html so it can reference the shared head, nav, and footer
// blocks. A page context missing a referenced field fails at execution, so a
// template/context mismatch is a build error, never literal placeholder text
// in published output.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses the layout and every page template under dir.
func LoadTemplates(dir string) (*Templates, error) {
	layout := filepath.Join(dir, "layout.html")

	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		t, err := template.New("layout.html").Funcs(funcMap()).ParseFiles(layout, filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("site: parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Templates{pages: pages}, nil
}

// Render executes the named page template with data.
func (t *Templates) Render(name string, data any) ([]byte, error) {
	tmpl, ok := t.pages[name]
	if !ok {
		return nil, fmt.Errorf("site: unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("site: execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// loop yields n iterations for carousel repetition.
		"loop": func(n int) []struct{} {
			return make([]struct{}, n)
		},
		"inc": func(i int) int {
			return i + 1
		},
		// asset resolves a local image reference against the page's root
		// prefix; remote URLs pass through.
		"asset": assetSrc,
	}
}
