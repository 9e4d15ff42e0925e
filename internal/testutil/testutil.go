// Package testutil provides shared test helpers for setting up content
// directories and template fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteContent writes a content file into dir and returns its path.
func WriteContent(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// minimalTemplates are stripped-down page templates that reference the same
// context fields as the real ones, so rendering tests exercise the
// template/context contract without asserting on production markup.
var minimalTemplates = map[string]string{
	"layout.html": `{{define "head"}}<title>{{.Title}}</title>{{if .Canonical}}<link rel="canonical" href="{{.Canonical}}">{{end}}{{end}}
{{define "footer"}}<footer>{{.Site.Tagline}}</footer>{{end}}`,
	"index.html": `{{template "head" .Page}}
{{range .Recent}}<div class="card">{{.Title}} by {{.Author}}</div>{{end}}
{{range .Sections}}<h3>{{.DisplayName}}</h3>{{range .Cards}}<span>{{.Title}}</span>{{end}}{{end}}
{{range loop .Explore.LoopCount}}{{range $.Explore.Groups}}<i>{{.Tag}}:{{.Count}}</i>{{end}}{{end}}
<b data-target="{{.Stats.Projects}}"></b>
{{range .TopContributors}}<img src="{{.AvatarURL}}">{{end}}
<script>{{.InlineData}}</script>
{{template "footer" .Page}}`,
	"project.html": `{{template "head" .Page}}
<h1>{{.Project.Title}}</h1><img src="{{.LogoSrc}}">
{{if .ScreenshotSrc}}<img class="shot" src="{{.ScreenshotSrc}}">{{end}}
{{range .Contributors}}<a href="{{.HTMLURL}}">{{.Login}}</a>{{end}}
{{if .RepoURL}}<a href="{{.RepoURL}}">repo</a>{{end}}
<article>{{.Body}}</article>
<script type="application/ld+json">{{.StructuredData}}</script>
{{template "footer" .Page}}`,
	"projects_index.html": `{{template "head" .Page}}
{{range .Sections}}<h3>{{.Tag}}</h3>{{range .Cards}}<span>{{.Title}}</span>{{end}}{{end}}
{{template "footer" .Page}}`,
	"leaderboard.html": `{{template "head" .Page}}
{{range $i, $row := .Rows}}<tr><td>{{inc $i}}</td><td>{{$row.Login}}</td><td>{{$row.Count}}</td></tr>{{end}}
{{template "footer" .Page}}`,
	"about.html": `{{template "head" .Page}}
{{range .Community}}<img src="{{.AvatarURL}}">{{end}}<b>{{.Stats.Merges}}</b>
{{template "footer" .Page}}`,
}

// TemplateDir creates a temporary directory holding minimal but complete
// page templates.
func TemplateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range minimalTemplates {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
