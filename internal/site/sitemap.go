package site

import (
	"fmt"
	"strings"

	"github.com/sablekunal/all-we-need/internal/models"
)

// fixedPages are the non-project sitemap entries with their priorities.
var fixedPages = []struct {
	path     string
	priority string
}{
	{"/", "1.0"},
	{"/projects/", "0.9"},
	{"/leaderboard", "0.8"},
	{"/about", "0.8"},
}

// WriteSitemap generates sitemap.xml: the four fixed pages plus one clean URL
// per project, every entry stamped with the build date.
func (r *Renderer) WriteSitemap(projects []models.Project) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	for _, p := range fixedPages {
		writeSitemapEntry(&b, r.site.BaseURL+p.path, r.buildDate, p.priority)
	}
	for _, p := range projects {
		writeSitemapEntry(&b, r.site.BaseURL+"/"+p.FullPath, r.buildDate, "0.7")
	}

	b.WriteString("</urlset>\n")
	return r.out.Write("sitemap.xml", []byte(b.String()))
}

func writeSitemapEntry(b *strings.Builder, loc, lastmod, priority string) {
	fmt.Fprintf(b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <priority>%s</priority>\n  </url>\n",
		loc, lastmod, priority)
}
