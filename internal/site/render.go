package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/sablekunal/all-we-need/internal/models"
	"github.com/sablekunal/all-we-need/internal/output"
)

// Renderer writes the generated pages and artifacts for one build.
type Renderer struct {
	site      Site
	tmpl      *Templates
	out       *output.FS
	buildDate string // YYYY-MM-DD, stamped on every sitemap entry
	logger    *slog.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(site Site, tmpl *Templates, out *output.FS, buildDate string, logger *slog.Logger) *Renderer {
	return &Renderer{
		site:      site,
		tmpl:      tmpl,
		out:       out,
		buildDate: buildDate,
		logger:    logger,
	}
}

func (r *Renderer) page(title, active, prefix string) Page {
	return Page{
		Title:  title,
		Site:   r.site,
		Active: active,
		Prefix: prefix,
		IsHome: active == "home",
	}
}

// WriteProjectPages renders one detail page per project, named by slug.
func (r *Renderer) WriteProjectPages(projects []models.Project) error {
	for _, p := range projects {
		data, err := r.projectData(p)
		if err != nil {
			return err
		}
		html, err := r.tmpl.Render("project.html", data)
		if err != nil {
			return err
		}
		if err := r.out.Write("projects/"+p.Slug+".html", html); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) projectData(p models.Project) (ProjectData, error) {
	canonical := r.site.BaseURL + "/" + p.FullPath

	sd, err := structuredData(r.site, p, canonical)
	if err != nil {
		return ProjectData{}, fmt.Errorf("site: structured data for %s: %w", p.Slug, err)
	}

	contributors := p.Contributors
	if len(contributors) > detailAvatarLimit {
		contributors = contributors[:detailAvatarLimit]
	}

	repoURL := ""
	if p.RepoPath != "" {
		repoURL = "https://github.com/" + p.RepoPath
	}

	screenshot := ""
	if p.Screenshot != "" {
		screenshot = assetSrc(p.Screenshot, "../")
	}

	page := r.page(p.SEOTitle, "projects", "../")
	page.Canonical = canonical

	return ProjectData{
		Page:           page,
		Project:        p,
		LogoSrc:        assetSrc(p.Logo, "../"),
		ScreenshotSrc:  screenshot,
		Contributors:   contributors,
		RepoURL:        repoURL,
		CanonicalURL:   canonical,
		StructuredData: template.JS(sd),
		Body:           template.HTML(p.Content),
	}, nil
}

// WriteHome renders the homepage from the shared dataset.
func (r *Renderer) WriteHome(ds *Dataset) error {
	sections := make([]TagSection, 0, topTagCount)
	for _, g := range ds.TopGroups() {
		sections = append(sections, TagSection{
			Tag:         g.Tag,
			DisplayName: r.site.DisplayName(g.Tag),
			Cards:       newCards(g.Projects),
		})
	}

	explore := ExploreRail{LoopCount: exploreLoopCount}
	for _, g := range ds.ExploreGroups() {
		logos := g.Projects
		extra := 0
		if len(logos) > exploreLogoLimit {
			extra = len(logos) - exploreLogoLimit
			logos = logos[:exploreLogoLimit]
		}
		explore.Groups = append(explore.Groups, ExploreGroup{
			Tag:   g.Tag,
			Count: len(g.Projects),
			Logos: logos,
			Extra: extra,
		})
	}

	top := ds.Leaderboard
	if len(top) > topContributorsCap {
		top = top[:topContributorsCap]
	}

	inline, err := inlineData(ds)
	if err != nil {
		return err
	}

	data := HomeData{
		Page:            r.page(r.site.Title+" — curated for devs", "home", ""),
		Recent:          newCards(ds.Recent),
		Sections:        sections,
		Explore:         explore,
		Stats:           ds.Stats,
		TopContributors: top,
		InlineData:      inline,
	}

	html, err := r.tmpl.Render("index.html", data)
	if err != nil {
		return err
	}
	return r.out.Write("index.html", html)
}

// WriteProjectsIndex renders the all-projects index with every tag group.
func (r *Renderer) WriteProjectsIndex(ds *Dataset) error {
	sections := make([]TagSection, 0, len(ds.Groups))
	for _, g := range ds.Groups {
		sections = append(sections, TagSection{
			Tag:         g.Tag,
			DisplayName: g.Tag,
			Cards:       newCards(g.Projects),
		})
	}

	data := ProjectsIndexData{
		Page:     r.page("Projects — "+r.site.Title, "projects", "../"),
		Sections: sections,
	}

	html, err := r.tmpl.Render("projects_index.html", data)
	if err != nil {
		return err
	}
	return r.out.Write("projects/index.html", html)
}

// WriteLeaderboard renders the leaderboard page.
func (r *Renderer) WriteLeaderboard(ds *Dataset) error {
	data := LeaderboardData{
		Page: r.page("Leaderboard — "+r.site.Title, "leaderboard", ""),
		Rows: ds.Leaderboard,
	}
	html, err := r.tmpl.Render("leaderboard.html", data)
	if err != nil {
		return err
	}
	return r.out.Write("leaderboard.html", html)
}

// WriteAbout renders the about page with the full community grid.
func (r *Renderer) WriteAbout(ds *Dataset) error {
	data := AboutData{
		Page:      r.page("About — "+r.site.Title, "about", ""),
		Community: ds.Leaderboard,
		Stats:     ds.Stats,
	}
	html, err := r.tmpl.Render("about.html", data)
	if err != nil {
		return err
	}
	return r.out.Write("about.html", html)
}

// inlineData serialises the datasets injected into the homepage so the
// search script works without a fetch round trip.
func inlineData(ds *Dataset) (template.JS, error) {
	projects, err := json.Marshal(nonNilProjects(ds.Projects))
	if err != nil {
		return "", fmt.Errorf("site: marshal inline projects: %w", err)
	}
	stats, err := json.Marshal(nonNilStats(ds.Leaderboard))
	if err != nil {
		return "", fmt.Errorf("site: marshal inline leaderboard: %w", err)
	}
	return template.JS(fmt.Sprintf("window.ALL_PROJECTS = %s;\nwindow.LEADERBOARD = %s;", projects, stats)), nil
}

func nonNilProjects(ps []models.Project) []models.Project {
	if ps == nil {
		return []models.Project{}
	}
	return ps
}

func nonNilStats(ss []models.ContributorStat) []models.ContributorStat {
	if ss == nil {
		return []models.ContributorStat{}
	}
	return ss
}
