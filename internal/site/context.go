package site

import (
	"html/template"
	"strings"

	"github.com/sablekunal/all-we-need/internal/models"
)

// exploreLoopCount is how many times the explore-more rail repeats its
// groups so the auto-scrolling carousel never runs dry. The data is stored
// once; the template ranges the repetition.
const exploreLoopCount = 4

const (
	cardAvatarLimit    = 3
	detailAvatarLimit  = 5
	topContributorsCap = 7
	exploreLogoLimit   = 8
)

// Site carries the configuration the renderer needs.
type Site struct {
	BaseURL    string
	Title      string
	Tagline    string
	SourceRepo string
	Categories map[string]string
}

// DisplayName maps a tag label to its section heading.
func (s Site) DisplayName(tag string) string {
	if name, ok := s.Categories[tag]; ok {
		return name
	}
	return tag
}

// Page is the context shared by every rendered page.
type Page struct {
	Title     string
	Site      Site
	Active    string // nav highlight: home, projects, leaderboard, about
	Prefix    string // relative prefix to the site root ("" or "../")
	Canonical string // canonical URL, set on detail pages only
	IsHome    bool
}

// Card is the project view used on listing rails and grids.
type Card struct {
	models.Project
	Author  string
	Avatars []models.Contributor
}

func newCard(p models.Project) Card {
	author := "Community"
	if len(p.Contributors) > 0 {
		author = p.Contributors[0].Login
	}
	avatars := p.Contributors
	if len(avatars) > cardAvatarLimit {
		avatars = avatars[:cardAvatarLimit]
	}
	return Card{Project: p, Author: author, Avatars: avatars}
}

func newCards(projects []models.Project) []Card {
	out := make([]Card, 0, len(projects))
	for _, p := range projects {
		out = append(out, newCard(p))
	}
	return out
}

// TagSection is one tag heading with its project cards.
type TagSection struct {
	Tag         string
	DisplayName string
	Cards       []Card
}

// ExploreGroup is one entry in the explore-more rail.
type ExploreGroup struct {
	Tag   string
	Count int
	Logos []models.Project
	Extra int
}

// ExploreRail is the looping carousel of remaining tag groups.
type ExploreRail struct {
	Groups    []ExploreGroup
	LoopCount int
}

// HomeData is the homepage context.
type HomeData struct {
	Page
	Recent          []Card
	Sections        []TagSection
	Explore         ExploreRail
	Stats           models.SiteStats
	TopContributors []models.ContributorStat
	InlineData      template.JS
}

// ProjectData is the detail-page context.
type ProjectData struct {
	Page
	Project        models.Project
	LogoSrc        string
	ScreenshotSrc  string
	Contributors   []models.Contributor
	RepoURL        string
	CanonicalURL   string
	StructuredData template.JS
	Body           template.HTML
}

// ProjectsIndexData is the all-projects index context.
type ProjectsIndexData struct {
	Page
	Sections []TagSection
}

// LeaderboardData is the leaderboard page context.
type LeaderboardData struct {
	Page
	Rows []models.ContributorStat
}

// AboutData is the about page context.
type AboutData struct {
	Page
	Community []models.ContributorStat
	Stats     models.SiteStats
}

// assetSrc resolves a logo or screenshot reference for a page at the given
// depth prefix: remote URLs pass through, local references get the prefix.
func assetSrc(ref, prefix string) string {
	if strings.HasPrefix(ref, "http") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return prefix + ref
}
