// Package models defines the domain types for the site build.
package models

// Contributor is one upstream repository contributor. Slice order follows the
// hosting API's own ranking, most active first.
type Contributor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Project is one catalogue entry. Built once per run from its content file
// and immutable afterwards; a rebuild reconstructs every project from scratch.
type Project struct {
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Link         string        `json:"link"`
	Description  string        `json:"description"`
	Tags         []string      `json:"tags"`
	Logo         string        `json:"logo"`
	Screenshot   string        `json:"screenshot,omitempty"`
	Contributors []Contributor `json:"contributors"`
	Content      string        `json:"content"`
	FullPath     string        `json:"full_path"`
	Date         string        `json:"date"`
	Filename     string        `json:"filename"`
	SEOTitle     string        `json:"seo_title"`

	// RepoPath is the canonical owner/name pair when Link points at the
	// hosting platform, empty otherwise. Not part of the JSON dumps.
	RepoPath string `json:"-"`
}

// ContributorStat is one leaderboard row: merge activity against the site's
// own source repository. Count always equals len(MergedDates).
type ContributorStat struct {
	Login       string   `json:"login"`
	AvatarURL   string   `json:"avatar_url"`
	HTMLURL     string   `json:"html_url"`
	Count       int      `json:"count"`
	MergedDates []string `json:"merged_dates"`
}

// TagGroup pairs a tag label with the projects bearing it, in load order.
type TagGroup struct {
	Tag      string
	Projects []Project
}

// SiteStats holds the homepage counters.
type SiteStats struct {
	Projects     int
	Contributors int
	Merges       int
}
