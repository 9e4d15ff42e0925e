// Package site derives shared datasets from loaded projects and renders every
// generated artifact: HTML pages, JSON dumps, sitemap, and the llms.txt
// directory.
package site

import (
	"sort"

	"github.com/sablekunal/all-we-need/internal/models"
)

const (
	// topTagCount is how many tag sections the homepage shows before the
	// explore-more rail takes over.
	topTagCount = 5
	// recentCount bounds the "newly added" rail.
	recentCount = 5
)

// Dataset holds everything the output pages are built from. Computed once per
// build and reused across home, project index, and about.
type Dataset struct {
	Projects    []models.Project
	Leaderboard []models.ContributorStat
	Groups      []models.TagGroup
	Recent      []models.Project
	Stats       models.SiteStats
}

// NewDataset derives the shared page datasets from the final project list and
// leaderboard.
func NewDataset(projects []models.Project, stats []models.ContributorStat) *Dataset {
	totalMerges := 0
	for _, s := range stats {
		totalMerges += s.Count
	}

	return &Dataset{
		Projects:    projects,
		Leaderboard: stats,
		Groups:      groupByTag(projects),
		Recent:      recentProjects(projects),
		Stats: models.SiteStats{
			Projects:     len(projects),
			Contributors: len(stats),
			Merges:       totalMerges,
		},
	}
}

// TopGroups returns the most populated tag groups for the homepage hero
// sections.
func (d *Dataset) TopGroups() []models.TagGroup {
	if len(d.Groups) <= topTagCount {
		return d.Groups
	}
	return d.Groups[:topTagCount]
}

// ExploreGroups returns the remaining tag groups for the explore-more rail.
func (d *Dataset) ExploreGroups() []models.TagGroup {
	if len(d.Groups) <= topTagCount {
		return nil
	}
	return d.Groups[topTagCount:]
}

// groupByTag builds the tag → projects mapping, ranked by member count
// descending. Ties keep first-encountered tag order; members keep load order.
func groupByTag(projects []models.Project) []models.TagGroup {
	byTag := make(map[string]int)
	var groups []models.TagGroup

	for _, p := range projects {
		for _, t := range p.Tags {
			i, ok := byTag[t]
			if !ok {
				i = len(groups)
				byTag[t] = i
				groups = append(groups, models.TagGroup{Tag: t})
			}
			groups[i].Projects = append(groups[i].Projects, p)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Projects) > len(groups[j].Projects)
	})
	return groups
}

// recentProjects returns the newest projects by date, at most recentCount.
// Dates are ISO-formatted, so lexicographic order is chronological.
func recentProjects(projects []models.Project) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > recentCount {
		sorted = sorted[:recentCount]
	}
	return sorted
}
