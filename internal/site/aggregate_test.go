package site

import (
	"testing"

	"github.com/sablekunal/all-we-need/internal/models"
)

func proj(title, date string, tags ...string) models.Project {
	return models.Project{Title: title, Slug: title, Date: date, Tags: tags}
}

func TestGroupByTagRanksByCount(t *testing.T) {
	projects := []models.Project{
		proj("a", "2025-01-01", "ai"),
		proj("b", "2025-01-02", "ai", "utilities"),
		proj("c", "2025-01-03", "security"),
		proj("d", "2025-01-04", "ai"),
		proj("e", "2025-01-05", "utilities"),
	}

	groups := groupByTag(projects)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Tag != "ai" || len(groups[0].Projects) != 3 {
		t.Errorf("top group = %s (%d), want ai (3)", groups[0].Tag, len(groups[0].Projects))
	}
	if groups[1].Tag != "utilities" {
		t.Errorf("second group = %s, want utilities", groups[1].Tag)
	}
}

func TestGroupByTagTiesKeepFirstSeenOrder(t *testing.T) {
	projects := []models.Project{
		proj("a", "2025-01-01", "zeta"),
		proj("b", "2025-01-02", "alpha"),
	}

	groups := groupByTag(projects)
	if groups[0].Tag != "zeta" || groups[1].Tag != "alpha" {
		t.Errorf("tie order = [%s %s], want [zeta alpha]", groups[0].Tag, groups[1].Tag)
	}
}

func TestRecentProjectsNewestFirstCapped(t *testing.T) {
	var projects []models.Project
	dates := []string{"2024-01-01", "2025-06-01", "2023-01-01", "2025-01-01", "2024-06-01", "2025-03-01"}
	for i, d := range dates {
		projects = append(projects, proj(string(rune('a'+i)), d))
	}

	recent := recentProjects(projects)
	if len(recent) != recentCount {
		t.Fatalf("recent = %d, want %d", len(recent), recentCount)
	}
	if recent[0].Date != "2025-06-01" {
		t.Errorf("newest = %s, want 2025-06-01", recent[0].Date)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date > recent[i-1].Date {
			t.Errorf("recent not sorted at %d: %s after %s", i, recent[i].Date, recent[i-1].Date)
		}
	}
}

func TestRecentProjectsDoesNotMutateInput(t *testing.T) {
	projects := []models.Project{
		proj("a", "2023-01-01"),
		proj("b", "2025-01-01"),
	}
	_ = recentProjects(projects)
	if projects[0].Title != "a" {
		t.Error("input slice reordered")
	}
}

func TestNewDatasetStats(t *testing.T) {
	projects := []models.Project{proj("a", "2025-01-01", "ai"), proj("b", "2025-01-02", "ai")}
	stats := []models.ContributorStat{
		{Login: "alice", Count: 3},
		{Login: "bob", Count: 2},
	}

	ds := NewDataset(projects, stats)
	if ds.Stats.Projects != 2 {
		t.Errorf("Projects = %d, want 2", ds.Stats.Projects)
	}
	if ds.Stats.Contributors != 2 {
		t.Errorf("Contributors = %d, want 2", ds.Stats.Contributors)
	}
	if ds.Stats.Merges != 5 {
		t.Errorf("Merges = %d, want 5", ds.Stats.Merges)
	}
}

func TestTopAndExploreGroupsSplit(t *testing.T) {
	var projects []models.Project
	tags := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"}
	for i, tag := range tags {
		// Descending member counts so group order is deterministic.
		for j := 0; j < len(tags)-i; j++ {
			projects = append(projects, proj(tag+string(rune('a'+j)), "2025-01-01", tag))
		}
	}

	ds := NewDataset(projects, nil)
	top := ds.TopGroups()
	explore := ds.ExploreGroups()

	if len(top) != topTagCount {
		t.Errorf("top groups = %d, want %d", len(top), topTagCount)
	}
	if len(explore) != 2 {
		t.Errorf("explore groups = %d, want 2", len(explore))
	}
	if explore[0].Tag != "t6" || explore[1].Tag != "t7" {
		t.Errorf("explore tags = [%s %s], want [t6 t7]", explore[0].Tag, explore[1].Tag)
	}
}

func TestExploreGroupsEmptyWhenFewTags(t *testing.T) {
	ds := NewDataset([]models.Project{proj("a", "2025-01-01", "ai")}, nil)
	if got := ds.ExploreGroups(); got != nil {
		t.Errorf("ExploreGroups = %v, want nil", got)
	}
	if len(ds.TopGroups()) != 1 {
		t.Errorf("TopGroups = %d, want 1", len(ds.TopGroups()))
	}
}
