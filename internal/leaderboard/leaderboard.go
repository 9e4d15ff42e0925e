// Package leaderboard aggregates merged pull requests on the site's own
// source repository into per-contributor merge rankings.
package leaderboard

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/sablekunal/all-we-need/internal/github"
	"github.com/sablekunal/all-we-need/internal/models"
)

// Fetch queries the most recent closed pull requests and aggregates merge
// counts per author, sorted by count descending (ties keep first-merge
// order). An API failure degrades to an empty leaderboard; it never fails
// the build.
func Fetch(ctx context.Context, client *github.Client, owner, repo string, logger *slog.Logger) []models.ContributorStat {
	pulls, err := client.ClosedPulls(ctx, owner, repo)
	if err != nil {
		logger.Warn("leaderboard: pull requests unavailable",
			slog.String("repo", owner+"/"+repo),
			slog.String("error", err.Error()))
		return nil
	}
	return Aggregate(pulls)
}

// Aggregate groups merged pulls by author. Count always equals the length of
// MergedDates for every returned stat.
func Aggregate(pulls []github.Pull) []models.ContributorStat {
	byLogin := make(map[string]*models.ContributorStat)
	var order []string

	for _, pr := range pulls {
		if pr.MergedAt == "" {
			continue
		}
		s, ok := byLogin[pr.Author.Login]
		if !ok {
			s = &models.ContributorStat{
				Login:     pr.Author.Login,
				AvatarURL: pr.Author.AvatarURL,
				HTMLURL:   pr.Author.HTMLURL,
			}
			byLogin[pr.Author.Login] = s
			order = append(order, pr.Author.Login)
		}
		s.Count++
		s.MergedDates = append(s.MergedDates, pr.MergedAt)
	}

	out := make([]models.ContributorStat, 0, len(order))
	for _, login := range order {
		out = append(out, *byLogin[login])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Window is a recency filter over merge dates.
type Window string

const (
	WindowDaily Window = "daily"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// Days returns the window length in calendar days; 0 means unbounded.
func (w Window) Days() int {
	switch w {
	case WindowDaily:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	default:
		return 0
	}
}

// FilterWindow re-derives each author's count from merge dates that fall
// within the window, measured in calendar days: the ceiling of elapsed time
// in days must not exceed the window length. Authors with no recent merges
// are dropped entirely. The input is not modified.
func FilterWindow(stats []models.ContributorStat, w Window, now time.Time) []models.ContributorStat {
	days := w.Days()

	var out []models.ContributorStat
	for _, s := range stats {
		var recent []string
		for _, d := range s.MergedDates {
			if withinDays(d, now, days) {
				recent = append(recent, d)
			}
		}
		if len(recent) == 0 {
			continue
		}
		out = append(out, models.ContributorStat{
			Login:       s.Login,
			AvatarURL:   s.AvatarURL,
			HTMLURL:     s.HTMLURL,
			Count:       len(recent),
			MergedDates: recent,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func withinDays(stamp string, now time.Time, days int) bool {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return false
	}
	if days <= 0 {
		return true
	}
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	diffDays := int(math.Ceil(elapsed.Hours() / 24))
	return diffDays <= days
}
