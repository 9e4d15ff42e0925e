// Package enrich augments projects with repository metadata fetched from the
// hosting API. Enrichment is best effort: every failure degrades to empty
// fields and is logged, never raised, so the renderer always receives a
// complete-shaped Details value.
package enrich

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/sablekunal/all-we-need/internal/github"
	"github.com/sablekunal/all-we-need/internal/models"
)

// contributorLimit bounds how many contributors are stored per project.
const contributorLimit = 5

// Details is the enrichment result for one project link. Fields are empty
// when the link is not hosted on the platform or the API calls failed.
type Details struct {
	Contributors []models.Contributor
	OwnerAvatar  string
	RepoPath     string
}

// Enricher resolves repository details through an API client.
type Enricher struct {
	client *github.Client
	logger *slog.Logger
}

// New creates an Enricher.
func New(client *github.Client, logger *slog.Logger) *Enricher {
	return &Enricher{client: client, logger: logger}
}

// RepoDetails derives contributor list, owner avatar, and canonical repo path
// from a project's external link. A link outside the hosting platform yields
// an all-empty Details without any API call; that is not an error.
func (e *Enricher) RepoDetails(ctx context.Context, link string) Details {
	owner, repo, ok := splitRepoLink(link)
	if !ok {
		return Details{Contributors: []models.Contributor{}}
	}

	d := Details{Contributors: []models.Contributor{}, RepoPath: owner + "/" + repo}

	contributors, err := e.client.Contributors(ctx, owner, repo, contributorLimit)
	if err != nil {
		e.logger.Warn("enrich: contributors unavailable",
			slog.String("repo", d.RepoPath),
			slog.String("error", err.Error()))
	} else {
		d.Contributors = contributors
	}

	avatar, err := e.client.OwnerAvatar(ctx, owner)
	if err != nil {
		e.logger.Warn("enrich: owner avatar unavailable",
			slog.String("owner", owner),
			slog.String("error", err.Error()))
	} else {
		d.OwnerAvatar = avatar
	}

	return d
}

// splitRepoLink extracts the owner and repository name from a hosting
// platform URL: the first two non-empty path segments.
func splitRepoLink(link string) (owner, repo string, ok bool) {
	if link == "" || !strings.Contains(link, "github.com") {
		return "", "", false
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", "", false
	}
	var parts []string
	for _, p := range strings.Split(u.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
