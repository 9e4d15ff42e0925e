package github

import "github.com/sablekunal/all-we-need/internal/models"

type contributorsResponse []struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

func (r contributorsResponse) toContributors() []models.Contributor {
	out := make([]models.Contributor, 0, len(r))
	for _, c := range r {
		out = append(out, models.Contributor{
			Login:     c.Login,
			AvatarURL: c.AvatarURL,
			HTMLURL:   c.HTMLURL,
		})
	}
	return out
}

type userResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// Pull is one closed pull request. MergedAt is empty when the pull request
// was closed without merging.
type Pull struct {
	Author   models.Contributor
	MergedAt string
}

type pullsResponse []struct {
	User struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
		HTMLURL   string `json:"html_url"`
	} `json:"user"`
	MergedAt string `json:"merged_at"`
}

func (r pullsResponse) toPulls() []Pull {
	out := make([]Pull, 0, len(r))
	for _, p := range r {
		out = append(out, Pull{
			Author: models.Contributor{
				Login:     p.User.Login,
				AvatarURL: p.User.AvatarURL,
				HTMLURL:   p.User.HTMLURL,
			},
			MergedAt: p.MergedAt,
		})
	}
	return out
}
