// Package github is a minimal client for the hosting-API endpoints the build
// consumes: repository contributors, owner profiles, and closed pull requests.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sablekunal/all-we-need/internal/models"
)

// HTTPDoer can execute an HTTP request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls the hosting API. authToken is optional; when empty, calls are
// unauthenticated and subject to the API's anonymous rate limits.
type Client struct {
	doer            HTTPDoer
	baseURL         string
	authToken       string
	timeout         time.Duration
	maxResponseSize int64
}

// NewClient creates a new API client.
func NewClient(doer HTTPDoer, baseURL, authToken string, timeout time.Duration) *Client {
	return &Client{
		doer:            doer,
		baseURL:         baseURL,
		authToken:       authToken,
		timeout:         timeout,
		maxResponseSize: 10 * 1024 * 1024,
	}
}

// Contributors returns the repository's top contributors, at most limit,
// in the API's own activity ranking.
func (c *Client) Contributors(ctx context.Context, owner, repo string, limit int) ([]models.Contributor, error) {
	if limit < 1 {
		limit = 5
	}
	u := fmt.Sprintf("%s/repos/%s/%s/contributors?per_page=%s",
		c.baseURL, url.PathEscape(owner), url.PathEscape(repo), strconv.Itoa(limit))

	var resp contributorsResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.toContributors(), nil
}

// OwnerAvatar returns the avatar URL of a user or organisation.
func (c *Client) OwnerAvatar(ctx context.Context, owner string) (string, error) {
	u := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(owner))

	var resp userResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return "", err
	}
	return resp.AvatarURL, nil
}

// ClosedPulls returns the repository's most recently updated closed pull
// requests, bounded to one page of 100. Counts derived from this page are a
// lower bound, not exhaustive history.
func (c *Client) ClosedPulls(ctx context.Context, owner, repo string) ([]Pull, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/pulls?state=closed&per_page=100&sort=updated&direction=desc",
		c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	var resp pullsResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.toPulls(), nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, target any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("github: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("github: do request: %w", err)
	}
	// Drain before close so the connection can be reused.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("github: %s returned status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize))
	if err != nil {
		return fmt.Errorf("github: read response body: %w", err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("github: unmarshal response: %w", err)
	}
	return nil
}
