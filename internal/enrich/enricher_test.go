package enrich

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sablekunal/all-we-need/internal/github"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEnricher(t *testing.T, handler http.HandlerFunc) *Enricher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := github.NewClient(srv.Client(), srv.URL, "", 5*time.Second)
	return New(client, discardLogger())
}

func TestRepoDetails_PlatformLink(t *testing.T) {
	e := testEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/foo/contributors":
			w.Write([]byte(`[{"login":"alice","avatar_url":"a","html_url":"h"},{"login":"bob","avatar_url":"a2","html_url":"h2"}]`))
		case "/users/acme":
			w.Write([]byte(`{"avatar_url":"https://a/acme.png"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	d := e.RepoDetails(context.Background(), "https://github.com/acme/foo")
	if d.RepoPath != "acme/foo" {
		t.Errorf("repo path = %q, want acme/foo", d.RepoPath)
	}
	if len(d.Contributors) != 2 {
		t.Errorf("contributors = %d, want 2", len(d.Contributors))
	}
	if d.OwnerAvatar != "https://a/acme.png" {
		t.Errorf("owner avatar = %q", d.OwnerAvatar)
	}
}

func TestRepoDetails_NonPlatformLinkSkipsAPI(t *testing.T) {
	var called bool
	e := testEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	d := e.RepoDetails(context.Background(), "https://example.com/tool")
	if called {
		t.Error("non-platform link must not hit the API")
	}
	if d.RepoPath != "" || d.OwnerAvatar != "" || len(d.Contributors) != 0 {
		t.Errorf("expected empty details, got %+v", d)
	}
	if d.Contributors == nil {
		t.Error("contributors must be an empty slice, not nil")
	}
}

func TestRepoDetails_APIFailureDegrades(t *testing.T) {
	e := testEnricher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	d := e.RepoDetails(context.Background(), "https://github.com/acme/foo")
	if d.RepoPath != "acme/foo" {
		t.Errorf("repo path = %q, want acme/foo even on API failure", d.RepoPath)
	}
	if len(d.Contributors) != 0 || d.OwnerAvatar != "" {
		t.Errorf("failed calls must degrade to empty fields, got %+v", d)
	}
	if d.Contributors == nil {
		t.Error("contributors must be an empty slice, not nil")
	}
}

func TestSplitRepoLink_ShortPath(t *testing.T) {
	if _, _, ok := splitRepoLink("https://github.com/acme"); ok {
		t.Error("single-segment path should not be a repo link")
	}
}
