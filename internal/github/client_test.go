package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Contributors(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[
			{"login":"alice","avatar_url":"https://a/alice.png","html_url":"https://h/alice"},
			{"login":"bob","avatar_url":"https://a/bob.png","html_url":"https://h/bob"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "secret", 5*time.Second)
	got, err := c.Contributors(context.Background(), "acme", "foo", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/repos/acme/foo/contributors?per_page=5" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "token secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if len(got) != 2 || got[0].Login != "alice" || got[1].AvatarURL != "https://a/bob.png" {
		t.Errorf("contributors = %+v", got)
	}
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"avatar_url":"https://a/owner.png"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "", 5*time.Second)
	avatar, err := c.OwnerAvatar(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no auth header, got %q", gotAuth)
	}
	if avatar != "https://a/owner.png" {
		t.Errorf("avatar = %q", avatar)
	}
}

func TestClient_ClosedPulls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != "closed" || r.URL.Query().Get("per_page") != "100" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`[
			{"user":{"login":"alice","avatar_url":"a","html_url":"h"},"merged_at":"2024-06-01T10:00:00Z"},
			{"user":{"login":"bob","avatar_url":"a2","html_url":"h2"},"merged_at":null}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "", 5*time.Second)
	pulls, err := c.ClosedPulls(context.Background(), "acme", "site")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pulls) != 2 {
		t.Fatalf("len(pulls) = %d, want 2", len(pulls))
	}
	if pulls[0].MergedAt != "2024-06-01T10:00:00Z" {
		t.Errorf("merged_at = %q", pulls[0].MergedAt)
	}
	if pulls[1].MergedAt != "" {
		t.Errorf("unmerged pull should have empty MergedAt, got %q", pulls[1].MergedAt)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "", 5*time.Second)
	if _, err := c.Contributors(context.Background(), "acme", "foo", 5); err == nil {
		t.Fatal("non-2xx status should error")
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "", 5*time.Second)
	if _, err := c.OwnerAvatar(context.Background(), "acme"); err == nil {
		t.Fatal("malformed JSON should error")
	}
}
