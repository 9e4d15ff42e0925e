package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html":          "<h1>home</h1>",
		"about.html":          "<h1>about</h1>",
		"404.html":            "<h1>not found</h1>",
		"styles.css":          "body{}",
		"projects/index.html": "<h1>projects</h1>",
		"projects/foo.html":   "<h1>foo</h1>",
	}
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestCleanURLResolution(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testSite(t), nil))
	defer srv.Close()

	tests := []struct {
		path string
		want string
	}{
		{"/", "<h1>home</h1>"},
		{"/about", "<h1>about</h1>"},
		{"/about.html", "<h1>about</h1>"},
		{"/projects/", "<h1>projects</h1>"},
		{"/projects/foo", "<h1>foo</h1>"},
		{"/styles.css", "body{}"},
	}
	for _, tt := range tests {
		status, body := get(t, srv, tt.path)
		if status != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", tt.path, status)
		}
		if body != tt.want {
			t.Errorf("GET %s body = %q, want %q", tt.path, body, tt.want)
		}
	}
}

func TestNotFoundServesCustomPage(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testSite(t), nil))
	defer srv.Close()

	status, body := get(t, srv, "/no-such-page")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if !strings.Contains(body, "not found") {
		t.Errorf("body = %q, want custom 404 page", body)
	}
}

func TestNotFoundWithoutCustomPage(t *testing.T) {
	dir := t.TempDir()
	srv := httptest.NewServer(NewRouter(dir, nil))
	defer srv.Close()

	status, _ := get(t, srv, "/missing")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestPathTraversalRejected(t *testing.T) {
	dir := testSite(t)
	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(secret) })

	srv := httptest.NewServer(NewRouter(dir, nil))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.URL.Path = "/../secret.txt"
	req.URL.RawPath = "/..%2Fsecret.txt"

	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "secret") {
		t.Error("traversal request leaked file outside root")
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testSite(t), nil))
	defer srv.Close()

	status, body := get(t, srv, "/healthz")
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("body = %q, want health payload", body)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testSite(t), nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/about", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
