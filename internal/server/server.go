// Package server provides the local preview HTTP server for the generated
// site, with clean-URL resolution and SSE-driven live reload.
package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router serving the generated site from outputDir.
// sseHandler, if non-nil, is mounted at GET /events for live reload.
func NewRouter(outputDir string, sseHandler http.Handler) chi.Router {
	h := &siteHandler{root: outputDir}

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	r.NotFound(h.ServeHTTP)

	return r
}

// siteHandler serves files from a generated site directory using the same
// clean-URL scheme the production host applies: /foo resolves to foo,
// foo.html, or foo/index.html, in that order.
type siteHandler struct {
	root string
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name, ok := h.resolve(r.URL.Path)
	if !ok {
		h.serveNotFound(w, r)
		return
	}

	http.ServeFile(w, r, name)
}

// resolve maps a request path to a file under root, or reports false when
// nothing matches. Paths escaping the root are rejected.
func (h *siteHandler) resolve(reqPath string) (string, bool) {
	clean := path.Clean("/" + reqPath)
	if strings.Contains(clean, "..") {
		return "", false
	}

	rel := strings.TrimPrefix(clean, "/")
	if rel == "" {
		rel = "index.html"
	}

	candidates := []string{
		filepath.Join(h.root, filepath.FromSlash(rel)),
		filepath.Join(h.root, filepath.FromSlash(rel)+".html"),
		filepath.Join(h.root, filepath.FromSlash(rel), "index.html"),
	}

	for _, name := range candidates {
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			continue
		}
		return name, true
	}

	return "", false
}

func (h *siteHandler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(h.root, "404.html")
	data, err := os.ReadFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(data)
}
