package site

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// passthroughTemplates are static files shipped alongside the HTML templates
// and copied into the output root unchanged.
var passthroughTemplates = []string{"styles.css", "search.js", "404.html"}

// rootPassthrough are optional files picked up from the repository root.
var rootPassthrough = []string{"logo.png", "favicon.png", "robots.txt"}

// CopyAssets copies every static passthrough file into the output directory:
// stylesheet and client scripts from templatesDir, the assets directory
// recursively, and root-level images, robots.txt, and any google*.html
// verification files. A missing source file is skipped with a warning;
// a failed write is fatal.
func (r *Renderer) CopyAssets(templatesDir, assetsDir, rootDir string) error {
	for _, name := range passthroughTemplates {
		if err := r.copyOptional(filepath.Join(templatesDir, name), name); err != nil {
			return err
		}
	}

	if assetsDir != "" {
		if _, err := os.Stat(assetsDir); err == nil {
			if err := r.out.CopyDir(assetsDir, "."); err != nil {
				return err
			}
		}
	}

	for _, name := range rootPassthrough {
		if err := r.copyOptional(filepath.Join(rootDir, name), name); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "google") || !strings.HasSuffix(name, ".html") {
			continue
		}
		if err := r.out.CopyFile(filepath.Join(rootDir, name), name); err != nil {
			return err
		}
		r.logger.Info("copied verification file", slog.String("file", name))
	}

	return nil
}

// copyOptional copies src to rel, skipping quietly when src does not exist.
func (r *Renderer) copyOptional(src, rel string) error {
	if _, err := os.Stat(src); err != nil {
		r.logger.Warn("asset missing, skipped", slog.String("file", src))
		return nil
	}
	return r.out.CopyFile(src, rel)
}
