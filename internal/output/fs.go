// Package output writes generated artifacts under the build's output root.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FS writes files under a single output directory. All paths are relative to
// the root; anything escaping it is rejected.
type FS struct {
	root string
}

// NewFS creates an FS rooted at dir, creating the directory if needed.
func NewFS(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("output: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("output: create root: %w", err)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute output directory.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the root and rejects any result
// that escapes it.
func (f *FS) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if cleaned == "" || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("output: invalid path: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(joined, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("output: path escapes output root: %s", rel)
	}
	return joined, nil
}

// Write atomically writes content to rel: tmp file, fsync, rename.
func (f *FS) Write(rel string, content []byte) error {
	abs, err := f.safePath(rel)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".awn-tmp-*")
	if err != nil {
		return fmt.Errorf("output: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("output: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("output: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("output: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("output: rename: %w", err)
	}
	success = true
	return nil
}

// CopyFile copies the file at src (an outside path) to rel, byte for byte.
func (f *FS) CopyFile(src, rel string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("output: open %s: %w", src, err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("output: read %s: %w", src, err)
	}
	return f.Write(rel, data)
}

// CopyDir recursively copies the directory at src into rel.
func (f *FS) CopyDir(src, rel string) error {
	return filepath.WalkDir(src, func(p string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		sub, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		return f.CopyFile(p, filepath.Join(rel, sub))
	})
}
