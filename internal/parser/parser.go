// Package parser extracts YAML frontmatter and the Markdown body from
// project content files.
package parser

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta holds the recognised frontmatter fields of a content file.
type Meta struct {
	Title       string   `yaml:"title"`
	Link        string   `yaml:"link"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Logo        string   `yaml:"logo"`
	Screenshot  string   `yaml:"screenshot"`
	Date        string   `yaml:"date"`
}

// Result holds the output of parsing a content file.
type Result struct {
	Meta Meta
	Body string
}

// Parse splits raw file bytes into frontmatter metadata and Markdown body.
// A file without a frontmatter block yields zero-valued Meta and the whole
// content as body. A frontmatter block that is not valid YAML is an error:
// published pages are externally visible, so a broken metadata block must
// fail the build rather than emit a partially populated page.
func Parse(data []byte) (*Result, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return &Result{Body: string(data)}, nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, fmt.Errorf("parser: frontmatter block has no closing %q delimiter", delim)
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var meta Meta
	if err := yaml.Unmarshal(yamlBlock, &meta); err != nil {
		return nil, fmt.Errorf("parser: invalid frontmatter: %w", err)
	}

	normalizeTags(&meta)

	return &Result{Meta: meta, Body: body}, nil
}

// normalizeTags lowercases and trims tag labels and drops empty entries.
func normalizeTags(m *Meta) {
	out := m.Tags[:0]
	for _, t := range m.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	m.Tags = out
}
