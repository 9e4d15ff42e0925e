package site

import (
	"fmt"
	"strings"

	"github.com/sablekunal/all-we-need/internal/models"
)

// WriteLLMs generates llms.txt, a plain-text project directory for
// language-model crawlers: one `- [title](clean-url): description #tags` line
// per project.
func (r *Renderer) WriteLLMs(projects []models.Project) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n> %s\n\n## Projects\n", r.site.Title, r.site.Tagline)

	for _, p := range projects {
		cleanURL := r.site.BaseURL + "/" + p.FullPath
		line := fmt.Sprintf("- [%s](%s): %s", p.Title, cleanURL, p.Description)
		for _, t := range p.Tags {
			line += " #" + t
		}
		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\n\n## Contribute\nSubmit PRs at https://github.com/%s\n", r.site.SourceRepo)

	return r.out.Write("llms.txt", []byte(b.String()))
}
