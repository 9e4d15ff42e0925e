package mcpserver

// ProjectFormatContract describes the canonical Markdown project format that
// LLM consumers should follow when drafting catalogue submissions.
const ProjectFormatContract = `# Project File Format Contract

Every project listed in the catalogue is one Markdown file in the content
directory and MUST follow this structure.

## Structure

` + "```" + `markdown
---
title: Tool Name                    # REQUIRED – display title everywhere
link: https://github.com/owner/repo # REQUIRED – project homepage or repo
description: One-line summary       # REQUIRED – shown on cards and in search
tags:                               # REQUIRED – first tag drives the category
  - ai
  - productivity
logo: https://example.com/logo.png  # OPTIONAL – explicit logo URL
screenshot: shot.png                # OPTIONAL – image in the assets directory
date: 2025-03-01                    # OPTIONAL – listing date (YYYY-MM-DD)
---

Longer Markdown description rendered on the project page.
` + "```" + `

## Rules

1. **YAML frontmatter is mandatory.** The ` + "```" + `---` + "```" + ` fences must be the first
   thing in the file (no leading blank lines).
2. **Tags** are lowercase (e.g. ` + "`" + `ai` + "`" + `, ` + "`" + `dev-tools` + "`" + `). The first tag decides
   which category section the project appears under.
3. **Links to GitHub repositories** unlock contributor avatars and the
   fallback logo; other hosts fall back to a favicon lookup.
4. **File names** end with ` + "`" + `.md` + "`" + ` and become the page slug when no title
   slug can be derived.
5. **Encoding** is UTF-8 with a trailing newline.

## Example

` + "```" + `markdown
---
title: Excalidraw
link: https://github.com/excalidraw/excalidraw
description: Virtual whiteboard for sketching hand-drawn diagrams
tags:
  - design
  - collaboration
date: 2025-01-20
---

Excalidraw is an open-source virtual whiteboard with a hand-drawn feel.

## Highlights

- End-to-end encrypted collaboration rooms
- Exports to PNG, SVG, and clipboard
` + "```" + `
`
